package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/cobra"

	"github.com/pders01/timeshift/internal/models"
	"github.com/pders01/timeshift/internal/zone"
)

var (
	compareModifier string
	compareZones    []string
	compareJSON     bool
	compareToon     bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <timestamp>",
	Short: "Apply a modifier to one timestamp in several zones",
	Long: `Apply a modifier to the same timestamp in every given zone.

Local midnight differs between zones, so day, week and month boundaries
land on different epoch seconds.

Examples:
  timeshift compare 1649112712 -m END_OF_DAY -z America/Chicago -z America/Los_Angeles
  timeshift compare 1629108000 --zone UTC,Asia/Kolkata,Asia/Tokyo -m START_OF_HOUR --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVarP(&compareModifier, "modifier", "m", "", "Modifier to apply (default from modifier.default)")
	compareCmd.Flags().StringSliceVarP(&compareZones, "zone", "z", nil, "IANA timezones to compare (repeatable)")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Output as JSON")
	compareCmd.Flags().BoolVar(&compareToon, "toon", false, "Output in LLM-friendly toon format")
}

func runCompare(cmd *cobra.Command, args []string) error {
	if len(compareZones) == 0 {
		return fmt.Errorf("at least one --zone is required")
	}

	ts, err := parseTimestamp(args[0])
	if err != nil {
		return err
	}

	m, err := resolveModifier(compareModifier)
	if err != nil {
		return err
	}

	format, err := outputFormat(compareJSON, compareToon)
	if err != nil {
		return err
	}

	results, err := iter.MapErr(compareZones, func(name *string) (models.Result, error) {
		loc, err := zone.Resolve(*name)
		if err != nil {
			return models.Result{}, err
		}
		return models.Result{
			Zone:     loc.String(),
			Modifier: m.String(),
			Input:    models.NewBoundary(ts, loc),
			Output:   models.NewBoundary(m.Apply(ts, loc), loc),
		}, nil
	})
	if err != nil {
		return fmt.Errorf("invalid --zone: %w", err)
	}
	slog.Debug("compared zones", "modifier", m, "input", ts, "zones", len(results))

	return render(cmd, format, results, func(w io.Writer) {
		fmt.Fprintf(w, "%s of %d (%s)\n\n", m, ts, time.Unix(ts, 0).UTC().Format(models.LocalLayout))
		for _, r := range results {
			fmt.Fprintf(w, "  %-24s %12d  %s\n", r.Zone, r.Output.Epoch, r.Output.Local)
		}
	})
}
