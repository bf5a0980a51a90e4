package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pders01/timeshift/internal/models"
)

var (
	applyModifier string
	applyZone     string
	applyJSON     bool
	applyToon     bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <timestamp>",
	Short: "Truncate a timestamp to a modifier boundary",
	Long: `Truncate an epoch timestamp to the boundary of a modifier in a zone.

Examples:
  timeshift apply 1629108000
  timeshift apply 1649112712 --modifier END_OF_DAY --zone America/Chicago
  timeshift apply 1627948289 --modifier start-of-week --json`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&applyModifier, "modifier", "m", "", "Modifier to apply (default from modifier.default)")
	applyCmd.Flags().StringVarP(&applyZone, "zone", "z", "", "IANA timezone (default from zone.default)")
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "Output as JSON")
	applyCmd.Flags().BoolVar(&applyToon, "toon", false, "Output in LLM-friendly toon format")
}

func runApply(cmd *cobra.Command, args []string) error {
	ts, err := parseTimestamp(args[0])
	if err != nil {
		return err
	}

	m, err := resolveModifier(applyModifier)
	if err != nil {
		return err
	}

	loc, err := resolveZone(applyZone)
	if err != nil {
		return err
	}

	format, err := outputFormat(applyJSON, applyToon)
	if err != nil {
		return err
	}

	out := m.Apply(ts, loc)
	slog.Debug("applied modifier", "modifier", m, "zone", loc, "input", ts, "output", out)

	result := models.Result{
		Zone:     loc.String(),
		Modifier: m.String(),
		Input:    models.NewBoundary(ts, loc),
		Output:   models.NewBoundary(out, loc),
	}

	return render(cmd, format, result, func(w io.Writer) {
		fmt.Fprintf(w, "%s in %s\n", result.Modifier, result.Zone)
		printBoundary(w, "Input", result.Input)
		printBoundary(w, "Output", result.Output)
	})
}
