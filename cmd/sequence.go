package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pders01/timeshift/internal/config"
	"github.com/pders01/timeshift/internal/models"
	"github.com/pders01/timeshift/internal/timemod"
)

var (
	sequenceModifier string
	sequenceZone     string
	sequenceLimit    int
	sequenceJSON     bool
	sequenceToon     bool
)

var sequenceCmd = &cobra.Command{
	Use:     "sequence <start> <end>",
	Aliases: []string{"seq"},
	Short:   "List every modifier boundary between two timestamps",
	Long: `List the boundaries of a modifier from the one containing start up to
and including the one containing end.

An empty list is printed when start is after end.

Examples:
  timeshift sequence 1627776000 1630454400
  timeshift sequence 1609459200 1640995199 --modifier START_OF_MONTH --zone Europe/Berlin
  timeshift seq 1636257600 1636275600 -m START_OF_HOUR -z America/Chicago --json`,
	Args: cobra.ExactArgs(2),
	RunE: runSequence,
}

func init() {
	rootCmd.AddCommand(sequenceCmd)

	sequenceCmd.Flags().StringVarP(&sequenceModifier, "modifier", "m", "", "Modifier to enumerate (default from modifier.default)")
	sequenceCmd.Flags().StringVarP(&sequenceZone, "zone", "z", "", "IANA timezone (default from zone.default)")
	sequenceCmd.Flags().IntVar(&sequenceLimit, "limit", 0, "Maximum number of boundaries, 0 for sequence.limit")
	sequenceCmd.Flags().BoolVar(&sequenceJSON, "json", false, "Output as JSON")
	sequenceCmd.Flags().BoolVar(&sequenceToon, "toon", false, "Output in LLM-friendly toon format")
}

func runSequence(cmd *cobra.Command, args []string) error {
	start, err := parseTimestamp(args[0])
	if err != nil {
		return err
	}

	end, err := parseTimestamp(args[1])
	if err != nil {
		return err
	}

	m, err := resolveModifier(sequenceModifier)
	if err != nil {
		return err
	}

	loc, err := resolveZone(sequenceZone)
	if err != nil {
		return err
	}

	format, err := outputFormat(sequenceJSON, sequenceToon)
	if err != nil {
		return err
	}

	limit := sequenceLimit
	if limit <= 0 {
		limit = config.GetSequenceLimit()
	}

	times, err := timemod.BuildSequenceLimit(m, start, end, loc, limit)
	if err != nil {
		return err
	}
	slog.Debug("built sequence", "modifier", m, "zone", loc, "start", start, "end", end, "count", len(times))

	seq := models.NewSequence(m, start, end, times, loc)

	return render(cmd, format, seq, func(w io.Writer) {
		if seq.Count == 0 {
			fmt.Fprintln(w, "No boundaries in range")
			return
		}

		fmt.Fprintf(w, "Found %d %s boundaries for %s in %s:\n\n", seq.Count, seq.Unit, seq.Modifier, seq.Zone)
		for _, b := range seq.Boundaries {
			fmt.Fprintf(w, "  %12d  %s\n", b.Epoch, b.Local)
		}
	})
}
