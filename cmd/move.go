package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pders01/timeshift/internal/models"
)

var (
	moveModifier    string
	moveZone        string
	moveNoNormalize bool
	moveJSON        bool
	moveToon        bool
)

var moveCmd = &cobra.Command{
	Use:   "move <timestamp> <count>",
	Short: "Move a timestamp by the unit its modifier implies",
	Long: `Move an epoch timestamp by count units of the modifier's granularity.

By default the timestamp is first truncated to the modifier boundary.
START_OF_MINUTE and START_OF_HOUR step by minutes and hours, START_OF_DAY
and END_OF_DAY by local days, START_OF_WEEK by weeks, START_OF_MONTH and
END_OF_MONTH by calendar months. NONE cannot be moved.

Examples:
  timeshift move 1629108000 1
  timeshift move 1629108000 -- -1 --modifier START_OF_MONTH
  timeshift move 1629108000 2 --no-normalize --zone Europe/Berlin`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)

	moveCmd.Flags().StringVarP(&moveModifier, "modifier", "m", "", "Modifier whose unit to step by (default from modifier.default)")
	moveCmd.Flags().StringVarP(&moveZone, "zone", "z", "", "IANA timezone (default from zone.default)")
	moveCmd.Flags().BoolVar(&moveNoNormalize, "no-normalize", false, "Add units to the raw timestamp without truncating first")
	moveCmd.Flags().BoolVar(&moveJSON, "json", false, "Output as JSON")
	moveCmd.Flags().BoolVar(&moveToon, "toon", false, "Output in LLM-friendly toon format")
}

func runMove(cmd *cobra.Command, args []string) error {
	ts, err := parseTimestamp(args[0])
	if err != nil {
		return err
	}

	count, err := parseCount(args[1])
	if err != nil {
		return err
	}

	m, err := resolveModifier(moveModifier)
	if err != nil {
		return err
	}

	loc, err := resolveZone(moveZone)
	if err != nil {
		return err
	}

	format, err := outputFormat(moveJSON, moveToon)
	if err != nil {
		return err
	}

	normalize := !moveNoNormalize
	out, err := m.Move(ts, loc, normalize, count)
	if err != nil {
		return err
	}
	slog.Debug("moved timestamp", "modifier", m, "zone", loc, "count", count, "normalize", normalize, "output", out)

	result := models.Result{
		Zone:      loc.String(),
		Modifier:  m.String(),
		Input:     models.NewBoundary(ts, loc),
		Output:    models.NewBoundary(out, loc),
		Count:     count,
		Normalize: normalize,
	}

	return render(cmd, format, result, func(w io.Writer) {
		fmt.Fprintf(w, "%s in %s, %+d %s(s)", result.Modifier, result.Zone, result.Count, m.Unit())
		if !normalize {
			fmt.Fprint(w, " without normalizing")
		}
		fmt.Fprintln(w)
		printBoundary(w, "Input", result.Input)
		printBoundary(w, "Output", result.Output)
	})
}

func parseCount(arg string) (int64, error) {
	count, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", arg, err)
	}
	return count, nil
}
