package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"

	"github.com/pders01/timeshift/internal/config"
	"github.com/pders01/timeshift/internal/models"
	"github.com/pders01/timeshift/internal/timemod"
	"github.com/pders01/timeshift/internal/zone"
)

// parseTimestamp reads epoch seconds from a command argument
func parseTimestamp(arg string) (int64, error) {
	ts, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q (use epoch seconds): %w", arg, err)
	}
	return ts, nil
}

// resolveZone falls back to zone.default when name is empty
func resolveZone(name string) (*time.Location, error) {
	if name == "" {
		name = config.GetDefaultZone()
	}

	loc, err := zone.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("invalid --zone: %w", err)
	}
	return loc, nil
}

// resolveModifier falls back to modifier.default when name is empty
func resolveModifier(name string) (timemod.Modifier, error) {
	if name == "" {
		m, err := config.GetDefaultModifier()
		if err != nil {
			return 0, fmt.Errorf("invalid modifier.default: %w", err)
		}
		return m, nil
	}

	m, err := timemod.ParseModifier(name)
	if err != nil {
		return 0, fmt.Errorf("invalid --modifier: %w", err)
	}
	return m, nil
}

// outputFormat lets --json and --toon override output.format
func outputFormat(asJSON, asToon bool) (models.OutputFormat, error) {
	switch {
	case asJSON && asToon:
		return "", fmt.Errorf("--json and --toon are mutually exclusive")
	case asJSON:
		return models.FormatJSON, nil
	case asToon:
		return models.FormatToon, nil
	}
	return config.GetOutputFormat()
}

// render writes v as JSON or Toon, or hands off to text for human output
func render(cmd *cobra.Command, format models.OutputFormat, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()

	switch format {
	case models.FormatJSON:
		output, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(output))
	case models.FormatToon:
		output, err := gotoon.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Fprintln(w, output)
	default:
		text(w)
	}
	return nil
}

func printBoundary(w io.Writer, label string, b models.Boundary) {
	fmt.Fprintf(w, "  %-9s %12d  %s\n", label+":", b.Epoch, b.Local)
}
