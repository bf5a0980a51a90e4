package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pders01/timeshift/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "timeshift",
	Short: "Truncate, shift and enumerate epoch timestamps in a timezone",
	Long: `timeshift works on UTC epoch seconds relative to a named timezone:
  - truncate a timestamp to the start of its minute, hour, day, week or
    month, or to the end of its day or month
  - move a timestamp by the calendar unit a modifier implies
  - list every boundary between two timestamps

Day, week and month boundaries follow local midnight in the zone, so DST
transitions and month lengths are honored.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/timeshift/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
}

func initConfig() {
	config.SetDefaults()

	if err := config.Load(afero.NewOsFs(), cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := setupLogging(os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if used := viper.ConfigFileUsed(); used != "" {
		slog.Debug("using config file", "path", used)
	}
}

// setupLogging configures the default slog logger from log.level and log.format
func setupLogging(w io.Writer) error {
	level, err := config.GetLogLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format := config.GetLogFormat(); format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("invalid log.format %q (use text or json)", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
