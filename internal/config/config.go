package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/pders01/timeshift/internal/models"
	"github.com/pders01/timeshift/internal/timemod"
	"github.com/pders01/timeshift/internal/zone"
)

// SetDefaults registers the default value of every known key
func SetDefaults() {
	viper.SetDefault("zone.default", zone.UTC)
	viper.SetDefault("modifier.default", timemod.StartOfDay.String())
	viper.SetDefault("output.format", string(models.FormatText))
	viper.SetDefault("sequence.limit", 10000)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
}

// Load reads the config file at path from fs. With an empty path it looks
// for config.toml in $HOME/.config/timeshift and a missing file is not an error.
func Load(fs afero.Fs, path string) error {
	viper.SetFs(fs)
	viper.SetEnvPrefix("timeshift")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	viper.AddConfigPath(filepath.Join(home, ".config", "timeshift"))
	viper.SetConfigType("toml")
	viper.SetConfigName("config")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// GetDefaultZone returns the zone used when no --zone is given
func GetDefaultZone() string {
	return viper.GetString("zone.default")
}

// GetDefaultModifier returns the modifier used when no --modifier is given
func GetDefaultModifier() (timemod.Modifier, error) {
	return timemod.ParseModifier(viper.GetString("modifier.default"))
}

// GetOutputFormat returns the configured output format
func GetOutputFormat() (models.OutputFormat, error) {
	return models.ParseOutputFormat(viper.GetString("output.format"))
}

// GetSequenceLimit returns the maximum number of boundaries a sequence may hold
func GetSequenceLimit() int {
	return viper.GetInt("sequence.limit")
}

// GetLogLevel returns the configured log level
func GetLogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("log.level"))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log.level: %w", err)
	}
	return level, nil
}

// GetLogFormat returns the log handler format, text or json
func GetLogFormat() string {
	return viper.GetString("log.format")
}
