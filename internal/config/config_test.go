package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/timeshift/internal/models"
	"github.com/pders01/timeshift/internal/testutil"
	"github.com/pders01/timeshift/internal/timemod"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	SetDefaults()
	t.Cleanup(viper.Reset)
}

func TestDefaults(t *testing.T) {
	reset(t)

	assert.Equal(t, "UTC", GetDefaultZone())

	m, err := GetDefaultModifier()
	require.NoError(t, err)
	assert.Equal(t, timemod.StartOfDay, m)

	f, err := GetOutputFormat()
	require.NoError(t, err)
	assert.Equal(t, models.FormatText, f)

	assert.Equal(t, 10000, GetSequenceLimit())

	level, err := GetLogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
	assert.Equal(t, "text", GetLogFormat())
}

func TestLoadFile(t *testing.T) {
	reset(t)

	fs := testutil.MemConfig(t, "/etc/timeshift.toml", `
[zone]
default = "America/Chicago"

[modifier]
default = "start-of-month"

[output]
format = "json"

[sequence]
limit = 31

[log]
level = "debug"
format = "json"
`)

	require.NoError(t, Load(fs, "/etc/timeshift.toml"))

	assert.Equal(t, "America/Chicago", GetDefaultZone())

	m, err := GetDefaultModifier()
	require.NoError(t, err)
	assert.Equal(t, timemod.StartOfMonth, m)

	f, err := GetOutputFormat()
	require.NoError(t, err)
	assert.Equal(t, models.FormatJSON, f)

	assert.Equal(t, 31, GetSequenceLimit())

	level, err := GetLogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, "json", GetLogFormat())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	reset(t)

	err := Load(afero.NewMemMapFs(), "/nope/config.toml")
	assert.Error(t, err)
}

func TestLoadWithoutFile(t *testing.T) {
	reset(t)
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Load(afero.NewMemMapFs(), ""))
	assert.Equal(t, "UTC", GetDefaultZone())
}

func TestEnvOverride(t *testing.T) {
	reset(t)
	t.Setenv("TIMESHIFT_ZONE_DEFAULT", "Asia/Tokyo")

	require.NoError(t, Load(afero.NewMemMapFs(), ""))
	assert.Equal(t, "Asia/Tokyo", GetDefaultZone())
}

func TestInvalidValues(t *testing.T) {
	reset(t)

	viper.Set("modifier.default", "start of everything")
	viper.Set("output.format", "xml")
	viper.Set("log.level", "loud")

	_, err := GetDefaultModifier()
	assert.ErrorIs(t, err, timemod.ErrUnknownModifier)

	_, err = GetOutputFormat()
	assert.Error(t, err)

	_, err = GetLogLevel()
	assert.Error(t, err)
}
