package cmd

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/pders01/timeshift/internal/config"
)

// resetConfig gives each test the default configuration
func resetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	config.SetDefaults()
	t.Cleanup(viper.Reset)
}
