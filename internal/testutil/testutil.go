package testutil

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Zones used across tests
const (
	Chicago    = "America/Chicago"
	LosAngeles = "America/Los_Angeles"
	Kolkata    = "Asia/Kolkata"
	Tokyo      = "Asia/Tokyo"

	// DST starts at local midnight
	Santiago = "America/Santiago"
	SaoPaulo = "America/Sao_Paulo"

	// half-hour DST shift
	LordHowe = "Australia/Lord_Howe"
)

// LoadZone loads an IANA zone or fails the test
func LoadZone(t *testing.T, name string) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load zone %s: %v", name, err)
	}
	return loc
}

// Epoch returns the epoch seconds of a wall-clock time in loc
func Epoch(loc *time.Location, year int, month time.Month, day, hour, min, sec int) int64 {
	return time.Date(year, month, day, hour, min, sec, 0, loc).Unix()
}

// MemConfig writes a config file into an in-memory filesystem
func MemConfig(t *testing.T, path, content string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config %s: %v", path, err)
	}
	return fs
}

// CommandOutput is a cobra command whose output is captured
type CommandOutput struct {
	Cmd *cobra.Command
	buf *bytes.Buffer
}

// NewCommandOutput creates a bare command writing into a buffer
func NewCommandOutput() *CommandOutput {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	return &CommandOutput{Cmd: cmd, buf: buf}
}

// String returns everything written so far
func (o *CommandOutput) String() string {
	return o.buf.String()
}
