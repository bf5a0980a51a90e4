package models

import (
	"fmt"
	"time"

	"github.com/pders01/timeshift/internal/timemod"
)

// OutputFormat defines how command results are rendered
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatToon OutputFormat = "toon"
)

// ParseOutputFormat validates a configured output format
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatText, FormatJSON, FormatToon:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (use text, json or toon)", s)
}

// LocalLayout is the wall-clock rendering used for boundaries
const LocalLayout = time.RFC3339

// Boundary is an epoch timestamp together with its wall-clock reading in a zone
type Boundary struct {
	Epoch int64  `json:"epoch"`
	Local string `json:"local"`
}

// NewBoundary renders ts in loc
func NewBoundary(ts int64, loc *time.Location) Boundary {
	return Boundary{
		Epoch: ts,
		Local: time.Unix(ts, 0).In(loc).Format(LocalLayout),
	}
}

// Result is the outcome of applying or moving a single timestamp.
// Modifier holds the variant name so every encoder prints it the same way.
type Result struct {
	Zone      string   `json:"zone"`
	Modifier  string   `json:"modifier"`
	Input     Boundary `json:"input"`
	Output    Boundary `json:"output"`
	Count     int64    `json:"count,omitempty"`
	Normalize bool     `json:"normalize,omitempty"`
}

// Sequence is an enumerated list of boundaries over a range
type Sequence struct {
	Zone       string     `json:"zone"`
	Modifier   string     `json:"modifier"`
	Unit       string     `json:"unit"`
	Start      Boundary   `json:"start"`
	End        Boundary   `json:"end"`
	Count      int        `json:"count"`
	Boundaries []Boundary `json:"boundaries"`
}

// NewSequence wraps enumerated timestamps for output
func NewSequence(m timemod.Modifier, start, end int64, times []int64, loc *time.Location) Sequence {
	boundaries := make([]Boundary, 0, len(times))
	for _, ts := range times {
		boundaries = append(boundaries, NewBoundary(ts, loc))
	}

	return Sequence{
		Zone:       loc.String(),
		Modifier:   m.String(),
		Unit:       m.Unit().String(),
		Start:      NewBoundary(start, loc),
		End:        NewBoundary(end, loc),
		Count:      len(boundaries),
		Boundaries: boundaries,
	}
}

// ModifierInfo describes one modifier variant
type ModifierInfo struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}
