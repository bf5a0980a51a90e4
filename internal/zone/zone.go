// Package zone resolves IANA timezone names to locations and caches them for
// the lifetime of the process.
package zone

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UTC is the name of the UTC zone.
const UTC = "UTC"

// ErrNotFound is returned for zone names the timezone database does not know.
var ErrNotFound = errors.New("zone not found")

// zone rules never change within a process, so entries are never evicted
var cache sync.Map // map[string]*time.Location

// Resolve returns the location for an IANA zone name such as
// "America/Chicago". The empty name is rejected rather than read as UTC.
// A name that only differs from a known zone in letter case, such as
// "america/chicago" or "utc", resolves to that zone.
func Resolve(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty zone name", ErrNotFound)
	}

	if loc, ok := cache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		loc, err = loadFolded(name, err)
	}
	if err != nil {
		slog.Debug("zone lookup failed", "zone", name, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}

	actual, _ := cache.LoadOrStore(name, loc)
	slog.Debug("zone loaded", "zone", name)
	return actual.(*time.Location), nil
}

// loadFolded retries name with the letter case the zone database uses.
func loadFolded(name string, cause error) (*time.Location, error) {
	for _, candidate := range []string{titleSegments(name), strings.ToUpper(name)} {
		if candidate == name {
			continue
		}
		if loc, err := time.LoadLocation(candidate); err == nil {
			slog.Debug("zone matched ignoring case", "zone", name, "canonical", candidate)
			return loc, nil
		}
	}
	return nil, cause
}

// titleSegments title-cases every word of a zone name, so
// "america/los_angeles" becomes "America/Los_Angeles".
func titleSegments(name string) string {
	caser := cases.Title(language.Und)

	var b strings.Builder
	start := 0
	for i, r := range name {
		if r == '/' || r == '_' || r == '-' {
			b.WriteString(caser.String(name[start:i]))
			b.WriteRune(r)
			start = i + 1
		}
	}
	b.WriteString(caser.String(name[start:]))
	return b.String()
}

// MustResolve is Resolve for names known to be valid. It panics otherwise.
func MustResolve(name string) *time.Location {
	loc, err := Resolve(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ResolveAll resolves every name, reporting all unknown ones together.
func ResolveAll(names []string) ([]*time.Location, error) {
	locs := make([]*time.Location, 0, len(names))
	var errs []error
	for _, name := range names {
		loc, err := Resolve(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		locs = append(locs, loc)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return locs, nil
}
