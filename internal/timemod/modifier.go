// Package timemod truncates epoch timestamps to calendar boundaries within a
// timezone and steps them by the calendar unit each boundary implies.
package timemod

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// Modifier selects how a timestamp is truncated to a canonical boundary.
// The zero value means "no modifier" and is not a valid variant.
type Modifier uint8

const (
	StartOfMinute Modifier = iota + 1
	StartOfHour
	StartOfDay
	EndOfDay
	// Weeks start on Sunday
	StartOfWeek
	StartOfMonth
	EndOfMonth
	None
)

var modifierNames = map[Modifier]string{
	StartOfMinute: "START_OF_MINUTE",
	StartOfHour:   "START_OF_HOUR",
	StartOfDay:    "START_OF_DAY",
	EndOfDay:      "END_OF_DAY",
	StartOfWeek:   "START_OF_WEEK",
	StartOfMonth:  "START_OF_MONTH",
	EndOfMonth:    "END_OF_MONTH",
	None:          "NONE",
}

// Modifiers returns every variant in declaration order.
func Modifiers() []Modifier {
	return []Modifier{
		StartOfMinute,
		StartOfHour,
		StartOfDay,
		EndOfDay,
		StartOfWeek,
		StartOfMonth,
		EndOfMonth,
		None,
	}
}

// ParseModifier resolves a modifier name. Matching ignores case and accepts
// '-' or '_' as the word separator.
func ParseModifier(name string) (Modifier, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for m, n := range modifierNames {
		if n == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
}

// Valid reports whether m is one of the declared variants.
func (m Modifier) Valid() bool {
	_, ok := modifierNames[m]
	return ok
}

func (m Modifier) String() string {
	if n, ok := modifierNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Modifier(%d)", uint8(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Modifier) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModifier, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Modifier) UnmarshalText(text []byte) error {
	parsed, err := ParseModifier(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Unit returns the calendar granularity implied by the modifier's boundary.
func (m Modifier) Unit() Unit {
	switch m {
	case StartOfMinute:
		return UnitMinute
	case StartOfHour:
		return UnitHour
	case StartOfDay, EndOfDay:
		return UnitDay
	case StartOfWeek:
		return UnitWeek
	case StartOfMonth, EndOfMonth:
		return UnitMonth
	case None:
		return UnitNone
	}
	panic(fmt.Sprintf("timemod: unexpected modifier %s", m))
}

// Apply truncates ts to the modifier's boundary in loc. loc must not be nil.
func (m Modifier) Apply(ts int64, loc *time.Location) int64 {
	return m.truncate(toZone(ts, loc)).Unix()
}

// ApplyUTC is Apply with the UTC calendar.
func (m Modifier) ApplyUTC(ts int64) int64 {
	return m.Apply(ts, time.UTC)
}

func (m Modifier) truncate(t time.Time) time.Time {
	switch m {
	case StartOfMinute:
		return clockStart(t, sinceMinute(t))
	case StartOfHour:
		return clockStart(t, sinceHour(t))
	case StartOfDay:
		return dayStart(t)
	case EndOfDay:
		return dayStart(noon(t).AddDate(0, 0, 1)).Add(-time.Second)
	case StartOfWeek:
		return dayStart(noon(t).AddDate(0, 0, -int(t.Weekday())))
	case StartOfMonth:
		return monthStart(t)
	case EndOfMonth:
		return monthStart(noon(t).AddDate(0, 1, 1-t.Day())).Add(-time.Second)
	case None:
		return t
	}
	panic(fmt.Sprintf("timemod: unexpected modifier %s", m))
}

// start returns the opening boundary of the unit containing t. End-of
// variants step from here so that month lengths do not drift the result.
func (m Modifier) start(t time.Time) time.Time {
	switch m {
	case EndOfDay:
		return StartOfDay.truncate(t)
	case EndOfMonth:
		return StartOfMonth.truncate(t)
	default:
		return m.truncate(t)
	}
}

// anchor is the instant normalized steps count from. Calendar units step
// from local noon of the opening day, which always exists and stays on that
// day when the date moves.
func (m Modifier) anchor(t time.Time) time.Time {
	s := m.start(t)
	switch m.Unit() {
	case UnitMinute, UnitHour:
		return s
	}
	return noon(s)
}

func toZone(ts int64, loc *time.Location) time.Time {
	return time.Unix(ts, 0).In(loc)
}

func calendar(t time.Time) *now.Now {
	cfg := &now.Config{
		WeekStartDay: time.Sunday,
		TimeLocation: t.Location(),
	}
	return cfg.With(t)
}

func noon(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 12, 0, 0, 0, t.Location())
}

// dayStart returns the first instant of t's local day.
func dayStart(t time.Time) time.Time {
	return openGap(calendar(t).BeginningOfDay(), t)
}

func monthStart(t time.Time) time.Time {
	y, mo, _ := t.Date()
	first := time.Date(y, mo, 1, 12, 0, 0, 0, t.Location())
	return openGap(calendar(first).BeginningOfMonth(), first)
}

// openGap fixes a midnight boundary that falls in a DST gap. time.Date
// resolves a missing local midnight into the previous day; the day then
// opens at the transition instead.
func openGap(boundary, day time.Time) time.Time {
	if sameDate(boundary, day) {
		return boundary
	}
	if _, end := boundary.ZoneBounds(); !end.IsZero() && sameDate(end, day) {
		return end
	}
	return boundary
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// clockStart subtracts the elapsed local wall clock instead of rebuilding the
// time with time.Date, which keeps the current offset inside a DST overlap.
// If the subtraction crosses a transition, the local boundary fell in a gap
// and the period opens at the transition.
func clockStart(t time.Time, elapsed time.Duration) time.Time {
	r := t.Add(-elapsed)
	_, want := t.Zone()
	if _, got := r.Zone(); got != want {
		start, _ := t.ZoneBounds()
		return start
	}
	return r
}

func sinceMinute(t time.Time) time.Duration {
	return time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())
}

func sinceHour(t time.Time) time.Duration {
	return time.Duration(t.Minute())*time.Minute + sinceMinute(t)
}
