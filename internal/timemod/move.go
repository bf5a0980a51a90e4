package timemod

import (
	"fmt"
	"time"
)

// Supported timestamp range: 0001-01-01T00:00:00Z through 9999-12-31T23:59:59Z.
const (
	MinTimestamp int64 = -62135596800
	MaxTimestamp int64 = 253402300799
)

// Move steps ts by count units of the modifier's implied granularity.
//
// With normalize set, ts is first truncated via Apply and the result is the
// boundary count units away, so Move(ts, loc, true, 0) == Apply(ts, loc).
// Without it, count units are added to ts as is. count may be negative.
// None has no unit and yields ErrNoUnit.
func (m Modifier) Move(ts int64, loc *time.Location, normalize bool, count int64) (int64, error) {
	moved, err := m.step(toZone(ts, loc), normalize, count)
	if err != nil {
		return 0, err
	}

	res := moved.Unix()
	if !inRange(res) {
		return 0, fmt.Errorf("move %s by %d from %d: %w", m, count, ts, ErrOverflow)
	}
	return res, nil
}

// step is Move without the range check on the result.
func (m Modifier) step(t time.Time, normalize bool, count int64) (time.Time, error) {
	unit := m.Unit()
	if unit == UnitNone {
		return time.Time{}, fmt.Errorf("move %s: %w", m, ErrNoUnit)
	}

	if normalize {
		t = m.anchor(t)
	}

	moved, err := unit.add(t, count)
	if err != nil {
		return time.Time{}, fmt.Errorf("move %s by %d: %w", m, count, err)
	}
	if normalize {
		moved = m.truncate(moved)
	}
	return moved, nil
}

func inRange(ts int64) bool {
	return ts >= MinTimestamp && ts <= MaxTimestamp
}

// MoveDays adds days to ts in loc, optionally normalizing to the start of
// the day first.
func MoveDays(ts int64, loc *time.Location, normalize bool, days int64) (int64, error) {
	return StartOfDay.Move(ts, loc, normalize, days)
}

// MoveMonths adds months to ts in loc, optionally normalizing to the start
// of the month first.
func MoveMonths(ts int64, loc *time.Location, normalize bool, months int64) (int64, error) {
	return StartOfMonth.Move(ts, loc, normalize, months)
}
