package timemod

import (
	"fmt"
	"time"
)

// BuildSequence lists every boundary of m from the one containing start up
// to and including the one containing end, in loc.
//
// A zero modifier or start > end yields an empty sequence.
func BuildSequence(m Modifier, start, end int64, loc *time.Location) ([]int64, error) {
	return BuildSequenceLimit(m, start, end, loc, 0)
}

// BuildDailySequence is BuildSequence with StartOfDay.
func BuildDailySequence(start, end int64, loc *time.Location) ([]int64, error) {
	return BuildSequence(StartOfDay, start, end, loc)
}

// BuildSequenceLimit is BuildSequence that fails with ErrSequenceTooLong once
// more than limit boundaries would be produced. A limit <= 0 disables the check.
func BuildSequenceLimit(m Modifier, start, end int64, loc *time.Location, limit int) ([]int64, error) {
	if m == 0 || start > end {
		return []int64{}, nil
	}

	// one unit past the normalized end, so the end boundary is included;
	// the bound itself is never emitted and may lie outside the supported range
	bound, err := m.step(toZone(end, loc), true, 1)
	if err != nil {
		return nil, fmt.Errorf("sequence upper bound: %w", err)
	}

	var times []int64
	for cur := m.truncate(toZone(start, loc)); cur.Before(bound); {
		ts := cur.Unix()
		if !inRange(ts) {
			return nil, fmt.Errorf("sequence boundary %d: %w", ts, ErrOverflow)
		}
		if limit > 0 && len(times) == limit {
			return nil, fmt.Errorf("%w: more than %d %s boundaries", ErrSequenceTooLong, limit, m.Unit())
		}
		times = append(times, ts)

		next, err := m.step(cur, true, 1)
		if err != nil {
			return nil, fmt.Errorf("sequence step after %d: %w", ts, err)
		}
		if !next.After(cur) {
			return nil, fmt.Errorf("%w: %s step from %d landed on %d", ErrStalled, m, ts, next.Unix())
		}
		cur = next
	}

	return times, nil
}
