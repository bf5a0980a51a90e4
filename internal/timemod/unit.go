package timemod

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// Unit is a calendar granularity used for stepping.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
)

func (u Unit) String() string {
	switch u {
	case UnitNone:
		return "none"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// maxSteps bounds count before any arithmetic happens, well past the
// supported range for every unit.
const maxSteps = 1 << 36

// add moves t by count units. Minutes and hours are fixed durations on the
// instant timeline; days, weeks and months move the local calendar date.
func (u Unit) add(t time.Time, count int64) (time.Time, error) {
	if count > maxSteps || count < -maxSteps {
		return time.Time{}, fmt.Errorf("%w: %d %s steps", ErrOverflow, count, u)
	}
	if count == 0 && u != UnitNone {
		return t, nil
	}

	switch u {
	case UnitMinute:
		return shift(t, count*60), nil
	case UnitHour:
		return shift(t, count*3600), nil
	case UnitDay:
		return t.AddDate(0, 0, int(count)), nil
	case UnitWeek:
		return t.AddDate(0, 0, int(count)*7), nil
	case UnitMonth:
		return addMonths(t, int(count)), nil
	case UnitNone:
		return time.Time{}, ErrNoUnit
	}
	panic(fmt.Sprintf("timemod: unexpected unit %s", u))
}

// shift works in whole seconds so large counts cannot overflow a Duration.
func shift(t time.Time, seconds int64) time.Time {
	return time.Unix(t.Unix()+seconds, int64(t.Nanosecond())).In(t.Location())
}

// addMonths moves t by n calendar months, clamping the day of month to the
// length of the target month.
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()

	offset := int(month) - 1 + n
	year += offset / 12
	offset %= 12
	if offset < 0 {
		offset += 12
		year--
	}
	target := time.Month(offset + 1)

	if last := daysIn(year, target); day > last {
		day = last
	}

	hour, minute, sec := t.Clock()
	return time.Date(year, target, day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return now.With(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)).EndOfMonth().Day()
}
