package timemod

import "errors"

var (
	// ErrUnknownModifier is returned when a modifier name cannot be parsed.
	ErrUnknownModifier = errors.New("unknown time modifier")
	// ErrNoUnit is returned when stepping a modifier without an implied unit.
	ErrNoUnit = errors.New("modifier has no unit to step by")
	// ErrOverflow is returned when stepping leaves the supported timestamp range.
	ErrOverflow = errors.New("timestamp out of supported range")
	// ErrStalled is returned when an enumeration step fails to advance.
	ErrStalled = errors.New("sequence did not advance")
	// ErrSequenceTooLong is returned when an enumeration exceeds its limit.
	ErrSequenceTooLong = errors.New("sequence exceeds limit")
)
