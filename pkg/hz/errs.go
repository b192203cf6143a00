package hz

import "errors"

var (
	// ErrZeroElapsed indicates that the corrected elapsed time for a sample
	// was exactly zero, so no instantaneous estimate exists. The estimate is
	// never coerced to Inf/NaN; the next poll will have advanced elapsed
	// time, so the caller may simply retry.
	ErrZeroElapsed = errors.New("hz: zero corrected elapsed time")

	// ErrBadConfigHz indicates a configured tick rate below 1.
	ErrBadConfigHz = errors.New("hz: configured HZ must be >= 1")

	// ErrBadWindow indicates a window capacity below 1.
	ErrBadWindow = errors.New("hz: window capacity must be >= 1")
)
