package toy

import "errors"

var (
	ErrNoEvents = errors.New("toy: event count must be positive")

	// ErrWeightExceeded indicates a weight above the declared maximum,
	// which would bias hit-or-miss sampling.
	ErrWeightExceeded = errors.New("toy: weight above maximum")
)
