package dynamics

import "errors"

var (
	// ErrNonPositiveMass indicates m2 <= 0 where 1/sqrt(m2) is required.
	ErrNonPositiveMass = errors.New("dynamics: squared mass must be positive")

	// ErrBelowThreshold indicates a negative breakup-momentum ratio, which
	// has no real half-integer power.
	ErrBelowThreshold = errors.New("dynamics: below two-body threshold")
)
