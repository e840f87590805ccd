package mcint

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBounds indicates a bounds vector without dimensions.
	ErrEmptyBounds = errors.New("mcint: empty integration bounds")

	// ErrDegenerateBounds indicates an interval with high <= low or a
	// non-finite limit.
	ErrDegenerateBounds = errors.New("mcint: degenerate integration bounds")

	// ErrNoSamples indicates a non-positive sample count.
	ErrNoSamples = errors.New("mcint: sample count must be positive")

	// ErrNonFinite indicates an integrand value that is NaN or infinite.
	ErrNonFinite = errors.New("mcint: integrand is not finite")

	// ErrCanceled indicates the integration was interrupted.
	ErrCanceled = errors.New("mcint: integration canceled")
)

// SampleError wraps an integrand failure with the sample that caused it.
type SampleError struct {
	Pass    int
	Index   int
	Point   []float64
	Wrapped error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("pass %d sample %d at %v: %v", e.Pass, e.Index, e.Point, e.Wrapped)
}

func (e *SampleError) Unwrap() error {
	return e.Wrapped
}
