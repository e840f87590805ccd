package resonance

import "errors"

var (
	// ErrInvalidParameters indicates a resonance that cannot be evaluated.
	ErrInvalidParameters = errors.New("resonance: invalid parameters")

	// ErrUnknownResonance indicates a catalog lookup miss.
	ErrUnknownResonance = errors.New("resonance: unknown resonance")

	// ErrUnknownShape indicates a line-shape name that does not parse.
	ErrUnknownShape = errors.New("resonance: unknown line shape")
)
