package normint

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive or mismatched size.
	ErrInvalidDimensions = errors.New("normint: invalid dimensions")

	// ErrMalformedLiteral indicates text that is not a matrix literal.
	ErrMalformedLiteral = errors.New("normint: malformed matrix literal")
)
