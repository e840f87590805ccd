package model

import "errors"

var (
	// ErrNoResonances indicates a model without amplitudes.
	ErrNoResonances = errors.New("model: no resonances")

	// ErrDimensionMismatch indicates a coordinate or coefficient vector of
	// the wrong length.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrUnknownChannel indicates a decay channel missing from the registry.
	ErrUnknownChannel = errors.New("model: unknown decay channel")

	// ErrNotSymmetric indicates symmetrization requested for a channel whose
	// daughters a and c differ.
	ErrNotSymmetric = errors.New("model: symmetrization requires identical daughters a and c")
)
