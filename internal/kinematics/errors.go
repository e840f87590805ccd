package kinematics

import "errors"

var (
	// ErrInvalidMasses indicates non-positive masses or a parent too light to decay.
	ErrInvalidMasses = errors.New("kinematics: invalid particle masses")

	// ErrUnphysical indicates a Dalitz point outside the kinematic boundary.
	ErrUnphysical = errors.New("kinematics: point outside the Dalitz plot")
)
