package resonance

import (
	"fmt"
	"math"

	"github.com/san-kum/dalitz/internal/dynamics"
	"github.com/san-kum/dalitz/internal/kinematics"
)

// Amplitude returns the complex amplitude of resonance p in the ab channel
// at (m2AB, m2BC). Points outside the Dalitz plot return 0 and no error.
func Amplitude(m2AB, m2BC float64, p Parameters, m kinematics.Masses) (complex128, error) {
	if !kinematics.IsPhysical(m2AB, m2BC, m) {
		return 0, nil
	}

	if p.Shape == Flat {
		return p.Production(), nil
	}

	t, err := lineShape(m2AB, p, m)
	if err != nil {
		return 0, fmt.Errorf("resonance %s at m2_ab=%g: %w", p.Name, m2AB, err)
	}

	fd, fr := barrierRatios(m2AB, p, m)
	z := dynamics.Zemach(p.Spin, m2AB, m2BC, m)

	return p.Production() * complex(fd*fr*z, 0) * t, nil
}

// Symmetrized returns A(m2AB, m2BC) + A(m2BC, m2AB), the amplitude of a
// decay whose daughters a and c are identical.
func Symmetrized(m2AB, m2BC float64, p Parameters, m kinematics.Masses) (complex128, error) {
	a1, err := Amplitude(m2AB, m2BC, p, m)
	if err != nil {
		return 0, err
	}
	a2, err := Amplitude(m2BC, m2AB, p, m)
	if err != nil {
		return 0, err
	}
	return a1 + a2, nil
}

// barrierRatios returns F_D and F_R, each evaluated at the running mass and
// divided by its value at the pole.
func barrierRatios(m2AB float64, p Parameters, m kinematics.Masses) (fd, fr float64) {
	mc := kinematics.Mass(m.MC())
	rp2 := m.ParentRadius * m.ParentRadius
	fd = dynamics.BlattWeisskopf(p.Spin, rp2, m.M2P(), math.Sqrt(m2AB), mc) /
		dynamics.BlattWeisskopf(p.Spin, rp2, m.M2P(), p.Mass, mc)

	r2 := p.Radius * p.Radius
	fr = dynamics.BlattWeisskopf(p.Spin, r2, m2AB, m.A, m.B) /
		dynamics.BlattWeisskopf(p.Spin, r2, p.Mass*p.Mass, m.A, m.B)
	return fd, fr
}

func lineShape(m2AB float64, p Parameters, m kinematics.Masses) (complex128, error) {
	switch p.Shape {
	case BreitWigner:
		w, err := dynamics.RelativisticWidth(p.Mass, p.Width, p.Spin, p.Radius, m2AB, m.A, m.B)
		if err != nil {
			return 0, err
		}
		return dynamics.BreitWigner(p.Mass, m2AB, w), nil
	case Flatte:
		return dynamics.Flatte(p.Mass, m2AB, p.GPiPi, p.GKK)
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownShape, p.Shape)
}
