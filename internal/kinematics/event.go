package kinematics

import (
	"fmt"
	"math"

	"go-hep.org/x/hep/fmom"
)

// Decay holds daughter four-momenta in the parent rest frame.
// C travels along +z; A lies in the xz plane.
type Decay struct {
	A fmom.PxPyPzE
	B fmom.PxPyPzE
	C fmom.PxPyPzE
}

func (d *Decay) M2AB() float64 { return fmom.Add(&d.A, &d.B).M2() }
func (d *Decay) M2BC() float64 { return fmom.Add(&d.B, &d.C).M2() }
func (d *Decay) M2AC() float64 { return fmom.Add(&d.A, &d.C).M2() }

// Parent returns the summed four-momentum, (0, 0, 0, m_P) up to rounding.
func (d *Decay) Parent() fmom.P4 {
	return fmom.Add(fmom.Add(&d.A, &d.B), &d.C)
}

// Event builds the daughter four-momenta of the decay at point p.
func Event(p Point, m Masses) (Decay, error) {
	if !p.Contains(m) {
		return Decay{}, fmt.Errorf("%w: (%.5f, %.5f)", ErrUnphysical, p.M2AB, p.M2BC)
	}

	mp := m.Parent
	m2AC := p.M2AC(m)

	ea := (m.M2P() + m.M2A() - p.M2BC) / (2 * mp)
	eb := (m.M2P() + m.M2B() - m2AC) / (2 * mp)
	ec := (m.M2P() + m.M2C() - p.M2AB) / (2 * mp)

	pa := math.Sqrt(math.Max(ea*ea-m.M2A(), 0))
	pc := math.Sqrt(math.Max(ec*ec-m.M2C(), 0))

	cos := 1.0
	if pa > 0 && pc > 0 {
		cos = (2*ea*ec + m.M2A() + m.M2C() - m2AC) / (2 * pa * pc)
		cos = math.Max(-1, math.Min(1, cos))
	}
	sin := math.Sqrt(1 - cos*cos)

	ax, az := pa*sin, pa*cos
	return Decay{
		A: fmom.NewPxPyPzE(ax, 0, az, ea),
		B: fmom.NewPxPyPzE(-ax, 0, -az-pc, eb),
		C: fmom.NewPxPyPzE(0, 0, pc, ec),
	}, nil
}
