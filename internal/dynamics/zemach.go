package dynamics

import "github.com/san-kum/dalitz/internal/kinematics"

// Zemach returns the angular factor of a spin-j resonance in the ab channel
// of P -> (R -> a b) c.
//
// Spin 2 is the rank-2 reduction of spin 1:
//
//	Z2 = Z1² - (m2ab - 2m2P - 2m2c + (m2P-m2c)²/m2ab)(m2ab - 2m2a - 2m2b + (m2a-m2b)²/m2ab)/3
func Zemach(j int, m2AB, m2BC float64, m kinematics.Masses) float64 {
	if j > MaxSpin {
		return 0
	}
	if j <= 0 {
		return 1
	}

	m2P, m2a, m2b, m2c := m.M2P(), m.M2A(), m.M2B(), m.M2C()

	if j == 1 {
		return m2P + m2a + m2b + m2c - m2AB - 2*m2BC - (m2P-m2c)*(m2a-m2b)/m2AB
	}

	z1 := Zemach(1, m2AB, m2BC, m)
	return z1*z1 - zemachParent(m2AB, m)*zemachDaughters(m2AB, m)/3
}

// zemachParent is the P -> R c factor of the spin-2 trace term.
func zemachParent(m2AB float64, m kinematics.Masses) float64 {
	d := m.M2P() - m.M2C()
	return m2AB - 2*m.M2P() - 2*m.M2C() + d*d/m2AB
}

// zemachDaughters is the R -> a b factor of the spin-2 trace term.
func zemachDaughters(m2AB float64, m kinematics.Masses) float64 {
	d := m.M2A() - m.M2B()
	return m2AB - 2*m.M2A() - 2*m.M2B() + d*d/m2AB
}
