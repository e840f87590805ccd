package kinematics

import "fmt"

// Sibling is the rest mass of daughter b or c. The zero value is SameAsA.
type Sibling struct {
	m   float64
	set bool
}

// SameAsA marks a daughter identical to daughter a.
var SameAsA = Sibling{}

// Mass returns a Sibling with an explicit rest mass.
func Mass(m float64) Sibling {
	return Sibling{m: m, set: true}
}

// Identical reports whether the daughter is identical to daughter a.
func (s Sibling) Identical() bool { return !s.set }

// Resolve returns the sibling's mass, falling back to ma for SameAsA.
func (s Sibling) Resolve(ma float64) float64 {
	if !s.set {
		return ma
	}
	return s.m
}

func (s Sibling) String() string {
	if !s.set {
		return "same-as-a"
	}
	return fmt.Sprintf("%g", s.m)
}

// Masses holds the rest masses of a decay P -> a b c in GeV.
// ParentRadius (GeV^-1) enters the barrier factor of the P -> R c vertex.
type Masses struct {
	Parent       float64
	A            float64
	B            Sibling
	C            Sibling
	ParentRadius float64
}

func NewMasses(parent, a float64, b, c Sibling, parentRadius float64) (Masses, error) {
	m := Masses{Parent: parent, A: a, B: b, C: c, ParentRadius: parentRadius}
	if err := m.Validate(); err != nil {
		return Masses{}, err
	}
	return m, nil
}

func (m Masses) Validate() error {
	if m.Parent <= 0 || m.A <= 0 || m.MB() <= 0 || m.MC() <= 0 {
		return fmt.Errorf("%w: masses must be positive", ErrInvalidMasses)
	}
	if m.A+m.MB()+m.MC() >= m.Parent {
		return fmt.Errorf("%w: parent %.5f below threshold %.5f", ErrInvalidMasses, m.Parent, m.A+m.MB()+m.MC())
	}
	if m.ParentRadius < 0 {
		return fmt.Errorf("%w: negative parent radius", ErrInvalidMasses)
	}
	return nil
}

func (m Masses) MB() float64 { return m.B.Resolve(m.A) }
func (m Masses) MC() float64 { return m.C.Resolve(m.A) }

// SymmetricAC reports whether daughters a and c are identical, so that
// exchanging them leaves the final state unchanged.
func (m Masses) SymmetricAC() bool {
	return m.C.Identical() || m.MC() == m.A
}

func (m Masses) M2P() float64 { return m.Parent * m.Parent }
func (m Masses) M2A() float64 { return m.A * m.A }
func (m Masses) M2B() float64 { return m.MB() * m.MB() }
func (m Masses) M2C() float64 { return m.MC() * m.MC() }

// SumM2 is m2_P + m2_a + m2_b + m2_c, the sum of the three Dalitz invariants.
func (m Masses) SumM2() float64 {
	return m.M2P() + m.M2A() + m.M2B() + m.M2C()
}

// Particle is a catalog entry: mass and interaction radius.
type Particle struct {
	Name   string
	Mass   float64 // GeV
	Radius float64 // GeV^-1
}

func (p Particle) M2() float64 { return p.Mass * p.Mass }
func (p Particle) R2() float64 { return p.Radius * p.Radius }

var (
	Pion   = Particle{Name: "pi+", Mass: 0.13957, Radius: 5}
	Kaon   = Particle{Name: "K+", Mass: 0.49368, Radius: 5}
	DMeson = Particle{Name: "D+", Mass: 1.86960, Radius: 5}
)

// D3Pi returns the masses of D+ -> pi pi pi.
func D3Pi() Masses {
	return Masses{
		Parent:       DMeson.Mass,
		A:            Pion.Mass,
		B:            SameAsA,
		C:            SameAsA,
		ParentRadius: DMeson.Radius,
	}
}

// DKPiPi returns the masses of D+ -> K- pi+ pi+ with a = K.
func DKPiPi() Masses {
	return Masses{
		Parent:       DMeson.Mass,
		A:            Kaon.Mass,
		B:            Mass(Pion.Mass),
		C:            Mass(Pion.Mass),
		ParentRadius: DMeson.Radius,
	}
}
