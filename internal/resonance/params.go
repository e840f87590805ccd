package resonance

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Shape selects the line shape T(m2_ab).
type Shape int

const (
	// BreitWigner uses the relativistic Breit-Wigner with running width.
	BreitWigner Shape = iota
	// Flatte uses the coupled pi pi / K K channel propagator.
	Flatte
	// Flat is a constant non-resonant term.
	Flat
)

var shapeNames = map[Shape]string{
	BreitWigner: "breit-wigner",
	Flatte:      "flatte",
	Flat:        "flat",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape accepts the names produced by String, case-insensitively.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range shapeNames {
		if n == name {
			return s, nil
		}
	}
	switch name {
	case "bw", "breitwigner":
		return BreitWigner, nil
	case "nonresonant", "nr":
		return Flat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

func (s Shape) MarshalText() ([]byte, error) {
	if _, ok := shapeNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Parameters fully describe one resonance. Masses and widths are in GeV,
// the radius in GeV^-1 and the phase in radians.
type Parameters struct {
	Name      string
	Spin      int
	Mass      float64
	Width     float64
	Radius    float64
	Magnitude float64
	Phase     float64
	Shape     Shape

	// Flatté couplings to pi pi and K K, used only with Shape == Flatte.
	GPiPi float64
	GKK   float64
}

// Production returns the complex production coefficient magnitude * e^(i phase).
func (p Parameters) Production() complex128 {
	return cmplx.Rect(p.Magnitude, p.Phase)
}

// WithProduction returns a copy of p with a new production coefficient.
func (p Parameters) WithProduction(magnitude, phase float64) Parameters {
	p.Magnitude = magnitude
	p.Phase = phase
	return p
}

func (p Parameters) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidParameters, p.Name, fmt.Sprintf(format, args...))
	}

	for _, v := range []float64{p.Mass, p.Width, p.Radius, p.Magnitude, p.Phase, p.GPiPi, p.GKK} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return bad("non-finite value")
		}
	}
	if p.Spin < 0 {
		return bad("negative spin %d", p.Spin)
	}
	if p.Radius < 0 {
		return bad("negative radius %g", p.Radius)
	}
	if p.Magnitude < 0 {
		return bad("negative magnitude %g", p.Magnitude)
	}

	switch p.Shape {
	case BreitWigner:
		if p.Mass <= 0 {
			return bad("mass must be positive, got %g", p.Mass)
		}
		if p.Width <= 0 {
			return bad("width must be positive, got %g", p.Width)
		}
	case Flatte:
		if p.Mass <= 0 {
			return bad("mass must be positive, got %g", p.Mass)
		}
		if p.GPiPi < 0 || p.GKK < 0 {
			return bad("negative coupling")
		}
	case Flat:
	default:
		return bad("unknown shape %d", int(p.Shape))
	}
	return nil
}
