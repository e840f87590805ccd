package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dalitz/internal/kinematics"
	"github.com/san-kum/dalitz/internal/resonance"
)

// Lineshape samples |A|² of p at n points along m2_ab, each taken a quarter
// of the way into the allowed m2_bc band, off the helicity zero of odd
// spins. It returns the m2_ab grid alongside.
func Lineshape(p resonance.Parameters, m kinematics.Masses, n int) (xs, ys []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("lineshape needs at least 2 points, got %d", n)
	}
	lo, hi := kinematics.M2ABRange(m)
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		// stay strictly inside so the band is never degenerate
		x := lo + (hi-lo)*(float64(i)+0.5)/float64(n)
		bl, bh, _ := kinematics.M2BCRange(x, m)
		a, err := resonance.Amplitude(x, bl+(bh-bl)/4, p, m)
		if err != nil {
			return nil, nil, err
		}
		xs[i] = x
		ys[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return xs, ys, nil
}

// PlotLineshape renders Lineshape as an ASCII chart.
func PlotLineshape(p resonance.Parameters, m kinematics.Masses, width, height int) (string, error) {
	xs, ys, err := Lineshape(p, m, width)
	if err != nil {
		return "", err
	}
	caption := fmt.Sprintf("|A|² of %s, m2_ab in [%.3f, %.3f] GeV²", p.Name, xs[0], xs[len(xs)-1])
	return asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	), nil
}
