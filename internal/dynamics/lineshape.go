package dynamics

import (
	"fmt"
	"math"

	"github.com/san-kum/dalitz/internal/kinematics"
)

// RelativisticWidth returns the energy-dependent width of a resonance with
// pole mass mass, nominal width width, spin j and radius r at squared mass m2
// decaying to a and b:
//
//	W(m2) = W (M/sqrt(m2)) (p²(m2)/p²(M²))^(j+1/2) (F(m2)/F(M²))²
func RelativisticWidth(mass, width float64, j int, r, m2, ma float64, mb kinematics.Sibling) (float64, error) {
	if m2 <= 0 {
		return 0, fmt.Errorf("%w: m2=%g", ErrNonPositiveMass, m2)
	}

	ratio := kinematics.BreakupMomentumRatio(m2, mass*mass, ma, mb)
	if ratio < 0 || math.IsNaN(ratio) {
		return 0, fmt.Errorf("%w: momentum ratio %g at m2=%g", ErrBelowThreshold, ratio, m2)
	}

	r2 := r * r
	ff := BlattWeisskopf(j, r2, m2, ma, mb) / BlattWeisskopf(j, r2, mass*mass, ma, mb)

	return width * mass / math.Sqrt(m2) * math.Pow(ratio, float64(j)+0.5) * ff * ff, nil
}

// BreitWigner returns 1/(M² - m2 - i M width).
func BreitWigner(mass, m2, width float64) complex128 {
	return 1 / complex(mass*mass-m2, -mass*width)
}

// Flatte returns the two-channel propagator
//
//	1 / ((M² - m2) - (2/sqrt(m2)) i (gpp² p_pipi(m2) + gkk² p_KK(m2)))
//
// with complex breakup momenta into charged pion and kaon pairs, so the KK
// channel continues analytically below its threshold.
func Flatte(mass, m2, gPiPi, gKK float64) (complex128, error) {
	if m2 <= 0 {
		return 0, fmt.Errorf("%w: m2=%g", ErrNonPositiveMass, m2)
	}

	pp := complex(gPiPi*gPiPi, 0) * kinematics.BreakupMomentum(m2, kinematics.Pion.Mass, kinematics.SameAsA)
	kk := complex(gKK*gKK, 0) * kinematics.BreakupMomentum(m2, kinematics.Kaon.Mass, kinematics.SameAsA)

	denom := complex(mass*mass-m2, 0) - complex(2/math.Sqrt(m2), 0)*1i*(pp+kk)
	return 1 / denom, nil
}
