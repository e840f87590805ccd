package kinematics

import "math"

// BreakupMomentumSquared returns p² of daughter a in the rest frame of a
// system with squared invariant mass m2 decaying to a and b. It is negative
// below the a+b threshold.
func BreakupMomentumSquared(m2, ma float64, mb Sibling) float64 {
	if mb.Identical() {
		return m2/4 - ma*ma
	}
	b := mb.Resolve(ma)
	sum := ma + b
	diff := ma - b
	return (m2 - sum*sum) * (m2 - diff*diff) / (4 * m2)
}

// BreakupMomentum returns sqrt(p²) above threshold and i*sqrt(|p²|) below it.
func BreakupMomentum(m2, ma float64, mb Sibling) complex128 {
	p2 := BreakupMomentumSquared(m2, ma, mb)
	if p2 >= 0 {
		return complex(math.Sqrt(p2), 0)
	}
	return complex(0, math.Sqrt(-p2))
}

// BreakupMomentumRatio returns p²(m2N) / p²(m2D).
func BreakupMomentumRatio(m2N, m2D, ma float64, mb Sibling) float64 {
	return BreakupMomentumSquared(m2N, ma, mb) / BreakupMomentumSquared(m2D, ma, mb)
}
