package dynamics

import (
	"math"

	"github.com/san-kum/dalitz/internal/kinematics"
)

// MaxSpin is the highest spin with a barrier factor and angular tensor.
const MaxSpin = 2

// BlattWeisskopf returns the barrier factor for spin j, squared radius r2 and
// a system of squared mass m2 breaking up into a and b.
func BlattWeisskopf(j int, r2, m2, ma float64, mb kinematics.Sibling) float64 {
	if j <= 0 || j > MaxSpin {
		return 1
	}

	z := kinematics.BreakupMomentumSquared(m2, ma, mb) * r2
	if j == 1 {
		return math.Sqrt(1 / (1 + z))
	}
	return math.Sqrt(1 / (9 + 3*z + z*z))
}
