package kinematics

import "math"

// BoundaryTolerance is the slack, relative to m2_P, that IsPhysical allows on
// the m2_bc boundary. Points computed exactly on the boundary curve carry a
// rounding error of a few ulps of m2_P; without the slack they would be
// rejected at random.
const BoundaryTolerance = 1e-12

// Point is a location on the Dalitz plot.
type Point struct {
	M2AB float64
	M2BC float64
}

// restFrame returns the energies and momenta of b and c in the ab rest frame.
func restFrame(m2AB float64, m Masses) (eb, ec, pb, pc float64) {
	mab := math.Sqrt(m2AB)
	eb = (m2AB - m.M2A() + m.M2B()) / (2 * mab)
	ec = (m.M2P() - m2AB - m.M2C()) / (2 * mab)
	pb = math.Sqrt(math.Max(eb*eb-m.M2B(), 0))
	pc = math.Sqrt(math.Max(ec*ec-m.M2C(), 0))
	return eb, ec, pb, pc
}

// M2ABRange returns the kinematic limits of m2_ab.
func M2ABRange(m Masses) (lo, hi float64) {
	lo = (m.A + m.MB()) * (m.A + m.MB())
	hi = (m.Parent - m.MC()) * (m.Parent - m.MC())
	return lo, hi
}

// M2BCRange returns the limits of m2_bc at fixed m2_ab. ok is false when
// m2_ab itself is outside its allowed range.
func M2BCRange(m2AB float64, m Masses) (lo, hi float64, ok bool) {
	abLo, abHi := M2ABRange(m)
	if m2AB < abLo || m2AB > abHi {
		return 0, 0, false
	}
	eb, ec, pb, pc := restFrame(m2AB, m)
	e := eb + ec
	lo = e*e - (pb+pc)*(pb+pc)
	hi = e*e - (pb-pc)*(pb-pc)
	return lo, hi, true
}

// IsPhysical reports whether (m2AB, m2BC) lies inside the Dalitz plot of m.
func IsPhysical(m2AB, m2BC float64, m Masses) bool {
	abLo, abHi := M2ABRange(m)
	if m2AB < abLo || m2AB > abHi {
		return false
	}
	eb, ec, pb, pc := restFrame(m2AB, m)
	lhs := math.Abs(m2BC - m.M2B() - m.M2C() - 2*eb*ec)
	return lhs <= 2*pb*pc+BoundaryTolerance*m.M2P()
}

// Contains is IsPhysical for a Point.
func (p Point) Contains(m Masses) bool {
	return IsPhysical(p.M2AB, p.M2BC, m)
}

// M2AC returns the third invariant fixed by energy-momentum conservation.
func (p Point) M2AC(m Masses) float64 {
	return m.SumM2() - p.M2AB - p.M2BC
}

// Swap exchanges the two Dalitz variables, i.e. relabels a <-> c.
func (p Point) Swap() Point {
	return Point{M2AB: p.M2BC, M2BC: p.M2AB}
}

// Centroid returns the midpoint of the m2_bc band at the middle of the m2_ab
// range. It always lies inside the plot.
func Centroid(m Masses) Point {
	abLo, abHi := M2ABRange(m)
	ab := (abLo + abHi) / 2
	lo, hi, _ := M2BCRange(ab, m)
	return Point{M2AB: ab, M2BC: (lo + hi) / 2}
}

// BoundingBox returns the smallest axis-aligned box containing the plot,
// sampled on n slices of m2_ab.
func BoundingBox(m Masses, n int) (ab, bc [2]float64) {
	abLo, abHi := M2ABRange(m)
	ab = [2]float64{abLo, abHi}
	bc = [2]float64{math.Inf(1), math.Inf(-1)}
	if n < 2 {
		n = 2
	}
	for i := 0; i <= n; i++ {
		x := abLo + (abHi-abLo)*float64(i)/float64(n)
		lo, hi, ok := M2BCRange(x, m)
		if !ok {
			continue
		}
		bc[0] = math.Min(bc[0], lo)
		bc[1] = math.Max(bc[1], hi)
	}
	return ab, bc
}
