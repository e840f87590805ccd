package resonance_test

import (
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dalitz/internal/dynamics"
	"github.com/san-kum/dalitz/internal/kinematics"
	"github.com/san-kum/dalitz/internal/resonance"
)

// bandMiddle returns the m2_bc midpoint of the plot at m2ab.
func bandMiddle(m2ab float64, m kinematics.Masses) float64 {
	lo, hi, ok := kinematics.M2BCRange(m2ab, m)
	Expect(ok).To(BeTrue(), "m2_ab=%g outside the plot", m2ab)
	return (lo + hi) / 2
}

func magnitudeAt(m2ab float64, p resonance.Parameters, m kinematics.Masses) float64 {
	a, err := resonance.Amplitude(m2ab, bandMiddle(m2ab, m), p, m)
	Expect(err).NotTo(HaveOccurred())
	return cmplx.Abs(a)
}

var _ = Describe("Amplitude", func() {
	var m kinematics.Masses

	BeforeEach(func() {
		m = kinematics.D3Pi()
	})

	Context("scalar at 0.980 GeV in D -> 3 pi", func() {
		entries := []TableEntry{
			Entry("Flatte", resonance.Parameters{
				Name: "f0", Mass: 0.980, Radius: 1, Magnitude: 1,
				Shape: resonance.Flatte, GPiPi: 0.329, GKK: 0.658,
			}),
			Entry("Breit-Wigner", resonance.Parameters{
				Name: "f0", Mass: 0.980, Width: 0.05, Radius: 1, Magnitude: 1,
			}),
		}

		DescribeTable("peaks at the pole",
			func(p resonance.Parameters) {
				pole := p.Mass * p.Mass
				peak := magnitudeAt(pole, p, m)
				Expect(peak).To(BeNumerically(">", magnitudeAt(pole+0.5, p, m)))
				Expect(peak).To(BeNumerically(">", magnitudeAt(pole-0.5, p, m)))
			},
			entries,
		)

		DescribeTable("vanishes outside the plot",
			func(p resonance.Parameters) {
				below := 2 * m.M2A()
				a, err := resonance.Amplitude(below, 1.0, p, m)
				Expect(err).NotTo(HaveOccurred())
				Expect(a).To(Equal(complex128(0)))

				a, err = resonance.Amplitude(1.0, 5.0, p, m)
				Expect(err).NotTo(HaveOccurred())
				Expect(a).To(Equal(complex128(0)))
			},
			entries,
		)

		It("reduces to the bare propagator for spin 0", func() {
			p := resonance.Parameters{Name: "f0", Mass: 0.980, Radius: 1, Magnitude: 1,
				Shape: resonance.Flatte, GPiPi: 0.329, GKK: 0.658}
			m2ab := 1.1
			a, err := resonance.Amplitude(m2ab, bandMiddle(m2ab, m), p, m)
			Expect(err).NotTo(HaveOccurred())

			t, err := dynamics.Flatte(0.980, m2ab, 0.329, 0.658)
			Expect(err).NotTo(HaveOccurred())
			Expect(cmplx.Abs(a - t)).To(BeNumerically("<", 1e-12))
		})
	})

	It("scales with the production coefficient", func() {
		p, err := resonance.Lookup("rho(770)")
		Expect(err).NotTo(HaveOccurred())

		// off the m2_ac = m2_bc line, where the spin-1 factor is nonzero
		m2ab := 0.9
		m2bc := bandMiddle(m2ab, m) - 0.2
		base, err := resonance.Amplitude(m2ab, m2bc, p, m)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmplx.Abs(base)).To(BeNumerically(">", 1e-6))

		rotated, err := resonance.Amplitude(m2ab, m2bc, p.WithProduction(2, math.Pi/2), m)
		Expect(err).NotTo(HaveOccurred())

		Expect(cmplx.Abs(rotated - 2i*base)).To(BeNumerically("<", 1e-9*cmplx.Abs(base)))
	})

	It("returns the production coefficient for a flat term inside the plot", func() {
		p := resonance.Parameters{Name: "nr", Shape: resonance.Flat, Magnitude: 0.5, Phase: 1}
		c := kinematics.Centroid(m)
		a, err := resonance.Amplitude(c.M2AB, c.M2BC, p, m)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(p.Production()))
	})

	It("follows the spin-1 angular tensor", func() {
		p, err := resonance.Lookup("rho(770)")
		Expect(err).NotTo(HaveOccurred())

		// with identical pions Z1 = m2_ac - m2_bc, which vanishes on the m2_ac = m2_bc line
		m2ab := 0.6
		m2bc := (m.SumM2() - m2ab) / 2
		a, err := resonance.Amplitude(m2ab, m2bc, p, m)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmplx.Abs(a)).To(BeNumerically("<", 1e-9))
	})

	It("reports a line shape evaluated below its threshold", func() {
		p := resonance.Parameters{Name: "light", Spin: 0, Mass: 0.2, Width: 0.05, Radius: 1, Magnitude: 1}
		c := kinematics.Centroid(m)
		_, err := resonance.Amplitude(c.M2AB, c.M2BC, p, m)
		Expect(err).To(MatchError(dynamics.ErrBelowThreshold))
	})
})

var _ = Describe("K pi states in D -> K pi pi", func() {
	var m kinematics.Masses

	BeforeEach(func() {
		m = kinematics.DKPiPi()
	})

	It("peaks the scalar at its pole", func() {
		p, err := resonance.Lookup("K0*(1430)")
		Expect(err).NotTo(HaveOccurred())
		pole := p.Mass * p.Mass
		peak := magnitudeAt(pole, p, m)
		Expect(peak).To(BeNumerically(">", magnitudeAt(pole+0.4, p, m)))
		Expect(peak).To(BeNumerically(">", magnitudeAt(pole-0.4, p, m)))
	})

	It("evaluates the vector above the K pi threshold", func() {
		p, err := resonance.Lookup("K*(892)")
		Expect(err).NotTo(HaveOccurred())
		m2ab := p.Mass * p.Mass
		lo, _, ok := kinematics.M2BCRange(m2ab, m)
		Expect(ok).To(BeTrue())
		a, err := resonance.Amplitude(m2ab, lo+0.1, p, m)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmplx.Abs(a)).To(BeNumerically(">", 0))
	})
})

var _ = Describe("Symmetrized", func() {
	It("adds the exchanged ordering", func() {
		m := kinematics.D3Pi()
		p, err := resonance.Lookup("f0(980)")
		Expect(err).NotTo(HaveOccurred())

		ab, bc := 0.9, 1.4
		a1, err := resonance.Amplitude(ab, bc, p, m)
		Expect(err).NotTo(HaveOccurred())
		a2, err := resonance.Amplitude(bc, ab, p, m)
		Expect(err).NotTo(HaveOccurred())

		sym, err := resonance.Symmetrized(ab, bc, p, m)
		Expect(err).NotTo(HaveOccurred())
		Expect(sym).To(Equal(a1 + a2))

		swapped, err := resonance.Symmetrized(bc, ab, p, m)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmplx.Abs(swapped - sym)).To(BeNumerically("<", 1e-12))
	})
})

var _ = Describe("Parameters", func() {
	It("accepts every catalog entry", func() {
		for _, name := range resonance.Names() {
			p, err := resonance.Lookup(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Validate()).To(Succeed(), name)
		}
	})

	DescribeTable("rejects",
		func(p resonance.Parameters) {
			Expect(p.Validate()).To(MatchError(resonance.ErrInvalidParameters))
		},
		Entry("zero width Breit-Wigner", resonance.Parameters{Name: "x", Mass: 1}),
		Entry("negative radius", resonance.Parameters{Name: "x", Mass: 1, Width: 0.1, Radius: -1}),
		Entry("negative spin", resonance.Parameters{Name: "x", Spin: -1, Mass: 1, Width: 0.1}),
		Entry("negative coupling", resonance.Parameters{Name: "x", Mass: 1, Shape: resonance.Flatte, GKK: -1}),
		Entry("unknown shape", resonance.Parameters{Name: "x", Mass: 1, Width: 0.1, Shape: resonance.Shape(9)}),
		Entry("NaN mass", resonance.Parameters{Name: "x", Mass: math.NaN(), Width: 0.1}),
	)

	It("parses shape names", func() {
		for _, s := range []resonance.Shape{resonance.BreitWigner, resonance.Flatte, resonance.Flat} {
			got, err := resonance.ParseShape(s.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(s))
		}
		_, err := resonance.ParseShape("gaussian")
		Expect(err).To(MatchError(resonance.ErrUnknownShape))
	})

	It("misses unknown catalog names", func() {
		_, err := resonance.Lookup("a1(1260)")
		Expect(err).To(MatchError(resonance.ErrUnknownResonance))
	})
})
