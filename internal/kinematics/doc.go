// Package kinematics provides the three-body phase-space primitives every
// amplitude evaluation starts from.
//
// A decay P -> a b c is described by two squared invariant masses, the
// Dalitz variables m2_ab and m2_bc; the third invariant m2_ac follows from
// energy-momentum conservation:
//
//	m2_ab + m2_bc + m2_ac = m2_P + m2_a + m2_b + m2_c
//
// The package offers:
//
//   - [Masses]: the rest masses of parent and daughters
//   - [BreakupMomentumSquared], [BreakupMomentum], [BreakupMomentumRatio]:
//     two-body breakup momenta, including the analytic continuation below
//     threshold
//   - [IsPhysical]: the Dalitz-plot boundary test
//   - [Event]: daughter four-momenta in the parent rest frame
//
// # Identical Particles
//
// Daughters b and c carry a [Sibling] mass. [SameAsA] marks a daughter that
// is identical to daughter a and selects the single-mass breakup formula:
//
//	m := kinematics.Masses{Parent: 1.8696, A: 0.13957, B: kinematics.SameAsA, C: kinematics.SameAsA}
//	ok := kinematics.IsPhysical(0.96, 1.2, m)
package kinematics
