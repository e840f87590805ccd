// Package resonance evaluates the complex amplitude of a single resonance
// on a three-body Dalitz plot.
//
// A resonance is described by an immutable [Parameters] value: quantum
// numbers, line-shape constants and the complex production coefficient.
// [Amplitude] combines the pieces from package dynamics:
//
//	A = c * F_D * F_R * T(m2_ab) * Z_J
//
// where F_D and F_R are the parent and resonance barrier factors normalized
// at the pole mass, T is the line shape selected by [Parameters.Shape] and
// Z_J the Zemach angular factor. Points outside the Dalitz plot yield 0.
//
// # Identical Particles
//
// [Amplitude] is not symmetrized. For two identical daughters a and c the
// caller adds the exchanged ordering, which [Symmetrized] does:
//
//	a := resonance.Symmetrized(m2ab, m2bc, p, kinematics.D3Pi())
//
// # Catalog
//
// [Lookup] and [Names] expose the standard light scalar, vector and tensor
// states used in D -> 3 pi and D -> K pi pi analyses.
package resonance
