// Package mcint estimates integrals over an axis-aligned box by uniform
// Monte Carlo sampling.
//
// Every estimate is the mean of two independent passes of n samples each,
// and its error is half the modulus of their difference:
//
//	I = (I1 + I2) / 2,   err = |I1 - I2| / 2
//
// [Integrator.IntegrateScalar] integrates a complex scalar function.
// [Integrator.IntegrateOuterProduct] integrates the outer product
// conj(A_i) A_j of a complex vector function into an R×R
// [normint.Matrix], the interference matrix of a resonance model.
//
// # Parallelism
//
// Each pass is cut into fixed-size chunks. Every chunk draws from its own
// PCG stream seeded from (Seed, pass, chunk) and sums into a private
// accumulator; the chunk sums are reduced in chunk order. Results depend
// only on Seed, ChunkSize and the inputs, not on Workers.
//
// The integrand is called concurrently from several goroutines and must not
// share mutable state between calls.
//
// # Example
//
//	it := mcint.Integrator{Seed: 42}
//	b := mcint.Bounds{{Low: 0, High: 1}, {Low: 0, High: 1}}
//	est, err := it.IntegrateScalar(ctx, f, b, 100000)
package mcint
