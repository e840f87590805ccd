// Package model aggregates resonances into the amplitude vector of a
// three-body decay.
//
// A [Model] evaluates A_r(m2_ab, m2_bc) for every configured resonance r.
// The vector feeds the interference-matrix integration, and with
// production coefficients θ it gives the coherent intensity
//
//	|Σ_r θ_r A_r|²
//
// whose integral over the Dalitz plot is Re(θ† I θ), see [Model.Norm].
//
// The [Registry] names the decay channels and catalog resonances a model
// can be built from.
package model
