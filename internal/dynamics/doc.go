// Package dynamics provides the resonance dynamics functions that shape a
// single partial-wave amplitude:
//
//   - [BlattWeisskopf]: centrifugal barrier factor for spin 0, 1, 2
//   - [Zemach]: spin-dependent angular tensor
//   - [RelativisticWidth]: energy-dependent resonance width
//   - [BreitWigner]: relativistic Breit-Wigner propagator
//   - [Flatte]: two-channel (pi pi, K K) propagator
//
// All functions are pure. Spins above 2 are not supported: the barrier
// factor falls back to 1 and the angular tensor to 0.
//
// # Preconditions
//
// The width and Flatté formulas are undefined at m2 <= 0 and, for the width,
// below the two-body threshold. They return [ErrNonPositiveMass] and
// [ErrBelowThreshold] instead of a NaN. Callers evaluating on a Dalitz plot
// should gate with [kinematics.IsPhysical] first.
package dynamics
