package model

import (
	"context"
	"fmt"
	"math/cmplx"

	"github.com/san-kum/dalitz/internal/kinematics"
	"github.com/san-kum/dalitz/internal/mcint"
	"github.com/san-kum/dalitz/internal/normint"
	"github.com/san-kum/dalitz/internal/resonance"
)

// Model is an immutable set of resonances in one decay channel. It is safe
// for concurrent use.
type Model struct {
	masses     kinematics.Masses
	resonances []resonance.Parameters
	symmetrize bool
}

// New validates its inputs and returns a model. With symmetrize set each
// amplitude is summed over the exchange of daughters a and c, which must be
// identical.
func New(m kinematics.Masses, res []resonance.Parameters, symmetrize bool) (*Model, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if symmetrize && !m.SymmetricAC() {
		return nil, fmt.Errorf("%w: a=%.5f c=%.5f", ErrNotSymmetric, m.A, m.MC())
	}
	if len(res) == 0 {
		return nil, ErrNoResonances
	}
	for _, p := range res {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return &Model{
		masses:     m,
		resonances: append([]resonance.Parameters(nil), res...),
		symmetrize: symmetrize,
	}, nil
}

// NumVariables returns the number of kinematic coordinates, m2_ab and m2_bc.
func (m *Model) NumVariables() int { return 2 }

func (m *Model) NumResonances() int { return len(m.resonances) }

func (m *Model) Masses() kinematics.Masses { return m.masses }

func (m *Model) Symmetrized() bool { return m.symmetrize }

// Resonances returns a copy of the configured resonances.
func (m *Model) Resonances() []resonance.Parameters {
	return append([]resonance.Parameters(nil), m.resonances...)
}

// Amplitudes writes A_r at p to out, which must have NumResonances entries.
func (m *Model) Amplitudes(p kinematics.Point, out []complex128) error {
	if len(out) != len(m.resonances) {
		return fmt.Errorf("%w: %d outputs for %d resonances", ErrDimensionMismatch, len(out), len(m.resonances))
	}
	amp := resonance.Amplitude
	if m.symmetrize {
		amp = resonance.Symmetrized
	}
	for r, params := range m.resonances {
		a, err := amp(p.M2AB, p.M2BC, params, m.masses)
		if err != nil {
			return err
		}
		out[r] = a
	}
	return nil
}

// Vector adapts Amplitudes to the integrator, with y = (m2_ab, m2_bc).
func (m *Model) Vector() mcint.VectorFunc {
	return func(y []float64, out []complex128) error {
		if len(y) != m.NumVariables() {
			return fmt.Errorf("%w: %d coordinates", ErrDimensionMismatch, len(y))
		}
		return m.Amplitudes(kinematics.Point{M2AB: y[0], M2BC: y[1]}, out)
	}
}

// Intensity returns |Σ_r θ_r A_r(p)|².
func (m *Model) Intensity(p kinematics.Point, theta []complex128) (float64, error) {
	if len(theta) != len(m.resonances) {
		return 0, fmt.Errorf("%w: %d coefficients for %d resonances", ErrDimensionMismatch, len(theta), len(m.resonances))
	}
	amps := make([]complex128, len(m.resonances))
	if err := m.Amplitudes(p, amps); err != nil {
		return 0, err
	}
	var sum complex128
	for r, a := range amps {
		sum += theta[r] * a
	}
	abs := cmplx.Abs(sum)
	return abs * abs, nil
}

// UnitCoefficients returns θ_r = 1 for every resonance. Amplitudes already
// carry their production coefficients, so these give the configured model.
func (m *Model) UnitCoefficients() []complex128 {
	theta := make([]complex128, len(m.resonances))
	for i := range theta {
		theta[i] = 1
	}
	return theta
}

// Norm returns the integrated intensity Re(θ† I θ) for an interference
// matrix computed from this model.
func (m *Model) Norm(theta []complex128, I *normint.Matrix) (float64, error) {
	if I.Size() != len(m.resonances) {
		return 0, fmt.Errorf("%w: %d×%d matrix for %d resonances", ErrDimensionMismatch, I.Size(), I.Size(), len(m.resonances))
	}
	return normint.Norm(theta, I)
}

// Bounds returns the smallest box around the Dalitz plot.
func (m *Model) Bounds() mcint.Bounds {
	ab, bc := kinematics.BoundingBox(m.masses, 400)
	return mcint.Bounds{{Low: ab[0], High: ab[1]}, {Low: bc[0], High: bc[1]}}
}

// Integrate computes the interference matrix and its error over b with n
// samples per pass. An empty b integrates over Bounds().
func (m *Model) Integrate(ctx context.Context, it *mcint.Integrator, b mcint.Bounds, n int) (*normint.Matrix, *normint.Matrix, error) {
	if len(b) == 0 {
		b = m.Bounds()
	}
	if len(b) != m.NumVariables() {
		return nil, nil, fmt.Errorf("%w: %d bounds for %d variables", ErrDimensionMismatch, len(b), m.NumVariables())
	}
	return it.IntegrateOuterProduct(ctx, m.Vector(), m.NumResonances(), b, n)
}
