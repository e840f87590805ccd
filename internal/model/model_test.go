package model

import (
	"context"
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/san-kum/dalitz/internal/kinematics"
	"github.com/san-kum/dalitz/internal/mcint"
	"github.com/san-kum/dalitz/internal/resonance"
)

func catalog(t *testing.T, names ...string) []resonance.Parameters {
	t.Helper()
	out := make([]resonance.Parameters, 0, len(names))
	for _, name := range names {
		p, err := resonance.Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		out = append(out, p)
	}
	return out
}

func TestNewValidation(t *testing.T) {
	res := catalog(t, "f0(980)")

	if _, err := New(kinematics.D3Pi(), nil, false); !errors.Is(err, ErrNoResonances) {
		t.Errorf("expected ErrNoResonances, got %v", err)
	}
	if _, err := New(kinematics.Masses{Parent: 0.1, A: 0.2}, res, false); !errors.Is(err, kinematics.ErrInvalidMasses) {
		t.Errorf("expected ErrInvalidMasses, got %v", err)
	}
	bad := []resonance.Parameters{{Name: "bad", Mass: 1}}
	if _, err := New(kinematics.D3Pi(), bad, false); !errors.Is(err, resonance.ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters, got %v", err)
	}
}

func TestNewSymmetrizeRequiresIdenticalDaughters(t *testing.T) {
	res := catalog(t, "f0(980)")

	if _, err := New(kinematics.DKPiPi(), res, true); !errors.Is(err, ErrNotSymmetric) {
		t.Errorf("expected ErrNotSymmetric, got %v", err)
	}
	if _, err := New(kinematics.DKPiPi(), res, false); err != nil {
		t.Errorf("unsymmetrized dkpipi: %v", err)
	}
	if _, err := New(kinematics.D3Pi(), res, true); err != nil {
		t.Errorf("symmetrized d3pi: %v", err)
	}
}

func TestDiscovery(t *testing.T) {
	m, err := New(kinematics.D3Pi(), catalog(t, "f0(980)", "rho(770)", "nr"), false)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumVariables() != 2 {
		t.Errorf("expected 2 variables, got %d", m.NumVariables())
	}
	if m.NumResonances() != 3 {
		t.Errorf("expected 3 resonances, got %d", m.NumResonances())
	}

	// the model keeps its own copy
	res := m.Resonances()
	res[0].Mass = 99
	if m.Resonances()[0].Mass == 99 {
		t.Error("Resonances exposed internal state")
	}
}

func TestAmplitudes(t *testing.T) {
	masses := kinematics.D3Pi()
	res := catalog(t, "f0(980)", "rho(770)")
	plain, err := New(masses, res, false)
	if err != nil {
		t.Fatal(err)
	}
	sym, err := New(masses, res, true)
	if err != nil {
		t.Fatal(err)
	}

	p := kinematics.Point{M2AB: 0.9, M2BC: 1.4}
	a := make([]complex128, 2)
	s := make([]complex128, 2)
	if err := plain.Amplitudes(p, a); err != nil {
		t.Fatal(err)
	}
	if err := sym.Amplitudes(p, s); err != nil {
		t.Fatal(err)
	}

	for r := range res {
		swapped, err := resonance.Amplitude(p.M2BC, p.M2AB, res[r], masses)
		if err != nil {
			t.Fatal(err)
		}
		if s[r] != a[r]+swapped {
			t.Errorf("resonance %d: symmetrized %v, expected %v", r, s[r], a[r]+swapped)
		}
	}

	if err := plain.Amplitudes(p, make([]complex128, 3)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	if err := plain.Vector()([]float64{1}, a); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestIntensityOutsidePlot(t *testing.T) {
	m, err := New(kinematics.D3Pi(), catalog(t, "f0(980)", "f2(1270)"), false)
	if err != nil {
		t.Fatal(err)
	}

	got, err := m.Intensity(kinematics.Point{M2AB: 0.01, M2BC: 0.01}, []complex128{1, 1i})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("expected zero intensity outside the plot, got %g", got)
	}

	if _, err := m.Intensity(kinematics.Centroid(m.Masses()), []complex128{1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestIntegrateHermitian(t *testing.T) {
	m, err := New(kinematics.D3Pi(), catalog(t, "f0(980)", "rho(770)"), false)
	if err != nil {
		t.Fatal(err)
	}

	it := &mcint.Integrator{Seed: 2024}
	I, errs, err := m.Integrate(context.Background(), it, nil, 20000)
	if err != nil {
		t.Fatalf("integration failed: %v", err)
	}

	d := I.At(0, 1) - cmplx.Conj(I.At(1, 0))
	bound := real(errs.At(0, 1)) + real(errs.At(1, 0)) + 1e-9*cmplx.Abs(I.At(0, 1))
	if cmplx.Abs(d) > bound {
		t.Errorf("I[0][1] = %v, conj(I[1][0]) = %v, bound %g", I.At(0, 1), cmplx.Conj(I.At(1, 0)), bound)
	}
	for r := 0; r < 2; r++ {
		if real(I.At(r, r)) <= 0 {
			t.Errorf("diagonal %d should be positive, got %v", r, I.At(r, r))
		}
	}
}

func TestNormMatchesIntegratedIntensity(t *testing.T) {
	m, err := New(kinematics.D3Pi(), catalog(t, "f0(980)", "rho(770)", "f2(1270)"), false)
	if err != nil {
		t.Fatal(err)
	}
	theta := []complex128{1, complex(0.5, -0.2), complex(0, 0.3)}
	n := 8000

	it := &mcint.Integrator{Seed: 99, ChunkSize: 1000}
	I, _, err := m.Integrate(context.Background(), it, nil, n)
	if err != nil {
		t.Fatal(err)
	}
	norm, err := m.Norm(theta, I)
	if err != nil {
		t.Fatal(err)
	}

	// same seed and chunking draw the same points
	est, err := it.IntegrateScalar(context.Background(), func(y []float64) (complex128, error) {
		v, err := m.Intensity(kinematics.Point{M2AB: y[0], M2BC: y[1]}, theta)
		return complex(v, 0), err
	}, m.Bounds(), n)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(norm-real(est.Value)) > 1e-8*math.Abs(norm) {
		t.Errorf("Norm %.10g differs from integrated intensity %.10g", norm, real(est.Value))
	}
}

func TestIntegrateBoundsDimension(t *testing.T) {
	m, err := New(kinematics.D3Pi(), catalog(t, "nr"), false)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = m.Integrate(context.Background(), &mcint.Integrator{}, mcint.Bounds{{Low: 0, High: 1}}, 10)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if _, err := r.GetChannel("b2kkk"); !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("expected ErrUnknownChannel, got %v", err)
	}
	m, err := r.GetChannel("d3pi")
	if err != nil {
		t.Fatal(err)
	}
	if m != kinematics.D3Pi() {
		t.Error("d3pi channel does not match the preset masses")
	}

	r.RegisterChannel("toy", func() kinematics.Masses {
		return kinematics.Masses{Parent: 1, A: 0.1, B: kinematics.SameAsA, C: kinematics.SameAsA}
	})
	if got := r.ListChannels(); len(got) != 3 || got[2] != "toy" {
		t.Errorf("unexpected channels %v", got)
	}

	p, err := r.GetResonance("rho(770)")
	if err != nil {
		t.Fatal(err)
	}
	if p.Spin != 1 {
		t.Errorf("expected spin 1, got %d", p.Spin)
	}
	if len(r.ListResonances()) != len(resonance.Names()) {
		t.Error("registry and catalog disagree")
	}
}

func TestUnitCoefficientsSumMatrix(t *testing.T) {
	m, err := New(kinematics.D3Pi(), catalog(t, "nr", "f0(980)"), false)
	if err != nil {
		t.Fatal(err)
	}
	I, _, err := m.Integrate(context.Background(), &mcint.Integrator{Seed: 3}, nil, 2000)
	if err != nil {
		t.Fatal(err)
	}

	var sum complex128
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			sum += I.At(i, j)
		}
	}
	norm, err := m.Norm(m.UnitCoefficients(), I)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(norm-real(sum)) > 1e-9*math.Abs(norm) {
		t.Errorf("expected %g, got %g", real(sum), norm)
	}
}
