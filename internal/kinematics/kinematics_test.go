package kinematics

import (
	"errors"
	"math"
	"testing"
)

func TestBreakupMomentumSquaredIdentical(t *testing.T) {
	ma := Pion.Mass
	m2 := 1.0

	got := BreakupMomentumSquared(m2, ma, SameAsA)
	want := m2/4 - ma*ma
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("expected %.12f, got %.12f", want, got)
	}

	// the two-mass formula with equal masses must agree
	general := BreakupMomentumSquared(m2, ma, Mass(ma))
	if math.Abs(general-got) > 1e-12 {
		t.Errorf("identical and explicit masses disagree: %.12f vs %.12f", got, general)
	}
}

func TestBreakupMomentumSquaredBelowThreshold(t *testing.T) {
	ma, mb := Kaon.Mass, Pion.Mass
	threshold := (ma + mb) * (ma + mb)

	if p2 := BreakupMomentumSquared(threshold*0.9, ma, Mass(mb)); p2 >= 0 {
		t.Errorf("expected negative p² below threshold, got %f", p2)
	}
	if p2 := BreakupMomentumSquared(threshold*1.1, ma, Mass(mb)); p2 <= 0 {
		t.Errorf("expected positive p² above threshold, got %f", p2)
	}
}

func TestBreakupMomentumThresholdContinuity(t *testing.T) {
	ma := Pion.Mass
	threshold := 4 * ma * ma
	eps := 1e-9

	above := BreakupMomentum(threshold+eps, ma, SameAsA)
	if imag(above) != 0 || real(above) <= 0 {
		t.Errorf("expected purely real momentum above threshold, got %v", above)
	}

	below := BreakupMomentum(threshold-eps, ma, SameAsA)
	if real(below) != 0 || imag(below) <= 0 {
		t.Errorf("expected purely imaginary momentum below threshold, got %v", below)
	}

	at := BreakupMomentum(threshold, ma, SameAsA)
	if at != 0 {
		t.Errorf("expected zero momentum at threshold, got %v", at)
	}

	if math.Abs(real(above)-imag(below)) > 1e-6 {
		t.Errorf("magnitudes should match across threshold: %g vs %g", real(above), imag(below))
	}
}

func TestBreakupMomentumRatio(t *testing.T) {
	ma := Pion.Mass
	if r := BreakupMomentumRatio(0.9, 0.9, ma, SameAsA); math.Abs(r-1) > 1e-15 {
		t.Errorf("expected ratio 1 at equal masses, got %f", r)
	}

	want := BreakupMomentumSquared(1.2, ma, SameAsA) / BreakupMomentumSquared(0.8, ma, SameAsA)
	if r := BreakupMomentumRatio(1.2, 0.8, ma, SameAsA); math.Abs(r-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, r)
	}
}

func TestNewMassesValidation(t *testing.T) {
	tests := []struct {
		name   string
		parent float64
		a      float64
		b, c   Sibling
		ok     bool
	}{
		{"d to 3pi", DMeson.Mass, Pion.Mass, SameAsA, SameAsA, true},
		{"d to k pi pi", DMeson.Mass, Kaon.Mass, Mass(Pion.Mass), Mass(Pion.Mass), true},
		{"parent too light", 0.3, Pion.Mass, SameAsA, SameAsA, false},
		{"negative daughter", DMeson.Mass, -0.1, SameAsA, SameAsA, false},
		{"zero sibling", DMeson.Mass, Pion.Mass, Mass(0), SameAsA, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMasses(tt.parent, tt.a, tt.b, tt.c, 5)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidMasses) {
				t.Fatalf("expected ErrInvalidMasses, got %v", err)
			}
		})
	}
}

func TestSiblingResolve(t *testing.T) {
	if SameAsA.Resolve(0.5) != 0.5 {
		t.Error("SameAsA should resolve to daughter a")
	}
	if Mass(0.2).Resolve(0.5) != 0.2 {
		t.Error("explicit mass should win over daughter a")
	}
	if !SameAsA.Identical() || Mass(0.2).Identical() {
		t.Error("Identical reports the wrong case")
	}
}

func TestSymmetricAC(t *testing.T) {
	tests := []struct {
		name string
		m    Masses
		want bool
	}{
		{"d3pi", D3Pi(), true},
		{"dkpipi", DKPiPi(), false},
		{"explicit equal mass", Masses{Parent: 1.8, A: 0.14, B: SameAsA, C: Mass(0.14)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.SymmetricAC(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsPhysicalCentroidAndCorners(t *testing.T) {
	for _, m := range []Masses{D3Pi(), DKPiPi()} {
		c := Centroid(m)
		if !IsPhysical(c.M2AB, c.M2BC, m) {
			t.Errorf("centroid (%f, %f) rejected", c.M2AB, c.M2BC)
		}

		ab, bc := BoundingBox(m, 200)
		pad := 0.5
		corners := []Point{
			{ab[0] - pad, bc[0] - pad},
			{ab[0] - pad, bc[1] + pad},
			{ab[1] + pad, bc[0] - pad},
			{ab[1] + pad, bc[1] + pad},
		}
		for _, p := range corners {
			if IsPhysical(p.M2AB, p.M2BC, m) {
				t.Errorf("corner (%f, %f) accepted", p.M2AB, p.M2BC)
			}
		}
	}
}

func TestIsPhysicalOnBoundary(t *testing.T) {
	m := D3Pi()
	abLo, abHi := M2ABRange(m)

	for i := 1; i < 20; i++ {
		ab := abLo + (abHi-abLo)*float64(i)/20
		lo, hi, ok := M2BCRange(ab, m)
		if !ok {
			t.Fatalf("m2_ab %f should be in range", ab)
		}

		if !IsPhysical(ab, lo, m) {
			t.Errorf("lower boundary point (%f, %f) rejected", ab, lo)
		}
		if !IsPhysical(ab, hi, m) {
			t.Errorf("upper boundary point (%f, %f) rejected", ab, hi)
		}

		step := 1e-6
		if IsPhysical(ab, lo-step, m) {
			t.Errorf("point just below boundary (%f, %f) accepted", ab, lo-step)
		}
		if IsPhysical(ab, hi+step, m) {
			t.Errorf("point just above boundary (%f, %f) accepted", ab, hi+step)
		}
	}
}

func TestIsPhysicalBelowTwoBodyThreshold(t *testing.T) {
	m := D3Pi()
	threshold := 4 * m.M2A()
	if IsPhysical(threshold*0.5, 1.0, m) {
		t.Error("point below the pi pi threshold accepted")
	}
	if IsPhysical(-1, 1, m) {
		t.Error("negative m2_ab accepted")
	}
}

func TestPointM2AC(t *testing.T) {
	m := D3Pi()
	p := Centroid(m)
	sum := p.M2AB + p.M2BC + p.M2AC(m)
	if math.Abs(sum-m.SumM2()) > 1e-12 {
		t.Errorf("invariants do not sum to %f: %f", m.SumM2(), sum)
	}

	s := p.Swap()
	if s.M2AB != p.M2BC || s.M2BC != p.M2AB {
		t.Error("swap did not exchange the variables")
	}
}

func TestEventReproducesInvariants(t *testing.T) {
	tests := []struct {
		name string
		m    Masses
	}{
		{"d3pi", D3Pi()},
		{"dkpipi", DKPiPi()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Centroid(tt.m)
			d, err := Event(p, tt.m)
			if err != nil {
				t.Fatalf("event failed: %v", err)
			}

			if math.Abs(d.M2AB()-p.M2AB) > 1e-9 {
				t.Errorf("m2_ab: expected %f, got %f", p.M2AB, d.M2AB())
			}
			if math.Abs(d.M2BC()-p.M2BC) > 1e-9 {
				t.Errorf("m2_bc: expected %f, got %f", p.M2BC, d.M2BC())
			}
			if math.Abs(d.M2AC()-p.M2AC(tt.m)) > 1e-9 {
				t.Errorf("m2_ac: expected %f, got %f", p.M2AC(tt.m), d.M2AC())
			}

			parent := d.Parent()
			if math.Abs(parent.E()-tt.m.Parent) > 1e-9 {
				t.Errorf("parent energy: expected %f, got %f", tt.m.Parent, parent.E())
			}
			if math.Abs(parent.Px())+math.Abs(parent.Py())+math.Abs(parent.Pz()) > 1e-9 {
				t.Error("parent should be at rest")
			}
		})
	}
}

func TestEventRejectsUnphysical(t *testing.T) {
	_, err := Event(Point{M2AB: 0.01, M2BC: 0.01}, D3Pi())
	if !errors.Is(err, ErrUnphysical) {
		t.Fatalf("expected ErrUnphysical, got %v", err)
	}
}
