// Package toy generates pseudo-data on a Dalitz plot: points uniform over
// the physical region, optionally unweighted against an intensity by
// hit-or-miss sampling.
package toy

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/san-kum/dalitz/internal/kinematics"
	"go-hep.org/x/hep/fmom"
)

// WeightFunc returns a non-negative weight at a Dalitz point.
type WeightFunc func(p kinematics.Point) (float64, error)

// Generator draws Dalitz points from a seeded PCG stream. A Generator is
// not safe for concurrent use.
type Generator struct {
	masses kinematics.Masses
	rng    *rand.Rand
	ab, bc [2]float64

	// Tries counts the box points drawn so far.
	Tries int
}

func New(m kinematics.Masses, seed uint64) (*Generator, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	ab, bc := kinematics.BoundingBox(m, 400)
	return &Generator{
		masses: m,
		rng:    rand.New(rand.NewPCG(seed, 0x746f79)),
		ab:     ab,
		bc:     bc,
	}, nil
}

// Next returns one point uniform over the physical region.
func (g *Generator) Next() kinematics.Point {
	for {
		g.Tries++
		p := kinematics.Point{
			M2AB: g.ab[0] + (g.ab[1]-g.ab[0])*g.rng.Float64(),
			M2BC: g.bc[0] + (g.bc[1]-g.bc[0])*g.rng.Float64(),
		}
		if p.Contains(g.masses) {
			return p
		}
	}
}

// Uniform returns n points uniform over the physical region.
func (g *Generator) Uniform(n int) ([]kinematics.Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoEvents, n)
	}
	out := make([]kinematics.Point, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out, nil
}

// Weighted returns n points distributed as w, accepting a uniform point
// with probability w(p)/wmax. ctx is checked between attempts.
func (g *Generator) Weighted(ctx context.Context, n int, w WeightFunc, wmax float64) ([]kinematics.Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoEvents, n)
	}
	if wmax <= 0 {
		return nil, fmt.Errorf("toy: maximum weight must be positive, got %g", wmax)
	}

	out := make([]kinematics.Point, 0, n)
	for len(out) < n {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		p := g.Next()
		v, err := w(p)
		if err != nil {
			return out, err
		}
		if v > wmax {
			return out, fmt.Errorf("%w: %g > %g at (%.5f, %.5f)", ErrWeightExceeded, v, wmax, p.M2AB, p.M2BC)
		}
		if g.rng.Float64()*wmax < v {
			out = append(out, p)
		}
	}
	return out, nil
}

// MaxWeight scans n uniform points and returns the largest weight times
// safety, a starting wmax for Weighted.
func (g *Generator) MaxWeight(n int, w WeightFunc, safety float64) (float64, error) {
	var max float64
	for i := 0; i < n; i++ {
		v, err := w(g.Next())
		if err != nil {
			return 0, err
		}
		if v > max {
			max = v
		}
	}
	return max * safety, nil
}

// WriteCSV writes one row per point with the three invariants and, when
// momenta is set, the daughter four-momenta in the parent rest frame.
func WriteCSV(w io.Writer, points []kinematics.Point, m kinematics.Masses, momenta bool) error {
	cw := csv.NewWriter(w)

	header := []string{"m2_ab", "m2_bc", "m2_ac"}
	if momenta {
		for _, d := range []string{"a", "b", "c"} {
			header = append(header, "px_"+d, "py_"+d, "pz_"+d, "e_"+d)
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range points {
		row := []string{format(p.M2AB), format(p.M2BC), format(p.M2AC(m))}
		if momenta {
			ev, err := kinematics.Event(p, m)
			if err != nil {
				return err
			}
			for _, v := range []*fmom.PxPyPzE{&ev.A, &ev.B, &ev.C} {
				row = append(row, format(v.Px()), format(v.Py()), format(v.Pz()), format(v.E()))
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
