package mcint

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"runtime"

	"github.com/san-kum/dalitz/internal/normint"
)

// DefaultChunkSize is the number of samples per chunk when ChunkSize is 0.
const DefaultChunkSize = 4096

// ScalarFunc is a complex integrand of the coordinates y.
type ScalarFunc func(y []float64) (complex128, error)

// VectorFunc writes a complex vector integrand of the coordinates y to out.
type VectorFunc func(y []float64, out []complex128) error

// Integrator runs two-pass Monte Carlo integrations. The zero value is
// usable: it runs on every CPU with seed 0.
type Integrator struct {
	Workers   int
	ChunkSize int
	Seed      uint64

	// Progress, if set, receives the number of samples evaluated so far
	// across both passes. Calls are serialized.
	Progress func(done, total int)
}

// Estimate is a two-pass integral estimate.
type Estimate struct {
	Value complex128
	Error float64
}

func (it *Integrator) workers() int {
	if it.Workers > 0 {
		return it.Workers
	}
	return runtime.NumCPU()
}

func (it *Integrator) chunkSize() int {
	if it.ChunkSize > 0 {
		return it.ChunkSize
	}
	return DefaultChunkSize
}

func validate(b Bounds, n int) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrNoSamples, n)
	}
	return nil
}

// IntegrateScalar estimates the integral of f over b with n samples per pass.
func (it *Integrator) IntegrateScalar(ctx context.Context, f ScalarFunc, b Bounds, n int) (Estimate, error) {
	if err := validate(b, n); err != nil {
		return Estimate{}, err
	}

	sums, err := it.passes(ctx, b, n, 1, func() accumulator {
		return func(y []float64, acc []complex128) error {
			v, err := f(y)
			if err != nil {
				return err
			}
			if !finite(v) {
				return fmt.Errorf("%w: %v", ErrNonFinite, v)
			}
			acc[0] += v
			return nil
		}
	})
	if err != nil {
		return Estimate{}, err
	}

	scale := complex(b.Volume()/float64(n), 0)
	r1, r2 := sums[0][0]*scale, sums[1][0]*scale
	return Estimate{Value: (r1 + r2) / 2, Error: cmplx.Abs(r1-r2) / 2}, nil
}

// IntegrateOuterProduct estimates I[i][j] = ∫ conj(A_i) A_j over b, where f
// fills the r components of A. It returns the estimate and a matrix whose
// real block holds the element-wise errors.
func (it *Integrator) IntegrateOuterProduct(ctx context.Context, f VectorFunc, r int, b Bounds, n int) (*normint.Matrix, *normint.Matrix, error) {
	if r <= 0 {
		return nil, nil, fmt.Errorf("%w: %d components", normint.ErrInvalidDimensions, r)
	}
	if err := validate(b, n); err != nil {
		return nil, nil, err
	}

	sums, err := it.passes(ctx, b, n, r*r, func() accumulator {
		a := make([]complex128, r)
		return func(y []float64, acc []complex128) error {
			clear(a)
			if err := f(y, a); err != nil {
				return err
			}
			for i, ai := range a {
				if !finite(ai) {
					return fmt.Errorf("%w: component %d is %v", ErrNonFinite, i, ai)
				}
			}
			for i, ai := range a {
				ci := cmplx.Conj(ai)
				for j, aj := range a {
					acc[i*r+j] += ci * aj
				}
			}
			return nil
		}
	})
	if err != nil {
		return nil, nil, err
	}

	scale := complex(b.Volume()/float64(n), 0)
	value := make([]complex128, r*r)
	spread := make([]complex128, r*r)
	for k := range value {
		r1, r2 := sums[0][k]*scale, sums[1][k]*scale
		value[k] = (r1 + r2) / 2
		spread[k] = complex(cmplx.Abs(r1-r2)/2, 0)
	}

	est, err := normint.FromComplex(r, value)
	if err != nil {
		return nil, nil, err
	}
	errs, err := normint.FromComplex(r, spread)
	if err != nil {
		return nil, nil, err
	}
	return est, errs, nil
}

func finite(v complex128) bool {
	return !math.IsNaN(real(v)) && !math.IsNaN(imag(v)) && !math.IsInf(real(v), 0) && !math.IsInf(imag(v), 0)
}
