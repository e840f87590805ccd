package mcint

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"
)

// chunk is a half-open sample range [start, end) of one pass.
type chunk struct {
	pass  int
	index int
	start int
	end   int
}

// split cuts n samples into chunks of at most size, identically for both passes.
func split(n, size int) []chunk {
	per := (n + size - 1) / size
	out := make([]chunk, 0, 2*per)
	for pass := 0; pass < 2; pass++ {
		for c := 0; c < per; c++ {
			start := c * size
			end := start + size
			if end > n {
				end = n
			}
			out = append(out, chunk{pass: pass, index: c, start: start, end: end})
		}
	}
	return out
}

// stream returns the generator of one chunk. The second PCG word is a
// splitmix64 scramble of (pass, chunk) so neighbouring chunks start far
// apart in state space.
func stream(seed uint64, pass, index int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, mix(uint64(pass)<<32|uint64(index))))
}

func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// accumulator adds the contribution of the integrand at y to acc.
type accumulator func(y []float64, acc []complex128) error

// passes evaluates both passes over b with width-sized accumulators and
// returns the unscaled per-pass sums. newAcc is called once per chunk.
func (it *Integrator) passes(ctx context.Context, b Bounds, n, width int, newAcc func() accumulator) ([2][]complex128, error) {
	var sums [2][]complex128

	chunks := split(n, it.chunkSize())
	partial := make([][]complex128, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(it.workers())

	var mu sync.Mutex
	done := 0

	for k, c := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrCanceled, err)
			}

			rng := stream(it.Seed, c.pass, c.index)
			add := newAcc()
			acc := make([]complex128, width)
			y := make([]float64, len(b))

			for i := c.start; i < c.end; i++ {
				b.sample(rng, y)
				if err := add(y, acc); err != nil {
					return &SampleError{Pass: c.pass, Index: i, Point: append([]float64(nil), y...), Wrapped: err}
				}
			}
			partial[k] = acc

			if it.Progress != nil {
				mu.Lock()
				done += c.end - c.start
				it.Progress(done, 2*n)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return sums, err
	}

	for k, c := range chunks {
		if sums[c.pass] == nil {
			sums[c.pass] = make([]complex128, width)
		}
		for i, v := range partial[k] {
			sums[c.pass][i] += v
		}
	}
	return sums, nil
}
