package normint

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Matrix is a dense square complex matrix.
type Matrix struct {
	n  int
	re []float64
	im []float64
}

// New returns a zero n×n matrix.
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidDimensions, n)
	}
	return &Matrix{n: n, re: make([]float64, n*n), im: make([]float64, n*n)}, nil
}

// FromBlocks builds a matrix from its real and imaginary blocks.
func FromBlocks(re, im [][]float64) (*Matrix, error) {
	n := len(re)
	if n == 0 || len(im) != n {
		return nil, fmt.Errorf("%w: %d real rows, %d imaginary rows", ErrInvalidDimensions, len(re), len(im))
	}
	m, _ := New(n)
	for i := 0; i < n; i++ {
		if len(re[i]) != n || len(im[i]) != n {
			return nil, fmt.Errorf("%w: row %d is not of length %d", ErrInvalidDimensions, i, n)
		}
		copy(m.re[i*n:(i+1)*n], re[i])
		copy(m.im[i*n:(i+1)*n], im[i])
	}
	return m, nil
}

// FromComplex builds a matrix from row-major complex data of length n*n.
func FromComplex(n int, data []complex128) (*Matrix, error) {
	if n <= 0 || len(data) != n*n {
		return nil, fmt.Errorf("%w: %d values for size %d", ErrInvalidDimensions, len(data), n)
	}
	m, _ := New(n)
	for k, v := range data {
		m.re[k] = real(v)
		m.im[k] = imag(v)
	}
	return m, nil
}

func (m *Matrix) Size() int { return m.n }

// At returns element (i, j). It panics if an index is out of range.
func (m *Matrix) At(i, j int) complex128 {
	k := m.index(i, j)
	return complex(m.re[k], m.im[k])
}

func (m *Matrix) Set(i, j int, v complex128) {
	k := m.index(i, j)
	m.re[k] = real(v)
	m.im[k] = imag(v)
}

func (m *Matrix) index(i, j int) int {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("normint: index (%d, %d) out of range for size %d", i, j, m.n))
	}
	return i*m.n + j
}

// Real returns a copy of the real block.
func (m *Matrix) Real() [][]float64 { return m.block(m.re) }

// Imag returns a copy of the imaginary block.
func (m *Matrix) Imag() [][]float64 { return m.block(m.im) }

func (m *Matrix) block(src []float64) [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = append([]float64(nil), src[i*m.n:(i+1)*m.n]...)
	}
	return out
}

// Complex returns a copy of the matrix as nested complex rows.
func (m *Matrix) Complex() [][]complex128 {
	out := make([][]complex128, m.n)
	for i := range out {
		out[i] = make([]complex128, m.n)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		n:  m.n,
		re: append([]float64(nil), m.re...),
		im: append([]float64(nil), m.im...),
	}
}

// HermitianDeviation returns max |I[i][j] - conj(I[j][i])|.
func (m *Matrix) HermitianDeviation() float64 {
	var dev float64
	for i := 0; i < m.n; i++ {
		for j := i; j < m.n; j++ {
			dev = math.Max(dev, cmplx.Abs(m.At(i, j)-cmplx.Conj(m.At(j, i))))
		}
	}
	return dev
}

// Norm returns Re(θ† I θ) = Σ_ij Re(conj(θ_i) I[i][j] θ_j).
func Norm(theta []complex128, m *Matrix) (float64, error) {
	if len(theta) != m.n {
		return 0, fmt.Errorf("%w: %d coefficients for a %d×%d matrix", ErrInvalidDimensions, len(theta), m.n, m.n)
	}
	var sum complex128
	for i, ti := range theta {
		for j, tj := range theta {
			sum += cmplx.Conj(ti) * m.At(i, j) * tj
		}
	}
	return real(sum), nil
}
