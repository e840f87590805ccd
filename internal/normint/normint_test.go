package normint_test

import (
	"bytes"
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/dalitz/internal/normint"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *normint.Matrix {
	t.Helper()
	m, err := normint.FromComplex(2, []complex128{
		complex(1.25, 0), complex(0.3, -0.1),
		complex(0.3, 0.1), complex(0.8, 0),
	})
	require.NoError(t, err)
	return m
}

func TestNew_InvalidSize(t *testing.T) {
	_, err := normint.New(0)
	require.ErrorIs(t, err, normint.ErrInvalidDimensions)
}

func TestFromBlocks_Mismatch(t *testing.T) {
	_, err := normint.FromBlocks([][]float64{{1, 2}, {3, 4}}, [][]float64{{0, 0}})
	require.ErrorIs(t, err, normint.ErrInvalidDimensions)

	_, err = normint.FromBlocks([][]float64{{1, 2}, {3}}, [][]float64{{0, 0}, {0, 0}})
	require.ErrorIs(t, err, normint.ErrInvalidDimensions)
}

func TestMatrix_Blocks(t *testing.T) {
	m := sample(t)

	require.Equal(t, [][]float64{{1.25, 0.3}, {0.3, 0.8}}, m.Real())
	require.Equal(t, [][]float64{{0, -0.1}, {0.1, 0}}, m.Imag())
	require.Equal(t, complex(0.3, -0.1), m.Complex()[0][1])

	// blocks are copies
	re := m.Real()
	re[0][0] = 99
	require.Equal(t, 1.25, real(m.At(0, 0)))
}

func TestMatrix_SetAndClone(t *testing.T) {
	m := sample(t)
	c := m.Clone()
	c.Set(1, 1, 2+3i)

	require.Equal(t, complex(0.8, 0), m.At(1, 1))
	require.Equal(t, 2+3i, c.At(1, 1))
	require.Panics(t, func() { m.At(2, 0) })
}

func TestMatrix_HermitianDeviation(t *testing.T) {
	m := sample(t)
	require.Zero(t, m.HermitianDeviation())

	m.Set(1, 0, complex(0.3, 0.2))
	require.InDelta(t, 0.1, m.HermitianDeviation(), 1e-15)
}

func TestNorm(t *testing.T) {
	diag, err := normint.FromComplex(2, []complex128{2, 0, 0, 3})
	require.NoError(t, err)

	n, err := normint.Norm([]complex128{1i, complex(0, -2)}, diag)
	require.NoError(t, err)
	require.InDelta(t, 2*1+3*4, n, 1e-12)

	// off-diagonal interference: θ = (1, 1) picks up 2 Re(I[0][1])
	n, err = normint.Norm([]complex128{1, 1}, sample(t))
	require.NoError(t, err)
	require.InDelta(t, 1.25+0.8+2*0.3, n, 1e-12)

	_, err = normint.Norm([]complex128{1}, diag)
	require.ErrorIs(t, err, normint.ErrInvalidDimensions)
}

func TestLiteral_RoundTrip(t *testing.T) {
	m, err := normint.FromComplex(3, []complex128{
		complex(1.0/3, 0), complex(1e-17, -2.5e8), complex(-0.0, math.Pi),
		complex(1e-17, 2.5e8), 7, complex(0.1, 0.2),
		complex(0, -math.Pi), complex(0.1, -0.2), complex(math.MaxFloat64, 0),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, normint.FormatLiteral(&buf, m))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "I_re = [["))
	require.True(t, strings.HasPrefix(lines[1], "I_im = [["))

	got, err := normint.ParseLiteral(&buf)
	require.NoError(t, err)
	require.Equal(t, m.Real(), got.Real())
	require.Equal(t, m.Imag(), got.Imag())
}

func TestParseLiteral_Format(t *testing.T) {
	text := "# normalization integral\n\nI_im = [[0, 1], [-1, 0]]\nI_re = [[2, 0.5], [0.5, 1]]\n"
	m, err := normint.ParseLiteral(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, complex(0.5, 1), m.At(0, 1))
	require.Equal(t, complex(0.5, -1), m.At(1, 0))
}

func TestParseLiteral_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing imaginary block", "I_re = [[1]]\n"},
		{"no assignment", "I_re [[1]]\n"},
		{"unknown name", "I_re = [[1]]\nJ = [[1]]\n"},
		{"duplicate block", "I_re = [[1]]\nI_re = [[1]]\nI_im = [[0]]\n"},
		{"not a list", "I_re = 1\nI_im = [[0]]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normint.ParseLiteral(strings.NewReader(tt.text))
			require.ErrorIs(t, err, normint.ErrMalformedLiteral)
		})
	}

	_, err := normint.ParseLiteral(strings.NewReader("I_re = [[1, 2]]\nI_im = [[0, 0]]\n"))
	require.ErrorIs(t, err, normint.ErrInvalidDimensions)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, normint.WriteCSV(&buf, sample(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	require.Equal(t, []string{"i", "j", "re", "im"}, records[0])
	require.Equal(t, []string{"0", "1", "0.3", "-0.1"}, records[2])
}
