package normint

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	realName = "I_re"
	imagName = "I_im"
)

// FormatLiteral writes the real and imaginary blocks of m as
//
//	I_re = [[...],[...]]
//	I_im = [[...],[...]]
//
// using the shortest representation that parses back to the same float64.
func FormatLiteral(w io.Writer, m *Matrix) error {
	if _, err := fmt.Fprintf(w, "%s = %s\n", realName, formatBlock(m.n, m.re)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s = %s\n", imagName, formatBlock(m.n, m.im))
	return err
}

func formatBlock(n int, data []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		for j := 0; j < n; j++ {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(data[i*n+j], 'g', -1, 64))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

// ParseLiteral reads the output of FormatLiteral. Blank lines and lines
// starting with '#' are ignored; the two blocks may appear in either order.
func ParseLiteral(r io.Reader) (*Matrix, error) {
	blocks := make(map[string][][]float64, 2)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		name, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing '='", ErrMalformedLiteral, line)
		}
		name = strings.TrimSpace(name)
		if name != realName && name != imagName {
			return nil, fmt.Errorf("%w: line %d: unexpected name %q", ErrMalformedLiteral, line, name)
		}
		if _, dup := blocks[name]; dup {
			return nil, fmt.Errorf("%w: line %d: %s given twice", ErrMalformedLiteral, line, name)
		}

		var rows [][]float64
		if err := json.Unmarshal([]byte(strings.TrimSpace(value)), &rows); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLiteral, line, err)
		}
		blocks[name] = rows
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	re, okRe := blocks[realName]
	im, okIm := blocks[imagName]
	if !okRe || !okIm {
		return nil, fmt.Errorf("%w: need both %s and %s", ErrMalformedLiteral, realName, imagName)
	}
	return FromBlocks(re, im)
}

// WriteCSV writes one "i,j,re,im" row per element, preceded by a header.
func WriteCSV(w io.Writer, m *Matrix) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"i", "j", "re", "im"}); err != nil {
		return err
	}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			v := m.At(i, j)
			row := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				strconv.FormatFloat(real(v), 'g', -1, 64),
				strconv.FormatFloat(imag(v), 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
