package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/dalitz/internal/normint"
)

const cellWidth = 24

// RenderMatrix lays out a normalization integral as a labelled table. When
// errs is non-nil its real block is printed under each value. names label
// rows and columns; missing names fall back to the index.
func RenderMatrix(names []string, value, errs *normint.Matrix, theme Theme) string {
	s := NewStyles(theme)
	n := value.Size()
	label := func(i int) string {
		if i < len(names) && names[i] != "" {
			return names[i]
		}
		return fmt.Sprintf("#%d", i)
	}

	head := s.Label.Render("")
	cols := make([]string, 0, n+1)
	cols = append(cols, head)
	for j := 0; j < n; j++ {
		cols = append(cols, s.Header.Width(cellWidth).Render(label(j)))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, cols...)}

	for i := 0; i < n; i++ {
		cells := []string{s.Header.Width(12).Render(label(i))}
		for j := 0; j < n; j++ {
			v := value.At(i, j)
			text := fmt.Sprintf("%+.4e\n%+.4ei", real(v), imag(v))
			if errs != nil {
				text += "\n" + s.Muted.Render(fmt.Sprintf("±%.2e", real(errs.At(i, j))))
			}
			style := s.Value
			if i == j {
				style = s.Good
			}
			cells = append(cells, style.Width(cellWidth).Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("hermiticity deviation %.3e", value.HermitianDeviation())))
	b.WriteString("\n")
	return s.Panel.Render(b.String())
}
