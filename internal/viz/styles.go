package viz

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles derived from a Theme.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Bad    lipgloss.Style
	Panel  lipgloss.Style
	Help   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		Header: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		Value:  lipgloss.NewStyle().Foreground(t.Text),
		Muted:  lipgloss.NewStyle().Foreground(t.Muted),
		Good:   lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Warn:   lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		Bad:    lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(1, 2),
		Help: lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
	}
}

// Bar renders a progress bar of the given cell width. frac is clamped to
// [0, 1].
func Bar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	out := make([]rune, width)
	for i := range out {
		if i < filled {
			out[i] = '█'
		} else {
			out[i] = '░'
		}
	}
	return string(out)
}
