package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
)

const (
	barWidth     = 40
	tickInterval = time.Second / 10
	rateCapacity = 120
)

// ProgressMsg reports cumulative progress across both integration passes.
type ProgressMsg struct {
	Done, Total int
}

// DoneMsg ends the view. Err is the integration's result.
type DoneMsg struct {
	Err error
}

type tickMsg time.Time

// Progress is the Bubble Tea model shown while an integration runs.
type Progress struct {
	title  string
	styles Styles
	cancel context.CancelFunc

	done, total int
	start, now  time.Time

	rates    []float64
	lastDone int
	lastAt   time.Time

	finished bool
	canceled bool
	err      error
}

// NewProgress returns a model titled title. cancel is invoked when the user
// quits before the integration finishes; it may be nil.
func NewProgress(title string, theme Theme, cancel context.CancelFunc) Progress {
	now := time.Now()
	return Progress{
		title:  title,
		styles: NewStyles(theme),
		cancel: cancel,
		start:  now,
		now:    now,
		lastAt: now,
		rates:  make([]float64, 0, rateCapacity),
	}
}

func (m Progress) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.canceled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case ProgressMsg:
		m.done, m.total = msg.Done, msg.Total
	case DoneMsg:
		m.finished = true
		m.err = msg.Err
		m.now = time.Now()
		return m, tea.Quit
	case tickMsg:
		m.now = time.Time(msg)
		m.sampleRate()
		return m, tick()
	}
	return m, nil
}

func (m *Progress) sampleRate() {
	dt := m.now.Sub(m.lastAt).Seconds()
	if dt <= 0 {
		return
	}
	rate := float64(m.done-m.lastDone) / dt
	m.lastDone, m.lastAt = m.done, m.now

	if len(m.rates) == rateCapacity {
		copy(m.rates, m.rates[1:])
		m.rates = m.rates[:rateCapacity-1]
	}
	m.rates = append(m.rates, rate)
}

// Fraction returns the completed share of all samples.
func (m Progress) Fraction() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m Progress) Canceled() bool { return m.canceled }

func (m Progress) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(m.title) + "\n")
	b.WriteString(s.Header.Render(Bar(m.Fraction(), barWidth)))
	b.WriteString(s.Value.Render(fmt.Sprintf(" %5.1f%%", 100*m.Fraction())) + "\n\n")

	elapsed := m.now.Sub(m.start).Round(time.Millisecond)
	b.WriteString(s.Label.Render("samples") + s.Value.Render(fmt.Sprintf("%d / %d", m.done, m.total)) + "\n")
	b.WriteString(s.Label.Render("elapsed") + s.Value.Render(elapsed.String()) + "\n")
	if secs := elapsed.Seconds(); secs > 0 {
		b.WriteString(s.Label.Render("rate") + s.Value.Render(fmt.Sprintf("%.0f /s", float64(m.done)/secs)) + "\n")
	}

	if len(m.rates) > 1 {
		chart := asciigraph.Plot(m.rates, asciigraph.Height(4), asciigraph.Width(barWidth), asciigraph.Caption("samples/s"))
		b.WriteString("\n" + s.Muted.Render(chart) + "\n")
	}

	switch {
	case m.finished && m.err != nil:
		b.WriteString("\n" + s.Bad.Render("failed: "+m.err.Error()) + "\n")
	case m.finished:
		b.WriteString("\n" + s.Good.Render("done") + "\n")
	case m.canceled:
		b.WriteString("\n" + s.Warn.Render("canceled") + "\n")
	default:
		b.WriteString(s.Help.Render("q: cancel") + "\n")
	}
	return b.String()
}

// Job is an integration reporting cumulative progress through progress.
type Job func(ctx context.Context, progress func(done, total int)) error

// Run executes job while showing a Progress view and returns the job's
// error. Quitting the view cancels the job's context; Run still waits for
// the job to return.
func Run(ctx context.Context, title string, theme Theme, job Job, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewProgress(title, theme, cancel), opts...)

	errc := make(chan error, 1)
	go func() {
		err := job(ctx, func(done, total int) {
			p.Send(ProgressMsg{Done: done, Total: total})
		})
		errc <- err
		p.Send(DoneMsg{Err: err})
	}()

	_, runErr := p.Run()
	cancel()
	err := <-errc
	if runErr != nil && err == nil {
		return fmt.Errorf("progress view: %w", runErr)
	}
	return err
}
