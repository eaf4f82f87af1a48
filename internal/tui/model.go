package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const (
	historyLen = 64
	chromeRows = 11
	minRows    = 6
)

// frameMsg carries a frame whose array is a private copy.
type frameMsg struct{ frame sorting.Frame }

type statusMsg session.Status

// readyMsg is delivered once the program has started its event loop.
type readyMsg struct{}

type model struct {
	title    string
	theme    viz.Theme
	maxValue int

	frame   sorting.Frame
	status  session.Status
	done    bool
	metrics []metrics.Metric
	history []float64

	keys   chan<- session.Event
	ready  chan struct{}
	width  int
	height int
}

func newModel(title string, theme viz.Theme, maxValue int, keys chan<- session.Event) model {
	return model{
		title:    title,
		theme:    theme,
		maxValue: maxValue,
		frame:    sorting.Frame{Highlight: sorting.NoHighlight, Confirmed: -1},
		metrics:  metrics.Defaults(),
		keys:     keys,
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg { return readyMsg{} }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := keyEvent(msg); ok {
			m.forward(ev)
		}
	case readyMsg:
		if m.ready != nil {
			close(m.ready)
			m.ready = nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case frameMsg:
		m.frame = msg.frame
		for _, mt := range m.metrics {
			mt.Observe(msg.frame)
		}
		if msg.frame.Comparisons > 0 || msg.frame.Writes > 0 {
			m.history = append(m.history, float64(msg.frame.Comparisons+msg.frame.Writes))
			if len(m.history) > historyLen {
				m.history = m.history[1:]
			}
		}
	case statusMsg:
		m.status = session.Status(msg)
		m.done = !msg.Sorting
		if msg.Sorting {
			for _, mt := range m.metrics {
				mt.Reset()
			}
			m.history = nil
		}
	}
	return m, nil
}

// forward hands a key to the session without ever blocking the UI.
func (m model) forward(ev session.Event) {
	select {
	case m.keys <- ev:
	default:
	}
}

func keyEvent(msg tea.KeyMsg) (session.Event, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return session.Close(), true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return session.Key(msg.Runes[0]), true
		}
	}
	return session.Event{}, false
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + viz.GradientText(m.title, "#00ccff", "#ff66cc") + "\n")
	b.WriteString("  " + m.statusLine() + "\n\n")

	if m.frame.Array != nil {
		rows := m.height - chromeRows
		if rows < minRows {
			rows = minRows
		}
		c := viz.NewCanvas(viz.CellsFor(m.frame.Array.Len()), rows)
		c.DrawFrame(m.frame, m.maxValue)
		for _, line := range strings.Split(strings.TrimSuffix(c.Render(m.theme), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("  " + viz.Separator(40) + "\n")
	b.WriteString("  " + m.metricsLine() + "\n")
	b.WriteString("  " + dim.Render("ops") + " " + cyan.Render(viz.SparklineChart(m.history, 32)) + "\n")
	b.WriteString("\n" + dim.Render("  0 shuffle  1-7 sort  q quit") + "\n")
	b.WriteString(dimmer.Render("  "+legend()) + "\n")
	return b.String()
}

func (m model) statusLine() string {
	switch {
	case m.status.Sorting && m.frame.Kind == sorting.KindConfirm && m.frame.Array != nil:
		done := float64(m.frame.Confirmed+1) / float64(m.frame.Array.Len())
		return viz.StatusRunning.Render("● ") + cyan.Render(m.status.Algorithm) + "  " + viz.ProgressBar(done, 20)
	case m.status.Sorting:
		return viz.StatusRunning.Render("● ") + cyan.Render(m.status.Algorithm) + dim.Render("  sorting")
	case m.done && m.status.Outcome == sorting.Cancelled:
		return viz.StatusIdle.Render("○ ") + white.Render(m.status.Algorithm) + dim.Render("  cancelled")
	case m.done:
		return viz.StatusDone.Render("✓ ") + white.Render(m.status.Algorithm) + dim.Render("  sorted")
	}
	return viz.StatusIdle.Render("○ ") + dim.Render("idle")
}

func (m model) metricsLine() string {
	parts := make([]string, 0, len(m.metrics))
	for _, mt := range m.metrics {
		parts = append(parts, dim.Render(mt.Name()+"=")+white.Render(fmt.Sprintf("%.0f", mt.Value())))
	}
	return strings.Join(parts, "  ")
}

func legend() string {
	var parts []string
	for _, alg := range sorting.Algorithms() {
		parts = append(parts, fmt.Sprintf("%c %s", alg.Key, alg.Name))
	}
	return strings.Join(parts, "  ")
}
