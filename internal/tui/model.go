package tui

import (
	"context"
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibkm/internal/cli"
	"github.com/agbru/fibkm/internal/conversion"
	apperrors "github.com/agbru/fibkm/internal/errors"
)

// Steps are the increments the arrow keys cycle through, in miles.
var Steps = []float64{0.01, 0.1, 1, 10, 100, 1000}

// defaultStepIndex selects a one-mile step.
const defaultStepIndex = 2

// historySize is the number of past positions kept for the sparkline.
const historySize = 64

// Layout constants for the explorer.
const (
	headerHeight = 1
	footerHeight = 1
	chartRows    = 4
	minWidth     = 40
)

// Model is the root bubbletea model of the explorer.
type Model struct {
	ctx        context.Context
	converters []conversion.Converter
	formatter  cli.Formatter

	header  HeaderModel
	keymap  KeyMap
	help    help.Model
	history *RingBuffer

	start   float64
	miles   float64
	stepIdx int
	tracked int
	cmp     conversion.Comparison
	err     error
	curve   []float64

	width  int
	height int
}

// NewModel creates an explorer positioned at start miles. The tracked
// method, whose error is charted, is the first approximation in converters.
func NewModel(ctx context.Context, converters []conversion.Converter, f cli.Formatter, start float64, version string) Model {
	if start < 0 || math.IsNaN(start) || math.IsInf(start, 0) {
		start = 0
	}
	m := Model{
		ctx:        ctx,
		converters: converters,
		formatter:  f,
		header:     NewHeaderModel(version),
		keymap:     DefaultKeyMap(),
		help:       help.New(),
		history:    NewRingBuffer(historySize),
		start:      start,
		miles:      start,
		stepIdx:    defaultStepIndex,
	}
	for i, c := range converters {
		if c.Method() != conversion.MethodExact {
			m.tracked = i
			break
		}
	}
	m.refresh()
	return m
}

// Miles returns the current distance.
func (m Model) Miles() float64 { return m.miles }

// Step returns the current increment.
func (m Model) Step() float64 { return Steps[m.stepIdx] }

// Comparison returns every method's answer at the current distance.
func (m Model) Comparison() conversion.Comparison { return m.cmp }

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return watchContextCmd(m.ctx)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		m.curve = m.sampleCurve()
		return m, nil

	case ContextCancelledMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		m.moveTo(m.miles + m.Step())

	case key.Matches(msg, m.keymap.Down):
		m.moveTo(math.Max(0, m.miles-m.Step()))

	case key.Matches(msg, m.keymap.StepUp):
		if m.stepIdx < len(Steps)-1 {
			m.stepIdx++
		}

	case key.Matches(msg, m.keymap.StepDown):
		if m.stepIdx > 0 {
			m.stepIdx--
		}

	case key.Matches(msg, m.keymap.NextKnot):
		m.moveTo(nextKnot(m.miles))

	case key.Matches(msg, m.keymap.PrevKnot):
		m.moveTo(prevKnot(m.miles))

	case key.Matches(msg, m.keymap.Track):
		if len(m.converters) > 0 {
			m.tracked = (m.tracked + 1) % len(m.converters)
			m.history.Reset()
			m.refresh()
		}

	case key.Matches(msg, m.keymap.Reset):
		m.stepIdx = defaultStepIndex
		m.history.Reset()
		m.moveTo(m.start)

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// moveTo changes the distance and recomputes every method. The value is
// rounded to hundredths, the finest step, so repeated increments do not drift.
func (m *Model) moveTo(miles float64) {
	m.miles = math.Round(miles*100) / 100
	m.refresh()
}

func (m *Model) refresh() {
	cmp, err := conversion.Compare(m.ctx, m.converters, m.miles)
	m.cmp, m.err = cmp, err
	if err == nil && m.tracked < len(cmp.Entries) {
		m.history.Push(cmp.Entries[m.tracked].RelError)
	}
	m.curve = m.sampleCurve()
}

// nextKnot returns the smallest Fibonacci number above miles, or miles
// itself past the last one.
func nextKnot(miles float64) float64 {
	for k := 2; k <= conversion.MaxIndex; k++ {
		if f := float64(conversion.Fibonacci(k)); f > miles {
			return f
		}
	}
	return miles
}

// prevKnot returns the largest Fibonacci number below miles, or 0.
func prevKnot(miles float64) float64 {
	prev := 0.0
	for k := 2; k <= conversion.MaxIndex; k++ {
		f := float64(conversion.Fibonacci(k))
		if f >= miles {
			break
		}
		prev = f
	}
	return prev
}

// chartWidth is the number of cells inside a panel.
func (m Model) chartWidth() int {
	return max(0, m.width-panelStyle.GetHorizontalFrameSize())
}

// View renders the explorer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.width < minWidth {
		return "Terminal too narrow."
	}

	header := m.header.View(m.formatter.Distance(m.miles), m.formatter.Distance(m.Step()))
	panel := panelStyle.Width(m.width - panelStyle.GetHorizontalBorderSize())

	results := panel.Render(m.renderResults())
	parts := []string{header, results}
	if m.err == nil && m.height-headerHeight-footerHeight-lipgloss.Height(results) > chartRows+2 {
		parts = append(parts, panel.Render(m.renderChart()))
	}
	parts = append(parts, m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, converters []conversion.Converter, f cli.Formatter, start float64, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(ctx, converters, f, start, version), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
