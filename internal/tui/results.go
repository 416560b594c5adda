package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibkm/internal/conversion"
)

var resultColumns = []string{"Method", "Kilometers", "Abs. error", "Rel. error", "Outcome"}

// renderResults lays out one row per method. The tracked method is marked.
func (m Model) renderResults() string {
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}

	rows := make([][]string, len(m.cmp.Entries))
	for i, e := range m.cmp.Entries {
		rows[i] = []string{
			e.Name,
			m.formatter.Distance(e.Kilometers),
			m.formatter.Distance(e.AbsError),
			m.formatter.Percent(e.RelError),
			string(e.Outcome),
		}
	}

	widths := make([]int, len(resultColumns))
	for i, h := range resultColumns {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range resultColumns {
		b.WriteString(columnStyle.Render(pad(h, widths[i], i)))
	}
	for i, row := range rows {
		b.WriteString("\n")
		if i == m.tracked {
			b.WriteString(methodStyle.Render("▶ "))
		} else {
			b.WriteString("  ")
		}
		for j, cell := range row {
			text := pad(cell, widths[j], j)
			switch j {
			case 0:
				b.WriteString(methodStyle.Render(text))
			case len(row) - 1:
				b.WriteString(outcomeStyle(m.cmp.Entries[i].Outcome).Render(text))
			default:
				b.WriteString(text)
			}
		}
	}
	return b.String()
}

// pad left-aligns the first column and right-aligns numbers, separating
// columns by three spaces.
func pad(s string, width, col int) string {
	gap := spaces(width - lipgloss.Width(s))
	switch {
	case col == 0:
		return s + gap
	case col == len(resultColumns)-1:
		return "   " + s
	default:
		return "   " + gap + s
	}
}

func outcomeStyle(o conversion.Outcome) lipgloss.Style {
	switch {
	case o == conversion.OutcomeExact:
		return exactStyle
	case o.IsFallback():
		return fallbackStyle
	default:
		return dimStyle
	}
}

// sampleCurve computes the relative error of the tracked method over the
// distances just below the current one: two braille dots per cell, one
// sample per dot column.
func (m Model) sampleCurve() []float64 {
	if m.tracked >= len(m.converters) || m.width == 0 {
		return nil
	}
	tracked := m.converters[m.tracked]
	n := m.chartWidth() * 2
	samples := make([]float64, 0, n)
	for i := n - 1; i >= 0; i-- {
		miles := m.miles - float64(i)*m.Step()
		if miles < 0 {
			continue
		}
		res, err := tracked.Convert(m.ctx, miles)
		if err != nil {
			continue
		}
		samples = append(samples, relError(miles, res.Kilometers))
	}
	return samples
}

// renderChart draws the sampled curve plus a sparkline of the positions
// visited so far.
func (m Model) renderChart() string {
	if m.tracked >= len(m.converters) {
		return ""
	}
	lines := []string{titleStyle.Render("Relative error, " + m.converters[m.tracked].Name())}
	for _, row := range RenderBrailleChart(Scale(m.curve), m.chartWidth(), chartRows) {
		lines = append(lines, chartStyle.Render(row))
	}
	lines = append(lines, dimStyle.Render("history ")+
		sparklineStyle.Render(RenderSparkline(Scale(m.history.Slice()))))
	return strings.Join(lines, "\n")
}

func relError(miles, km float64) float64 {
	exact := conversion.Exact(miles)
	if exact == 0 {
		return 0
	}
	d := km - exact
	if d < 0 {
		d = -d
	}
	return d / exact
}
