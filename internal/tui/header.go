package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the top bar: title, version and the current position.
type HeaderModel struct {
	version string
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header with the already formatted distance and step.
func (h HeaderModel) View(miles, step string) string {
	titleText := "Fibonacci Distance Explorer"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := versionStyle.Render(" | ")
	leftPart := titleStyle.Render(titleText) + pipe +
		valueStyle.Render(miles+" miles") + pipe +
		versionStyle.Render("step "+step)

	innerWidth := h.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	gap := innerWidth - lipgloss.Width(leftPart)

	return headerStyle.Width(h.width).Render(leftPart + spaces(gap))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
