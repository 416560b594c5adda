package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibkm/internal/ui"
)

// Style variables for the explorer.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle     lipgloss.Style
	headerStyle    lipgloss.Style
	titleStyle     lipgloss.Style
	versionStyle   lipgloss.Style
	valueStyle     lipgloss.Style
	columnStyle    lipgloss.Style
	methodStyle    lipgloss.Style
	exactStyle     lipgloss.Style
	fallbackStyle  lipgloss.Style
	errorStyle     lipgloss.Style
	chartStyle     lipgloss.Style
	sparklineStyle lipgloss.Style
	dimStyle       lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	columnStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Bold(true)

	methodStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	exactStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	fallbackStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	chartStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	sparklineStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
