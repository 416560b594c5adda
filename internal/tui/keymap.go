package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the explorer.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	StepUp   key.Binding
	StepDown key.Binding
	NextKnot key.Binding
	PrevKnot key.Binding
	Track    key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/k", "more miles"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/j", "fewer miles"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "larger step"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "smaller step"),
		),
		NextKnot: key.NewBinding(
			key.WithKeys("n", "pgup"),
			key.WithHelp("n", "next Fibonacci number"),
		),
		PrevKnot: key.NewBinding(
			key.WithKeys("p", "pgdown"),
			key.WithHelp("p", "previous Fibonacci number"),
		),
		Track: key.NewBinding(
			key.WithKeys("tab", "t"),
			key.WithHelp("tab", "track next method"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.StepUp, k.StepDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.StepUp, k.StepDown},
		{k.NextKnot, k.PrevKnot, k.Track, k.Reset},
		{k.Help, k.Quit},
	}
}
