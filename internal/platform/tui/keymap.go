package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cnake/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Pause     key.Binding
	Confirm   key.Binding
	Space     key.Binding // Pause while playing, confirm otherwise
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Pause, k.Confirm, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Confirm, k.Space},
		{k.Quit, k.ForceQuit, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/resume"),
		),
		Space: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "pause/start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// Direction returns the heading bound to msg, if any.
func (k KeyMap) Direction(msg tea.KeyMsg) (core.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.DirUp, true
	case key.Matches(msg, k.Down):
		return core.DirDown, true
	case key.Matches(msg, k.Left):
		return core.DirLeft, true
	case key.Matches(msg, k.Right):
		return core.DirRight, true
	}
	return 0, false
}
