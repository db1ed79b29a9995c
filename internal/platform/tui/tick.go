// Package tui provides the Bubble Tea host for cnake.
// It handles the terminal UI loop, key mapping, and fixed-rate ticking.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one
// interval at the given rate. The model re-arms it after every tick, so the
// simulation rate is independent of how often Bubble Tea redraws.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
