// Package tui provides the Bubble Tea driver for the snake engine.
// It handles the terminal loop, key bindings, tick scheduling and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the tick
// loop that scheduled it; ticks from a stopped loop are dropped.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
