// Package tui is the Bubble Tea front end: it owns the terminal loop,
// translates key presses into game actions, and drives registered games
// at a fixed tick rate.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg fires once per simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given ticks-per-second rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
