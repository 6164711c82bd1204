// Package tui hosts the game in a Bubble Tea program.
// Key presses feed an intent latch; tick messages drive the engine's
// fixed-step accumulator.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a driver update.
type TickMsg time.Time

// Time returns the tick's timestamp.
func (t TickMsg) Time() time.Time {
	return time.Time(t)
}

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
