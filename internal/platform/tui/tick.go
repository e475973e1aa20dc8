// Package tui hosts games in the terminal with Bubble Tea.
// It runs the fixed-rate tick loop, maps keys to game actions and draws the
// screen buffer, both locally and for SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that scheduled it, so a model ignores ticks
// left over from a game that has already been closed.
type TickMsg struct {
	Loop uint64
	At   time.Time
}

var loopIDs atomic.Uint64

// newLoopID returns an identifier for a new tick loop.
func newLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, At: t}
	})
}
