// Package tui runs the starfighter scene in a terminal with Bubble Tea.
// It owns the frame loop, key mapping and drawing; the simulation itself
// lives in the starfighter package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameStep caps dt after a stall such as a suspended terminal.
const maxFrameStep = 100 * time.Millisecond

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameStep returns the clamped time between two ticks. The first tick
// (zero prev) has no elapsed time.
func frameStep(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev)
	if dt > maxFrameStep {
		dt = maxFrameStep
	}
	return dt
}
