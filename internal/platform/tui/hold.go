package tui

import (
	"time"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// KeyHold turns the terminal's press and auto-repeat events into held
// state. An action stays pressed until no event for it has arrived for
// releaseAfter, then a release is delivered to the tracker.
type KeyHold struct {
	tracker      *core.InputTracker
	releaseAfter time.Duration
	lastSeen     map[core.Action]time.Time
}

// NewKeyHold creates a hold emulator writing to tracker.
func NewKeyHold(tracker *core.InputTracker, releaseAfter time.Duration) *KeyHold {
	return &KeyHold{
		tracker:      tracker,
		releaseAfter: releaseAfter,
		lastSeen:     make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of a.
func (h *KeyHold) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h.lastSeen[a] = now
	h.tracker.SetPressed(a, true)
}

// Expire releases every action whose last event is at least releaseAfter
// old and returns them in action order.
func (h *KeyHold) Expire(now time.Time) []core.Action {
	var released []core.Action
	for _, a := range core.Actions {
		seen, ok := h.lastSeen[a]
		if !ok || now.Sub(seen) < h.releaseAfter {
			continue
		}
		delete(h.lastSeen, a)
		h.tracker.SetPressed(a, false)
		released = append(released, a)
	}
	return released
}

// Reset forgets all held actions without delivering releases and points
// the emulator at a new tracker.
func (h *KeyHold) Reset(tracker *core.InputTracker) {
	clear(h.lastSeen)
	h.tracker = tracker
	h.tracker.Clear()
}

// Held reports whether a is currently held.
func (h *KeyHold) Held(a core.Action) bool {
	_, ok := h.lastSeen[a]
	return ok
}
