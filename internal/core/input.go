package core

import (
	"strings"
	"sync"
)

// Action represents a logical flight control, abstracted from physical keys.
// The mapping from raw keys to actions lives in the platform layer.
type Action int

const (
	ActionNone    Action = iota
	ActionForward        // Thrust along -Z
	ActionBack           // Reverse along +Z
	ActionLeft           // Strafe left and bank
	ActionRight          // Strafe right and bank
	ActionFire           // Fires on release
)

// Actions lists every bindable action in a stable order.
var Actions = []Action{ActionForward, ActionBack, ActionLeft, ActionRight, ActionFire}

// String returns the config name of the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionForward:
		return "forward"
	case ActionBack:
		return "back"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionFire:
		return "fire"
	default:
		return "unknown"
	}
}

// ParseAction resolves an action name, ignoring case and surrounding space.
// Returns ActionNone and false for unknown names.
func ParseAction(name string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "forward":
		return ActionForward, true
	case "back", "backward":
		return ActionBack, true
	case "left":
		return ActionLeft, true
	case "right":
		return ActionRight, true
	case "fire":
		return ActionFire, true
	}
	return ActionNone, false
}

// IsMovement reports whether the action moves the craft.
func (a Action) IsMovement() bool {
	return a >= ActionForward && a <= ActionRight
}

// InputTracker records which logical actions are currently held.
// The input source may update it between ticks from another goroutine;
// the simulation reads it at tick start.
type InputTracker struct {
	mu       sync.RWMutex
	pressed  map[Action]bool
	releases map[Action]int // pressed->released transitions not yet consumed
}

// NewInputTracker creates a tracker with nothing held.
func NewInputTracker() *InputTracker {
	return &InputTracker{
		pressed:  make(map[Action]bool),
		releases: make(map[Action]int),
	}
}

// SetPressed records the held state of an action.
// Repeating the same state is a no-op; only a held action that is released
// counts as a release transition.
func (t *InputTracker) SetPressed(a Action, pressed bool) {
	if a == ActionNone {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	was := t.pressed[a]
	if pressed {
		t.pressed[a] = true
		return
	}
	if was {
		t.releases[a]++
	}
	delete(t.pressed, a)
}

// IsPressed returns whether the action is held. Unknown actions are not.
func (t *InputTracker) IsPressed(a Action) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pressed[a]
}

// TakeReleases returns and clears the number of release transitions seen
// for an action since the last call.
func (t *InputTracker) TakeReleases(a Action) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.releases[a]
	delete(t.releases, a)
	return n
}

// Held returns the held actions in stable order.
func (t *InputTracker) Held() []Action {
	t.mu.RLock()
	defer t.mu.RUnlock()

	held := make([]Action, 0, len(t.pressed))
	for _, a := range Actions {
		if t.pressed[a] {
			held = append(held, a)
		}
	}
	return held
}

// Clear releases everything without recording release transitions.
func (t *InputTracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for k := range t.pressed {
		delete(t.pressed, k)
	}
	for k := range t.releases {
		delete(t.releases, k)
	}
}
