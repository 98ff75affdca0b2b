package starfighter

import (
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// Autopilot produces scripted input for headless runs. It taps fire every
// FireEvery ticks and weaves left and right every WeaveEvery ticks.
type Autopilot struct {
	FireEvery  int
	WeaveEvery int

	tick    int
	firing  bool
	weaving core.Action
}

// NewAutopilot creates an autopilot. Non-positive intervals disable the
// corresponding behavior.
func NewAutopilot(fireEvery, weaveEvery int) *Autopilot {
	return &Autopilot{FireEvery: fireEvery, WeaveEvery: weaveEvery}
}

// Step writes this tick's input into the tracker. Call it once before
// each Advance.
func (a *Autopilot) Step(in *core.InputTracker) {
	a.tick++

	// A tap is a press on one tick and a release on the next
	if a.firing {
		in.SetPressed(core.ActionFire, false)
		a.firing = false
	} else if a.FireEvery > 0 && a.tick%a.FireEvery == 0 {
		in.SetPressed(core.ActionFire, true)
		a.firing = true
	}

	if a.WeaveEvery > 0 && a.tick%a.WeaveEvery == 0 {
		if a.weaving != core.ActionNone {
			in.SetPressed(a.weaving, false)
		}
		switch a.weaving {
		case core.ActionLeft:
			a.weaving = core.ActionRight
		case core.ActionRight:
			a.weaving = core.ActionNone
		default:
			a.weaving = core.ActionLeft
		}
		if a.weaving != core.ActionNone {
			in.SetPressed(a.weaving, true)
		}
	}
}
