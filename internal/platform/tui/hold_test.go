package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

func TestKeyHoldReleasesAfterSilence(t *testing.T) {
	tracker := core.NewInputTracker()
	hold := NewKeyHold(tracker, 150*time.Millisecond)
	t0 := time.Unix(1000, 0)

	hold.Press(core.ActionFire, t0)
	if !tracker.IsPressed(core.ActionFire) {
		t.Fatal("fire not pressed")
	}

	if released := hold.Expire(t0.Add(100 * time.Millisecond)); len(released) != 0 {
		t.Fatalf("released early: %v", released)
	}

	// A repeat extends the hold
	hold.Press(core.ActionFire, t0.Add(120*time.Millisecond))
	if released := hold.Expire(t0.Add(200 * time.Millisecond)); len(released) != 0 {
		t.Fatalf("released despite repeat: %v", released)
	}

	released := hold.Expire(t0.Add(300 * time.Millisecond))
	if len(released) != 1 || released[0] != core.ActionFire {
		t.Fatalf("released = %v, want [fire]", released)
	}
	if tracker.IsPressed(core.ActionFire) {
		t.Error("fire still pressed")
	}
	if n := tracker.TakeReleases(core.ActionFire); n != 1 {
		t.Errorf("releases = %d, want 1", n)
	}
}

func TestKeyHoldIgnoresNone(t *testing.T) {
	tracker := core.NewInputTracker()
	hold := NewKeyHold(tracker, time.Millisecond)

	hold.Press(core.ActionNone, time.Unix(0, 0))
	if hold.Held(core.ActionNone) {
		t.Error("ActionNone held")
	}
}

func TestKeyHoldReset(t *testing.T) {
	tracker := core.NewInputTracker()
	hold := NewKeyHold(tracker, 150*time.Millisecond)
	t0 := time.Unix(0, 0)

	hold.Press(core.ActionFire, t0)
	hold.Press(core.ActionLeft, t0)

	next := core.NewInputTracker()
	hold.Reset(next)

	if hold.Held(core.ActionFire) || hold.Held(core.ActionLeft) {
		t.Error("actions still held after reset")
	}
	if released := hold.Expire(t0.Add(time.Second)); len(released) != 0 {
		t.Errorf("released after reset: %v", released)
	}

	hold.Press(core.ActionRight, t0)
	if !next.IsPressed(core.ActionRight) || tracker.IsPressed(core.ActionRight) {
		t.Error("press did not go to the new tracker")
	}
}

func TestFrameStep(t *testing.T) {
	t0 := time.Unix(0, 0)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want time.Duration
	}{
		{"first tick", time.Time{}, t0, 0},
		{"normal", t0, t0.Add(16 * time.Millisecond), 16 * time.Millisecond},
		{"stall clamped", t0, t0.Add(2 * time.Second), maxFrameStep},
		{"clock went back", t0, t0.Add(-time.Millisecond), -time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameStep(tt.prev, tt.now); got != tt.want {
				t.Errorf("frameStep = %v, want %v", got, tt.want)
			}
		})
	}
}
