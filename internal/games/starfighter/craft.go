package starfighter

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// restingRoll is the roll the craft levels out to when not strafing.
const restingRoll = 0.0

// CraftController turns held input into craft motion and fires on the
// trailing edge of the fire action.
type CraftController struct {
	cfg         config.CraftConfig
	spawnOffset float64
}

// NewCraftController creates a controller for the given movement and
// weapon settings.
func NewCraftController(craft config.CraftConfig, weapon config.WeaponConfig) *CraftController {
	return &CraftController{
		cfg:         craft,
		spawnOffset: weapon.SpawnOffset,
	}
}

// Speed returns the effective movement speed in units per second.
func (c *CraftController) Speed() float64 {
	return c.cfg.Speed * c.cfg.SpeedMultiplier
}

// Update moves the craft for one tick and spawns one projectile per
// completed fire press. It returns the ids of spawned projectiles.
func (c *CraftController) Update(s *GameState, dt, now time.Duration) []int {
	in := s.Input()
	craft := s.Craft()
	secs := dt.Seconds()
	step := c.Speed() * secs

	forward := in.IsPressed(core.ActionForward)
	back := in.IsPressed(core.ActionBack)
	left := in.IsPressed(core.ActionLeft)
	right := in.IsPressed(core.ActionRight)

	// Opposite keys cancel
	switch {
	case forward && !back:
		craft.Position[2] -= step
	case back && !forward:
		craft.Position[2] += step
	}

	// Left wins when both strafe keys are held
	switch {
	case left:
		craft.Position[0] -= step
		craft.Orientation.Roll = core.Approach(craft.Orientation.Roll, -c.cfg.BankAngle, c.cfg.BankRate, secs)
	case right:
		craft.Position[0] += step
		craft.Orientation.Roll = core.Approach(craft.Orientation.Roll, c.cfg.BankAngle, c.cfg.BankRate, secs)
	default:
		craft.Orientation.Roll = core.Approach(craft.Orientation.Roll, restingRoll, c.cfg.LevelRate, secs)
	}

	if !moving(in) {
		craft.Position[1] = c.cfg.BobAmplitude * math.Sin(now.Seconds()*c.cfg.BobFrequency)
	}

	s.SetCraft(craft)

	var fired []int
	for n := in.TakeReleases(core.ActionFire); n > 0; n-- {
		if id, ok := c.fire(s, craft, now); ok {
			fired = append(fired, id)
		}
	}
	return fired
}

// moving reports whether any movement action is held.
func moving(in *core.InputTracker) bool {
	for _, a := range in.Held() {
		if a.IsMovement() {
			return true
		}
	}
	return false
}

func (c *CraftController) fire(s *GameState, craft Craft, now time.Duration) (int, bool) {
	heading := craft.Orientation.Heading()
	spawn := craft.Position.Add(heading.Mul(c.spawnOffset))
	return s.AddProjectile(spawn, heading, now)
}
