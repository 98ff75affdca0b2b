package starfighter

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// Spin rates per axis, scaled by each obstacle's spin factor.
var spinRates = core.Orientation{Pitch: 0.1, Yaw: 0.15, Roll: 0.05}

// Obstacle is one asteroid.
type Obstacle struct {
	Index       int // Creation order
	Position    mgl64.Vec3
	Orientation core.Orientation
	Scale       float64
	Alive       bool

	initial core.Orientation
	spin    float64
}

// ObstacleField owns the obstacle population for one scene.
// Obstacles are created once and never respawn.
type ObstacleField struct {
	obstacles []Obstacle
	alive     int
}

// NewObstacleField places fixed obstacles first, then count random ones
// uniformly inside a ball of the configured radius.
func NewObstacleField(cfg config.FieldConfig, rng *rand.Rand) (*ObstacleField, error) {
	if err := validateField(cfg); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	f := &ObstacleField{
		obstacles: make([]Obstacle, 0, len(cfg.Fixed)+cfg.Count),
	}

	for _, fixed := range cfg.Fixed {
		f.add(mgl64.Vec3(fixed.Position), core.Orientation{}, fixed.Scale)
	}

	for i := 0; i < cfg.Count; i++ {
		pos := core.RandomInBall(cfg.Radius, rng.Float64(), rng.Float64(), rng.Float64())
		rot := core.Orientation{
			Pitch: rng.Float64() * math.Pi,
			Yaw:   rng.Float64() * math.Pi,
			Roll:  rng.Float64() * math.Pi,
		}
		scale := cfg.ScaleMin + rng.Float64()*(cfg.ScaleMax-cfg.ScaleMin)
		f.add(pos, rot, scale)
	}

	return f, nil
}

func validateField(cfg config.FieldConfig) error {
	switch {
	case cfg.Count < 0:
		return &config.ConfigError{Field: "field.count", Message: fmt.Sprintf("must not be negative, got %d", cfg.Count)}
	case !(cfg.Radius > 0):
		return &config.ConfigError{Field: "field.radius", Message: fmt.Sprintf("must be positive, got %g", cfg.Radius)}
	case !(cfg.ScaleMin > 0):
		return &config.ConfigError{Field: "field.scale_min", Message: fmt.Sprintf("must be positive, got %g", cfg.ScaleMin)}
	case cfg.ScaleMin > cfg.ScaleMax:
		return &config.ConfigError{Field: "field.scale_max", Message: fmt.Sprintf("must be >= scale_min (%g), got %g", cfg.ScaleMin, cfg.ScaleMax)}
	}
	for i, fixed := range cfg.Fixed {
		if !(fixed.Scale > 0) {
			return &config.ConfigError{Field: fmt.Sprintf("field.fixed[%d].scale", i), Message: fmt.Sprintf("must be positive, got %g", fixed.Scale)}
		}
	}
	return nil
}

func (f *ObstacleField) add(pos mgl64.Vec3, rot core.Orientation, scale float64) {
	f.obstacles = append(f.obstacles, Obstacle{
		Index:       len(f.obstacles),
		Position:    pos,
		Orientation: rot,
		Scale:       scale,
		Alive:       true,
		initial:     rot,
		spin:        0.1 + 0.05*math.Sin(0.5*pos.X()),
	})
	f.alive++
}

// Len returns the total number of obstacles, alive or dead.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// AliveCount returns the number of obstacles not yet destroyed.
func (f *ObstacleField) AliveCount() int {
	return f.alive
}

// Obstacle returns a copy of the obstacle at index i.
func (f *ObstacleField) Obstacle(i int) (Obstacle, bool) {
	if i < 0 || i >= len(f.obstacles) {
		return Obstacle{}, false
	}
	return f.obstacles[i], true
}

// Obstacles returns a copy of all obstacles in creation order.
func (f *ObstacleField) Obstacles() []Obstacle {
	out := make([]Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// FirstHit returns the lowest-index alive obstacle whose hit radius
// (scale * factor) strictly contains p.
func (f *ObstacleField) FirstHit(p mgl64.Vec3, factor float64) (int, bool) {
	for i := range f.obstacles {
		o := &f.obstacles[i]
		if !o.Alive {
			continue
		}
		if core.Distance(p, o.Position) < o.Scale*factor {
			return i, true
		}
	}
	return 0, false
}

// Destroy marks the obstacle dead. It returns false if the index is out of
// range or the obstacle was already dead.
func (f *ObstacleField) Destroy(i int) bool {
	if i < 0 || i >= len(f.obstacles) || !f.obstacles[i].Alive {
		return false
	}
	f.obstacles[i].Alive = false
	f.alive--
	return true
}

// Spin sets each obstacle's cosmetic rotation for scene time now.
// Collision ignores orientation.
func (f *ObstacleField) Spin(now time.Duration) {
	t := now.Seconds()
	for i := range f.obstacles {
		o := &f.obstacles[i]
		k := t * o.spin
		o.Orientation = o.initial.Add(core.Orientation{
			Pitch: k * spinRates.Pitch,
			Yaw:   k * spinRates.Yaw,
			Roll:  k * spinRates.Roll,
		})
	}
}
