// Package starfighter implements the space-combat scene: a player craft
// strafing through an asteroid field and shooting it apart.
//
// The package holds the authoritative simulation. A tick driver calls
// Game.Advance once per frame; renderers read Game.Snapshot afterwards.
package starfighter

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// unitEpsilon is the tolerance for "unit length" direction checks.
const unitEpsilon = 1e-6

// Craft is the player's pose.
type Craft struct {
	Position    mgl64.Vec3
	Orientation core.Orientation
}

// Projectile is a live laser shot.
type Projectile struct {
	ID        int           // Unique, increasing, never reused
	Position  mgl64.Vec3    // Current position
	Direction mgl64.Vec3    // Unit travel direction
	SpawnTime time.Duration // Scene time at spawn
}

// GameState is the single mutable store for the craft, projectiles, score
// and held input. All writes go through its named operations.
type GameState struct {
	craft       Craft
	projectiles []Projectile // Ordered by ID
	nextID      int
	score       int
	input       *core.InputTracker
}

// NewGameState creates an empty state with the craft at the origin.
func NewGameState() *GameState {
	return &GameState{
		input: core.NewInputTracker(),
	}
}

// Craft returns the craft pose.
func (s *GameState) Craft() Craft {
	return s.craft
}

// SetCraft replaces the craft pose. Only the craft controller calls this.
func (s *GameState) SetCraft(c Craft) {
	s.craft = c
}

// Input returns the held-action tracker.
func (s *GameState) Input() *core.InputTracker {
	return s.input
}

// SetKey records the held state of an action.
func (s *GameState) SetKey(a core.Action, pressed bool) {
	s.input.SetPressed(a, pressed)
}

// IsKeyPressed reports whether an action is held.
func (s *GameState) IsKeyPressed(a core.Action) bool {
	return s.input.IsPressed(a)
}

// Score returns the current score.
func (s *GameState) Score() int {
	return s.score
}

// IncrementScore adds points. Non-positive amounts are ignored so the score
// never decreases.
func (s *GameState) IncrementScore(points int) {
	if points <= 0 {
		return
	}
	s.score += points
}

// NextProjectileID returns the id the next projectile will receive.
func (s *GameState) NextProjectileID() int {
	return s.nextID
}

// AddProjectile spawns a projectile at position heading along direction.
// The direction is normalized; a zero direction is rejected and no id is
// consumed.
func (s *GameState) AddProjectile(position, direction mgl64.Vec3, now time.Duration) (int, bool) {
	dir := core.Normalize(direction)
	if dir == (mgl64.Vec3{}) {
		return 0, false
	}

	id := s.nextID
	s.nextID++
	s.projectiles = append(s.projectiles, Projectile{
		ID:        id,
		Position:  position,
		Direction: dir,
		SpawnTime: now,
	})
	return id, true
}

// RemoveProjectile drops the projectile with the given id.
// Returns false if it is not live.
func (s *GameState) RemoveProjectile(id int) bool {
	for i := range s.projectiles {
		if s.projectiles[i].ID == id {
			s.projectiles = append(s.projectiles[:i], s.projectiles[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateProjectiles calls fn for every live projectile in id order. fn may
// modify the projectile; returning false removes it. The ids of removed
// projectiles are returned in order.
func (s *GameState) UpdateProjectiles(fn func(p *Projectile) bool) []int {
	var removed []int
	kept := s.projectiles[:0] // reuse backing array
	for i := range s.projectiles {
		p := s.projectiles[i]
		if fn(&p) {
			kept = append(kept, p)
		} else {
			removed = append(removed, p.ID)
		}
	}
	// Clear the tail so removed entries do not linger in the backing array
	for i := len(kept); i < len(s.projectiles); i++ {
		s.projectiles[i] = Projectile{}
	}
	s.projectiles = kept
	return removed
}

// Projectiles returns a copy of the live projectiles in id order.
func (s *GameState) Projectiles() []Projectile {
	out := make([]Projectile, len(s.projectiles))
	copy(out, s.projectiles)
	return out
}

// ProjectileCount returns the number of live projectiles.
func (s *GameState) ProjectileCount() int {
	return len(s.projectiles)
}
