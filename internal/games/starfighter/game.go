package starfighter

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// TickResult reports what happened during one Advance call.
type TickResult struct {
	Tick       uint64 // Tick counter after this call
	Skipped    bool   // True when the tick was rejected (negative dt)
	Fired      []int  // Ids of projectiles spawned this tick
	Expired    []int  // Ids dropped for age, range or a broken direction
	Kills      []Kill
	ScoreDelta int
	Score      int
}

// Game wires the scene components and drives them once per tick.
type Game struct {
	cfg         config.Config
	seed        int64
	logger      *log.Logger
	state       *GameState
	field       *ObstacleField
	craft       *CraftController
	projectiles *ProjectileSystem

	tick  uint64
	now   time.Duration
	kills int
	shots int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for warnings and kill events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSeed fixes the random seed for obstacle placement.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// New creates a scene from cfg.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("starfighter: invalid config: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		seed:   time.Now().UnixNano(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	field, err := NewObstacleField(cfg.Field, rand.New(rand.NewSource(g.seed)))
	if err != nil {
		return nil, fmt.Errorf("starfighter: failed to create obstacle field: %w", err)
	}

	g.field = field
	g.state = NewGameState()
	g.craft = NewCraftController(cfg.Craft, cfg.Weapon)
	g.projectiles = NewProjectileSystem(cfg.Weapon)

	g.logger.Info("obstacle field created", "seed", g.seed, "obstacles", field.Len(), "radius", cfg.Field.Radius)
	return g, nil
}

// Advance runs one tick. dt is the frame time, now the scene time since
// start. A negative dt skips the tick; a now earlier than the previous
// tick is clamped.
func (g *Game) Advance(dt, now time.Duration) TickResult {
	if dt < 0 {
		g.logger.Warn("skipping tick with negative dt", "dt", dt, "tick", g.tick)
		return TickResult{Tick: g.tick, Skipped: true, Score: g.state.Score()}
	}
	if now < g.now {
		g.logger.Warn("scene time went backwards, clamping", "now", now, "previous", g.now)
		now = g.now
	}
	g.now = now
	g.tick++

	fired := g.craft.Update(g.state, dt, now)
	report := g.projectiles.Update(g.state, g.field, dt, now)
	g.field.Spin(now)

	if report.Renormalized > 0 {
		g.logger.Warn("renormalized projectile directions", "count", report.Renormalized, "tick", g.tick)
	}
	for _, k := range report.Kills {
		g.logger.Debug("obstacle destroyed", "projectile", k.ProjectileID, "obstacle", k.ObstacleIndex, "tick", g.tick)
	}

	g.shots += len(fired)
	g.kills += len(report.Kills)

	return TickResult{
		Tick:       g.tick,
		Fired:      fired,
		Expired:    report.Expired,
		Kills:      report.Kills,
		ScoreDelta: report.ScoreDelta,
		Score:      g.state.Score(),
	}
}

// Input returns the tracker the front end writes held actions to.
func (g *Game) Input() *core.InputTracker {
	return g.state.Input()
}

// State returns the scene state.
func (g *Game) State() *GameState {
	return g.state
}

// Field returns the obstacle field.
func (g *Game) Field() *ObstacleField {
	return g.field
}

// Config returns the configuration the scene was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Seed returns the obstacle placement seed.
func (g *Game) Seed() int64 {
	return g.seed
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score()
}

// Kills returns the number of obstacles destroyed so far.
func (g *Game) Kills() int {
	return g.kills
}

// Shots returns the number of projectiles fired so far.
func (g *Game) Shots() int {
	return g.shots
}

// Now returns the scene time of the last tick.
func (g *Game) Now() time.Duration {
	return g.now
}

// Tick returns the number of ticks run.
func (g *Game) Tick() uint64 {
	return g.tick
}
