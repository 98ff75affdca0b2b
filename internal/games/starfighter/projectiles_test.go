package starfighter

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

func newField(t *testing.T, cfg config.FieldConfig) *ObstacleField {
	t.Helper()
	f, err := NewObstacleField(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewObstacleField() error = %v", err)
	}
	return f
}

func TestProjectileLifetime(t *testing.T) {
	cfg := emptyConfig()
	cfg.Weapon.MaxRange = 1e6
	ps := NewProjectileSystem(cfg.Weapon)
	s := NewGameState()
	s.AddProjectile(mgl64.Vec3{}, core.Forward, 0)

	ps.Update(s, nil, 0, 2900*time.Millisecond)
	if s.ProjectileCount() != 1 {
		t.Fatal("projectile expired before its lifetime")
	}

	ps.Update(s, nil, 0, 3*time.Second)
	if s.ProjectileCount() != 1 {
		t.Fatal("projectile expired at exactly its lifetime")
	}

	report := ps.Update(s, nil, 0, 3100*time.Millisecond)
	if s.ProjectileCount() != 0 {
		t.Fatal("projectile still live after its lifetime")
	}
	if len(report.Expired) != 1 || report.Expired[0] != 0 {
		t.Errorf("Expired = %v, want [0]", report.Expired)
	}
}

func TestProjectileMaxRange(t *testing.T) {
	cfg := emptyConfig()
	ps := NewProjectileSystem(cfg.Weapon)
	s := NewGameState()
	s.AddProjectile(mgl64.Vec3{0, 0, -99.9}, core.Forward, 0)
	s.AddProjectile(mgl64.Vec3{0, 0, -100}, core.Forward, 0)
	s.AddProjectile(mgl64.Vec3{60, 0, -80}, core.Forward, 0)

	ps.Update(s, nil, 0, 0)

	got := s.Projectiles()
	if len(got) != 1 || got[0].ID != 0 {
		t.Errorf("live projectiles = %+v, want only id 0", got)
	}
}

func TestProjectileAdvance(t *testing.T) {
	cfg := emptyConfig()
	ps := NewProjectileSystem(cfg.Weapon)
	s := NewGameState()
	s.AddProjectile(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 3, -4}, 0)

	ps.Update(s, nil, 100*time.Millisecond, 100*time.Millisecond)

	// 50 units/s for 0.1 s along (0, 0.6, -0.8)
	want := mgl64.Vec3{1, 3, -4}
	if got := s.Projectiles()[0].Position; !vecNear(got, want, 1e-9) {
		t.Errorf("Position = %v, want %v", got, want)
	}
}

func TestProjectileRenormalized(t *testing.T) {
	cfg := emptyConfig()
	ps := NewProjectileSystem(cfg.Weapon)
	s := NewGameState()
	s.AddProjectile(mgl64.Vec3{}, core.Forward, 0)
	s.UpdateProjectiles(func(p *Projectile) bool {
		p.Direction = mgl64.Vec3{0, 0, -2}
		return true
	})

	report := ps.Update(s, nil, 0, 0)

	if report.Renormalized != 1 {
		t.Errorf("Renormalized = %d, want 1", report.Renormalized)
	}
	if d := s.Projectiles()[0].Direction; !core.IsUnit(d, 1e-9) {
		t.Errorf("Direction = %v, want unit length", d)
	}
}

func TestProjectileHit(t *testing.T) {
	cfg := singleObstacleConfig(-5, 1)
	ps := NewProjectileSystem(cfg.Weapon)
	field := newField(t, cfg.Field)
	s := NewGameState()
	s.AddProjectile(mgl64.Vec3{0, 0.5, -5}, core.Forward, 0)

	report := ps.Update(s, field, 0, 0)

	if len(report.Kills) != 1 || report.Kills[0] != (Kill{ProjectileID: 0, ObstacleIndex: 0}) {
		t.Errorf("Kills = %+v", report.Kills)
	}
	if report.ScoreDelta != 100 || s.Score() != 100 {
		t.Errorf("ScoreDelta = %d, Score = %d, want 100", report.ScoreDelta, s.Score())
	}
	if s.ProjectileCount() != 0 {
		t.Error("projectile survived its hit")
	}
	if o, _ := field.Obstacle(0); o.Alive {
		t.Error("obstacle survived")
	}
}

func TestProjectileHitRadiusIsStrict(t *testing.T) {
	cfg := singleObstacleConfig(-5, 1)
	cfg.Weapon.CollisionFactor = 0.5
	ps := NewProjectileSystem(cfg.Weapon)
	field := newField(t, cfg.Field)
	s := NewGameState()
	s.AddProjectile(mgl64.Vec3{0, 0, -4.5}, core.Forward, 0)

	if report := ps.Update(s, field, 0, 0); len(report.Kills) != 0 {
		t.Errorf("hit at exactly scale*factor: %+v", report.Kills)
	}
}

func TestTwoProjectilesOneObstacle(t *testing.T) {
	cfg := singleObstacleConfig(-5, 1)
	ps := NewProjectileSystem(cfg.Weapon)
	field := newField(t, cfg.Field)
	s := NewGameState()
	s.AddProjectile(mgl64.Vec3{0, 0, -5}, core.Forward, 0)
	s.AddProjectile(mgl64.Vec3{0, 0, -5.1}, core.Forward, 0)

	report := ps.Update(s, field, 0, 0)

	if len(report.Kills) != 1 || report.Kills[0].ProjectileID != 0 {
		t.Fatalf("Kills = %+v, want one kill by projectile 0", report.Kills)
	}
	if s.Score() != 100 {
		t.Errorf("Score = %d, want 100", s.Score())
	}
	got := s.Projectiles()
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("live projectiles = %+v, want only id 1", got)
	}

	// The dead obstacle stays dead and cannot be hit again
	report = ps.Update(s, field, 0, 0)
	if len(report.Kills) != 0 {
		t.Errorf("dead obstacle hit again: %+v", report.Kills)
	}
}

func TestOneKillPerProjectile(t *testing.T) {
	cfg := emptyConfig()
	cfg.Field.Fixed = []config.FixedObstacle{
		{Position: [3]float64{0, 0, -5}, Scale: 1},
		{Position: [3]float64{0, 0, -5.2}, Scale: 1},
	}
	ps := NewProjectileSystem(cfg.Weapon)
	field := newField(t, cfg.Field)
	s := NewGameState()
	s.AddProjectile(mgl64.Vec3{0, 0, -5.1}, core.Forward, 0)

	report := ps.Update(s, field, 0, 0)

	if len(report.Kills) != 1 || report.Kills[0].ObstacleIndex != 0 {
		t.Fatalf("Kills = %+v, want one kill of obstacle 0", report.Kills)
	}
	if field.AliveCount() != 1 {
		t.Errorf("AliveCount = %d, want 1", field.AliveCount())
	}
}

func TestProjectileSystemNoFieldSkipsCollision(t *testing.T) {
	cfg := emptyConfig()
	ps := NewProjectileSystem(cfg.Weapon)
	s := NewGameState()
	s.AddProjectile(mgl64.Vec3{}, core.Forward, 0)

	report := ps.Update(s, nil, frame, frame)
	if len(report.Kills) != 0 || s.ProjectileCount() != 1 {
		t.Errorf("report = %+v, live = %d", report, s.ProjectileCount())
	}
	if z := s.Projectiles()[0].Position.Z(); math.Abs(z+50*frame.Seconds()) > 1e-9 {
		t.Errorf("z = %v", z)
	}
}
