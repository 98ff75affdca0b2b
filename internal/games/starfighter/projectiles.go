package starfighter

import (
	"time"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// Kill records one projectile destroying one obstacle.
type Kill struct {
	ProjectileID  int
	ObstacleIndex int
}

// ProjectileReport summarizes one projectile update.
type ProjectileReport struct {
	Expired      []int  // Ids dropped for age or range
	Kills        []Kill // In projectile id order
	ScoreDelta   int
	Renormalized int // Directions repaired during advance
}

// ProjectileSystem expires, advances and collides projectiles.
type ProjectileSystem struct {
	cfg config.WeaponConfig
}

// NewProjectileSystem creates a system with the given weapon settings.
func NewProjectileSystem(cfg config.WeaponConfig) *ProjectileSystem {
	return &ProjectileSystem{cfg: cfg}
}

// Update runs expiry, advance and collision in that order.
func (ps *ProjectileSystem) Update(s *GameState, field *ObstacleField, dt, now time.Duration) ProjectileReport {
	var report ProjectileReport

	report.Expired = s.UpdateProjectiles(func(p *Projectile) bool {
		return !ps.expired(p, now)
	})

	step := ps.cfg.ProjectileSpeed * dt.Seconds()
	dropped := s.UpdateProjectiles(func(p *Projectile) bool {
		if !core.IsUnit(p.Direction, unitEpsilon) {
			p.Direction = core.Normalize(p.Direction)
			report.Renormalized++
			if p.Direction.Len() == 0 {
				return false
			}
		}
		p.Position = p.Position.Add(p.Direction.Mul(step))
		return true
	})
	report.Expired = append(report.Expired, dropped...)

	if field == nil {
		return report
	}

	s.UpdateProjectiles(func(p *Projectile) bool {
		idx, ok := field.FirstHit(p.Position, ps.cfg.CollisionFactor)
		if !ok || !field.Destroy(idx) {
			return true
		}
		report.Kills = append(report.Kills, Kill{ProjectileID: p.ID, ObstacleIndex: idx})
		report.ScoreDelta += ps.cfg.KillReward
		return false
	})
	s.IncrementScore(report.ScoreDelta)

	return report
}

func (ps *ProjectileSystem) expired(p *Projectile, now time.Duration) bool {
	if now-p.SpawnTime > ps.cfg.Lifetime {
		return true
	}
	return p.Position.Len() >= ps.cfg.MaxRange
}
