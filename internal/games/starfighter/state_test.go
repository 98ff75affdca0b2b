package starfighter

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

func TestAddProjectileAssignsIncreasingIDs(t *testing.T) {
	s := NewGameState()

	for want := 0; want < 5; want++ {
		id, ok := s.AddProjectile(mgl64.Vec3{}, core.Forward, 0)
		if !ok {
			t.Fatalf("AddProjectile #%d rejected", want)
		}
		if id != want {
			t.Errorf("id = %d, want %d", id, want)
		}
	}

	// Removing does not free ids for reuse
	s.RemoveProjectile(4)
	id, _ := s.AddProjectile(mgl64.Vec3{}, core.Forward, 0)
	if id != 5 {
		t.Errorf("id after removal = %d, want 5", id)
	}
}

func TestAddProjectileNormalizesDirection(t *testing.T) {
	s := NewGameState()
	id, ok := s.AddProjectile(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 0, -7}, 0)
	if !ok {
		t.Fatal("AddProjectile rejected a valid direction")
	}

	p := s.Projectiles()[0]
	if p.ID != id {
		t.Errorf("ID = %d, want %d", p.ID, id)
	}
	if !vecNear(p.Direction, core.Forward, 1e-12) {
		t.Errorf("Direction = %v, want %v", p.Direction, core.Forward)
	}
	if p.Position != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("Position = %v", p.Position)
	}
}

func TestAddProjectileRejectsZeroDirection(t *testing.T) {
	s := NewGameState()
	if _, ok := s.AddProjectile(mgl64.Vec3{}, mgl64.Vec3{}, 0); ok {
		t.Fatal("zero direction accepted")
	}
	if s.ProjectileCount() != 0 {
		t.Errorf("ProjectileCount = %d, want 0", s.ProjectileCount())
	}
	if s.NextProjectileID() != 0 {
		t.Errorf("rejected spawn consumed an id")
	}
}

func TestRemoveProjectile(t *testing.T) {
	s := NewGameState()
	for i := 0; i < 3; i++ {
		s.AddProjectile(mgl64.Vec3{}, core.Forward, 0)
	}

	if !s.RemoveProjectile(1) {
		t.Fatal("RemoveProjectile(1) = false")
	}
	if s.RemoveProjectile(1) {
		t.Error("second RemoveProjectile(1) = true")
	}

	got := s.Projectiles()
	if len(got) != 2 || got[0].ID != 0 || got[1].ID != 2 {
		t.Errorf("Projectiles = %+v, want ids [0 2]", got)
	}
}

func TestUpdateProjectilesKeepsOrder(t *testing.T) {
	s := NewGameState()
	for i := 0; i < 6; i++ {
		s.AddProjectile(mgl64.Vec3{}, core.Forward, 0)
	}

	removed := s.UpdateProjectiles(func(p *Projectile) bool {
		p.Position[0] = float64(p.ID)
		return p.ID%2 == 0
	})

	if len(removed) != 3 || removed[0] != 1 || removed[1] != 3 || removed[2] != 5 {
		t.Errorf("removed = %v, want [1 3 5]", removed)
	}
	for i, p := range s.Projectiles() {
		if p.ID != i*2 {
			t.Errorf("Projectiles[%d].ID = %d, want %d", i, p.ID, i*2)
		}
		if p.Position[0] != float64(p.ID) {
			t.Errorf("mutation lost for id %d", p.ID)
		}
	}
}

func TestProjectilesReturnsCopy(t *testing.T) {
	s := NewGameState()
	s.AddProjectile(mgl64.Vec3{}, core.Forward, 0)

	got := s.Projectiles()
	got[0].Position = mgl64.Vec3{9, 9, 9}

	if s.Projectiles()[0].Position != (mgl64.Vec3{}) {
		t.Error("modifying the returned slice changed the state")
	}
}

func TestIncrementScore(t *testing.T) {
	s := NewGameState()
	s.IncrementScore(100)
	s.IncrementScore(0)
	s.IncrementScore(-50)
	s.IncrementScore(100)

	if s.Score() != 200 {
		t.Errorf("Score = %d, want 200", s.Score())
	}
}

func TestSetKey(t *testing.T) {
	s := NewGameState()
	s.SetKey(core.ActionFire, true)
	if !s.IsKeyPressed(core.ActionFire) {
		t.Error("fire not pressed after SetKey")
	}
	if s.IsKeyPressed(core.ActionLeft) {
		t.Error("left pressed without SetKey")
	}
}
