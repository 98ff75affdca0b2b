package starfighter

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

func TestCameraProjectsOriginToCenter(t *testing.T) {
	cam := NewCamera(config.DefaultConfig().Camera, 80, 24)

	x, y, depth, ok := cam.Project(mgl64.Vec3{})
	if !ok {
		t.Fatal("origin not visible")
	}
	if x < 39 || x > 40 || y < 11 || y > 12 {
		t.Errorf("origin projected to (%d, %d), want near (40, 12)", x, y)
	}
	if depth <= 0 {
		t.Errorf("depth = %v, want positive", depth)
	}
}

func TestCameraRejectsBehind(t *testing.T) {
	cam := NewCamera(config.DefaultConfig().Camera, 80, 24)
	if _, _, _, ok := cam.Project(mgl64.Vec3{0, 5, 40}); ok {
		t.Error("point behind the camera projected")
	}
}

func TestCameraZeroSize(t *testing.T) {
	cam := NewCamera(config.DefaultConfig().Camera, 0, 0)
	if _, _, _, ok := cam.Project(mgl64.Vec3{}); ok {
		t.Error("zero-sized camera projected a point")
	}
}

func TestRendererDrawsScene(t *testing.T) {
	g := newTestGame(t, singleObstacleConfig(-5, 1.5))
	g.Advance(frame, frame)

	r := NewRenderer(g.Config(), 1, 80, 24)
	screen := core.NewScreen(80, 24)

	r.Draw(screen, g.Snapshot())
	out := screen.String()
	if strings.Count(out, "▲") != 1 {
		t.Errorf("craft drawn %d times, want 1", strings.Count(out, "▲"))
	}
	if !strings.Contains(out, "@") {
		t.Error("obstacle not drawn")
	}

	g.Field().Destroy(0)
	r.Draw(screen, g.Snapshot())
	out = screen.String()
	if strings.ContainsAny(out, "@#") {
		t.Error("dead obstacle drawn")
	}
}

func TestRendererStarfieldSeeded(t *testing.T) {
	cfg := emptyConfig()
	cfg.Backdrop.Stars = 200

	a := core.NewScreen(60, 20)
	b := core.NewScreen(60, 20)
	NewRenderer(cfg, 9, 60, 20).Draw(a, Snapshot{})
	NewRenderer(cfg, 9, 60, 20).Draw(b, Snapshot{})

	if a.String() != b.String() {
		t.Error("equal seeds drew different starfields")
	}
	if !strings.ContainsAny(a.String(), ".+") {
		t.Error("no stars visible")
	}
}

func TestRendererResize(t *testing.T) {
	r := NewRenderer(emptyConfig(), 1, 80, 24)
	screen := core.NewScreen(40, 10)
	r.Draw(screen, Snapshot{})

	if w, h := r.Camera().Size(); w != 40 || h != 10 {
		t.Errorf("camera size = %dx%d, want 40x10", w, h)
	}
}
