package starfighter

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-starfighter/internal/config"
)

const frame = time.Second / 60

// emptyConfig returns the default scene with no random obstacles and no
// backdrop.
func emptyConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Field.Count = 0
	cfg.Backdrop.Stars = 0
	return cfg
}

// singleObstacleConfig places one obstacle straight ahead of the craft.
func singleObstacleConfig(z, scale float64) config.Config {
	cfg := emptyConfig()
	cfg.Field.Fixed = []config.FixedObstacle{
		{Position: [3]float64{0, 0, z}, Scale: scale},
	}
	return cfg
}

func newTestGame(t *testing.T, cfg config.Config) *Game {
	t.Helper()
	g, err := New(cfg, WithSeed(1))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

// vecNear compares with an absolute tolerance. mgl64's ApproxEqualThreshold
// squares the threshold when a component is zero.
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}
