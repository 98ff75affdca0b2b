package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/starfighter.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in scene configuration.
// It mirrors defaults/starfighter.yaml and is the fallback when the
// embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Count:    50,
			Radius:   30,
			ScaleMin: 0.3,
			ScaleMax: 1.5,
		},
		Craft: CraftConfig{
			Speed:           0.1,
			SpeedMultiplier: 10,
			BankAngle:       0.5,
			BankRate:        5,
			LevelRate:       2.5,
			BobAmplitude:    0.05,
			BobFrequency:    0.5,
		},
		Weapon: WeaponConfig{
			ProjectileSpeed: 50,
			Lifetime:        3 * time.Second,
			MaxRange:        100,
			SpawnOffset:     1,
			CollisionFactor: 0.9,
			KillReward:      100,
		},
		Controls: ControlsConfig{
			Forward:      []string{"up", "w"},
			Back:         []string{"down", "s"},
			Left:         []string{"left", "a"},
			Right:        []string{"right", "d"},
			Fire:         []string{"f", "space"},
			ReleaseAfter: 550 * time.Millisecond,
		},
		Camera: CameraConfig{
			Position: [3]float64{0, 5, 15},
			FOV:      60,
		},
		Backdrop: BackdropConfig{
			Stars: 150,
		},
	}
}
