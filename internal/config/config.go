// Package config provides YAML-based scene configuration loading,
// validation and field presets.
package config

import "time"

// Config contains all tunables for the starfighter scene.
// Every value is applied when the scene is created; nothing is re-read
// while it runs.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Craft    CraftConfig    `yaml:"craft"`
	Weapon   WeaponConfig   `yaml:"weapon"`
	Controls ControlsConfig `yaml:"controls"`
	Camera   CameraConfig   `yaml:"camera"`
	Backdrop BackdropConfig `yaml:"backdrop"`
}

// FieldConfig defines the obstacle population.
type FieldConfig struct {
	Count    int             `yaml:"count"`     // Randomly placed obstacles
	Radius   float64         `yaml:"radius"`    // Placement ball radius around the origin
	ScaleMin float64         `yaml:"scale_min"` // Smallest obstacle scale
	ScaleMax float64         `yaml:"scale_max"` // Largest obstacle scale
	Fixed    []FixedObstacle `yaml:"fixed,omitempty"`
}

// FixedObstacle places one obstacle at an exact spot, ahead of the random
// population.
type FixedObstacle struct {
	Position [3]float64 `yaml:"position"`
	Scale    float64    `yaml:"scale"`
}

// CraftConfig defines player movement.
type CraftConfig struct {
	Speed           float64 `yaml:"speed"`            // Base speed
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Effective speed = speed * multiplier, units/s
	BankAngle       float64 `yaml:"bank_angle"`       // Roll target while strafing, radians
	BankRate        float64 `yaml:"bank_rate"`        // Roll smoothing rate toward bank, 1/s
	LevelRate       float64 `yaml:"level_rate"`       // Roll smoothing rate back to level, 1/s
	BobAmplitude    float64 `yaml:"bob_amplitude"`    // Idle hover height
	BobFrequency    float64 `yaml:"bob_frequency"`    // Idle hover frequency, rad/s
}

// WeaponConfig defines projectile behavior and scoring.
type WeaponConfig struct {
	ProjectileSpeed float64       `yaml:"projectile_speed"` // Units per second
	Lifetime        time.Duration `yaml:"lifetime"`         // Maximum projectile age
	MaxRange        float64       `yaml:"max_range"`        // Maximum distance from the origin
	SpawnOffset     float64       `yaml:"spawn_offset"`     // Distance ahead of the craft
	CollisionFactor float64       `yaml:"collision_factor"` // Hit radius = scale * factor
	KillReward      int           `yaml:"kill_reward"`      // Points per destroyed obstacle
}

// ControlsConfig maps logical actions to terminal key names.
type ControlsConfig struct {
	Forward []string `yaml:"forward"`
	Back    []string `yaml:"back"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Fire    []string `yaml:"fire"`

	// ReleaseAfter is how long a key counts as held after its last press or
	// repeat. Terminals do not report key-up events.
	ReleaseAfter time.Duration `yaml:"release_after"`
}

// CameraConfig positions the terminal camera.
type CameraConfig struct {
	Position [3]float64 `yaml:"position"`
	FOV      float64    `yaml:"fov"` // Vertical field of view, degrees
}

// BackdropConfig controls the decorative starfield.
type BackdropConfig struct {
	Stars int `yaml:"stars"`
}
