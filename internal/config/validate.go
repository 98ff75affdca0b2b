package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ConfigError reports one invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ReservedKeys are handled by the front end (pause, restart, quit) and
// cannot be bound to scene actions.
var ReservedKeys = []string{"p", "esc", "r", "q", "ctrl+c"}

// Validate checks every value the scene depends on and returns all
// problems joined together, or nil.
func Validate(cfg Config) error {
	var v validator

	// Field
	v.check(cfg.Field.Count >= 0, "field.count", "must not be negative, got %d", cfg.Field.Count)
	v.positive("field.radius", cfg.Field.Radius)
	v.positive("field.scale_min", cfg.Field.ScaleMin)
	v.positive("field.scale_max", cfg.Field.ScaleMax)
	v.check(cfg.Field.ScaleMin <= cfg.Field.ScaleMax, "field.scale_min",
		"must not exceed scale_max (%g > %g)", cfg.Field.ScaleMin, cfg.Field.ScaleMax)
	for i, f := range cfg.Field.Fixed {
		name := fmt.Sprintf("field.fixed[%d]", i)
		v.positive(name+".scale", f.Scale)
		for _, c := range f.Position {
			if !finite(c) {
				v.add(name+".position", "must be finite, got %v", f.Position)
				break
			}
		}
	}

	// Craft
	v.positive("craft.speed", cfg.Craft.Speed)
	v.positive("craft.speed_multiplier", cfg.Craft.SpeedMultiplier)
	v.nonNegative("craft.bank_angle", cfg.Craft.BankAngle)
	v.positive("craft.bank_rate", cfg.Craft.BankRate)
	v.positive("craft.level_rate", cfg.Craft.LevelRate)
	v.nonNegative("craft.bob_amplitude", cfg.Craft.BobAmplitude)
	v.nonNegative("craft.bob_frequency", cfg.Craft.BobFrequency)

	// Weapon
	v.positive("weapon.projectile_speed", cfg.Weapon.ProjectileSpeed)
	v.check(cfg.Weapon.Lifetime > 0, "weapon.lifetime", "must be positive, got %s", cfg.Weapon.Lifetime)
	v.positive("weapon.max_range", cfg.Weapon.MaxRange)
	v.nonNegative("weapon.spawn_offset", cfg.Weapon.SpawnOffset)
	v.check(cfg.Weapon.CollisionFactor > 0 && cfg.Weapon.CollisionFactor <= 1, "weapon.collision_factor",
		"must be in (0, 1], got %g", cfg.Weapon.CollisionFactor)
	v.check(cfg.Weapon.KillReward >= 0, "weapon.kill_reward", "must not be negative, got %d", cfg.Weapon.KillReward)

	// Controls
	bindings := []struct {
		name string
		keys []string
	}{
		{"controls.forward", cfg.Controls.Forward},
		{"controls.back", cfg.Controls.Back},
		{"controls.left", cfg.Controls.Left},
		{"controls.right", cfg.Controls.Right},
		{"controls.fire", cfg.Controls.Fire},
	}
	owner := make(map[string]string)
	for _, k := range ReservedKeys {
		owner[k] = "a built-in command"
	}
	for _, b := range bindings {
		v.check(len(b.keys) > 0, b.name, "needs at least one key")
		for _, k := range b.keys {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				v.add(b.name, "contains an empty key")
				continue
			}
			if prev, ok := owner[k]; ok && prev != b.name {
				v.add(b.name, "key %q is already bound to %s", k, prev)
				continue
			}
			owner[k] = b.name
		}
	}
	v.check(cfg.Controls.ReleaseAfter > 0, "controls.release_after", "must be positive, got %s", cfg.Controls.ReleaseAfter)

	// Camera
	v.check(cfg.Camera.FOV > 0 && cfg.Camera.FOV < 180, "camera.fov", "must be in (0, 180), got %g", cfg.Camera.FOV)
	// The camera looks at the origin with +Y up, so it cannot sit on the Y axis.
	v.check(cfg.Camera.Position[0] != 0 || cfg.Camera.Position[2] != 0, "camera.position",
		"must not lie on the vertical axis, got %v", cfg.Camera.Position)

	v.check(cfg.Backdrop.Stars >= 0, "backdrop.stars", "must not be negative, got %d", cfg.Backdrop.Stars)

	return errors.Join(v.errs...)
}

type validator struct {
	errs []error
}

func (v *validator) add(field, format string, args ...any) {
	v.errs = append(v.errs, &ConfigError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) check(ok bool, field, format string, args ...any) {
	if !ok {
		v.add(field, format, args...)
	}
}

func (v *validator) positive(field string, val float64) {
	v.check(finite(val) && val > 0, field, "must be positive, got %g", val)
}

func (v *validator) nonNegative(field string, val float64) {
	v.check(finite(val) && val >= 0, field, "must not be negative, got %g", val)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
