package config

import "fmt"

// FieldPreset represents a named obstacle density.
// Presets only shape the field at creation; there is no progression.
type FieldPreset string

const (
	FieldSparse FieldPreset = "sparse"
	FieldNormal FieldPreset = "normal"
	FieldDense  FieldPreset = "dense"
)

// ParseFieldPreset resolves a preset name. The empty string means "keep the
// configured field".
func ParseFieldPreset(name string) (FieldPreset, error) {
	switch FieldPreset(name) {
	case "":
		return "", nil
	case FieldSparse, FieldNormal, FieldDense:
		return FieldPreset(name), nil
	default:
		return "", &ConfigError{
			Field:   "field.preset",
			Message: fmt.Sprintf("unknown preset %q (want sparse, normal or dense)", name),
		}
	}
}

// ApplyFieldPreset modifies the field based on a preset.
func ApplyFieldPreset(cfg *Config, preset FieldPreset) {
	switch preset {
	case FieldSparse:
		cfg.Field.Count = 20
		cfg.Field.Radius = 40
	case FieldNormal:
		cfg.Field.Count = 50
		cfg.Field.Radius = 30
	case FieldDense:
		cfg.Field.Count = 150
		cfg.Field.Radius = 25
	}
}
