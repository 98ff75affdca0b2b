package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-starfighter/internal/config"
)

// loadConfig loads, applies the field preset and validates.
func loadConfig() (config.Config, error) {
	preset, err := config.ParseFieldPreset(flagField)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyFieldPreset(&cfg, preset)

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// validateFPS rejects tick rates the frame loop cannot use.
func validateFPS(fps int) error {
	if fps <= 0 {
		return &config.ConfigError{Field: "fps", Message: fmt.Sprintf("must be positive, got %d", fps)}
	}
	return nil
}

// seedOrNow returns the --seed value, or a time-based seed when unset.
func seedOrNow() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the CLI logger. fallback receives logs when --log-file
// is not set. The returned closer releases the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfighter",
		Level:           level,
	})
	return logger, closer, nil
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
