package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid value")

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON, OutputPlain:
	default:
		return fmt.Errorf("output %q (want table, json or plain): %w", c.Output, ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Cascade.Threshold < 0 || c.Cascade.Threshold > 9 {
		return fmt.Errorf("cascade.threshold %d (want 0-9): %w", c.Cascade.Threshold, ErrInvalidConfig)
	}
	if c.Cascade.Connectivity != 4 && c.Cascade.Connectivity != 8 {
		return fmt.Errorf("cascade.connectivity %d (want 4 or 8): %w", c.Cascade.Connectivity, ErrInvalidConfig)
	}
	return nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level %q: %w", name, ErrInvalidConfig)
	}
}
