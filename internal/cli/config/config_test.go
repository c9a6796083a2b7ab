package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc25/cascade"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("input-dir", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.String("log-level", "", "")
	fs.Int("threshold", 0, "")
	fs.Int("connectivity", 0, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc25.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, used, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input_dir: puzzles
output: json
cascade:
  threshold: 3
  connectivity: 4
`)
	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "puzzles", cfg.InputDir)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, 3, cfg.Cascade.Threshold)
	assert.Equal(t, cascade.Conn4, cfg.Cascade.Conn())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "input_dir: from-file\noutput: json\ncascade:\n  threshold: 2\n")
	t.Setenv("AOC25_INPUT_DIR", "from-env")
	t.Setenv("AOC25_CASCADE__THRESHOLD", "5")

	cfg, _, err := Load(path, newFlags(t, "--output", "plain"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.InputDir)
	assert.Equal(t, OutputPlain, cfg.Output)
	assert.Equal(t, 5, cfg.Cascade.Threshold)

	cfg, _, err = Load(path, newFlags(t, "--input-dir", "from-flag", "--threshold", "1", "-v"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.InputDir)
	assert.Equal(t, 1, cfg.Cascade.Threshold)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"json", func(c *Config) { c.Output = OutputJSON }, true},
		{"bad output", func(c *Config) { c.Output = "xml" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"warning level", func(c *Config) { c.LogLevel = "WARNING" }, true},
		{"threshold too high", func(c *Config) { c.Cascade.Threshold = 10 }, false},
		{"negative threshold", func(c *Config) { c.Cascade.Threshold = -1 }, false},
		{"connectivity 6", func(c *Config) { c.Cascade.Connectivity = 6 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestCascadeOptions(t *testing.T) {
	cfg := Default()
	cfg.Cascade.Connectivity = 4
	g, err := cascade.Parse("@@@\n@@@\n@@@")
	require.NoError(t, err)
	assert.Equal(t, 8, cascade.CountEligible(g, cfg.CascadeOptions()...))
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	l := NewLogger(&buf, cfg)
	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	cfg.Verbose = true
	NewLogger(&buf, cfg).Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := Default()
	cfg.InputDir = "x"
	logger := slog.New(slog.DiscardHandler)
	ctx = NewContext(ctx, cfg, logger)
	assert.Same(t, cfg, FromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
}
