// Package config provides configuration management for the aoc25 CLI.
package config

import "github.com/katalvlaran/aoc25/cascade"

// Defaults.
const (
	DefaultInputDir     = "inputs"
	DefaultOutput       = OutputTable
	DefaultLogLevel     = "info"
	DefaultConnectivity = 8
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputPlain = "plain"
)

// CascadeConfig tunes the day 4 cascade engine.
type CascadeConfig struct {
	Threshold    int `koanf:"threshold"`
	Connectivity int `koanf:"connectivity"`
}

// Config holds all CLI configuration options.
type Config struct {
	InputDir string        `koanf:"input_dir"`
	Output   string        `koanf:"output"`
	Verbose  bool          `koanf:"verbose"`
	LogLevel string        `koanf:"log_level"`
	Cascade  CascadeConfig `koanf:"cascade"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		InputDir: DefaultInputDir,
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
		Cascade: CascadeConfig{
			Threshold:    cascade.DefaultThreshold,
			Connectivity: DefaultConnectivity,
		},
	}
}

// Conn maps the configured neighbor count to a cascade.Connectivity.
func (c CascadeConfig) Conn() cascade.Connectivity {
	if c.Connectivity == 4 {
		return cascade.Conn4
	}
	return cascade.Conn8
}

// CascadeOptions returns the engine options for the configured cascade.
func (c *Config) CascadeOptions() []cascade.Option {
	return []cascade.Option{
		cascade.WithThreshold(c.Cascade.Threshold),
		cascade.WithConnectivity(c.Cascade.Conn()),
	}
}
