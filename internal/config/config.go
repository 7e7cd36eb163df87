// Package config reads the demo binary's TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full demo configuration.
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
	Profile    ProfileConfig    `toml:"profile"`
}

type SimulationConfig struct {
	DT       float64 `toml:"dt"`
	Ticks    int     `toml:"ticks"`
	Scenario string  `toml:"scenario"` // YAML spawn list; empty uses the built-in scenario
	Capacity int     `toml:"capacity"` // entities and values preallocated per store
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ProfileConfig struct {
	Enabled bool   `toml:"enabled"`
	Mode    string `toml:"mode"` // "cpu", "mem" or "allocs"
	Path    string `toml:"path"`
}

// Load reads and parses the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults runs one tick of length 1 with console logging at info level.
func Defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			DT:       1,
			Ticks:    1,
			Capacity: 64,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Mode: "cpu",
			Path: ".",
		},
	}
}

func (c *Config) validate() error {
	if c.Simulation.DT <= 0 {
		return fmt.Errorf("simulation.dt must be positive, got %v", c.Simulation.DT)
	}
	if c.Simulation.Ticks < 0 {
		return fmt.Errorf("simulation.ticks must not be negative, got %d", c.Simulation.Ticks)
	}
	switch c.Profile.Mode {
	case "cpu", "mem", "allocs":
	default:
		return fmt.Errorf("profile.mode %q is not one of cpu, mem, allocs", c.Profile.Mode)
	}
	return nil
}
