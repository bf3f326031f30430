package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 800.0
	DefaultHeight    = 600.0
	DefaultMaxBodies = 10
	DefaultRebound   = 0.5
	DefaultMass      = 10.0
	DefaultG         = 9.8
	DefaultFPS       = 60
)

// Config is the flat, process start-time configuration surface of the
// simulator. Nothing here is mutable at runtime.
type Config struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MaxBodies int     `yaml:"max_bodies"`
	Rebound   float64 `yaml:"rebound"`
	Mass      float64 `yaml:"mass"`
	G         float64 `yaml:"g"`
	FPS       int     `yaml:"fps"`
	// Snapshot selects the frame-consistent force pass instead of the
	// sequential in-place pass.
	Snapshot bool `yaml:"snapshot"`
}

func Default() *Config {
	return &Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MaxBodies: DefaultMaxBodies,
		Rebound:   DefaultRebound,
		Mass:      DefaultMass,
		G:         DefaultG,
		FPS:       DefaultFPS,
	}
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.MaxBodies < 1 {
		return fmt.Errorf("max_bodies must be at least 1, got %d", c.MaxBodies)
	}
	if c.Rebound < 0 || c.Rebound > 1 {
		return fmt.Errorf("rebound must be in [0,1], got %g", c.Rebound)
	}
	if c.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %g", c.Mass)
	}
	if c.FPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", c.FPS)
	}
	return nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
