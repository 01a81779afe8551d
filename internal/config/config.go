// Package config provides configuration loading and validation for the
// animation engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config represents the engine configuration.
type Config struct {
	Animation  AnimationConfig  `yaml:"animation"`
	Particles  ParticleConfig   `yaml:"particles"`
	Visualizer VisualizerConfig `yaml:"visualizer"`
}

// AnimationConfig contains settings shared by all animation units.
type AnimationConfig struct {
	TickIntervalMS int    `yaml:"tick_interval_ms"`
	SpinnerStyle   string `yaml:"spinner_style"`
}

// ParticleConfig contains particle simulation settings.
type ParticleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	MaxAge int `yaml:"max_age"`
}

// VisualizerConfig contains audio visualizer settings.
type VisualizerConfig struct {
	BufferCapacity int    `yaml:"buffer_capacity"`
	Width          int    `yaml:"width"`
	Style          string `yaml:"style"`
}

// DefaultConfigPath is the default path to look for the configuration file.
const DefaultConfigPath = "config.yaml"

// Default values for optional configuration fields.
const (
	DefaultTickIntervalMS   = 80 // ~12.5 FPS
	DefaultSpinnerStyle     = "dots"
	DefaultParticleWidth    = 80
	DefaultParticleHeight   = 20
	DefaultParticleMaxAge   = 60
	DefaultBufferCapacity   = 256
	DefaultVisualizerWidth  = 48
	DefaultVisualizerStyle  = "bars"
	particleBoundsMarginTop = 2 // rows left free above a terminal-sized particle field
)

// Load reads and parses the configuration from the specified file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for optional fields
	cfg.applyDefaults()

	// Validate field ranges
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault loads configuration from the default path (config.yaml).
// A missing file is not an error: the engine runs fine on its defaults.
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Default returns a configuration with every field defaulted.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults sets default values for optional configuration fields.
// Particle bounds default to the terminal size when stdout is a terminal.
func (c *Config) applyDefaults() {
	if c.Animation.TickIntervalMS == 0 {
		c.Animation.TickIntervalMS = DefaultTickIntervalMS
	}
	if c.Animation.SpinnerStyle == "" {
		c.Animation.SpinnerStyle = DefaultSpinnerStyle
	}
	if c.Particles.Width == 0 || c.Particles.Height == 0 {
		w, h := detectBounds()
		if c.Particles.Width == 0 {
			c.Particles.Width = w
		}
		if c.Particles.Height == 0 {
			c.Particles.Height = h
		}
	}
	if c.Particles.MaxAge == 0 {
		c.Particles.MaxAge = DefaultParticleMaxAge
	}
	if c.Visualizer.BufferCapacity == 0 {
		c.Visualizer.BufferCapacity = DefaultBufferCapacity
	}
	if c.Visualizer.Width == 0 {
		c.Visualizer.Width = DefaultVisualizerWidth
	}
	if c.Visualizer.Style == "" {
		c.Visualizer.Style = DefaultVisualizerStyle
	}
}

// detectBounds returns the terminal size in cells, falling back to the
// package defaults when stdout is not a terminal.
func detectBounds() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultParticleWidth, DefaultParticleHeight
	}

	w, h, err := term.GetSize(fd)
	if err != nil || w < 1 || h <= particleBoundsMarginTop {
		return DefaultParticleWidth, DefaultParticleHeight
	}
	return w, h - particleBoundsMarginTop
}

// TickInterval returns the configured frame interval as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Animation.TickIntervalMS) * time.Millisecond
}

// validate checks that all configured values are in range.
func (c *Config) validate() error {
	if c.Animation.TickIntervalMS < 0 {
		return fmt.Errorf("animation.tick_interval_ms must be positive, got %d", c.Animation.TickIntervalMS)
	}
	if c.Particles.Width < 0 || c.Particles.Height < 0 {
		return fmt.Errorf("particles bounds must be positive, got %dx%d", c.Particles.Width, c.Particles.Height)
	}
	if c.Particles.MaxAge < 0 {
		return fmt.Errorf("particles.max_age must be positive, got %d", c.Particles.MaxAge)
	}
	if c.Visualizer.BufferCapacity < 0 {
		return fmt.Errorf("visualizer.buffer_capacity must be positive, got %d", c.Visualizer.BufferCapacity)
	}
	if c.Visualizer.Width < 0 {
		return fmt.Errorf("visualizer.width must be positive, got %d", c.Visualizer.Width)
	}
	return nil
}
