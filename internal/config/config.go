// Package config loads goroof settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/philipparndt/goroof/internal/measurement"
	"github.com/philipparndt/goroof/internal/script"
	"github.com/philipparndt/goroof/pkg/geometry"
)

const configFile = "config.toml"

// Config holds the user-adjustable settings
type Config struct {
	SnapTolerance float64           `toml:"snap_tolerance"`
	DefaultPitch  string            `toml:"default_pitch"`
	LengthUnit    string            `toml:"length_unit"`
	AreaUnit      string            `toml:"area_unit"`
	PointSize     float32           `toml:"point_size"`
	LineWidth     float32           `toml:"line_width"`
	LabelColors   map[string]string `toml:"label_colors"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		SnapTolerance: geometry.SnapTolerance,
		DefaultPitch:  measurement.DefaultPitch.String(),
		LengthUnit:    "ft",
		AreaUnit:      "sqft",
		PointSize:     3,
		LineWidth:     3,
		LabelColors:   map[string]string{},
	}
}

// DefaultPath returns ~/.config/goroof/config.toml or the platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "goroof", configFile)
}

// Load reads the file at path over the defaults. A missing file is not an
// error and yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges, the pitch literal and label color names
func (c *Config) Validate() error {
	if !(c.SnapTolerance > 0) {
		return fmt.Errorf("snap_tolerance must be positive, got %v", c.SnapTolerance)
	}
	if !(c.PointSize > 0) {
		return fmt.Errorf("point_size must be positive, got %v", c.PointSize)
	}
	if !(c.LineWidth > 0) {
		return fmt.Errorf("line_width must be positive, got %v", c.LineWidth)
	}
	if _, err := c.Pitch(); err != nil {
		return err
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Pitch parses default_pitch
func (c *Config) Pitch() (measurement.Pitch, error) {
	return script.ParsePitch(c.DefaultPitch)
}

// Palette returns the label colors with the configured overrides applied
func (c *Config) Palette() (measurement.Palette, error) {
	return measurement.DefaultPalette().WithOverrides(c.LabelColors)
}

// SessionOptions translates the settings into session options
func (c *Config) SessionOptions() []measurement.Option {
	opts := []measurement.Option{measurement.WithTolerance(c.SnapTolerance)}
	if pitch, err := c.Pitch(); err == nil {
		opts = append(opts, measurement.WithDefaultPitch(pitch))
	}
	return opts
}
