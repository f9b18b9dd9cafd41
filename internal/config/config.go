// Package config loads the user's tunables from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/cubeascii/internal/render"
)

// ErrInvalidConfig is returned when a setting is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// DirName is the per-user folder under the home directory.
const DirName = ".cubeascii"

// Config holds every tunable of the game.
type Config struct {
	FPS            int     `json:"fps"`
	ScrambleLength int     `json:"scramble_length"`
	RotateStep     float64 `json:"rotate_step"`
	ElevationStep  float64 `json:"elevation_step"`
	RollStep       float64 `json:"roll_step"`
	ZoomStep       float64 `json:"zoom_step"`
	Inertia        bool    `json:"inertia"`
	ColorProfile   string  `json:"color_profile"`
	History        bool    `json:"history"`
	DBPath         string  `json:"db_path,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FPS:            30,
		ScrambleLength: 25,
		RotateStep:     0.14,
		ElevationStep:  0.1,
		RollStep:       0.06,
		ZoomStep:       0.45,
		ColorProfile:   "auto",
		History:        true,
	}
}

// Dir returns ~/.cubeascii.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
// The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON, creating the directory.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case c.ScrambleLength < 0:
		return fmt.Errorf("%w: scramble_length must not be negative, got %d", ErrInvalidConfig, c.ScrambleLength)
	case c.RotateStep <= 0, c.ElevationStep <= 0, c.RollStep <= 0, c.ZoomStep <= 0:
		return fmt.Errorf("%w: camera steps must be positive", ErrInvalidConfig)
	}
	if _, ok := render.ParseProfile(c.ColorProfile); !ok {
		return fmt.Errorf("%w: unknown color_profile %q", ErrInvalidConfig, c.ColorProfile)
	}
	return nil
}

// ResolveDBPath returns DBPath, or ~/.cubeascii/history.db when unset.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
