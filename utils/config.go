package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 450
	CellSize     = 1
	TargetFPS    = 60
	WindowTitle  = "Game of life"
)

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	CellSize       int           `json:"cell_size"`
	FPS            int           `json:"fps"`
	Title          string        `json:"title"`
	RandomDensity  float64       `json:"random_density"`
	Seed           int64         `json:"seed"` // 0 seeds from the clock
	ShowStats      bool          `json:"show_stats"`
	Headless       bool          `json:"headless"`
	FrameRate      time.Duration `json:"frame_rate"` // headless only
	MaxGenerations int           `json:"max_generations"`
}

// DefaultConfig returns the built-in settings: an 800x450 board, one pixel per cell, 60 FPS
func DefaultConfig() Config {
	return Config{
		Width:          ScreenWidth,
		Height:         ScreenHeight,
		CellSize:       CellSize,
		FPS:            TargetFPS,
		Title:          WindowTitle,
		RandomDensity:  0.5,
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 0,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the simulator or window cannot use
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] grid must be positive, got %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] cell_size must be positive, got %d", c.CellSize)
	case c.FPS <= 0:
		return errors.Errorf("[Validate] fps must be positive, got %d", c.FPS)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
