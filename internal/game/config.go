package game

import (
	"fmt"
	"os"
	"strconv"
)

// Reference configuration values.
const (
	DefaultMapWidth  = 80
	DefaultMapHeight = 50
	DefaultFOVRadius = 8
)

// Config holds game configuration options.
type Config struct {
	// Seed for the level generator. 0 means derive one from the clock.
	Seed int64
	// Map dimensions, fixed for the level's lifetime.
	MapWidth  int
	MapHeight int
	// FOVRadius is the player's sight range in tiles.
	FOVRadius int
}

// ConfigFromEnv builds a Config from ROGUE_* environment variables,
// falling back to the reference 80×50 setup.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		MapWidth:  DefaultMapWidth,
		MapHeight: DefaultMapHeight,
		FOVRadius: DefaultFOVRadius,
	}

	if v := os.Getenv("ROGUE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse ROGUE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("ROGUE_MAP_WIDTH"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse ROGUE_MAP_WIDTH: %w", err)
		}
		cfg.MapWidth = w
	}
	if v := os.Getenv("ROGUE_MAP_HEIGHT"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse ROGUE_MAP_HEIGHT: %w", err)
		}
		cfg.MapHeight = h
	}
	if v := os.Getenv("ROGUE_FOV_RADIUS"); v != "" {
		r, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse ROGUE_FOV_RADIUS: %w", err)
		}
		cfg.FOVRadius = r
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects dimensions too small to hold a single max-size room with
// its one-tile border margin.
func (c Config) validate() error {
	const minDim = 14
	if c.MapWidth < minDim || c.MapHeight < minDim {
		return fmt.Errorf("map dimensions %dx%d below the %dx%d minimum",
			c.MapWidth, c.MapHeight, minDim, minDim)
	}
	if c.FOVRadius < 1 {
		return fmt.Errorf("fov radius must be at least 1, got %d", c.FOVRadius)
	}
	return nil
}
