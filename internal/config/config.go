// Package config provides YAML-based game configuration loading and
// difficulty management for the snake engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all tunables of the snake engine.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Input      InputConfig      `yaml:"input"`
	Cosmetics  CosmeticsConfig  `yaml:"cosmetics"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Boundary    string `yaml:"boundary"` // "wrap" or "wall"
	StartX      int    `yaml:"start_x"`
	StartY      int    `yaml:"start_y"`
	StartLength int    `yaml:"start_length"` // Segments the snake grows into after spawning
}

// DifficultyConfig maps each difficulty to its tick interval.
type DifficultyConfig struct {
	Default  Difficulty `yaml:"default"`
	EasyMS   int        `yaml:"easy_ms"`
	MediumMS int        `yaml:"medium_ms"`
	HardMS   int        `yaml:"hard_ms"`
}

// SpawnConfig defines food/power-up placement.
type SpawnConfig struct {
	Attempts           int `yaml:"attempts"`             // Placement attempts before the board counts as full
	TTLMS              int `yaml:"ttl_ms"`               // Lifetime of an uneaten item
	SpeedChance        int `yaml:"speed_chance"`         // Percent
	DoublePointsChance int `yaml:"double_points_chance"` // Percent
}

// PowerUpConfig defines timed effects.
type PowerUpConfig struct {
	DurationMS int `yaml:"duration_ms"`
}

// ScoringConfig defines points.
type ScoringConfig struct {
	FoodPoints       int `yaml:"food_points"`
	DoubleMultiplier int `yaml:"double_multiplier"`
}

// InputConfig defines key handling.
type InputConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// CosmeticsConfig controls color flashing. No gameplay effect.
type CosmeticsConfig struct {
	Enabled bool `yaml:"enabled"`
	FlashMS int  `yaml:"flash_ms"`
}

// Boundary policy names accepted in BoardConfig.Boundary.
const (
	BoundaryWrap = "wrap"
	BoundaryWall = "wall"
)

// ItemTTL returns the spawn expiration as a duration.
func (c SnakeConfig) ItemTTL() time.Duration {
	return ms(c.Spawn.TTLMS)
}

// EffectDuration returns how long a power-up effect lasts.
func (c SnakeConfig) EffectDuration() time.Duration {
	return ms(c.PowerUps.DurationMS)
}

// Debounce returns the minimum gap between accepted direction changes.
func (c SnakeConfig) Debounce() time.Duration {
	return ms(c.Input.DebounceMS)
}

// FlashInterval returns the cosmetic color cycle period.
func (c SnakeConfig) FlashInterval() time.Duration {
	return ms(c.Cosmetics.FlashMS)
}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width < 1 || c.Board.Height < 1 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.Boundary != BoundaryWrap && c.Board.Boundary != BoundaryWall {
		errs = append(errs, fmt.Errorf("board.boundary must be %q or %q, got %q", BoundaryWrap, BoundaryWall, c.Board.Boundary))
	}
	if c.Board.StartLength < 1 {
		errs = append(errs, fmt.Errorf("board.start_length must be >= 1, got %d", c.Board.StartLength))
	}
	if _, err := ParseDifficulty(string(c.Difficulty.Default)); err != nil {
		errs = append(errs, err)
	}
	if c.Difficulty.EasyMS <= 0 || c.Difficulty.MediumMS <= 0 || c.Difficulty.HardMS <= 0 {
		errs = append(errs, errors.New("difficulty intervals must be positive"))
	}
	if c.Spawn.Attempts < 1 {
		errs = append(errs, fmt.Errorf("spawn.attempts must be >= 1, got %d", c.Spawn.Attempts))
	}
	if c.Spawn.TTLMS <= 0 {
		errs = append(errs, errors.New("spawn.ttl_ms must be positive"))
	}
	if c.Spawn.SpeedChance < 0 || c.Spawn.DoublePointsChance < 0 ||
		c.Spawn.SpeedChance+c.Spawn.DoublePointsChance > 100 {
		errs = append(errs, errors.New("spawn chances must be non-negative and sum to at most 100"))
	}
	if c.PowerUps.DurationMS <= 0 {
		errs = append(errs, errors.New("powerups.duration_ms must be positive"))
	}
	if c.Scoring.FoodPoints < 0 || c.Scoring.DoubleMultiplier < 1 {
		errs = append(errs, errors.New("scoring.food_points must be >= 0 and double_multiplier >= 1"))
	}
	if c.Input.DebounceMS < 0 {
		errs = append(errs, errors.New("input.debounce_ms must not be negative"))
	}
	if c.Cosmetics.Enabled && c.Cosmetics.FlashMS <= 0 {
		errs = append(errs, errors.New("cosmetics.flash_ms must be positive when enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
