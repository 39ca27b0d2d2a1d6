package config

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is a named speed preset.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists presets in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty accepts a preset name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
}

// Title returns the display name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "?"
	}
}

// Valid reports whether d is a known preset.
func (d Difficulty) Valid() bool {
	_, err := ParseDifficulty(string(d))
	return err == nil
}

// Interval returns the base tick interval for a difficulty.
// Unknown values fall back to the easy interval.
func (c DifficultyConfig) Interval(d Difficulty) time.Duration {
	switch d {
	case DifficultyMedium:
		return ms(c.MediumMS)
	case DifficultyHard:
		return ms(c.HardMS)
	default:
		return ms(c.EasyMS)
	}
}

// ApplyDifficultyPreset sets the starting difficulty from a CLI flag value.
// An empty preset leaves the config unchanged.
func ApplyDifficultyPreset(cfg *SnakeConfig, preset string) error {
	if preset == "" {
		return nil
	}
	d, err := ParseDifficulty(preset)
	if err != nil {
		return err
	}
	cfg.Difficulty.Default = d
	return nil
}
