package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used when the embed cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:       80,
			Height:      50,
			Boundary:    BoundaryWrap,
			StartX:      5,
			StartY:      5,
			StartLength: 1,
		},
		Difficulty: DifficultyConfig{
			Default:  DifficultyEasy,
			EasyMS:   80,
			MediumMS: 60,
			HardMS:   40,
		},
		Spawn: SpawnConfig{
			Attempts:           100,
			TTLMS:              9000,
			SpeedChance:        10,
			DoublePointsChance: 10,
		},
		PowerUps: PowerUpConfig{
			DurationMS: 7000,
		},
		Scoring: ScoringConfig{
			FoodPoints:       10,
			DoubleMultiplier: 2,
		},
		Input: InputConfig{
			DebounceMS: 80,
		},
		Cosmetics: CosmeticsConfig{
			Enabled: true,
			FlashMS: 200,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
