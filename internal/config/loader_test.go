package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded YAML and DefaultSnakeConfig diverge:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultDurations(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if got := cfg.Difficulty.Interval(DifficultyEasy); got != 80*time.Millisecond {
		t.Errorf("easy interval = %v, expected 80ms", got)
	}
	if got := cfg.Difficulty.Interval(DifficultyMedium); got != 60*time.Millisecond {
		t.Errorf("medium interval = %v, expected 60ms", got)
	}
	if got := cfg.Difficulty.Interval(DifficultyHard); got != 40*time.Millisecond {
		t.Errorf("hard interval = %v, expected 40ms", got)
	}
	if cfg.ItemTTL() != 9*time.Second {
		t.Errorf("item TTL = %v, expected 9s", cfg.ItemTTL())
	}
	if cfg.EffectDuration() != 7*time.Second {
		t.Errorf("effect duration = %v, expected 7s", cfg.EffectDuration())
	}
	if cfg.Debounce() != 80*time.Millisecond {
		t.Errorf("debounce = %v, expected 80ms", cfg.Debounce())
	}
}

func TestLoadSnakeCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "board:\n  width: 20\n  height: 10\n  boundary: wall\ndifficulty:\n  default: hard\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Width != 20 || cfg.Board.Height != 10 || cfg.Board.Boundary != BoundaryWall {
		t.Errorf("board not overridden: %+v", cfg.Board)
	}
	if cfg.Difficulty.Default != DifficultyHard {
		t.Errorf("default difficulty = %q, expected hard", cfg.Difficulty.Default)
	}
	// Untouched keys keep their defaults
	if cfg.Spawn.Attempts != 100 || cfg.Scoring.FoodPoints != 10 {
		t.Errorf("defaults lost: spawn=%+v scoring=%+v", cfg.Spawn, cfg.Scoring)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  boundary: donut\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(invalid)
	if err == nil || !strings.Contains(err.Error(), "boundary") {
		t.Errorf("expected boundary validation error, got %v", err)
	}
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// A broken user file is skipped silently
	userDir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "snake.yaml"), []byte("::::"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadSnakeUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	userDir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "snake.yaml"), []byte("spawn:\n  ttl_ms: 5000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.ItemTTL() != 5*time.Second {
		t.Errorf("ttl = %v, expected 5s", cfg.ItemTTL())
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{" HARD ", DifficultyHard, false},
		{"insane", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyDifficultyPreset(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if err := ApplyDifficultyPreset(&cfg, ""); err != nil || cfg.Difficulty.Default != DifficultyEasy {
		t.Errorf("empty preset should be a no-op, got %q, %v", cfg.Difficulty.Default, err)
	}
	if err := ApplyDifficultyPreset(&cfg, "hard"); err != nil || cfg.Difficulty.Default != DifficultyHard {
		t.Errorf("hard preset not applied: %q, %v", cfg.Difficulty.Default, err)
	}
	if err := ApplyDifficultyPreset(&cfg, "nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if cfg.Difficulty.Default != DifficultyHard {
		t.Error("failed preset must leave difficulty unchanged")
	}
}
