// snake is a terminal snake game.
//
// Usage:
//
//	snake list              - List available modes
//	snake play [mode]       - Play a mode (default: snake)
//	snake menu              - Pick modes interactively
//	snake serve             - Start SSH server for remote play
//	snake scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.snake/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Starting difficulty: easy, medium, hard
//	--prefs <path>       - Preferences file (default: ~/.snake/config.properties)
//	--log <path>         - Log file (default: ~/.snake/snake.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	_ "github.com/vovakirdan/tui-snake/internal/games/snake" // Registers the variants
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPrefs      string
	flagLogPath    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal snake game with power-ups, difficulty presets
and a persistent high score.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  snake play
  snake play snake_walls --difficulty hard
  snake menu
  snake serve --ssh :2222
  snake scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate used to drive the game clock")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
	rootCmd.PersistentFlags().StringVar(&flagPrefs, "prefs", storage.DefaultPropertiesPath, "Path to preferences file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.snake/snake.log", "Log file (empty disables logging)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openLogger returns a file logger. The terminal belongs to the game,
// so nothing is written to stderr while it runs.
func openLogger() (*log.Logger, io.Closer) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil)
	}

	path := flagLogPath
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f
}

// loadConfig reads the game config and applies --difficulty.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if err := config.ApplyDifficultyPreset(&cfg, flagDifficulty); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// openStore opens the scores database. The game still runs without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
