package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: snake).

Controls:
  Arrows/WASD  - Steer
  Esc          - Settings (difficulty, color, restart)
  Space/R      - Retry (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Power-ups:
  S (blue)     - Speed: the snake moves twice as fast for 7 seconds
  2 (blue)     - Double points: food is worth 20 for 7 seconds

Difficulty options:
  easy   - 80ms per step
  medium - 60ms per step
  hard   - 40ms per step

Examples:
  snake play
  snake play snake_walls
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	variant := snake.VariantWrap
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
		os.Exit(1)
	}

	logger, logFile := openLogger()

	cfg, err := loadConfig()
	if err != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	_, runErr := tui.Run(tui.ModelOptions{
		Game: snake.Options{
			Config:      cfg,
			Variant:     variant,
			ConfigStore: openPrefs(logger),
		},
		Store:   store,
		Runtime: runtimeConfig(),
		Logger:  logger,
	})

	// Close before a potential exit
	if store != nil {
		store.Close()
	}
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openPrefs opens the preferences file. An unusable path falls back to
// in-memory preferences for this run.
func openPrefs(logger *log.Logger) snake.ConfigStore {
	prefs, err := storage.OpenProperties(flagPrefs, logger)
	if err != nil {
		logger.Warn("preferences unavailable, using defaults", "path", flagPrefs, "err", err)
		return snake.NewMemoryStore()
	}
	return prefs
}
