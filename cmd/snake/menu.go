package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to pick the starting
difficulty and Enter to play. After a game ends, press B to return
to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, logFile := openLogger()
	defer logFile.Close()

	base, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	store := openStore(logger)
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	prefs := openPrefs(logger)
	cfg := runtimeConfig()
	difficulty := base.Difficulty.Default

	for {
		menuResult, err := tui.RunMenu(cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.VariantID == "" {
			return
		}

		gameCfg := base
		gameCfg.Difficulty.Default = difficulty

		// Fresh seed per game unless one was pinned on the command line
		runtime := cfg
		if flagSeed == 0 {
			runtime.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(tui.ModelOptions{
			Game: snake.Options{
				Config:      gameCfg,
				Variant:     menuResult.VariantID,
				ConfigStore: prefs,
			},
			Store:   store,
			Runtime: runtime,
			Logger:  logger,
			Menu:    true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}

		cfg = result.Config
		cfg.Seed = flagSeed
		if result.Difficulty != "" {
			difficulty = result.Difficulty
		}
		if !result.BackToMenu {
			return
		}
	}
}
