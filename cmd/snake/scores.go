package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the specified mode (default: snake).

Examples:
  snake scores
  snake scores snake_walls --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	variant := snake.VariantWrap
	if len(args) > 0 {
		variant = args[0]
	}

	v, err := registry.Lookup(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
		os.Exit(1)
	}

	logger, logFile := openLogger()
	defer logFile.Close()

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		return
	}
	defer store.Close()

	scores, err := store.TopScores(variant, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", v.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", variant)
		return
	}

	fmt.Println(tui.RenderScoresTable(scores))

	fmt.Println()
	if stats, err := store.Stats(variant); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f  Longest: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.MaxLength)
	}
}
