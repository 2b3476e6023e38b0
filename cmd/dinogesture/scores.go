package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-gesture/internal/platform/tui"
	"github.com/vovakirdan/dino-gesture/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and best score",
	Long: `Display the top runs and the best score.

Examples:
  dinogesture scores
  dinogesture scores --limit 25
  dinogesture scores --browse   # Interactive table with top and recent runs
  dinogesture scores --clear    # Forget every run and the best score`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive run history")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs and the best score")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.Clear(); err != nil {
			return fmt.Errorf("error clearing scores: %w", err)
		}
		fmt.Println("All runs deleted.")
		return nil

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Dino Gesture")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dinogesture play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %s\n", "----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-7s  %s\n", i+1, r.Score, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
