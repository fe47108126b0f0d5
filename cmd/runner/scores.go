package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagLimit       int
	flagClear       bool
	flagScoresOf    string
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and a summary of all recorded runs.

Examples:
  runner scores
  runner scores --limit 20
  runner scores --player alice
  runner scores -i          # Browse scores interactively
  runner scores --clear     # Delete all recorded runs`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().StringVar(&flagScoresOf, "player", "", "Only show runs by this player")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var runs []storage.Run
	if flagScoresOf != "" {
		runs, err = store.PlayerRuns(flagScoresOf, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Coin Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-12s  %-8s  %-5s  %-8s  %s\n", "Rank", "Score", "Player", "Distance", "Coins", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %-8s  %-5s  %-8s  %s\n", "----", "-----", "------", "--------", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-12s  %-8.0f  %-5d  %-8s  %s\n",
			i+1, r.Score, r.Player, r.Distance, r.Coins, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	summary, err := store.Summary()
	if err != nil {
		return fmt.Errorf("summarizing runs: %w", err)
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Avg: %.1f  Coins: %d  Distance: %.0f\n",
		summary.HighScore, summary.Runs, summary.AvgScore, summary.TotalCoins, summary.TotalDistance)
	return nil
}
