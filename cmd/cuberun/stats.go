package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cuberun/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics over all recorded runs",
	Long: `Show how many runs were played, the best and average score, and
the most recent runs.

Example:
  cuberun stats`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run Statistics - Cube Runner")
	fmt.Println()

	if stats.RunsCount == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  Runs:         %d\n", stats.RunsCount)
	fmt.Printf("  Best score:   %d\n", stats.BestScore)
	fmt.Printf("  Average:      %.1f\n", stats.AvgScore)
	fmt.Printf("  Total depth:  %d\n", stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(5)
	if err != nil || len(runs) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		fmt.Printf("  %s  %d\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Score)
	}
}
