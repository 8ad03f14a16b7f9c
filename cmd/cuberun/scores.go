package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/highscore"
	"github.com/vovakirdan/cuberun/internal/platform/tui"
	"github.com/vovakirdan/cuberun/internal/storage"
)

var (
	flagScoresAll    bool
	flagScoresClear  bool
	flagScoresBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score list",
	Long: `Display the high-score list. Only the top 5 are shown in game;
--all prints every recorded entry.

Examples:
  cuberun scores
  cuberun scores --all
  cuberun scores --browse
  cuberun scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every entry, not just the top 5")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all high scores and run history")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Browse scores and run history interactively")
	scoresCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config (YAML or TOML)")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	logger := newLogger(os.Stderr, "cuberun")

	if flagScoresClear {
		if err := clearScores(store, cfg.HighScores.StoreKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High scores and run history cleared.")
		return
	}

	board := highscore.Open(store, cfg.HighScores, logger)

	if flagScoresBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(board, store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries := board.Top()
	if flagScoresAll {
		entries = board.Entries()
	}

	if flagScoresAll {
		fmt.Println("High Scores - Cube Runner")
	} else {
		fmt.Printf("Top %d - Cube Runner\n", board.DisplayLimit())
	}
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cuberun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-16s  %s\n", "----", "----", "-----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-16s  %d\n", i+1, e.Name, e.Score)
	}

	if !flagScoresAll {
		if total := len(board.Entries()); total > len(entries) {
			fmt.Println()
			fmt.Printf("%d more entries beyond the top %d, use --all to see them.\n", total-len(entries), board.DisplayLimit())
		}
	}
}

func clearScores(store *storage.Store, key string) error {
	if key == "" {
		key = highscore.DefaultKey
	}
	if err := store.Delete(key); err != nil {
		return err
	}
	return store.ClearRuns()
}
