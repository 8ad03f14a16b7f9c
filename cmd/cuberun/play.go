package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
	"github.com/vovakirdan/cuberun/internal/highscore"
	"github.com/vovakirdan/cuberun/internal/platform/tui"
	"github.com/vovakirdan/cuberun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run in the current terminal.

Controls:
  Left/A, Right/D  - Steer
  Up/W             - Speed up
  Down/S           - Slow down
  P/Esc            - Pause
  R                - Restart (after game over)
  Enter            - Save your name for a new high score
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer obstacles, lower ceiling
  normal - Spawn rate from the config (default)
  hard   - More obstacles from the start
  fixed  - No progression, spawn rate stays at the base value

Config files:
  --config accepts YAML, or TOML when the file ends in .toml.
  Without it, ~/.cuberun/configs/runner.yaml and ./configs/runner.yaml are
  tried before the built-in defaults. See 'cuberun config'.

Examples:
  cuberun play
  cuberun play --difficulty easy
  cuberun play --seed 42 --fps 30
  cuberun play --config ./my-runner.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadRunnerConfig loads the config named by --config and applies the
// --difficulty preset.
func loadRunnerConfig() (config.RunnerConfig, error) {
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		preset = config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.RunnerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := fileLogger("cuberun")
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores kept in memory only", "db", flagDBPath, "err", err)
		// Continue without storage - the run still works
		store = nil
	}

	opts := tui.Options{
		Runner: runnerCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Board:  highscore.Open(store, runnerCfg.HighScores, logger),
		Store:  store,
		Logger: logger,
		Player: os.Getenv("USER"),
	}
	logger.Info("starting run", "seed", flagSeed, "fps", flagFPS, "difficulty", flagDifficulty)

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
