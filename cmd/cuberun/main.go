// cuberun is a terminal endless runner: steer a cube down an endless track
// and dodge the obstacles spawned ahead of it.
//
// Usage:
//
//	cuberun play             - Start a run
//	cuberun scores           - Show the high-score list
//	cuberun stats            - Show run statistics
//	cuberun config           - Print the default configuration
//	cuberun serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.cuberun/scores.db)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cuberun",
	Short: "Cube Runner - an endless runner in your terminal",
	Long: `Cube Runner is an endless runner for the terminal. Your cube slides
forward on its own; steer it left and right, speed up or slow down, and
dodge the obstacles spawned ahead. The further you get, the more obstacles
appear, and past 150 some of them start to wobble.

Available commands:
  play     - Start a run
  scores   - View or clear the high-score list
  stats    - Show statistics over all recorded runs
  config   - Print the default configuration
  serve    - Start SSH server for remote play

Examples:
  cuberun play
  cuberun play --difficulty hard
  cuberun scores --all
  cuberun serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cuberun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates a logger writing to w at the level chosen by --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger opens ~/.cuberun/cuberun.log for use while the alt screen owns
// the terminal. The returned closer must be called when done.
func fileLogger(prefix string) (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err == nil {
		dir := filepath.Join(home, ".cuberun")
		if err = os.MkdirAll(dir, 0o755); err == nil {
			var f *os.File
			f, err = os.OpenFile(filepath.Join(dir, "cuberun.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				return newLogger(f, prefix), func() { f.Close() }
			}
		}
	}
	return newLogger(io.Discard, prefix), func() {}
}
