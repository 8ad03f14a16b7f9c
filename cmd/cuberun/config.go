package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cuberun/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in runner configuration as YAML. Save it to
~/.cuberun/configs/runner.yaml or ./configs/runner.yaml and edit it to
tune the game; keys you leave out keep their defaults.

With --effective, prints the configuration 'cuberun play' would use,
after the config search and --difficulty preset are applied.

Examples:
  cuberun config > ~/.cuberun/configs/runner.yaml
  cuberun config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved configuration instead of the defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}
