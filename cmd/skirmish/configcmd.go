package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skirmish/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a match would start with, after the search
path and any --difficulty preset are applied. The output is a complete
config file that can be edited and passed back with --config.

Search order:
  --config <path>
  ~/.skirmish/configs/skirmish.{yaml,yml,toml}
  ./configs/skirmish.{yaml,yml,toml}
  built-in defaults

Examples:
  skirmish config > ~/.skirmish/configs/skirmish.yaml
  skirmish config --format toml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.ResolveSkirmish(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplySkirmishPreset(&cfg, preset)
	}

	// "#" starts a comment in both formats
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	return config.Encode(out, cfg, flagFormat)
}
