package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jl-5/nut-wars/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the Nut Wars configuration as YAML after the config search and the
difficulty preset. The output is a valid --config file.

Search order:
  1. --config <path>
  2. ~/.nutwars/configs/nutwars.yaml
  3. ./configs/nutwars.yaml
  4. built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	if flagDifficulty != "" {
		fmt.Fprintf(out, "# difficulty: %s\n", flagDifficulty)
	}
	_, err = out.Write(data)
	return err
}
