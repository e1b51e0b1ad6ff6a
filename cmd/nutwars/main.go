// nutwars is a small arcade game: a squirrel walks left and right catching
// nuts that fall faster with every catch.
//
// Usage:
//
//	nutwars list              - List available games
//	nutwars play [game]       - Play in the terminal
//	nutwars window [game]     - Play in a desktop window
//	nutwars config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--log-file <path>      - Log file for terminal mode
//	--log-level <level>    - debug, info, warn, error
//	--mute                 - Disable sound
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jl-5/nut-wars/internal/config"

	// Import games to register them
	_ "github.com/jl-5/nut-wars/internal/games/nutwars"
)

const defaultGame = "nutwars"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func presetNames() string {
	presets := config.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nutwars",
	Short: "Nut Wars - catch the falling nuts",
	Long: `Nut Wars is a small arcade game. Walk the squirrel left and right to
catch the nuts falling from the sky. Every catch makes the next nut fall faster.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  window   - Play in a desktop window with sprites
  config   - Print the effective configuration

Examples:
  nutwars play
  nutwars play --difficulty hard
  nutwars window --scale 0.75
  nutwars config --difficulty easy > my-nutwars.yaml
  nutwars play --config ./my-nutwars.yaml --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+presetNames())
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (terminal mode logs nowhere without it)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the catch sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
