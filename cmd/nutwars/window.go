package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jl-5/nut-wars/internal/core"
	"github.com/jl-5/nut-wars/internal/platform/window"
)

var (
	flagSheet string
	flagScale float64
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play a game in a desktop window",
	Long: `Open a window and draw the game from a sprite sheet. Without --sheet a
built-in sheet is generated. A custom sheet must use the regions from the
game config (normalized [0,1] coordinates).

Controls:
  Left/A, Right/D  - Walk
  P/Esc            - Pause
  R                - Restart
  Q                - Quit

Examples:
  nutwars window
  nutwars window --scale 0.75
  nutwars window --sheet ./squirrel.png --config ./squirrel.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagSheet, "sheet", "", "Sprite sheet image (PNG)")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the world size")
}

func runWindow(cmd *cobra.Command, args []string) error {
	w, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	if flagLogFile == "" {
		w = os.Stderr
	}

	logger, err := newLogger(w)
	if err != nil {
		return err
	}

	game, err := createGame(gameArg(args), logger)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = game.WorldSize()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.TickRate <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", cfg.TickRate)
	}

	opts := window.Options{
		Logger:    logger,
		SheetPath: flagSheet,
		Scale:     flagScale,
	}
	if chime := newChime(logger); chime != nil {
		defer chime.Close()
		opts.Chime = chime
	}

	logger.Info("session start", "frontend", "window", "game", game.ID(), "sheet", flagSheet)
	if err := window.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("session end", "score", game.State().Score)
	return nil
}
