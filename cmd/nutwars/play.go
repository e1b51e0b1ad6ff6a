package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jl-5/nut-wars/internal/core"
	"github.com/jl-5/nut-wars/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing in the terminal. The game defaults to nutwars.

Controls:
  Left/A, Right/D  - Walk
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Copy the screen to the clipboard
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower nuts, gentler speed-up
  normal - Configured values
  hard   - Faster nuts, steeper speed-up
  fixed  - Nuts never speed up

Examples:
  nutwars play
  nutwars play --difficulty hard
  nutwars play --log-file nutwars.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logOut, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	game, err := createGame(gameArg(args), logger)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if cfg.TickRate <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", cfg.TickRate)
	}

	opts := tui.Options{Logger: logger}
	if chime := newChime(logger); chime != nil {
		defer chime.Close()
		opts.Chime = chime
	}

	logger.Info("session start", "frontend", "terminal", "game", game.ID())
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("session end", "score", game.State().Score)
	return nil
}
