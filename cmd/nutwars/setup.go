package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jl-5/nut-wars/internal/config"
	"github.com/jl-5/nut-wars/internal/games/nutwars"
	"github.com/jl-5/nut-wars/internal/platform/sound"
	"github.com/jl-5/nut-wars/internal/registry"
)

const chimeVolume = 0.4

// newLogger creates the session logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "nutwars",
		Level:           level,
	}), nil
}

// openLogFile opens --log-file for appending, or discards logs without it.
// The returned close function is never nil.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// loadConfig resolves the game configuration and applies the difficulty preset.
func loadConfig() (config.NutWarsConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, source, err
	}
	return cfg, source, cfg.Validate()
}

// createGame configures and instantiates a registered game.
func createGame(gameID string, logger *log.Logger) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q (run 'nutwars list' to see available games)", gameID)
	}

	if gameID == defaultGame {
		cfg, source, err := loadConfig()
		if err != nil {
			return nil, err
		}
		if err := nutwars.SetConfig(cfg); err != nil {
			return nil, err
		}
		logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)
	}

	return registry.Create(gameID)
}

// newChime opens the audio device unless muted. Returns nil when silent.
func newChime(logger *log.Logger) *sound.Chime {
	if flagMute {
		return nil
	}
	c := sound.NewChime(chimeVolume)
	if err := c.Init(); err != nil {
		logger.Warn("audio unavailable", "err", err)
		return nil
	}
	return c
}

func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
