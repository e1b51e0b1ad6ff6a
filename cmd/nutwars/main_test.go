package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/jl-5/nut-wars/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagDifficulty = ""
		flagConfig = ""
		flagLogLevel = "info"
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "nutwars") || !strings.Contains(out, "Nut Wars") {
		t.Errorf("list output missing nutwars:\n%s", out)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "fixed")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	cfg, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("config output does not parse: %v\n%s", err, out)
	}
	if cfg.Nut.SpeedIncrement != 0 {
		t.Errorf("fixed preset: speed_increment = %v, expected 0", cfg.Nut.SpeedIncrement)
	}
}

func TestConfigCommandUnknownPreset(t *testing.T) {
	if _, err := execute(t, "config", "--difficulty", "brutal"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestNewLogger(t *testing.T) {
	flagLogLevel = "debug"
	t.Cleanup(func() { flagLogLevel = "info" })

	var buf bytes.Buffer
	logger, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", logger.GetLevel())
	}

	logger.Debug("hello", "k", 1)
	if !strings.Contains(buf.String(), "nutwars") || !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if _, err := newLogger(&bytes.Buffer{}); err == nil {
		t.Error("unknown level should fail")
	}
}

func TestCreateGameUnknown(t *testing.T) {
	if _, err := createGame("pong", log.New(&bytes.Buffer{})); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestCreateGameDefault(t *testing.T) {
	g, err := createGame(gameArg(nil), log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("createGame() failed: %v", err)
	}
	if g.ID() != defaultGame {
		t.Errorf("ID() = %q", g.ID())
	}
}
