package tui

import (
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jl-5/nut-wars/internal/core"
	"github.com/jl-5/nut-wars/internal/registry"
)

// statusDuration is how long a status message stays in the help line.
const statusDuration = 2 * time.Second

// Chime is notified whenever the score goes up.
type Chime interface {
	Play()
}

// Options configures the terminal frontend.
type Options struct {
	Logger *log.Logger
	Chime  Chime

	// CopyText puts text on the system clipboard. Defaults to clipboard.WriteAll.
	CopyText func(string) error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	fixedSeed  bool // Seed came from the command line and survives restarts
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	latch      *keyLatch
	help       help.Model
	logger     *log.Logger
	chime      Chime
	copyText   func(string) error
	status     string
	statusTTL  int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) *Model {
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config:     cfg,
		fixedSeed:  fixed,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		latch:      newKeyLatch(cfg.TickRate),
		help:       help.New(),
		logger:     logger,
		chime:      opts.Chime,
		copyText:   copyText,
	}
}

// Init initializes the model and starts the game.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Screenshot):
		m.copyScreen()
		return m, nil
	case key.Matches(msg, m.keys.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, dir := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	if dir != core.KeyNone {
		m.latch.Press(dir)
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse records the cursor position in world coordinates.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	worldW, worldH := m.game.WorldSize()
	p := cellToWorld(msg.X, msg.Y, m.screen.Width(), m.screen.Height(), worldW, worldH)
	m.inputFrame.SetMouse(p.X, p.Y)
}

// handleResize processes window resize events.
// The world has a fixed pixel size, so the game keeps running.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	m.latch.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	if result.State.Paused != m.gameState.Paused {
		m.logger.Info("pause", "paused", result.State.Paused)
	}
	m.gameState = result.State
	if result.ScoreChanged {
		m.logger.Debug("score", "score", result.State.Score)
		if m.chime != nil {
			m.chime.Play()
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) restart() {
	m.logger.Info("restart", "score", m.gameState.Score)
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.latch.Reset()
	m.inputFrame.Clear()
	for k := range m.inputFrame.HeldKeys {
		delete(m.inputFrame.HeldKeys, k)
	}
}

// copyScreen puts the current screen on the clipboard as plain text.
func (m *Model) copyScreen() {
	m.game.Render(m.screen)

	if err := m.copyText(m.screen.String()); err != nil {
		m.logger.Warn("copy screen", "err", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("screen copied")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTTL = int(statusDuration * time.Duration(m.config.TickRate) / time.Second)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys.Keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the latest game state.
func (m *Model) State() core.GameState {
	return m.gameState
}

// cellToWorld maps a terminal cell to world coordinates (origin bottom-left).
// Rows below the HUD line cover the world from top to bottom.
func cellToWorld(col, row, cols, rows, worldW, worldH int) core.Point {
	playRows := core.Max(rows-2, 1)
	x := (float64(col) + 0.5) / float64(core.Max(cols, 1)) * float64(worldW)
	y := float64(worldH) - (float64(row-1)+0.5)/float64(playRows)*float64(worldH)
	return core.Point{X: x, Y: y}
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cursor position is part of the input frame
	)

	_, err := p.Run()
	return err
}
