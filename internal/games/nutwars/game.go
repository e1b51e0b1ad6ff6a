// Package nutwars implements Nut Wars: a squirrel walks left and right
// catching nuts that fall from the top of the screen.
package nutwars

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/jl-5/nut-wars/internal/actor"
	"github.com/jl-5/nut-wars/internal/config"
	"github.com/jl-5/nut-wars/internal/core"
	"github.com/jl-5/nut-wars/internal/registry"
	"github.com/jl-5/nut-wars/internal/sprite"
)

// Draw-list slots.
const (
	SlotBackground = iota
	SlotPlayer
	SlotNut
)

// ScoreState is the scoring state updated by the catch check.
type ScoreState struct {
	Score            int  // Monotonically non-decreasing
	ScoreJustChanged bool // Set on the tick the score went up, cleared once the nut is clear
	NutsCollected    int  // Every tick with an overlap counts
}

// Game implements the Nut Wars game logic.
type Game struct {
	cfg    config.NutWarsConfig
	rng    *rand.Rand
	player *actor.Actor
	nut    *actor.Actor
	score  ScoreState
	tick   uint64
	paused bool
	mouse  core.Point
}

// Package-level configuration used by the registry factory.
var (
	configMu     sync.Mutex
	activeConfig = config.DefaultNutWarsConfig()
)

// SetConfig validates cfg and makes it the configuration for games created
// through the registry.
func SetConfig(cfg config.NutWarsConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	configMu.Lock()
	activeConfig = cfg
	configMu.Unlock()
	return nil
}

// New creates a game with the package configuration.
func New() (*Game, error) {
	configMu.Lock()
	cfg := activeConfig
	configMu.Unlock()
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration.
// The game is ready to Step after a call to Reset.
func NewWithConfig(cfg config.NutWarsConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg}
	if err := g.build(0); err != nil {
		return nil, err
	}
	return g, nil
}

func init() {
	registry.Register("nutwars", "Nut Wars", func() (registry.Game, error) {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "nutwars"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Nut Wars"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if err := g.build(cfg.Seed); err != nil {
		// The config was validated in NewWithConfig, so this is a broken invariant.
		panic(fmt.Sprintf("nutwars: reset: %v", err))
	}
}

// build creates both actors from the configuration.
func (g *Game) build(seed int64) error {
	g.rng = rand.New(rand.NewSource(seed))
	g.score = ScoreState{}
	g.tick = 0
	g.paused = false
	g.mouse = core.Point{}

	player, err := newActor(g.cfg.Player, SlotPlayer, 0, 0, nil)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	nut, err := newActor(g.cfg.Nut.ActorConfig, SlotNut, float64(g.cfg.Screen.Height), g.cfg.Screen.Width, g.rng)
	if err != nil {
		return fmt.Errorf("nut: %w", err)
	}

	g.player = player
	g.nut = nut
	return nil
}

func newActor(ac config.ActorConfig, slot int, topY float64, maxX int, rng actor.Rand) (*actor.Actor, error) {
	anim, err := sprite.NewAnimation(ac.Animation.Frames, ac.Animation.Rate)
	if err != nil {
		return nil, err
	}
	return actor.New(actor.Config{
		Rect:        ac.Rect.Rect(),
		FacingRight: ac.FacingRight,
		Speed:       ac.Speed,
		FlipOffset:  ac.FlipOffset,
		Slot:        slot,
		Animation:   anim,
		TopY:        topY,
		MaxX:        maxX,
		Rand:        rng,
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	g.mouse = in.Mouse

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.movePlayer(in)
	g.nut.Descend()
	changed := g.checkCatch()

	return core.StepResult{State: g.State(), ScoreChanged: changed}
}

// movePlayer drives the squirrel from the held direction keys.
// Releasing a key with no direction held returns the squirrel to its rest frame.
func (g *Game) movePlayer(in core.InputFrame) {
	switch {
	case in.Held(core.KeyLeft):
		g.player.FaceLeft()
		g.player.MoveHorizontal()
		g.player.Animation().Tick()
	case in.Held(core.KeyRight):
		g.player.FaceRight()
		g.player.MoveHorizontal()
		g.player.Animation().Tick()
	case in.AnyReleased():
		g.player.Animation().Stop()
	}
}

// checkCatch tests the squirrel against the nut and updates the score.
// Returns true if the score went up this tick.
func (g *Game) checkCatch() bool {
	if !g.player.Box().Overlaps(g.nut.Rect) {
		g.score.ScoreJustChanged = false
		return false
	}

	g.score.NutsCollected++
	g.nut.Speed += g.cfg.Nut.SpeedIncrement
	g.nut.ResetPosition()

	if g.score.ScoreJustChanged {
		return false
	}
	g.score.Score++
	g.score.ScoreJustChanged = true
	return true
}

// Sprites returns the draw list in slot order.
func (g *Game) Sprites() []sprite.DrawRecord {
	return []sprite.DrawRecord{
		{
			Slot:   SlotBackground,
			Screen: core.NewRect(0, 0, float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height)),
			Sheet:  g.cfg.Background,
		},
		g.player.DrawRecord(),
		g.nut.DrawRecord(),
	}
}

// WorldSize returns the visible world size in pixels.
func (g *Game) WorldSize() (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Score returns the scoring state.
func (g *Game) Score() ScoreState {
	return g.score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score.Score,
		Paused: g.paused,
	}
}
