package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/jl-5/nut-wars/internal/core"
	"github.com/jl-5/nut-wars/internal/registry"
)

// Chime is notified whenever the score goes up.
type Chime interface {
	Play()
}

// Options configures the window frontend.
type Options struct {
	Logger    *log.Logger
	Chime     Chime
	SheetPath string  // Sprite sheet image; empty uses the generated sheet
	Scale     float64 // Window size relative to the world size
}

// keySource reports keyboard and cursor state for one tick.
type keySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	Cursor() (x, y int)
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenKeys) Cursor() (int, int)             { return ebiten.CursorPosition() }

// Key bindings per game key.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	pauseKeys   = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyQ}
)

func anyKey(keys []ebiten.Key, f func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}

// readInput builds the input frame for one tick.
func readInput(ks keySource, worldH float64) core.InputFrame {
	in := core.NewInputFrame()

	for _, b := range []struct {
		key  core.Key
		keys []ebiten.Key
	}{
		{core.KeyLeft, leftKeys},
		{core.KeyRight, rightKeys},
	} {
		if anyKey(b.keys, ks.Pressed) {
			in.Hold(b.key)
		}
		if anyKey(b.keys, ks.JustReleased) {
			in.Release(b.key)
		}
	}

	if anyKey(pauseKeys, ks.JustPressed) {
		in.Set(core.ActionPause)
	}
	if anyKey(restartKeys, ks.JustPressed) {
		in.Set(core.ActionRestart)
	}
	if anyKey(quitKeys, ks.JustPressed) {
		in.Set(core.ActionQuit)
	}

	x, y := ks.Cursor()
	p := cursorToWorld(x, y, worldH)
	in.SetMouse(p.X, p.Y)
	return in
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game      registry.Game
	config    core.RuntimeConfig
	fixedSeed bool
	sheet     *ebiten.Image
	keys      keySource
	logger    *log.Logger
	chime     Chime
	state     core.GameState
}

// New creates a window frontend for game.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) (*Window, error) {
	sheet, err := sheetImage(opts.SheetPath)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	w := &Window{
		game:      game,
		config:    cfg,
		fixedSeed: fixed,
		sheet:     sheet,
		keys:      ebitenKeys{},
		logger:    logger,
		chime:     opts.Chime,
	}
	w.game.Reset(w.config)
	w.state = w.game.State()
	return w, nil
}

func sheetImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return ebiten.NewImageFromImage(GenerateSheet()), nil
	}
	return LoadSheet(path)
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	_, worldH := w.game.WorldSize()
	in := readInput(w.keys, float64(worldH))

	switch {
	case in.Has(core.ActionQuit):
		w.logger.Info("quit", "score", w.state.Score)
		return ebiten.Termination
	case in.Has(core.ActionRestart):
		w.logger.Info("restart", "score", w.state.Score)
		if !w.fixedSeed {
			w.config.Seed = time.Now().UnixNano()
		}
		w.game.Reset(w.config)
		w.state = w.game.State()
		return nil
	}

	result := w.game.Step(in)
	if result.State.Paused != w.state.Paused {
		w.logger.Info("pause", "paused", result.State.Paused)
	}
	w.state = result.State
	if result.ScoreChanged {
		w.logger.Debug("score", "score", result.State.Score)
		if w.chime != nil {
			w.chime.Play()
		}
	}
	return nil
}

// Draw draws the sprite list in slot order, then the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	_, worldH := w.game.WorldSize()
	bounds := w.sheet.Bounds()

	for _, rec := range w.game.Sprites() {
		src := regionBounds(rec.Sheet, bounds)
		if src.Empty() {
			continue
		}
		frame, ok := w.sheet.SubImage(src).(*ebiten.Image)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM = spriteGeoM(rec.Screen, src, float64(worldH))
		screen.DrawImage(frame, op)
	}

	text.Draw(screen, fmt.Sprintf("Score: %d", w.state.Score), basicfont.Face7x13, 12, 24, color.White)

	if w.state.Paused {
		w.drawPaused(screen)
	}
}

func (w *Window) drawPaused(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{0, 0, 0, 120}, false)

	msg := "PAUSED - press P to resume"
	x := (b.Dx() - len(msg)*basicfont.Face7x13.Advance) / 2
	text.Draw(screen, msg, basicfont.Face7x13, x, b.Dy()/2, color.White)
}

// Layout keeps the logical screen at the world size; Ebitengine scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.game.WorldSize()
}

// Run opens a window and runs game until it is closed or quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w, err := New(game, cfg, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	worldW, worldH := game.WorldSize()
	ebiten.SetWindowSize(int(float64(worldW)*scale), int(float64(worldH)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

var _ ebiten.Game = (*Window)(nil)
