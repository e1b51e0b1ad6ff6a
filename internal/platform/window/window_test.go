package window

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/jl-5/nut-wars/internal/config"
	"github.com/jl-5/nut-wars/internal/core"
	"github.com/jl-5/nut-wars/internal/sprite"
)

type fakeKeys struct {
	pressed, justPressed, justReleased map[ebiten.Key]bool
	x, y                               int
}

func (f fakeKeys) Pressed(k ebiten.Key) bool      { return f.pressed[k] }
func (f fakeKeys) JustPressed(k ebiten.Key) bool  { return f.justPressed[k] }
func (f fakeKeys) JustReleased(k ebiten.Key) bool { return f.justReleased[k] }
func (f fakeKeys) Cursor() (int, int)             { return f.x, f.y }

func TestReadInput(t *testing.T) {
	ks := fakeKeys{
		pressed:      map[ebiten.Key]bool{ebiten.KeyA: true},
		justPressed:  map[ebiten.Key]bool{ebiten.KeyP: true},
		justReleased: map[ebiten.Key]bool{ebiten.KeyArrowRight: true},
		x:            100,
		y:            68,
	}

	in := readInput(ks, 768)

	if !in.Held(core.KeyLeft) || in.Held(core.KeyRight) {
		t.Errorf("held = %v, expected only left", in.HeldKeys)
	}
	if !in.Released(core.KeyRight) || in.Released(core.KeyLeft) {
		t.Errorf("released = %v, expected only right", in.ReleasedKeys)
	}
	if !in.Has(core.ActionPause) || in.Has(core.ActionRestart) || in.Has(core.ActionQuit) {
		t.Errorf("actions = %v, expected only pause", in.Actions)
	}
	if in.Mouse != (core.Point{X: 100, Y: 700}) {
		t.Errorf("Mouse = %+v, expected {100 700}", in.Mouse)
	}
}

func TestReadInputIdle(t *testing.T) {
	in := readInput(fakeKeys{}, 768)
	if len(in.HeldKeys) != 0 || in.AnyReleased() || len(in.Actions) != 0 {
		t.Errorf("idle input should be empty, got %+v", in)
	}
}

func TestRegionBounds(t *testing.T) {
	sheet := image.Rect(0, 0, 256, 128)

	got := regionBounds(sprite.Region{X: 0.25, Y: 0.5, W: 0.25, H: 0.5}, sheet)
	want := image.Rect(64, 64, 128, 128)
	if got != want {
		t.Errorf("regionBounds() = %v, expected %v", got, want)
	}
}

func TestSpriteGeoM(t *testing.T) {
	src := image.Rect(0, 0, 64, 64)

	tests := []struct {
		name      string
		dst       core.Rect
		topLeftX  float64
		topLeftY  float64
		botRightX float64
		botRightY float64
	}{
		{"upright", core.NewRect(100, 200, 32, 32), 100, 768 - 232, 132, 768 - 200},
		{"mirrored", core.NewRect(100, 200, -32, 32), 100, 768 - 232, 68, 768 - 200},
		{"scaled", core.NewRect(0, 0, 128, 64), 0, 704, 128, 768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := spriteGeoM(tt.dst, src, 768)

			x, y := m.Apply(0, 0)
			if x != tt.topLeftX || y != tt.topLeftY {
				t.Errorf("source (0,0) -> (%v,%v), expected (%v,%v)", x, y, tt.topLeftX, tt.topLeftY)
			}
			x, y = m.Apply(64, 64)
			if x != tt.botRightX || y != tt.botRightY {
				t.Errorf("source (64,64) -> (%v,%v), expected (%v,%v)", x, y, tt.botRightX, tt.botRightY)
			}
		})
	}
}

func TestSpriteGeoMEmptySource(t *testing.T) {
	m := spriteGeoM(core.NewRect(1, 2, 3, 4), image.Rectangle{}, 768)
	if x, y := m.Apply(5, 5); x != 5 || y != 5 {
		t.Errorf("empty source should give identity, got (%v,%v)", x, y)
	}
}

func TestCursorToWorld(t *testing.T) {
	if p := cursorToWorld(10, 0, 768); p != (core.Point{X: 10, Y: 768}) {
		t.Errorf("top edge -> %+v", p)
	}
}

func TestGenerateSheet(t *testing.T) {
	img := GenerateSheet()
	if img.Bounds().Dx() != sheetCols*cellSize || img.Bounds().Dy() != sheetRows*cellSize {
		t.Fatalf("sheet size = %v", img.Bounds())
	}

	cfg := config.DefaultNutWarsConfig()
	regions := append([]sprite.Region{cfg.Background, cfg.Nut.Animation.Frames[0]}, cfg.Player.Animation.Frames...)
	for _, r := range regions {
		b := regionBounds(r, img.Bounds())
		if b.Dx() != cellSize || b.Dy() != cellSize {
			t.Errorf("region %+v -> %v, expected one %dpx cell", r, b, cellSize)
		}
		if !painted(img, b) {
			t.Errorf("region %+v is blank", r)
		}
	}

	// Sky at the top of the background cell
	bg := regionBounds(cfg.Background, img.Bounds())
	if got := img.RGBAAt(bg.Min.X, bg.Min.Y); got != colornames.Deepskyblue {
		t.Errorf("background top = %v, expected sky", got)
	}
}

func painted(img *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}
