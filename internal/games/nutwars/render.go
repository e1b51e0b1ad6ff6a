package nutwars

import (
	"fmt"
	"math"

	"github.com/jl-5/nut-wars/internal/core"
)

// Terminal layout
const (
	hudHeight    = 1 // Score line at the top
	groundHeight = 1 // Ground line at the bottom
	minCols      = 20
	minRows      = 6
)

// Visual characters for rendering
const (
	BodyChar   = '█'
	HeadChar   = '●'
	TailChar   = '~'
	NutChar    = '◆'
	GroundChar = '▀'
)

// legChars animates the squirrel's bottom row, indexed by animation frame.
var legChars = []rune{'┴', '╱', '╲'}

// playfield projects world pixels (origin bottom-left, y up) onto terminal
// cells (origin top-left, y down).
type playfield struct {
	top    int
	rows   int
	cols   int
	worldW float64
	worldH float64
}

func newPlayfield(dst *core.Screen, worldW, worldH int) playfield {
	return playfield{
		top:    hudHeight,
		rows:   core.Max(dst.Height()-hudHeight-groundHeight, 1),
		cols:   dst.Width(),
		worldW: float64(worldW),
		worldH: float64(worldH),
	}
}

func (p playfield) col(x float64) int {
	return int(math.Floor(x / p.worldW * float64(p.cols)))
}

func (p playfield) row(y float64) int {
	return p.top + p.rows - 1 - int(math.Floor(y/p.worldH*float64(p.rows)))
}

// cells returns the inclusive cell span covered by a world rectangle, clipped
// vertically to the playfield. ok is false if nothing is visible.
func (p playfield) cells(r core.Rect) (x0, y0, x1, y1 int, ok bool) {
	n := r.Normalized()
	x0 = p.col(n.X)
	x1 = core.Max(p.col(n.X+n.W)-1, x0)
	y1 = p.row(n.Y)
	y0 = core.Min(p.row(n.Y+n.H)+1, y1)

	y0 = core.Max(y0, p.top)
	y1 = core.Min(y1, p.top+p.rows-1)
	if y0 > y1 || x1 < 0 || x0 >= p.cols {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minCols || dst.Height() < minRows {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	w, h := g.WorldSize()
	pf := newPlayfield(dst, w, h)

	// Ground
	dst.DrawHLine(0, pf.top+pf.rows, dst.Width(), GroundChar, core.ColorGreen)

	g.drawNut(dst, pf)
	g.drawPlayer(dst, pf)

	// HUD
	hud := fmt.Sprintf(" Score: %d   Nuts: %d   Fall speed: %.1f ", g.score.Score, g.score.NutsCollected, g.nut.Speed)
	dst.DrawText(1, 0, hud)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawPlayer(dst *core.Screen, pf playfield) {
	x0, y0, x1, y1, ok := pf.cells(g.player.Rect)
	if !ok {
		return
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColor(x, y, BodyChar, core.ColorOrange)
		}
	}

	head, tail := x0, x1
	if g.player.FacingRight {
		head, tail = x1, x0
	}
	dst.SetColor(head, y0, HeadChar, core.ColorBrown)
	if tail != head {
		dst.SetColor(tail, y0, TailChar, core.ColorOrange)
	}

	if y1 > y0 {
		leg := legChars[g.player.Animation().Index()%len(legChars)]
		for x := x0; x <= x1; x++ {
			dst.SetColor(x, y1, leg, core.ColorOrange)
		}
	}
}

func (g *Game) drawNut(dst *core.Screen, pf playfield) {
	x0, y0, x1, y1, ok := pf.cells(g.nut.Rect)
	if !ok {
		return
	}
	dst.FillArea(x0, y0, x1-x0+1, y1-y0+1, NutChar, core.ColorBrown)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
