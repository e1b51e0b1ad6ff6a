package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jl-5/nut-wars/internal/core"
)

// spriteGeoM maps a frame of size src onto the world rectangle dst.
// The world has its origin at the bottom-left with y up; a sprite covers
// [X, X+W] by [Y, Y+H], so a negative width mirrors it horizontally.
func spriteGeoM(dst core.Rect, src image.Rectangle, worldH float64) ebiten.GeoM {
	var m ebiten.GeoM
	if src.Dx() == 0 || src.Dy() == 0 {
		return m
	}
	m.Scale(dst.W/float64(src.Dx()), dst.H/float64(src.Dy()))
	m.Translate(dst.X, worldH-dst.Y-dst.H)
	return m
}

// cursorToWorld converts window pixels (origin top-left) to world coordinates.
func cursorToWorld(x, y int, worldH float64) core.Point {
	return core.Point{X: float64(x), Y: worldH - float64(y)}
}
