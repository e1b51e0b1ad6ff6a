// Package window runs a game in a desktop window with Ebitengine, drawing
// the game's sprite list from a sprite sheet.
package window

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/jl-5/nut-wars/internal/sprite"
)

// Generated sheet layout: 4 columns by 2 rows of square cells.
// Row 0 holds the squirrel walk cycle, row 1 the nut and the background.
const (
	sheetCols = 4
	sheetRows = 2
	cellSize  = 64
)

// LoadSheet reads a sprite sheet image from disk.
func LoadSheet(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sheet %s: %w", path, err)
	}
	return img, nil
}

// GenerateSheet paints the built-in sprite sheet.
func GenerateSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sheetCols*cellSize, sheetRows*cellSize))

	for frame := 0; frame < sheetCols; frame++ {
		paintSquirrel(img, cellBounds(frame, 0), frame)
	}
	paintNut(img, cellBounds(0, 1))
	paintBackground(img, cellBounds(1, 1))

	return img
}

func cellBounds(col, row int) image.Rectangle {
	return image.Rect(col*cellSize, row*cellSize, (col+1)*cellSize, (row+1)*cellSize)
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// paintSquirrel draws a squirrel facing left. Mirrored drawing makes it face right.
func paintSquirrel(img *image.RGBA, cell image.Rectangle, frame int) {
	o := cell.Min
	s := cellSize / 16

	// Tail curls higher on odd frames
	tailTop := 3
	if frame%2 == 1 {
		tailTop = 2
	}
	fill(img, image.Rect(o.X+11*s, o.Y+tailTop*s, o.X+15*s, o.Y+10*s), colornames.Sienna)
	fill(img, image.Rect(o.X+4*s, o.Y+7*s, o.X+12*s, o.Y+13*s), colornames.Chocolate)
	fill(img, image.Rect(o.X+1*s, o.Y+5*s, o.X+6*s, o.Y+9*s), colornames.Chocolate)
	fill(img, image.Rect(o.X+2*s, o.Y+6*s, o.X+3*s, o.Y+7*s), colornames.Black)
	fill(img, image.Rect(o.X+3*s, o.Y+4*s, o.X+5*s, o.Y+5*s), colornames.Saddlebrown)

	// Legs step forward and back through the cycle
	step := []int{0, 1, 0, -1}[frame%4]
	fill(img, image.Rect(o.X+(5+step)*s, o.Y+13*s, o.X+(7+step)*s, o.Y+16*s), colornames.Saddlebrown)
	fill(img, image.Rect(o.X+(9-step)*s, o.Y+13*s, o.X+(11-step)*s, o.Y+16*s), colornames.Saddlebrown)
}

func paintNut(img *image.RGBA, cell image.Rectangle) {
	c := cell.Min.Add(image.Pt(cellSize/2, cellSize/2))
	r := float64(cellSize) * 0.4

	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		for x := cell.Min.X; x < cell.Max.X; x++ {
			dx, dy := float64(x-c.X)+0.5, float64(y-c.Y)+0.5
			switch d := math.Hypot(dx, dy*1.2); {
			case y < cell.Min.Y+cellSize/3 && d < r:
				img.Set(x, y, colornames.Saddlebrown)
			case d < r:
				img.Set(x, y, colornames.Peru)
			}
		}
	}
}

func paintBackground(img *image.RGBA, cell image.Rectangle) {
	grass := cell.Max.Y - cellSize/8
	for y := cell.Min.Y; y < grass; y++ {
		t := float64(y-cell.Min.Y) / float64(grass-cell.Min.Y)
		c := lerp(colornames.Deepskyblue, colornames.Lightskyblue, t)
		fill(img, image.Rect(cell.Min.X, y, cell.Max.X, y+1), c)
	}
	fill(img, image.Rect(cell.Min.X, grass, cell.Max.X, cell.Max.Y), colornames.Forestgreen)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// regionBounds converts a normalized sheet region to pixel bounds.
func regionBounds(r sprite.Region, sheet image.Rectangle) image.Rectangle {
	w, h := float64(sheet.Dx()), float64(sheet.Dy())
	return image.Rect(
		sheet.Min.X+int(math.Round(r.X*w)),
		sheet.Min.Y+int(math.Round(r.Y*h)),
		sheet.Min.X+int(math.Round((r.X+r.W)*w)),
		sheet.Min.Y+int(math.Round((r.Y+r.H)*h)),
	)
}
