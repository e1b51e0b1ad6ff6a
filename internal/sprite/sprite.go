// Package sprite holds sprite-sheet regions, frame animations and the draw
// records games publish to renderers. It knows nothing about screen placement
// beyond carrying the rectangle a record should be drawn at.
package sprite

import "github.com/jl-5/nut-wars/internal/core"

// Region is a rectangle of the sprite sheet in normalized [0, 1] coordinates.
type Region struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Valid reports whether the region lies inside the sheet and has an area.
func (r Region) Valid() bool {
	return r.W > 0 && r.H > 0 &&
		r.X >= 0 && r.Y >= 0 &&
		r.X+r.W <= 1 && r.Y+r.H <= 1
}

// DrawRecord is one entry of the list a game publishes each tick.
// Renderers draw records in Slot order.
type DrawRecord struct {
	Slot   int
	Screen core.Rect // world placement; negative W means mirrored
	Sheet  Region
}
