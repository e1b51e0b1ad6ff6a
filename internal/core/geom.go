// Package core provides fundamental types shared by the game logic and the
// platform frontends. It contains no external dependencies (no Bubble Tea, no
// ebiten) to keep game logic pure and testable.
package core

// Rect is a rectangle in world pixel coordinates. The world origin is the
// bottom-left corner of the visible area and y grows upward.
// A negative W marks a sprite drawn mirrored from its native orientation.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Mirrored reports whether the rectangle carries a negative width.
func (r Rect) Mirrored() bool {
	return r.W < 0
}

// Normalized returns the same area with a positive width.
func (r Rect) Normalized() Rect {
	if r.W < 0 {
		return Rect{X: r.X + r.W, Y: r.Y, W: -r.W, H: r.H}
	}
	return r
}

// Overlaps reports whether two boxes overlap.
// Horizontally a box spans [X, X+W]; vertically it spans [Y-H, Y].
// Both boxes must have a positive width (see Normalized).
func (r Rect) Overlaps(other Rect) bool {
	return r.X+r.W > other.X &&
		r.X < other.X+other.W &&
		r.Y-r.H < other.Y &&
		r.Y > other.Y-other.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
