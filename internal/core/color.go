package core

// Color is a foreground color for a screen cell.
// The terminal platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the terminal renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)
