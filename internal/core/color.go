package core

// Color is a foreground color for a screen cell, mapped to ANSI 256 codes
// by the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Cell is one character of the screen buffer.
// Rune 0 marks the second column of a double-width glyph.
type Cell struct {
	Rune  rune
	Color Color
}
