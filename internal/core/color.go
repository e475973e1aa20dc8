package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"purple":  ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"grey":    ColorGray,
}

// ParseColor resolves a palette name such as "red" to a screen color.
// Matching is case-insensitive.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Cell is a single character on the screen with its color.
type Cell struct {
	Rune  rune
	Color Color
}
