package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for challenge elements.
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
	ColorBrightBlue
	ColorBrightCyan
	ColorPink
	ColorOrange
	ColorGray
)

// String returns the color name, used as a presentation tag.
func (c Color) String() string {
	switch c {
	case ColorRed, ColorBrightRed:
		return "red"
	case ColorGreen, ColorBrightGreen:
		return "green"
	case ColorYellow, ColorBrightYellow:
		return "yellow"
	case ColorBlue, ColorBrightBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan, ColorBrightCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorPink:
		return "pink"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
