package core

// Color represents a foreground color for a screen cell.
// Hosts map these to ANSI 256-color codes or terminal styles.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
)
