package core

// Color is a palette entry shared by every frontend. The terminal maps it to
// ANSI 256-color codes, the desktop window to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorWhite
	ColorYellow
	ColorOrange
	ColorGold
	ColorCyan
	ColorGray
	ColorRed
)
