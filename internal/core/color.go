package core

// Color is the foreground colour of a screen cell.
// Frontends translate it to lipgloss or tcell styles.
type Color uint8

// Predefined colours for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
