package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the chrome colours shared by every screen.
var MenuColors = struct {
	Border   tcell.Color // Box outlines
	Title    tcell.Color // Headline art
	Label    tcell.Color // Plain text
	Hint     tcell.Color // Secondary text
	Selected tcell.Color // Highlighted menu row
	Tile     tcell.Color // Board tile outlines
	Warning  tcell.Color // Size hint and loss banner
	Success  tcell.Color // Win banner
}{
	Border:   tcell.ColorWhite,
	Title:    tcell.ColorWhite,
	Label:    tcell.ColorWhite,
	Hint:     tcell.PaletteColor(245),
	Selected: tcell.ColorYellow,
	Tile:     tcell.ColorWhite,
	Warning:  tcell.ColorRed,
	Success:  tcell.ColorGreen,
}
