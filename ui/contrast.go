package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// labelColor returns black or white, whichever reads better on bg.
func labelColor(bg tcell.Color) tcell.Color {
	r, g, b := bg.RGB()
	if r < 0 {
		return tcell.ColorWhite
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	if l, _, _ := c.Lab(); l > 0.6 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
