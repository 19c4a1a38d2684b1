package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// PaletteColor is a named display colour a side can be drawn in.
type PaletteColor struct {
	Name  string
	Color tcell.Color
}

// Palette lists the selectable colours in menu order. The first five are
// the terminal's ANSI colours so they follow the user's terminal theme.
var Palette = []PaletteColor{
	{"Green", tcell.PaletteColor(2)},
	{"Blue", tcell.PaletteColor(4)},
	{"Magenta", tcell.PaletteColor(5)},
	{"Yellow", tcell.PaletteColor(3)},
	{"Red", tcell.PaletteColor(1)},
	{"Miku", tcell.NewRGBColor(134, 206, 203)},
	{"MorningSun", tcell.NewRGBColor(255, 255, 26)},
	{"Pink", tcell.NewRGBColor(255, 51, 255)},
	{"Orange", tcell.NewRGBColor(255, 102, 0)},
}

// LookupColor finds a palette colour by name, ignoring case.
func LookupColor(name string) (tcell.Color, bool) {
	for _, p := range Palette {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p.Color, true
		}
	}
	return tcell.ColorDefault, false
}

// ColorName returns the palette name of c, or its hex value when c is not
// part of the palette.
func ColorName(c tcell.Color) string {
	for _, p := range Palette {
		if p.Color == c {
			return p.Name
		}
	}
	return c.String()
}
