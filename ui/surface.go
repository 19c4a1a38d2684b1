package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Text alignment inside a region.
const (
	AlignLeft   = tview.AlignLeft
	AlignCenter = tview.AlignCenter
	AlignRight  = tview.AlignRight
)

// Surface is the drawing target handed to screens each frame.
// Screens decide regions and content; the surface decides how it looks.
type Surface interface {
	Size() (width, height int)
	// Box draws a rounded bordered box with an optional title.
	Box(r Rect, title string, color tcell.Color)
	// Text draws one line per row starting at the top of r.
	Text(r Rect, lines []string, align int, color tcell.Color)
	// Gauge draws a horizontal progress bar for percent in [0,100].
	Gauge(r Rect, percent int, color tcell.Color)
	// Fill paints the background of r.
	Fill(r Rect, color tcell.Color)
}

type screenSurface struct {
	screen tcell.Screen
}

// NewSurface wraps a tcell screen.
func NewSurface(screen tcell.Screen) Surface {
	return &screenSurface{screen: screen}
}

func (s *screenSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *screenSurface) Box(r Rect, title string, color tcell.Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	style := tcell.StyleDefault.Foreground(color)
	x1, y1 := r.X+r.W-1, r.Y+r.H-1

	// ╭───╮
	s.screen.SetContent(r.X, r.Y, '╭', nil, style)
	s.screen.SetContent(x1, r.Y, '╮', nil, style)
	s.screen.SetContent(r.X, y1, '╰', nil, style)
	s.screen.SetContent(x1, y1, '╯', nil, style)
	for col := r.X + 1; col < x1; col++ {
		s.screen.SetContent(col, r.Y, '─', nil, style)
		s.screen.SetContent(col, y1, '─', nil, style)
	}
	for row := r.Y + 1; row < y1; row++ {
		s.screen.SetContent(r.X, row, '│', nil, style)
		s.screen.SetContent(x1, row, '│', nil, style)
	}

	if title != "" && r.W > 4 {
		tview.Print(s.screen, " "+tview.Escape(title)+" ", r.X+1, r.Y, r.W-2, tview.AlignCenter, color)
	}
}

func (s *screenSurface) Text(r Rect, lines []string, align int, color tcell.Color) {
	for i, line := range lines {
		if i >= r.H {
			return
		}
		tview.Print(s.screen, tview.Escape(line), r.X, r.Y+i, r.W, align, color)
	}
}

func (s *screenSurface) Gauge(r Rect, percent int, color tcell.Color) {
	if r.Empty() {
		return
	}
	bar, label := gaugeBar(r.W, percent)
	tview.Print(s.screen, bar, r.X, r.Y, r.W, tview.AlignLeft, color)
	tview.Print(s.screen, label, r.X, r.Y, r.W, tview.AlignRight, MenuColors.Label)
}

func (s *screenSurface) Fill(r Rect, color tcell.Color) {
	if r.Empty() {
		return
	}
	box := tview.NewBox().SetBackgroundColor(color)
	box.SetRect(r.X, r.Y, r.W, r.H)
	box.Draw(s.screen)
}
