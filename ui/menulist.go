package ui

import (
	"github.com/gdamore/tcell/v2"

	"termtac/art"
	"termtac/types"
)

// MenuList is a vertical list with a clamped cursor.
type MenuList struct {
	options  []string
	selected int
}

// NewMenuList creates a list with the cursor on the first option.
func NewMenuList(options ...string) *MenuList {
	return &MenuList{options: options}
}

// HandleKey moves the cursor on Up and Down. Returns true if handled.
func (m *MenuList) HandleKey(key types.Key) bool {
	switch key {
	case types.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
		return true
	case types.KeyDown:
		if m.selected < len(m.options)-1 {
			m.selected++
		}
		return true
	}
	return false
}

// Selected returns the cursor index.
func (m *MenuList) Selected() int {
	return m.selected
}

// Reset moves the cursor back to the first option.
func (m *MenuList) Reset() {
	m.selected = 0
}

// Len returns the number of options.
func (m *MenuList) Len() int {
	return len(m.options)
}

// Lines returns the rows to draw, marking the selected one.
func (m *MenuList) Lines() []string {
	lines := make([]string, len(m.options))
	for i, opt := range m.options {
		if i == m.selected {
			lines[i] = ">> " + opt
		} else {
			lines[i] = "   " + opt
		}
	}
	return lines
}

// Draw renders the list in r, one option per row, the selected row highlighted.
func (m *MenuList) Draw(s Surface, r Rect, align int) {
	for i, line := range m.Lines() {
		if i >= r.H {
			return
		}
		color := MenuColors.Label
		if i == m.selected {
			color = MenuColors.Selected
		}
		s.Text(Rect{X: r.X, Y: r.Y + i, W: r.W, H: 1}, []string{line}, align, color)
	}
}

// drawBlock draws an art block centered horizontally as a whole in r, with
// every line starting at the same column.
func drawBlock(s Surface, r Rect, lines []string, color tcell.Color) {
	w := art.Width(lines)
	x := r.X + max((r.W-w)/2, 0)
	s.Text(Rect{X: x, Y: r.Y, W: min(w, r.W), H: r.H}, lines, AlignLeft, color)
}
