package ui

import (
	"github.com/gdamore/tcell/v2"

	"termtac/types"
)

// KeyFromEvent maps a tcell key event onto the input vocabulary.
// Vim-style h/j/k/l move and q backs out like Escape.
func KeyFromEvent(event *tcell.EventKey) types.Key {
	switch event.Key() {
	case tcell.KeyUp:
		return types.KeyUp
	case tcell.KeyDown:
		return types.KeyDown
	case tcell.KeyLeft:
		return types.KeyLeft
	case tcell.KeyRight:
		return types.KeyRight
	case tcell.KeyEnter:
		return types.KeyEnter
	case tcell.KeyEscape:
		return types.KeyEscape
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			return types.KeyUp
		case 'j':
			return types.KeyDown
		case 'h':
			return types.KeyLeft
		case 'l':
			return types.KeyRight
		case 'q':
			return types.KeyEscape
		}
	}
	return types.KeyOther
}
