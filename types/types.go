// Package types contains shared data structures for termtac.
package types

import (
	"github.com/gdamore/tcell/v2"

	"termtac/engine"
)

// Key is a key press from the closed input vocabulary the screens act on.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	default:
		return "other"
	}
}

// OpponentKind tells who plays the Opponent side of a game.
type OpponentKind int

const (
	OpponentComputer OpponentKind = iota
	OpponentHuman
)

func (k OpponentKind) String() string {
	if k == OpponentHuman {
		return "human"
	}
	return "computer"
}

// ActionKind enumerates the navigation signals a screen can emit.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMainMenu
	ActionSettings
	ActionStartGame
	ActionChangeColor
	ActionQuit
)

func (k ActionKind) String() string {
	switch k {
	case ActionMainMenu:
		return "main_menu"
	case ActionSettings:
		return "settings"
	case ActionStartGame:
		return "start_game"
	case ActionChangeColor:
		return "change_color"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Action is returned by a screen after handling a key.
// Opponent is set for ActionStartGame, Side and Color for ActionChangeColor.
type Action struct {
	Kind     ActionKind
	Opponent OpponentKind
	Side     engine.Side
	Color    tcell.Color
}

// Nothing leaves the application unchanged.
func Nothing() Action { return Action{Kind: ActionNone} }

// GoToMain returns to a fresh main menu.
func GoToMain() Action { return Action{Kind: ActionMainMenu} }

// GoToSettings opens a fresh settings screen.
func GoToSettings() Action { return Action{Kind: ActionSettings} }

// StartGame opens a fresh game against the given opponent.
func StartGame(opponent OpponentKind) Action {
	return Action{Kind: ActionStartGame, Opponent: opponent}
}

// ChangeColor sets the display colour of a side.
func ChangeColor(side engine.Side, color tcell.Color) Action {
	return Action{Kind: ActionChangeColor, Side: side, Color: color}
}

// Quit stops the application after the current frame.
func Quit() Action { return Action{Kind: ActionQuit} }

// Settings holds the display colour of each side for the whole run.
type Settings struct {
	SelfColor     tcell.Color
	OpponentColor tcell.Color
}

// Color returns the display colour of a side.
func (s Settings) Color(side engine.Side) tcell.Color {
	if side == engine.Opponent {
		return s.OpponentColor
	}
	return s.SelfColor
}

// SetColor changes the display colour of a side.
func (s *Settings) SetColor(side engine.Side, c tcell.Color) {
	if side == engine.Opponent {
		s.OpponentColor = c
		return
	}
	s.SelfColor = c
}
