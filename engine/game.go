package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Side is one of the two logical turn holders.
type Side uint8

const (
	Self Side = iota
	Opponent
)

func (s Side) String() string {
	if s == Opponent {
		return "opponent"
	}
	return "self"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Self {
		return Opponent
	}
	return Self
}

var (
	ErrOutOfRange   = errors.New("field number out of range")
	ErrCellOccupied = errors.New("select empty field")
	ErrGameOver     = errors.New("game is already over")
)

// Game tracks a single match. The zero value is not usable; use NewGame.
type Game struct {
	board  Board
	turn   Side
	marks  [2]Mark
	winner Mark
	over   bool
	rng    *rand.Rand
}

// NewGame creates a game with an empty board.
func NewGame(cfg GameConfig) *Game {
	self := cfg.SelfMark
	if self != X && self != O {
		self = X
	}
	return &Game{
		turn:  cfg.FirstTurn,
		marks: [2]Mark{Self: self, Opponent: self.Other()},
		rng:   cfg.Rand,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Turn returns the side to move. Once the game is over it stays on the side
// that made the final move.
func (g *Game) Turn() Side {
	return g.turn
}

// MarkOf returns the mark assigned to a side.
func (g *Game) MarkOf(s Side) Mark {
	return g.marks[s]
}

// SideOf returns the side owning a mark. ok is false for Empty.
func (g *Game) SideOf(m Mark) (s Side, ok bool) {
	switch m {
	case g.marks[Self]:
		return Self, true
	case g.marks[Opponent]:
		return Opponent, true
	}
	return Self, false
}

// Winner returns the winning mark once the game is over. A finished game
// with an Empty winner is a draw.
func (g *Game) Winner() (Mark, bool) {
	return g.winner, g.over
}

// Over returns true if no further moves are accepted.
func (g *Game) Over() bool {
	return g.over
}

// IsDraw returns true if the game ended with a full board and no line.
func (g *Game) IsDraw() bool {
	return g.over && g.winner == Empty
}

// AttemptMove places the mark of the side to move at index.
// The board is left untouched when an error is returned.
func (g *Game) AttemptMove(index int) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("move %d: %w", index, ErrOutOfRange)
	}
	if g.board[index] != Empty {
		return fmt.Errorf("move %s: %w", CellLabel(index), ErrCellOccupied)
	}
	if g.over {
		return fmt.Errorf("move %s: %w", CellLabel(index), ErrGameOver)
	}

	g.board[index] = g.marks[g.turn]
	if winner, ok := Evaluate(g.board); ok {
		g.winner = winner
		g.over = true
		return nil
	}
	g.turn = g.turn.Other()
	return nil
}
