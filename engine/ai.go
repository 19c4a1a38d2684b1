package engine

import "math/rand/v2"

// SelectAIMove picks a move for side with a one-ply heuristic:
//  1. take the first empty cell that completes a line for side,
//  2. otherwise the first empty cell where the opposing mark would decide
//     the board (any completed line or a full board),
//  3. otherwise a uniformly random empty cell.
//
// ok is false only when the board has no empty cell. Forks are not seen.
func (g *Game) SelectAIMove(side Side) (index int, ok bool) {
	own := g.marks[side]
	enemy := g.marks[side.Other()]
	empty := g.board.EmptyCells()

	// Attack
	for _, i := range empty {
		sim := g.board
		sim[i] = own
		if winner, decided := Evaluate(sim); decided && winner == own {
			return i, true
		}
	}

	// Defense
	for _, i := range empty {
		sim := g.board
		sim[i] = enemy
		if _, decided := Evaluate(sim); decided {
			return i, true
		}
	}

	if len(empty) == 0 {
		return -1, false
	}
	return empty[g.intN(len(empty))], true
}

func (g *Game) intN(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}
