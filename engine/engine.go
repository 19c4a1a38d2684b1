// Package engine implements the tic-tac-toe rules and the computer opponent.
package engine

import "math/rand/v2"

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	SelfMark  Mark       // Mark placed by the Self side; the Opponent gets the other one
	FirstTurn Side       // Side that moves first
	Rand      *rand.Rand // Source for the AI fallback move; nil uses the global source
}

// DefaultConfig returns the configuration the game uses unless told otherwise.
func DefaultConfig() GameConfig {
	return GameConfig{
		SelfMark:  X,
		FirstTurn: Self,
	}
}
