package engine

import (
	"errors"

	"kalah/game"
)

var ErrInsufficientMoves = errors.New("insufficient moves")

// Update describes one applied move.
type Update struct {
	Step    int // 1-based position in the move list
	Player  game.Player
	House   int
	Landing game.Landing
	State   *game.GameState
}

// Observer is called after every successful move. A returned error aborts
// the run.
type Observer func(Update) error
