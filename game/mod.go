package game

import "errors"

// Player identifies a side of the board. South moves first.
type Player int

const (
	South Player = iota
	North
)

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	if p == South {
		return "south"
	}
	return "north"
}

type Winner int

const (
	Tie Winner = iota
	SouthWins
	NorthWins
)

// Result is the final score of a finished game.
type Result struct {
	Winner Winner
	Store0 int
	Store1 int
}

var (
	ErrInvalidMove     = errors.New("invalid move: house is empty")
	ErrHouseOutOfRange = errors.New("house out of range")
	ErrNotTerminal     = errors.New("game is not over")
	ErrInvalidSetup    = errors.New("houses and seeds must be positive")
)

type StateHash uint64
