package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"kalah/utils"
)

// GameState is the mutable state of one Kalah game: the pits, both stores
// and the player to move.
type GameState struct {
	board  Board
	seeds  int
	pits   []int
	stores [2]int
	turn   Player
}

// NewGameState returns a game with seeds in every one of the 2*houses pits,
// empty stores and South to move.
func NewGameState(houses, seeds int) (*GameState, error) {
	if houses <= 0 || seeds <= 0 {
		return nil, fmt.Errorf("%w: houses=%d seeds=%d", ErrInvalidSetup, houses, seeds)
	}
	board := NewBoard(houses)
	pits := make([]int, board.Pits())
	for i := range pits {
		pits[i] = seeds
	}
	return &GameState{
		board: board,
		seeds: seeds,
		pits:  pits,
		turn:  South,
	}, nil
}

func (gs GameState) Copy() *GameState {
	pits := make([]int, len(gs.pits))
	copy(pits, gs.pits)
	gs.pits = pits
	return &gs
}

func (gs *GameState) Board() Board {
	return gs.board
}

// Seeds returns the initial seed count per house.
func (gs *GameState) Seeds() int {
	return gs.seeds
}

func (gs *GameState) Turn() Player {
	return gs.turn
}

// Pits returns a copy of the pit counts.
func (gs *GameState) Pits() []int {
	pits := make([]int, len(gs.pits))
	copy(pits, gs.pits)
	return pits
}

func (gs *GameState) Stores() (int, int) {
	return gs.stores[South], gs.stores[North]
}

// Total counts every seed in play. It always equals 2*H*S.
func (gs *GameState) Total() int {
	return utils.Sum(gs.pits) + gs.stores[South] + gs.stores[North]
}

// ApplyMove sows the seeds of the mover's house (1-based) and resolves the
// turn. An empty house fails with ErrInvalidMove and leaves the state as is.
func (gs *GameState) ApplyMove(house int) (Landing, error) {
	if house < 1 || house > gs.board.Houses {
		return LandedElsewhere, fmt.Errorf("%w: %d not in [1,%d]", ErrHouseOutOfRange, house, gs.board.Houses)
	}
	mover := gs.turn
	from := gs.board.PitIndex(mover, house)
	seeds := gs.pits[from]
	if seeds == 0 {
		return LandedElsewhere, ErrInvalidMove
	}
	gs.pits[from] = 0

	slot := gs.board.SlotOf(from)
	for ; seeds > 0; seeds-- {
		slot = gs.board.Next(slot, mover)
		if pit, ok := gs.board.PitAt(slot); ok {
			gs.pits[pit]++
		} else {
			gs.stores[mover]++
		}
	}

	landing := gs.resolveLanding(mover, slot)
	switch landing {
	case LandedInStore:
		// mover goes again
	case LandedCapture:
		pit, _ := gs.board.PitAt(slot)
		opposite := gs.board.Opposite(pit)
		gs.stores[mover] += gs.pits[pit] + gs.pits[opposite]
		gs.pits[pit], gs.pits[opposite] = 0, 0
		gs.turn = mover.Opponent()
	default:
		gs.turn = mover.Opponent()
	}
	return landing, nil
}

// IsTerminal reports whether either side has no seeds left in its pits.
func (gs *GameState) IsTerminal() bool {
	return gs.sideEmpty(South) || gs.sideEmpty(North)
}

func (gs *GameState) sideEmpty(p Player) bool {
	lo, hi := gs.board.OwnRange(p)
	return utils.AllZero(gs.pits[lo:hi])
}

// Finalize sweeps each side's remaining seeds into its owner's store. It does
// nothing and returns ErrNotTerminal unless the game is over.
func (gs *GameState) Finalize() error {
	if !gs.IsTerminal() {
		return ErrNotTerminal
	}
	for _, p := range []Player{South, North} {
		lo, hi := gs.board.OwnRange(p)
		gs.stores[p] += utils.Sum(gs.pits[lo:hi])
		clear(gs.pits[lo:hi])
	}
	return nil
}

func (gs *GameState) Result() Result {
	r := Result{Store0: gs.stores[South], Store1: gs.stores[North]}
	switch {
	case r.Store0 > r.Store1:
		r.Winner = SouthWins
	case r.Store1 > r.Store0:
		r.Winner = NorthWins
	default:
		r.Winner = Tie
	}
	return r
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.turn))

	for _, count := range gs.pits {
		binary.Write(hasher, binary.LittleEndian, int64(count))
	}

	for _, count := range gs.stores {
		binary.Write(hasher, binary.LittleEndian, int64(count))
	}

	return StateHash(hasher.Sum64())
}
