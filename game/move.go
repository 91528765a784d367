package game

// Landing classifies where the last sown seed of a move came to rest.
type Landing int

const (
	LandedElsewhere Landing = iota // turn passes
	LandedInStore                  // extra turn
	LandedCapture                  // capture, then turn passes
)

func (l Landing) String() string {
	switch l {
	case LandedInStore:
		return "store"
	case LandedCapture:
		return "capture"
	default:
		return "pass"
	}
}

// resolveLanding decides the outcome of a move whose last seed reached slot.
// Cases are checked in priority order: own store, capture, pass.
func (gs *GameState) resolveLanding(mover Player, slot int) Landing {
	if slot == gs.board.StoreDrop(mover) {
		return LandedInStore
	}
	pit, ok := gs.board.PitAt(slot)
	switch {
	case !ok:
		return LandedElsewhere
	case gs.board.Owner(pit) == mover && gs.pits[pit] == 1:
		return LandedCapture
	default:
		return LandedElsewhere
	}
}
