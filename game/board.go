package game

// Board maps between absolute pit indices and the sowing ring.
//
// Pits 0..H-1 belong to South and H..2H-1 to North. The sowing ring has 2H+2
// slots: South's pits, South's store, North's pits, North's store.
type Board struct {
	Houses int
}

func NewBoard(houses int) Board {
	return Board{Houses: houses}
}

// Pits returns the number of pits on both sides.
func (b Board) Pits() int {
	return 2 * b.Houses
}

// Slots returns the length of the sowing ring.
func (b Board) Slots() int {
	return 2*b.Houses + 2
}

// OwnRange returns the half-open range [lo, hi) of pits owned by p.
func (b Board) OwnRange(p Player) (lo, hi int) {
	lo = int(p) * b.Houses
	return lo, lo + b.Houses
}

func (b Board) Owner(pit int) Player {
	if pit < b.Houses {
		return South
	}
	return North
}

// Opposite returns the pit facing pit across the board.
func (b Board) Opposite(pit int) int {
	if pit < b.Houses {
		return pit + b.Houses
	}
	return pit - b.Houses
}

// PitIndex converts a 1-based house number, relative to p, to a pit index.
func (b Board) PitIndex(p Player, house int) int {
	return int(p)*b.Houses + house - 1
}

// StoreDrop returns the ring slot of p's store, right after p's last house.
func (b Board) StoreDrop(p Player) int {
	return (int(p)+1)*(b.Houses+1) - 1
}

func (b Board) SlotOf(pit int) int {
	if pit < b.Houses {
		return pit
	}
	return pit + 1
}

// PitAt maps a ring slot back to its pit. ok is false for store slots.
func (b Board) PitAt(slot int) (pit int, ok bool) {
	switch {
	case slot == b.StoreDrop(South), slot == b.StoreDrop(North):
		return 0, false
	case slot < b.Houses:
		return slot, true
	default:
		return slot - 1, true
	}
}

// Next returns the slot following slot when p is sowing. The opponent's
// store is never a drop point.
func (b Board) Next(slot int, p Player) int {
	next := (slot + 1) % b.Slots()
	if next == b.StoreDrop(p.Opponent()) {
		next = (next + 1) % b.Slots()
	}
	return next
}
