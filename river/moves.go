package river

// maxMoves is the number of (m, c) pairs that can pass the occupancy
// bounds for BoatCapacity == 2: (0,1), (0,2), (1,0), (1,1), (2,0).
const maxMoves = 5

// Moves returns every safe state reachable from s by one boat crossing.
// A crossing carries m missionaries and c cannibals from the boat's
// bank to the other and flips the boat, with 1 ≤ m+c ≤ BoatCapacity and
// both counts bounded by the boat-side populations. Enumeration is
// m-outer, c-inner; a candidate is kept only if it is Safe.
// Pure function of s.
func (s State) Moves() []State {
	var bankM, bankC int
	if s.Boat == Left {
		bankM, bankC = s.LeftMissionaries, s.LeftCannibals
	} else {
		bankM, bankC = s.RightMissionaries, s.RightCannibals
	}

	moves := make([]State, 0, maxMoves)
	for m := 0; m <= bankM; m++ {
		for c := 0; c <= bankC; c++ {
			if m+c < 1 || m+c > BoatCapacity {
				continue
			}
			if next := s.crossed(m, c); next.Safe() {
				moves = append(moves, next)
			}
		}
	}

	return moves
}

// crossed moves m missionaries and c cannibals from the boat's bank to
// the opposite bank and flips the boat. Counts must not exceed the
// boat-side populations; Moves guarantees this.
func (s State) crossed(m, c int) State {
	next := s
	if s.Boat == Left {
		next.LeftMissionaries -= m
		next.LeftCannibals -= c
		next.RightMissionaries += m
		next.RightCannibals += c
	} else {
		next.LeftMissionaries += m
		next.LeftCannibals += c
		next.RightMissionaries -= m
		next.RightCannibals -= c
	}
	next.Boat = s.Boat.Opposite()

	return next
}
