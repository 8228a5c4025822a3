// Package river defines the core types and sentinel errors
// for the missionaries-and-cannibals puzzle domain.
package river

import (
	"errors"
	"fmt"
)

// Sentinel errors for initial-state construction.
var (
	// ErrNegativeMissionaries indicates a negative missionary count.
	ErrNegativeMissionaries = errors.New("river: missionary count cannot be negative")
	// ErrNegativeCannibals indicates a negative cannibal count.
	ErrNegativeCannibals = errors.New("river: cannibal count cannot be negative")
)

// BoatCapacity is the maximum number of occupants per crossing.
// Every crossing carries at least one and at most BoatCapacity people.
const BoatCapacity = 2

// Bank identifies one side of the river.
type Bank int

const (
	// Left is the bank everyone starts on.
	Left Bank = iota
	// Right is the destination bank.
	Right
)

// String returns "left" or "right".
func (b Bank) String() string {
	if b == Left {
		return "left"
	}

	return "right"
}

// Opposite returns the other bank.
func (b Bank) Opposite() Bank {
	if b == Left {
		return Right
	}

	return Left
}

// State is an immutable snapshot of the puzzle: how many missionaries
// and cannibals stand on each bank, and which bank holds the boat.
// State is a comparable value type, so structural equality and map-key
// hashing come from the language; visited sets need no extra keying.
type State struct {
	LeftMissionaries  int
	LeftCannibals     int
	RightMissionaries int
	RightCannibals    int
	Boat              Bank
}

// Start returns the initial state for the given head counts:
// everyone on the left bank, boat on the left.
// Returns ErrNegativeMissionaries or ErrNegativeCannibals on bad input.
func Start(missionaries, cannibals int) (State, error) {
	if missionaries < 0 {
		return State{}, ErrNegativeMissionaries
	}
	if cannibals < 0 {
		return State{}, ErrNegativeCannibals
	}

	return State{
		LeftMissionaries: missionaries,
		LeftCannibals:    cannibals,
		Boat:             Left,
	}, nil
}

// Missionaries returns the total missionary count across both banks.
func (s State) Missionaries() int {
	return s.LeftMissionaries + s.RightMissionaries
}

// Cannibals returns the total cannibal count across both banks.
func (s State) Cannibals() int {
	return s.LeftCannibals + s.RightCannibals
}

// Goal reports whether every missionary and cannibal has reached the
// right bank along with the boat.
func (s State) Goal() bool {
	return s.LeftMissionaries == 0 && s.LeftCannibals == 0 && s.Boat == Right
}

// String renders the state on one line, e.g. "L[3m 3c] R[0m 0c] boat=left".
func (s State) String() string {
	return fmt.Sprintf("L[%dm %dc] R[%dm %dc] boat=%s",
		s.LeftMissionaries, s.LeftCannibals,
		s.RightMissionaries, s.RightCannibals, s.Boat)
}
