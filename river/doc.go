// Package river models the missionaries-and-cannibals puzzle:
// immutable bank/boat snapshots, the safety rule, and legal crossings.
//
// What:
//
//   - State captures both bank populations and the boat position as a
//     comparable value type (usable directly as a map key).
//   - Start builds the canonical initial state: everyone on the left
//     bank, boat on the left.
//   - Safe applies the survival rule: missionaries on a bank must never
//     be outnumbered by cannibals while any missionary is present.
//   - Moves enumerates every safe successor reachable by a single boat
//     crossing of 1 to BoatCapacity occupants.
//   - Goal tests whether everyone (and the boat) reached the right bank.
//
// Why:
//
//   - The puzzle's search space is an implicit graph; this package is
//     its node and edge definition, independent of any search strategy.
//   - Value semantics make deduplication trivial for solvers: equal
//     snapshots collide as map keys with no custom hashing.
//
// Complexity:
//
//   - Safe, Goal, crossed: O(1).
//   - Moves: O(BoatCapacity²) candidates, at most 5 results for the
//     standard two-seat boat.
//
// Errors:
//
//   - ErrNegativeMissionaries: Start given a negative missionary count.
//   - ErrNegativeCannibals: Start given a negative cannibal count.
//
// See: package solve for the breadth-first search over these states.
package river
