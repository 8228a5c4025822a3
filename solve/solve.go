// Package solve performs breadth-first search over the river state
// space, reporting whether the goal state is reachable from a start
// state, with optional hooks and trace output.
package solve

import (
	"fmt"

	"github.com/katalvlaran/rivercross/river"
)

// walker encapsulates mutable search state.
type walker struct {
	opts    Options
	queue   []river.State
	visited map[river.State]bool
	res     *Result
}

// Solve runs breadth-first search from initial, applying any number of
// functional Options.
// Returns ErrMalformedState for negative counts, ErrOptionViolation for
// bad options, ErrExpansionLimit when a configured limit is hit, or any
// user-supplied hook error. Found == false with a nil error means the
// reachable space was exhausted without meeting the goal: a normal
// outcome, not a failure. An unsafe initial state is still explored;
// only generated successors are safety-filtered.
func Solve(initial river.State, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if initial.LeftMissionaries < 0 || initial.LeftCannibals < 0 ||
		initial.RightMissionaries < 0 || initial.RightCannibals < 0 {
		return nil, ErrMalformedState
	}

	// Prepare walker, sized to the full state space
	n := Bound(initial)
	w := &walker{
		opts:    o,
		queue:   make([]river.State, 0, n),
		visited: make(map[river.State]bool, n),
		res:     &Result{},
	}

	// Seed frontier with the start state
	w.enqueue(initial)
	// Main loop
	return w.res, w.loop()
}

// Bound returns the size of the full state space for initial's head
// counts: (M+1)×(C+1)×2. Solve expands at most this many states, which
// guarantees termination.
func Bound(initial river.State) int {
	return (initial.Missionaries() + 1) * (initial.Cannibals() + 1) * 2
}

// enqueue appends s to the frontier, calls OnEnqueue, and tracks the
// frontier's peak length. Deduplication happens at dequeue time, so the
// frontier may transiently hold the same state twice.
func (w *walker) enqueue(s river.State) {
	w.opts.OnEnqueue(s)
	w.queue = append(w.queue, s)
	if len(w.queue) > w.res.PeakFrontier {
		w.res.PeakFrontier = len(w.queue)
	}
}

// loop processes the frontier until the goal is met, the frontier
// empties, an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		s := w.dequeue()
		// Dequeue-time check is the sole dedup guard: two predecessors
		// can enqueue the same state before either is expanded.
		if w.visited[s] {
			continue
		}
		if err := w.visit(s); err != nil {
			return err
		}
		if s.Goal() {
			w.res.Found = true
			return nil
		}
		for _, next := range s.Moves() {
			// weaker enqueue-time check, limits frontier growth only
			if !w.visited[next] {
				w.enqueue(next)
			}
		}
	}

	return nil
}

// dequeue pops the frontier's head.
func (w *walker) dequeue() river.State {
	s := w.queue[0]
	w.queue = w.queue[1:]

	return s
}

// visit enforces the expansion limit, marks s expanded, and calls OnVisit.
func (w *walker) visit(s river.State) error {
	if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, w.res.Expanded)
	}
	w.visited[s] = true
	w.res.Expanded++
	if err := w.opts.OnVisit(s); err != nil {
		return fmt.Errorf("solve: OnVisit error at %v: %w", s, err)
	}

	return nil
}
