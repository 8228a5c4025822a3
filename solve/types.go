// Package solve provides tunable options and error definitions
// for breadth-first search over the river state space.
package solve

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/rivercross/river"
)

// Sentinel errors for Solve execution.
var (
	// ErrMalformedState is returned when the initial state carries a
	// negative count on either bank.
	ErrMalformedState = errors.New("solve: malformed initial state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("solve: expansion limit reached")
)

// Option configures Solve behavior via functional arguments.
// If an Option is invalid (e.g. negative expansion limit), it is
// recorded internally and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state joins the frontier.
	OnEnqueue func(s river.State)

	// OnVisit is called when a state is dequeued for expansion, after
	// the visited check and before the goal test. If it returns an
	// error, Solve aborts and propagates that error.
	OnVisit func(s river.State) error

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit
	// once that many states have been expanded.
	// A value of 0 explicitly disables the limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no expansion limit (MaxExpansions == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnEnqueue:     func(river.State) {},
		OnVisit:       func(river.State) error { return nil },
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a state is enqueued.
func WithOnEnqueue(fn func(s river.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a state is expanded;
// returning an error from this callback stops the search.
func WithOnVisit(fn func(s river.State) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxExpansions aborts the search after n expansions.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.MaxExpansions = 0
		default:
			o.MaxExpansions = n
		}
	}
}

// traceBlock is the fixed per-state layout emitted by WithTrace.
// The header keeps its historical trailing blank after the colon.
const traceBlock = "Current State: \n" +
	"\tMissionaries on the left: %d\n" +
	"\tCannibals on the left: %d\n" +
	"\tMissionaries on the right: %d\n" +
	"\tCannibals on the right: %d\n" +
	"\tBoat on the left: %t\n"

// WithTrace installs an OnVisit hook that writes a labeled block for
// every expanded state to w, in dequeue order.
func WithTrace(w io.Writer) Option {
	return func(o *Options) {
		if w == nil {
			return
		}
		o.OnVisit = func(s river.State) error {
			_, err := fmt.Fprintf(w, traceBlock,
				s.LeftMissionaries, s.LeftCannibals,
				s.RightMissionaries, s.RightCannibals,
				s.Boat == river.Left)

			return err
		}
	}
}

// Result holds the outcome of a search:
//   - Found: whether a goal state was reached.
//   - Expanded: states dequeued and expanded (size of the visited set).
//   - PeakFrontier: the longest the frontier queue grew, a memory diagnostic.
type Result struct {
	Found        bool
	Expanded     int
	PeakFrontier int
}
