// Package solve runs an exhaustive breadth-first search over the
// missionaries-and-cannibals state space defined by package river,
// answering whether the goal state is reachable from a start state.
//
// What:
//
//   - Explore states in non-decreasing crossing count from the start.
//   - Returns a Result containing:
//   - Found: whether a goal state was dequeued
//   - Expanded: how many states were expanded (visited-set size)
//   - PeakFrontier: the frontier queue's maximum length
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a state joins the frontier)
//   - OnVisit   (when a state is expanded; may abort with an error)
//   - WithTrace writes the classic labeled five-line block for every
//     expanded state, in dequeue order.
//   - Honors MaxExpansions limit (n>0) or explicit "no limit" (n==0).
//
// Why:
//
//   - BFS visits states in fewest-crossings order, so reachability is
//     decided without heuristics and without revisiting any state.
//   - The state space is finite: (M+1)×(C+1)×2 for M missionaries and
//     C cannibals, so the search always terminates.
//
// Determinism:
//
//	river.Moves enumerates crossings in a fixed order and the frontier
//	is FIFO, so the expansion sequence is fully reproducible.
//
// Deduplication:
//
//	States are deduplicated when dequeued; that check alone is
//	authoritative. A second check at enqueue time merely limits
//	frontier growth, since two predecessors may discover the same
//	state before either is expanded.
//
// Complexity (S = (M+1)×(C+1)×2):
//
//   - Time:   O(S)   (each state expanded at most once, ≤5 successors)
//   - Memory: O(S)   (frontier plus visited set)
//
// Usage:
//
//	start, _ := river.Start(3, 3)
//	res, err := solve.Solve(start, solve.WithTrace(os.Stdout))
//	if err != nil {
//	    // handle ErrMalformedState, ErrOptionViolation,
//	    // ErrExpansionLimit, context errors, or hook errors
//	}
//	if res.Found { /* everyone crossed */ }
//
// Options:
//
//   - DefaultOptions(): background Context, no-op hooks, no limit.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithMaxExpansions(n):   abort after n expansions (n>0).
//   - WithOnEnqueue(fn):      hook when a state joins the frontier.
//   - WithOnVisit(fn):        hook on expansion; error aborts the search.
//   - WithTrace(w):           labeled per-state block written to w.
//
// Errors:
//
//   - ErrMalformedState   if the initial state has a negative count.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - ErrExpansionLimit   if the configured limit is reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package solve
