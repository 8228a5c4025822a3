// Package rivercross solves the classic missionaries-and-cannibals
// river-crossing puzzle by exhaustive breadth-first search.
//
// 🚣 What is rivercross?
//
//	A small, dependency-light solver split into two library packages and
//	a command:
//		• river — puzzle domain: immutable State snapshots, the safety
//		  rule, and legal boat crossings
//		• solve — breadth-first search over the implicit state graph,
//		  with hooks, trace output, and diagnostics
//		• cmd/rivercross — the command line: counts in, verdict out
//
// ✨ Why rivercross?
//
//   - Deterministic – fixed crossing enumeration and a FIFO frontier
//     make every run reproducible
//   - Extensible – OnEnqueue/OnVisit hooks observe the search without
//     touching the algorithm
//   - Bounded – the state space is (M+1)×(C+1)×2, so every search
//     terminates
//
// Quick start:
//
//	start, err := river.Start(3, 3)
//	if err != nil { /* negative counts */ }
//	res, err := solve.Solve(start, solve.WithTrace(os.Stdout))
//	if res.Found { /* everyone made it across */ }
//
// Or from the shell:
//
//	go run ./cmd/rivercross 3 3
package rivercross
