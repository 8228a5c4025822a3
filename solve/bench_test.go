package solve_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/rivercross/river"
	"github.com/katalvlaran/rivercross/solve"
)

// BenchmarkSolve_Classic measures the canonical 3/3 search.
func BenchmarkSolve_Classic(b *testing.B) {
	start, _ := river.Start(3, 3)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = solve.Solve(start)
	}
}

// BenchmarkSolve_Sizes scales the head counts to grow the state space.
func BenchmarkSolve_Sizes(b *testing.B) {
	for _, n := range []int{5, 20, 50} {
		start, _ := river.Start(n, n)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = solve.Solve(start)
			}
		})
	}
}

// BenchmarkSolve_HookOverhead compares a bare search with one carrying
// a visit hook.
func BenchmarkSolve_HookOverhead(b *testing.B) {
	start, _ := river.Start(3, 3)

	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = solve.Solve(start)
		}
	})

	b.Run("VisitHook", func(b *testing.B) {
		count := 0
		hook := func(river.State) error {
			count++
			return nil
		}

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = solve.Solve(start, solve.WithOnVisit(hook))
		}
	})
}
