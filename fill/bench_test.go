package fill_test

import (
	"testing"

	"github.com/katalvlaran/floodfill/fill"
	"github.com/katalvlaran/floodfill/grid"
)

// benchGrid returns an n×n grid of zeros with a one-cell wall ring at the
// border, so every fill covers (n-2)² cells.
func benchGrid(b *testing.B, n int) *grid.Dense[int] {
	g, err := grid.New[int](n, n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	for i := 0; i < n; i++ {
		g.Set(i, 0, 1)
		g.Set(i, n-1, 1)
		g.Set(0, i, 1)
		g.Set(n-1, i, 1)
	}

	return g
}

// BenchmarkRecursive_256 fills a 254×254 interior, alternating values so each
// iteration does the full work.
// Complexity: O(W×H) time, O(W×H) stack depth worst case.
func BenchmarkRecursive_256(b *testing.B) {
	g := benchGrid(b, 256)
	vals := [2]int{0, 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fill.Recursive[int](g, 128, 128, vals[i%2], vals[(i+1)%2])
	}
}

// BenchmarkIterative_256 is the same workload allocating per call.
func BenchmarkIterative_256(b *testing.B) {
	g := benchGrid(b, 256)
	vals := [2]int{0, 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fill.Iterative[int](g, 128, 128, vals[i%2], vals[(i+1)%2])
	}
}

// BenchmarkIterative_256_Scratch reuses one Scratch across iterations.
func BenchmarkIterative_256_Scratch(b *testing.B) {
	g := benchGrid(b, 256)
	vals := [2]int{0, 2}
	s := fill.NewScratch()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fill.Iterative[int](g, 128, 128, vals[i%2], vals[(i+1)%2], fill.WithScratch(s))
	}
}
