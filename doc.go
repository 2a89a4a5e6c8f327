// Package floodfill is a small toolkit for region filling ("paint bucket")
// over 2D grids: replace every cell 4-connected to a seed that shares its
// value with a new value.
//
// What's inside:
//
//	grid/: Grid[T] contract (Width, Height, At, Set), Point, and the
//	       validated row-major Dense[T] container
//	fill/: Recursive and Iterative flood fills, options (OnFill hook,
//	       reusable Scratch, Stats), opt-in slog logging
//
// Which strategy:
//
//   - fill.Recursive: the textbook depth-first recursion. Call-stack depth
//     grows with the region; very large regions exhaust the goroutine stack,
//     which is fatal.
//   - fill.Iterative: explicit work stack plus visited grid. No depth limit,
//     O(W×H) auxiliary memory.
//
// Both produce bit-identical grids for the same inputs.
//
// Quick ASCII example (seed at top-left, 0 → 9):
//
//	0 0 1        9 9 1
//	0 1 1   →    9 1 1
//	1 1 1        1 1 1
//
//	go get github.com/katalvlaran/floodfill
package floodfill
