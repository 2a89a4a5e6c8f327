// Package fill implements 4-connected flood fill ("paint bucket") over a
// grid.Grid in two interchangeable strategies.
//
// What:
//
//   - Recursive: depth-first fill on the Go call stack. No heap beyond the
//     call frames; stack depth grows with the region size.
//   - Iterative: depth-first fill with an explicit work stack and a visited
//     grid. No recursion; O(W×H) auxiliary memory, reusable via Scratch.
//
// Both mutate the grid in place and leave it bit-identical for the same
// inputs. Only the final grid is guaranteed: the order in which cells are
// visited is an implementation detail.
//
// Why two strategies:
//
//   - Recursive is the textbook form and fails fatally once a region is deep
//     enough to exhaust the goroutine stack limit (runtime/debug.SetMaxStack).
//     It is kept as-is for comparison; it is not rewritten into Iterative.
//   - Iterative has no depth limit and is the one to use on large inputs.
//
// Semantics:
//
//   - A seed outside the grid is a no-op, not an error.
//   - A seed not holding oldValue leaves the grid unchanged.
//   - Only cells sharing an edge are neighbors; diagonals never connect.
//   - oldValue == newValue is rejected with ErrSameValue for both strategies.
//
// Options:
//
//   - WithOnFill(fn)     per-cell hook after a cell is set; an error aborts.
//   - WithScratch(s)     reuse a visited grid and work stack across calls.
//   - WithStats(st)      receive Filled and Visited counters.
//
// Errors:
//
//   - ErrNilGrid         grid is nil.
//   - ErrSameValue       oldValue equals newValue.
//   - hook errors        wrapped from OnFill; the grid is left partially filled.
//
// Concurrency: a fill runs synchronously on the caller's goroutine and takes
// no locks. Concurrent fills on the same grid must be serialized by the
// caller; fills on distinct grids (each with its own Scratch) are independent.
// Callers needing all-or-nothing behavior fill a grid.Dense Clone and swap it
// in on success.
package fill
