package fill

import "github.com/katalvlaran/floodfill/grid"

// Scratch is a reusable visited grid and work stack for Iterative.
// Hot paths that fill same-shaped grids repeatedly pass one Scratch via
// WithScratch to avoid a W×H allocation per call.
//
// A Scratch serves one fill at a time; it is not safe for concurrent use.
type Scratch struct {
	visited []bool
	stack   []grid.Point
}

// NewScratch returns an empty Scratch; buffers grow on first use.
func NewScratch() *Scratch {
	return &Scratch{}
}

// Reset sizes the visited grid to width×height with every flag cleared and
// empties the work stack. Capacity is kept when it already suffices.
// Complexity: O(W×H).
func (s *Scratch) Reset(width, height int) {
	n := width * height
	if cap(s.visited) < n {
		s.visited = make([]bool, n)
	} else {
		s.visited = s.visited[:n]
		clear(s.visited)
	}
	s.stack = s.stack[:0]
}

// Cap returns how many cells the visited grid can cover without reallocating.
func (s *Scratch) Cap() int {
	return cap(s.visited)
}
