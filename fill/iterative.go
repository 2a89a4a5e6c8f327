package fill

import (
	"fmt"

	"github.com/katalvlaran/floodfill/grid"
)

// Iterative replaces oldValue with newValue across the 4-connected region
// containing (x,y), using an explicit LIFO work stack and a visited grid
// instead of recursion.
//
// Steps:
//  1. Reject a nil grid (ErrNilGrid) and oldValue == newValue (ErrSameValue).
//  2. Return nil if (x,y) is out of bounds, before allocating anything.
//  3. Mark the seed visited and push it.
//  4. Pop a cell; skip it unless it holds oldValue; set it and call OnFill;
//     mark and push each in-bounds, unvisited neighbor (right, left, down, up).
//
// Cells are marked visited when pushed, so each cell enters the stack at most
// once and the loop runs at most W×H times. Row 0 and column 0 are reached
// through the x > 0 and y > 0 checks.
//
// Complexity: O(W×H) time worst case; O(W×H) memory for the visited grid plus
// up to W×H stack entries, borrowed from WithScratch when given.
func Iterative[T comparable](g grid.Grid[T], x, y int, oldValue, newValue T, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	if oldValue == newValue {
		return ErrSameValue
	}
	width, height := g.Width(), g.Height()
	if x < 0 || x >= width || y < 0 || y >= height {
		return nil
	}

	o := applyOptions(opts)
	s := o.Scratch
	if s == nil {
		s = NewScratch()
	}
	s.Reset(width, height)
	visited := s.visited
	stack := s.stack

	var st Stats
	push := func(px, py int) {
		visited[py*width+px] = true
		stack = append(stack, grid.Point{X: px, Y: py})
	}
	push(x, y)

	var (
		p   grid.Point
		err error
	)
	for len(stack) > 0 {
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		st.Visited++

		if g.At(p.X, p.Y) != oldValue {
			continue
		}
		g.Set(p.X, p.Y, newValue)
		st.Filled++
		if o.OnFill != nil {
			if err = o.OnFill(p.X, p.Y); err != nil {
				err = fmt.Errorf("fill: OnFill hook at (%d,%d): %w", p.X, p.Y, err)
				break
			}
		}

		if p.X+1 < width && !visited[p.Y*width+p.X+1] {
			push(p.X+1, p.Y)
		}
		if p.X > 0 && !visited[p.Y*width+p.X-1] {
			push(p.X-1, p.Y)
		}
		if p.Y+1 < height && !visited[(p.Y+1)*width+p.X] {
			push(p.X, p.Y+1)
		}
		if p.Y > 0 && !visited[(p.Y-1)*width+p.X] {
			push(p.X, p.Y-1)
		}
	}

	// keep any growth for the next call
	s.stack = stack[:0]
	logDone(o, "iterative", x, y, st)

	return err
}
