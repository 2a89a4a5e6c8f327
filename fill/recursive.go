package fill

import (
	"fmt"

	"github.com/katalvlaran/floodfill/grid"
)

// recursiveWalker carries the fixed inputs of one recursive fill so each
// call frame only holds its coordinates.
type recursiveWalker[T comparable] struct {
	g                  grid.Grid[T]
	width, height      int
	oldValue, newValue T
	opts               Options
	st                 Stats
}

// Recursive replaces oldValue with newValue across the 4-connected region
// containing (x,y), by depth-first recursion on the Go call stack.
//
// Steps:
//  1. Reject a nil grid (ErrNilGrid) and oldValue == newValue (ErrSameValue).
//  2. Return nil if (x,y) is out of bounds or does not hold oldValue.
//  3. Set the cell, call OnFill, then recurse right, left, down, up.
//
// Recursion depth grows with the region size. Go stacks grow on demand up to
// the runtime maximum (see runtime/debug.SetMaxStack); a region deep enough to
// exceed it is a fatal runtime error that cannot be recovered. Use Iterative
// for large regions.
//
// Complexity: O(R) time for a region of R cells, O(R) stack depth worst case.
func Recursive[T comparable](g grid.Grid[T], x, y int, oldValue, newValue T, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	if oldValue == newValue {
		return ErrSameValue
	}

	w := &recursiveWalker[T]{
		g:        g,
		width:    g.Width(),
		height:   g.Height(),
		oldValue: oldValue,
		newValue: newValue,
		opts:     applyOptions(opts),
	}
	err := w.fill(x, y)
	logDone(w.opts, "recursive", x, y, w.st)

	return err
}

// fill converts (x,y) and recurses into its neighbors.
// An already converted cell no longer holds oldValue, which ends the recursion.
func (w *recursiveWalker[T]) fill(x, y int) error {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return nil
	}
	w.st.Visited++
	if w.g.At(x, y) != w.oldValue {
		return nil
	}

	w.g.Set(x, y, w.newValue)
	w.st.Filled++
	if w.opts.OnFill != nil {
		if err := w.opts.OnFill(x, y); err != nil {
			return fmt.Errorf("fill: OnFill hook at (%d,%d): %w", x, y, err)
		}
	}

	if err := w.fill(x+1, y); err != nil {
		return err
	}
	if err := w.fill(x-1, y); err != nil {
		return err
	}
	if err := w.fill(x, y+1); err != nil {
		return err
	}

	return w.fill(x, y-1)
}
