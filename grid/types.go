// Package grid defines the Grid contract, coordinates, and sentinel errors.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Grid is a fixed-shape, randomly indexable, in-place mutable 2D container.
// x indexes columns in [0, Width()), y indexes rows in [0, Height()).
// At and Set are only required to handle in-bounds coordinates.
type Grid[T comparable] interface {
	Width() int
	Height() int
	At(x, y int) T
	Set(x, y int, v T)
}

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Right, Left, Down and Up return the 4-connected neighbors of p.
// They do not check bounds.
func (p Point) Right() Point { return Point{p.X + 1, p.Y} }
func (p Point) Left() Point  { return Point{p.X - 1, p.Y} }
func (p Point) Down() Point  { return Point{p.X, p.Y + 1} }
func (p Point) Up() Point    { return Point{p.X, p.Y - 1} }

// InBounds reports whether (x,y) lies within g.
// Complexity: O(1).
func InBounds[T comparable](g Grid[T], x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}
