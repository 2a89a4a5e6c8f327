package grid

// Dense is a rectangular grid stored as rows of cells: cells[y][x].
// Its shape is fixed once built.
type Dense[T comparable] struct {
	width, height int
	cells         [][]T
}

// New returns a width×height grid of zero values.
// Returns ErrEmptyGrid if either dimension is below 1.
// Complexity: O(W×H) time and memory.
func New[T comparable](width, height int) (*Dense[T], error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]T, height)
	for y := range cells {
		cells[y] = make([]T, width)
	}

	return &Dense[T]{width: width, height: height, cells: cells}, nil
}

// Wrap adopts rows as the grid's storage without copying.
// Set writes through to rows, so the caller observes an in-place fill.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H).
func Wrap[T comparable](rows [][]T) (*Dense[T], error) {
	w, h, err := shape(rows)
	if err != nil {
		return nil, err
	}

	return &Dense[T]{width: w, height: h, cells: rows}, nil
}

// From2D validates rows like Wrap, then deep-copies them so later changes on
// either side are not shared.
// Complexity: O(W×H) time and memory.
func From2D[T comparable](rows [][]T) (*Dense[T], error) {
	w, h, err := shape(rows)
	if err != nil {
		return nil, err
	}

	return &Dense[T]{width: w, height: h, cells: copyRows(rows, w)}, nil
}

// shape checks that rows is non-empty and rectangular.
func shape[T any](rows [][]T) (w, h int, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	h, w = len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return 0, 0, ErrNonRectangular
		}
	}

	return w, h, nil
}

func copyRows[T any](rows [][]T, w int) [][]T {
	out := make([][]T, len(rows))
	for y := range rows {
		out[y] = make([]T, w)
		copy(out[y], rows[y])
	}

	return out
}

// Width returns the number of columns.
func (d *Dense[T]) Width() int { return d.width }

// Height returns the number of rows.
func (d *Dense[T]) Height() int { return d.height }

// At returns the value at column x, row y. Panics if out of bounds.
func (d *Dense[T]) At(x, y int) T { return d.cells[y][x] }

// Set stores v at column x, row y. Panics if out of bounds.
func (d *Dense[T]) Set(x, y int, v T) { d.cells[y][x] = v }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (d *Dense[T]) InBounds(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

// Contains reports whether p lies within the grid boundaries.
func (d *Dense[T]) Contains(p Point) bool {
	return d.InBounds(p.X, p.Y)
}

// Index converts (x,y) to a row‑major index.
// Complexity: O(1).
func (d *Dense[T]) Index(x, y int) int {
	return y*d.width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (d *Dense[T]) Coordinate(idx int) (x, y int) {
	return idx % d.width, idx / d.width
}

// Rows returns a deep copy of the cells, indexed [y][x].
func (d *Dense[T]) Rows() [][]T {
	return copyRows(d.cells, d.width)
}

// Clone returns an independent copy of d.
func (d *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{width: d.width, height: d.height, cells: copyRows(d.cells, d.width)}
}

// Equal reports whether other has the same shape and identical cells.
// Complexity: O(W×H).
func (d *Dense[T]) Equal(other Grid[T]) bool {
	if other == nil || other.Width() != d.width || other.Height() != d.height {
		return false
	}
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if d.cells[y][x] != other.At(x, y) {
				return false
			}
		}
	}

	return true
}
