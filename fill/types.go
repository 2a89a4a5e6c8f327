// Package fill defines options, diagnostics, and sentinel errors for the
// recursive and iterative flood fills.
package fill

import (
	"errors"

	"github.com/katalvlaran/floodfill/grid"
)

var (
	// ErrNilGrid is returned when a nil grid is passed to Recursive or Iterative.
	ErrNilGrid = errors.New("fill: grid is nil")

	// ErrSameValue indicates the old and new values are equal. Such a fill
	// would change nothing, and the recursive strategy would never terminate.
	ErrSameValue = errors.New("fill: old and new values are equal")
)

// Func is the common signature of Recursive and Iterative, so callers can
// hold either strategy in a variable.
type Func[T comparable] func(g grid.Grid[T], x, y int, oldValue, newValue T, opts ...Option) error

// Option configures optional behavior of a fill.
// Use with Recursive(g, x, y, old, new, opts...) or Iterative(...).
type Option func(*Options)

// Options holds configurable parameters for a fill.
type Options struct {
	// OnFill, if non-nil, is invoked right after a cell is set to the new value.
	// Returning an error aborts the fill; cells already set stay set.
	OnFill func(x, y int) error

	// Scratch, if non-nil, lends Iterative its visited grid and work stack.
	// Recursive ignores it.
	Scratch *Scratch

	// Stats, if non-nil, receives the fill's counters when it returns.
	Stats *Stats
}

// DefaultOptions returns Options with no hook, no scratch buffer and no stats.
func DefaultOptions() Options {
	return Options{
		OnFill:  nil,
		Scratch: nil,
		Stats:   nil,
	}
}

// WithOnFill returns an Option that installs fn as a per-cell hook.
func WithOnFill(fn func(x, y int) error) Option {
	return func(o *Options) {
		o.OnFill = fn
	}
}

// WithScratch returns an Option that makes Iterative reuse s instead of
// allocating per call. Passing nil has no effect.
func WithScratch(s *Scratch) Option {
	return func(o *Options) {
		if s != nil {
			o.Scratch = s
		}
	}
}

// WithStats returns an Option that records counters into st.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

// Stats reports what a single fill did.
type Stats struct {
	// Filled counts cells changed from the old to the new value.
	Filled int

	// Visited counts in-bounds cell examinations. Recursive may examine a
	// cell more than once (once per neighbor reaching it); Iterative examines
	// each cell at most once.
	Visited int
}

// applyOptions folds opts over DefaultOptions.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}
