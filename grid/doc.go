// Package grid provides the rectangular 2D cell container that the fill
// algorithms operate on.
//
// What:
//
//   - Grid[T] is the minimal contract: Width, Height, At and Set over
//     equality-comparable values. Any caller type satisfying it can be filled.
//   - Dense[T] is a row-major [][]T implementation with shape validation.
//   - Point names a single (x, y) coordinate: x is the column, y the row.
//
// Why:
//
//   - Image processing: palette indices or label codes per pixel.
//   - Map generation: terrain or tile IDs on a game map.
//   - Segmentation preprocessing: class IDs before region analysis.
//
// Ownership:
//
//   - Wrap adopts the caller's [][]T without copying, so an in-place fill is
//     visible in the caller's slice after the call returns.
//   - From2D and Clone deep-copy, for callers that want to fill a copy and
//     swap it in only on success.
//
// Complexity:
//
//   - At, Set, InBounds, Index, Coordinate: O(1).
//   - Wrap: O(H) validation. From2D, Clone, Rows, Equal: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// A Dense grid is not safe for concurrent mutation; callers serialize access.
package grid
