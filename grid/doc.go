// Package grid models a rectangular terrain grid used as a pathfinding
// search space.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell with a per-category CostTable.
//   - Each cell carries a Terrain; the table derives traversability and
//     a positive movement cost from it.
//   - Neighbors returns the up-to-4 traversable axis neighbors in a
//     fixed left, top, right, bottom order.
//   - StampPath retags a copy of the grid with a solution route,
//     leaving the source grid untouched.
//
// Why:
//
//   - Site plans: decode a raster floor plan into typed cells and
//     search it.
//   - Mazes: expand a generated maze into walls and passages.
//   - Display: feed a stamped grid to a renderer.
//
// Complexity:
//
//   - New:       O(W×H) time and memory (deep copy).
//   - CellAt:    O(1).
//   - Neighbors: O(1) (at most four lookups).
//   - StampPath: O(W×H + len(path)).
//
// Options:
//
//   - WithCostTable: replace the default terrain cost table.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
