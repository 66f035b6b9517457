// Package mazegrid adapts a generated maze into a terrain grid that
// pathfinding and rendering can consume.
//
// What:
//
//   - Expand turns a W×H mazegen.Map into a (2W+1)×(2H+1) grid.Grid.
//   - Each maze cell becomes a 2×2 block: a corner wall, the wall-or-
//     passage above, the wall-or-passage to the left, and the cell
//     floor itself; a closing wall row and column seal the perimeter.
//   - Region colors map onto walkable terrains (green→grass,
//     blue→water, orange→mud, yellow→sand); closed walls become Wall
//     cells.
//
// Why:
//
//   - Search a maze: expand it and hand the grid to astar.
//   - Export a maze: expand it and hand the grid to imagecodec or
//     render.
//
// Complexity:
//
//   - Expand: O(W×H) time and memory.
//
// Errors:
//
//   - ErrNilMap: a nil maze was passed to Expand.
package mazegrid
