// Package render produces textual views of terrain grids for terminal
// display.
//
// What:
//
//   - Text renders a grid.Grid as one emoji glyph per cell, one line
//     per row.
//   - WithPath overlays a solution path as robot glyphs without
//     touching the grid.
//   - WithCoordinates adds numeric gutters along the top and left
//     edges for debugging.
//
// Why:
//
//   - Quick terminal inspection of decoded plans, expanded mazes and
//     search results.
//
// Complexity:
//
//   - Text: O(W×H) time and memory.
package render
