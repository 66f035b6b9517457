// Package mazegen generates rectangular mazes by randomized iterative
// backtracking, with optional extra connections ("loops") and
// contiguous color-region tagging.
//
// What:
//
//   - Map is a width×height grid of cells, each with four wall flags
//     and a color tag, constructed fully closed.
//   - Generate carves a spanning structure with an explicit stack:
//     peek the top cell, pick an unvisited neighbor at random, open the
//     mutual wall, push; backtrack when no candidates remain.
//   - A visited neighbor may be readmitted as a candidate with
//     probability LoopProbability/6.2, opening an extra connection.
//   - Every backtrack reseeds the region color, so each depth-first
//     run paints a contiguous patch of the maze.
//
// Why:
//
//   - Game levels: guaranteed fully-connected mazes with tunable
//     shortcut density.
//   - Terrain synthesis: color regions map onto terrain categories
//     downstream.
//
// Complexity:
//
//   - Generate: O(W×H) expected time and O(W×H) memory; with loop
//     probability near 1, termination holds with probability 1 because
//     readmission is damped well below certainty.
//
// Options:
//
//   - WithSeed / WithRand: deterministic, reproducible generation.
//   - WithLoopProbability: expected extra-connection density in [0,1).
//
// Errors:
//
//   - ErrInvalidDimensions: zero or negative width or height.
//   - ErrNotAdjacent: Connect called on cells that are not neighbors;
//     a contract violation by the caller, not a runtime condition.
//
// Invariant: wall state between adjacent cells is always mutually
// consistent. Connect updates both sides atomically; a cell can never
// show Open toward a neighbor that shows Closed back.
package mazegen
