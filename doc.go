// Package gridpath is a small toolkit for terrain pathfinding and maze
// generation on rectangular grids.
//
// 🚀 What is gridpath?
//
//	A pure-Go library that brings together:
//		• grid       — terrain grids with per-category movement costs
//		• astar      — cost-aware A* search with node re-opening
//		• mazegen    — randomized backtracking mazes with loops & color regions
//		• mazegrid   — maze → terrain-grid expansion
//		• render     — emoji/text views of grids and solution paths
//		• imagecodec — raster site plans ⇄ terrain grids
//
// ✨ Why choose gridpath?
//
//   - Value-level outcomes – no panics on unreachable goals, ErrNoPath is a result
//   - Deterministic – seedable randomness, stable tie-breaking, no globals
//   - Pure Go – no cgo
//
// Quick emoji example — a 3×3 plan with an expensive middle column, and
// the route A* stamps around it:
//
//	🟩🟨🟩        🤖🟨🟩
//	🟩🟨🟩   ⇒   🤖🟨🟩
//	🟩🟩🟩        🤖🤖🤖
//
// Dive into the per-package doc.go files for the full contracts.
//
//	go get github.com/mkessel/gridpath
package gridpath
