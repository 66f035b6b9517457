// Package astar defines core types and configuration options for the
// A* path search over a terrain grid.
//
// A* computes the minimum-cost path between two cells of a
// grid.Grid, expanding cells in order of f = g + h, where g is the
// accumulated movement cost and h is the straight-line estimate to the
// goal.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = W×H cells, E ≤ 4V adjacencies
//	   • Each live node extraction costs O(log N); stale entries are
//	     skipped in O(log N) as well.
//	   • Each strictly-cheaper rediscovery pushes one new entry.
//	– Space: O(V + E)
//	   • O(V) for the reached index.
//	   • O(E) worst-case frontier size under lazy eviction.
//
// Options:
//
//	– MaxCost: cap on accumulated cost; routes beyond it are not explored.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrInvalidEndpoint if start or goal lies outside the grid.
//	– ErrNoPath          if the frontier empties before the goal is reached.
//
// Example usage:
//
//	res, err := astar.Find(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 7, Y: 3})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("cost %d over %d cells\n", res.TotalCost, len(res.Path))
package astar

import (
	"errors"
	"math"

	"github.com/mkessel/gridpath/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Find.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates that the start or goal coordinate
	// lies outside the grid bounds. Reported before the search begins.
	ErrInvalidEndpoint = errors.New("astar: endpoint outside grid bounds")

	// ErrNoPath indicates that the frontier was exhausted without
	// reaching the goal. This is the normal negative outcome, not a
	// failure mode: a fully enclosed goal, a non-traversable goal and a
	// disconnected region all surface as ErrNoPath.
	ErrNoPath = errors.New("astar: no path between start and goal")
)

// Result is the outcome of a successful search: the ordered cells from
// start to goal inclusive, and the total accumulated movement cost.
type Result struct {
	Path      []grid.Cell
	TotalCost int
}

// Options configures the behavior of the search.
//
// MaxCost – accumulated-cost cap; candidate routes whose cost exceeds
// it are not explored. Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	MaxCost int
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithMaxCost sets a maximum accumulated-cost threshold.
// Routes that would exceed this cost are not explored, which turns
// far-away goals into ErrNoPath.
// Must pass a non-negative value; negative values panic, as option
// misuse is a programming error.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic("astar: MaxCost must be non-negative")
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: MaxCost = math.MaxInt (no cap).
func DefaultOptions() Options {
	return Options{MaxCost: math.MaxInt}
}
