// Package mazegen defines core types, options, and sentinel errors
// for the maze generator of github.com/mkessel/gridpath.
package mazegen

import (
	"errors"
	"math/rand"
)

// Sentinel errors for maze generation.
var (
	// ErrInvalidDimensions indicates a zero or negative width or height.
	ErrInvalidDimensions = errors.New("mazegen: width and height must be at least 1")

	// ErrNotAdjacent indicates an attempt to connect two cells that are
	// not axis-adjacent. This is a programming-contract violation by
	// the caller of Connect, not a user-facing condition.
	ErrNotAdjacent = errors.New("mazegen: cells are not neighbors")
)

// loopFactor damps the user-facing loop probability so that values
// near 1 still yield a sparse set of extra connections instead of a
// fully-connected grid.
const loopFactor = 6.2

// Wall is the state of one side of a cell. The zero value is Closed,
// so a freshly built map is fully walled.
type Wall int

const (
	// Closed means the side is a solid wall.
	Closed Wall = iota
	// Open means the side is a passage to the adjacent cell.
	Open
)

// String returns "open" or "closed".
func (w Wall) String() string {
	if w == Open {
		return "open"
	}

	return "closed"
}

// Color is a region tag drawn from a small fixed palette during
// generation. It is decoration attached to cells, never a control-flow
// dependency of the generator.
type Color int

const (
	// ColorNone marks a cell not yet painted.
	ColorNone Color = iota
	// Blue region color.
	Blue
	// Orange region color.
	Orange
	// Yellow region color.
	Yellow
	// Green region color.
	Green
)

// palette is the fixed set of assignable region colors.
var palette = [...]Color{Blue, Orange, Yellow, Green}

// String returns a short human-readable color name.
func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	default:
		return "none"
	}
}

// Coord is a maze-cell coordinate. Origin (0,0) is the top-left
// corner; X grows rightward, Y grows downward.
type Coord struct {
	X, Y int
}

// Cell is a single maze cell: its coordinates, four wall states, and a
// color tag.
type Cell struct {
	X, Y                     int
	Top, Right, Bottom, Left Wall
	Color                    Color
}

// Coord returns the cell's coordinate.
func (c Cell) Coord() Coord {
	return Coord{X: c.X, Y: c.Y}
}

// Options configures maze generation.
//
// Rand            – RNG for all stochastic choices; nil means a
// time-seeded source is created per call.
// LoopProbability – expected extra-connection density in [0,1);
// 0 produces a perfect (loop-free) maze.
type Options struct {
	Rand            *rand.Rand
	LoopProbability float64
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// WithRand supplies an explicit RNG. Use this to share one source
// across calls. Must be non-nil; nil panics.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			panic("mazegen: rand source must be non-nil")
		}
		o.Rand = r
	}
}

// WithSeed creates a new deterministic RNG with the given seed.
// Use it for reproducible fixtures and tests.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithLoopProbability sets the loop probability. Must lie in [0,1);
// values outside the range panic, as option misuse is a programming
// error rather than a runtime condition.
func WithLoopProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p >= 1 {
			panic("mazegen: loop probability must be in [0,1)")
		}
		o.LoopProbability = p
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: no RNG (resolved to a time-seeded source in Generate) and
// LoopProbability 0 (perfect maze).
func DefaultOptions() Options {
	return Options{Rand: nil, LoopProbability: 0}
}
