// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/mkessel/gridpath.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Terrain is the category of a single cell. It determines both
// traversability and movement cost via a CostTable.
type Terrain int

const (
	// Void marks empty (unwalkable) space outside the usable plan.
	Void Terrain = iota
	// Wall marks an impassable obstacle.
	Wall
	// Grass is the cheapest walkable ground.
	Grass
	// Water is walkable but slower than grass.
	Water
	// Mud is markedly slow ground.
	Mud
	// Sand is the slowest walkable ground.
	Sand
	// Route tags cells that belong to a rendered solution path.
	// Route cells are not walkable: a stamped grid is for display only.
	Route
)

// String returns a short human-readable terrain name.
func (t Terrain) String() string {
	switch t {
	case Void:
		return "void"
	case Wall:
		return "wall"
	case Grass:
		return "grass"
	case Water:
		return "water"
	case Mud:
		return "mud"
	case Sand:
		return "sand"
	case Route:
		return "route"
	default:
		return "unknown"
	}
}

// CostTable maps walkable terrains to a positive movement cost.
// Terrains absent from the table are impassable.
// The smaller the cost, the faster the terrain.
type CostTable map[Terrain]int

// DefaultCostTable returns the standard terrain cost table:
// grass 1, water 2, mud 5, sand 7. Void, Wall and Route are absent
// and therefore impassable.
func DefaultCostTable() CostTable {
	return CostTable{
		Grass: 1,
		Water: 2,
		Mud:   5,
		Sand:  7,
	}
}

// Cost reports the movement cost of t and whether t is walkable at all.
func (ct CostTable) Cost(t Terrain) (int, bool) {
	c, ok := ct[t]
	return c, ok
}

// Coord is a grid coordinate. Origin (0,0) is the top-left corner;
// X grows rightward, Y grows downward.
type Coord struct {
	X, Y int
}

// Cell is a single grid cell: its coordinates plus a terrain category.
// Cells are immutable once placed in a Grid.
type Cell struct {
	X, Y    int
	Terrain Terrain
}

// Coord returns the cell's coordinate.
func (c Cell) Coord() Coord {
	return Coord{X: c.X, Y: c.Y}
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Costs is the terrain cost table consulted for traversability
	// and movement cost.
	Costs CostTable
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// WithCostTable replaces the default cost table.
// Must pass a non-nil table; nil causes a panic, as this is a
// programming error rather than a runtime condition.
func WithCostTable(ct CostTable) Option {
	return func(o *Options) {
		if ct == nil {
			panic("grid: cost table must be non-nil")
		}
		o.Costs = ct
	}
}

// DefaultOptions returns an Options struct initialized with the
// standard cost table.
func DefaultOptions() Options {
	return Options{Costs: DefaultCostTable()}
}
