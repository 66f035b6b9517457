package mazegen

import (
	"fmt"
)

// side identifies one of a cell's four walls.
type side int

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)

// Map is a rectangular grid of maze cells. It is constructed fully
// closed and opened incrementally during generation; once handed to a
// caller it should be treated as read-only.
type Map struct {
	Width, Height int
	Cells         [][]Cell
}

// NewMap builds a fully-walled Width×Height map with no colors
// assigned. Returns ErrInvalidDimensions when either dimension is
// below 1.
// Complexity: O(W×H).
func NewMap(width, height int) (*Map, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			// Zero-valued walls are Closed; only coordinates need filling.
			cells[y][x].X, cells[y][x].Y = x, y
		}
	}

	return &Map{Width: width, Height: height, Cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// CellAt returns the cell at (x,y) and true, or a zero Cell and false
// when (x,y) lies outside the map.
func (m *Map) CellAt(x, y int) (Cell, bool) {
	if !m.InBounds(x, y) {
		return Cell{}, false
	}

	return m.Cells[y][x], true
}

// cellAt returns a mutable pointer to the cell at (x,y), or nil when
// out of range. Mutation is reserved for the generator.
func (m *Map) cellAt(x, y int) *Cell {
	if !m.InBounds(x, y) {
		return nil
	}

	return &m.Cells[y][x]
}

// Neighbors returns the existing axis-adjacent cells of (x,y) in a
// fixed left, top, right, bottom order. Edge coordinates yield fewer
// neighbors.
func (m *Map) Neighbors(x, y int) []Cell {
	offsets := [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

	out := make([]Cell, 0, 4)
	var c Cell
	var ok bool
	for _, d := range offsets {
		if c, ok = m.CellAt(x+d[0], y+d[1]); ok {
			out = append(out, c)
		}
	}

	return out
}

// relation reports where b sits relative to a (sideRight means b is to
// the right of a). Returns ErrNotAdjacent when the cells are not
// axis-adjacent.
func relation(a, b Coord) (side, error) {
	switch {
	case b.X == a.X+1 && b.Y == a.Y:
		return sideRight, nil
	case b.X == a.X-1 && b.Y == a.Y:
		return sideLeft, nil
	case b.Y == a.Y+1 && b.X == a.X:
		return sideBottom, nil
	case b.Y == a.Y-1 && b.X == a.X:
		return sideTop, nil
	default:
		return 0, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrNotAdjacent, a.X, a.Y, b.X, b.Y)
	}
}

// openWall opens one side of the cell.
func (c *Cell) openWall(s side) {
	switch s {
	case sideTop:
		c.Top = Open
	case sideRight:
		c.Right = Open
	case sideBottom:
		c.Bottom = Open
	case sideLeft:
		c.Left = Open
	}
}

// opposite returns the facing side on the adjacent cell.
func (s side) opposite() side {
	switch s {
	case sideTop:
		return sideBottom
	case sideBottom:
		return sideTop
	case sideLeft:
		return sideRight
	default:
		return sideLeft
	}
}

// Connect opens the mutual wall between the cells at a and b. Both
// sides are updated in one operation, which is what keeps adjacent
// wall states mutually consistent at all times.
// Returns ErrNotAdjacent when a and b are not axis-adjacent, or a
// wrapped ErrNotAdjacent when either coordinate is outside the map.
func (m *Map) Connect(a, b Coord) error {
	rel, err := relation(a, b)
	if err != nil {
		return err
	}

	ca := m.cellAt(a.X, a.Y)
	cb := m.cellAt(b.X, b.Y)
	if ca == nil || cb == nil {
		return fmt.Errorf("%w: coordinate outside the map", ErrNotAdjacent)
	}

	ca.openWall(rel)
	cb.openWall(rel.opposite())

	return nil
}

// OpenConnections counts the distinct open internal connections of the
// map: the symmetry invariant makes one open right/bottom wall per
// pair sufficient to count each passage exactly once.
func (m *Map) OpenConnections() int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Cells[y][x].Right == Open && x+1 < m.Width {
				n++
			}
			if m.Cells[y][x].Bottom == Open && y+1 < m.Height {
				n++
			}
		}
	}

	return n
}
