package mazegrid

import (
	"errors"

	"github.com/mkessel/gridpath/grid"
	"github.com/mkessel/gridpath/mazegen"
)

// ErrNilMap indicates a nil maze was passed to Expand.
var ErrNilMap = errors.New("mazegrid: maze map is nil")

// Expand converts a maze into a terrain grid of (2W+1)×(2H+1) cells.
// Every maze cell contributes a 2×2 block whose top and left entries
// reflect the corresponding wall state; a final wall row and a final
// wall column close the perimeter. Grid options (such as a custom cost
// table) are forwarded to grid construction.
// Complexity: O(W×H).
func Expand(m *mazegen.Map, opts ...grid.Option) (*grid.Grid, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	outW, outH := m.Width*2+1, m.Height*2+1
	rows := make([][]grid.Terrain, 0, outH)

	// Each maze-cell row expands into two block rows: the row holding
	// the top walls and the row holding the cell floors. The third
	// (bottom) row of a cell is the next cell row's top, so it is not
	// emitted here.
	for y := 0; y < m.Height; y++ {
		rows = append(rows, topBlockRow(m, y, outW))
		rows = append(rows, middleBlockRow(m, y, outW))
	}

	// Closing wall row seals the bottom edge.
	bottom := make([]grid.Terrain, outW)
	for x := range bottom {
		bottom[x] = grid.Wall
	}
	rows = append(rows, bottom)

	return grid.NewFromTerrain(rows, opts...)
}

// topBlockRow renders the walls above one maze-cell row: a corner wall
// before each cell, then the cell's top passage or wall.
func topBlockRow(m *mazegen.Map, y, outW int) []grid.Terrain {
	row := make([]grid.Terrain, 0, outW)
	for x := 0; x < m.Width; x++ {
		c, _ := m.CellAt(x, y)
		row = append(row, grid.Wall)
		if c.Top == mazegen.Open {
			row = append(row, colorTerrain(c.Color))
		} else {
			row = append(row, grid.Wall)
		}
	}
	// Top-right corner of the last cell.
	row = append(row, grid.Wall)

	return row
}

// middleBlockRow renders the floors of one maze-cell row: the cell's
// left passage or wall, then the floor itself, with the row's final
// right wall closing the edge.
func middleBlockRow(m *mazegen.Map, y, outW int) []grid.Terrain {
	row := make([]grid.Terrain, 0, outW)
	var c mazegen.Cell
	for x := 0; x < m.Width; x++ {
		c, _ = m.CellAt(x, y)
		if c.Left == mazegen.Open {
			row = append(row, colorTerrain(c.Color))
		} else {
			row = append(row, grid.Wall)
		}
		row = append(row, colorTerrain(c.Color))
	}
	// The last cell's right wall is the only one not covered by a
	// neighbor's left wall.
	if c.Right == mazegen.Open {
		row = append(row, colorTerrain(c.Color))
	} else {
		row = append(row, grid.Wall)
	}

	return row
}

// colorTerrain maps a maze region color onto a walkable terrain.
// Unpainted cells default to grass.
func colorTerrain(c mazegen.Color) grid.Terrain {
	switch c {
	case mazegen.Blue:
		return grid.Water
	case mazegen.Orange:
		return grid.Mud
	case mazegen.Yellow:
		return grid.Sand
	case mazegen.Green:
		return grid.Grass
	default:
		return grid.Grass
	}
}
