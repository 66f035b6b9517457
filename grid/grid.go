package grid

// Grid is an immutable rectangular array of terrain cells.
// Width and Height are fixed at construction from the first row's
// length and the row count. The cost table is captured at construction
// and consulted for every traversability decision.
type Grid struct {
	width, height int
	cells         [][]Cell
	costs         CostTable
}

// New constructs a Grid from a non-empty, rectangular 2D slice of
// cells. It deep-copies the input to ensure immutability and rewrites
// each cell's coordinates to its actual position, so callers need not
// pre-fill X/Y consistently.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(cells [][]Cell, opts ...Option) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Deep copy to prevent external mutation.
	copied := make([][]Cell, h)
	for y := 0; y < h; y++ {
		copied[y] = make([]Cell, w)
		copy(copied[y], cells[y])
		for x := 0; x < w; x++ {
			copied[y][x].X, copied[y][x].Y = x, y
		}
	}

	return &Grid{width: w, height: h, cells: copied, costs: cfg.Costs}, nil
}

// NewFromTerrain constructs a Grid from a rectangular 2D slice of bare
// terrain categories. Coordinates are derived from position.
// Same validation and options as New.
func NewFromTerrain(rows [][]Terrain, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]Cell, len(row))
		for x, t := range row {
			cells[y][x] = Cell{X: x, Y: y, Terrain: t}
		}
	}

	return New(cells, opts...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Costs returns the cost table the grid was built with.
func (g *Grid) Costs() CostTable { return g.costs }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CellAt returns the cell at (x,y) and true, or a zero Cell and false
// when (x,y) lies outside the grid. Out-of-range is not an error:
// boundary truncation is ordinary during neighbor walks.
// Complexity: O(1).
func (g *Grid) CellAt(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}

	return g.cells[y][x], true
}

// MovementCost reports the movement cost of entering c and whether c is
// traversable under the grid's cost table.
func (g *Grid) MovementCost(c Cell) (int, bool) {
	return g.costs.Cost(c.Terrain)
}

// Neighbors returns the traversable axis-adjacent cells of (x,y) in a
// fixed left, top, right, bottom order. A coordinate at the grid edge
// simply yields fewer neighbors. The order matters only for
// deterministic iteration, not for correctness.
// Complexity: O(1).
func (g *Grid) Neighbors(x, y int) []Cell {
	// Left, top, right, bottom.
	offsets := [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

	out := make([]Cell, 0, 4)
	var c Cell
	var ok bool
	for _, d := range offsets {
		if c, ok = g.CellAt(x+d[0], y+d[1]); !ok {
			continue
		}
		if _, walkable := g.costs.Cost(c.Terrain); !walkable {
			continue
		}
		out = append(out, c)
	}

	return out
}

// StampPath returns a new Grid in which every cell whose coordinate
// appears in path is retagged Route; all other cells are unchanged.
// The receiver is never mutated, so callers holding the source grid
// keep an unmodified view.
// Complexity: O(W×H + len(path)).
func (g *Grid) StampPath(path []Cell) *Grid {
	onPath := make(map[Coord]struct{}, len(path))
	for _, c := range path {
		onPath[c.Coord()] = struct{}{}
	}

	cells := make([][]Cell, g.height)
	for y := 0; y < g.height; y++ {
		cells[y] = make([]Cell, g.width)
		copy(cells[y], g.cells[y])
		for x := 0; x < g.width; x++ {
			if _, ok := onPath[cells[y][x].Coord()]; ok {
				cells[y][x].Terrain = Route
			}
		}
	}

	return &Grid{width: g.width, height: g.height, cells: cells, costs: g.costs}
}
