// Package mazegen_test contains unit tests for the maze generator:
// map construction, neighbor truncation, the two-sided Connect
// invariant, spanning-tree properties at zero loop probability, loop
// density near the upper bound, and seeded determinism.
package mazegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkessel/gridpath/mazegen"
)

// ------------------------------------------------------------------------
// 1. Map construction and neighbor enumeration.
// ------------------------------------------------------------------------

func TestNewMap_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {0, 0}, {-1, 3}} {
		_, err := mazegen.NewMap(dims[0], dims[1])
		assert.ErrorIs(t, err, mazegen.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestNewMap_FullyClosedAndUncolored(t *testing.T) {
	m, err := mazegen.NewMap(3, 2)
	require.NoError(t, err)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c, ok := m.CellAt(x, y)
			require.True(t, ok)
			assert.Equal(t, mazegen.Closed, c.Top)
			assert.Equal(t, mazegen.Closed, c.Right)
			assert.Equal(t, mazegen.Closed, c.Bottom)
			assert.Equal(t, mazegen.Closed, c.Left)
			assert.Equal(t, mazegen.ColorNone, c.Color)
		}
	}
}

func TestNeighbors_CornerAndEdgeCounts(t *testing.T) {
	m, err := mazegen.NewMap(3, 3)
	require.NoError(t, err)

	assert.Len(t, m.Neighbors(2, 0), 2, "top-right corner")
	assert.Len(t, m.Neighbors(0, 2), 2, "bottom-left corner")
	assert.Len(t, m.Neighbors(0, 1), 3, "middle of left edge")
	assert.Len(t, m.Neighbors(1, 1), 4, "center")
}

// ------------------------------------------------------------------------
// 2. Connect: both sides updated atomically, non-neighbors rejected.
// ------------------------------------------------------------------------

func TestConnect_BottomNeighbor(t *testing.T) {
	m, err := mazegen.NewMap(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Connect(mazegen.Coord{X: 1, Y: 1}, mazegen.Coord{X: 1, Y: 2}))

	a, _ := m.CellAt(1, 1)
	b, _ := m.CellAt(1, 2)
	assert.Equal(t, mazegen.Open, a.Bottom)
	assert.Equal(t, mazegen.Closed, a.Top)
	assert.Equal(t, mazegen.Open, b.Top)
	assert.Equal(t, mazegen.Closed, b.Bottom)
}

func TestConnect_TopNeighbor(t *testing.T) {
	m, err := mazegen.NewMap(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Connect(mazegen.Coord{X: 1, Y: 1}, mazegen.Coord{X: 1, Y: 0}))

	a, _ := m.CellAt(1, 1)
	b, _ := m.CellAt(1, 0)
	assert.Equal(t, mazegen.Open, a.Top)
	assert.Equal(t, mazegen.Closed, a.Bottom)
	assert.Equal(t, mazegen.Open, b.Bottom)
	assert.Equal(t, mazegen.Closed, b.Top)
}

func TestConnect_RightNeighbor(t *testing.T) {
	m, err := mazegen.NewMap(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Connect(mazegen.Coord{X: 1, Y: 1}, mazegen.Coord{X: 2, Y: 1}))

	a, _ := m.CellAt(1, 1)
	b, _ := m.CellAt(2, 1)
	assert.Equal(t, mazegen.Open, a.Right)
	assert.Equal(t, mazegen.Open, b.Left)
}

func TestConnect_LeftNeighbor(t *testing.T) {
	m, err := mazegen.NewMap(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Connect(mazegen.Coord{X: 1, Y: 1}, mazegen.Coord{X: 0, Y: 1}))

	a, _ := m.CellAt(1, 1)
	b, _ := m.CellAt(0, 1)
	assert.Equal(t, mazegen.Open, a.Left)
	assert.Equal(t, mazegen.Open, b.Right)
}

func TestConnect_NonNeighbor(t *testing.T) {
	m, err := mazegen.NewMap(3, 3)
	require.NoError(t, err)

	err = m.Connect(mazegen.Coord{X: 1, Y: 1}, mazegen.Coord{X: 2, Y: 2})
	assert.ErrorIs(t, err, mazegen.ErrNotAdjacent)

	// Diagonal rejection must leave both cells untouched.
	a, _ := m.CellAt(1, 1)
	assert.Equal(t, mazegen.Closed, a.Right)
	assert.Equal(t, mazegen.Closed, a.Bottom)
}

func TestConnect_OutsideMap(t *testing.T) {
	m, err := mazegen.NewMap(2, 2)
	require.NoError(t, err)

	err = m.Connect(mazegen.Coord{X: 1, Y: 1}, mazegen.Coord{X: 2, Y: 1})
	assert.ErrorIs(t, err, mazegen.ErrNotAdjacent)
}

// ------------------------------------------------------------------------
// 3. Generation: spanning-tree properties, reachability, determinism.
// ------------------------------------------------------------------------

// reachableCells flood-fills the maze through open walls from (0,0)
// and returns the number of cells reached.
func reachableCells(m *mazegen.Map) int {
	seen := map[mazegen.Coord]bool{{X: 0, Y: 0}: true}
	queue := []mazegen.Coord{{X: 0, Y: 0}}
	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]
		c, _ := m.CellAt(at.X, at.Y)

		step := func(open mazegen.Wall, nx, ny int) {
			to := mazegen.Coord{X: nx, Y: ny}
			if open == mazegen.Open && m.InBounds(nx, ny) && !seen[to] {
				seen[to] = true
				queue = append(queue, to)
			}
		}
		step(c.Left, at.X-1, at.Y)
		step(c.Top, at.X, at.Y-1)
		step(c.Right, at.X+1, at.Y)
		step(c.Bottom, at.X, at.Y+1)
	}

	return len(seen)
}

// assertWallSymmetry verifies the mutual-consistency invariant for
// every adjacent cell pair.
func assertWallSymmetry(t *testing.T, m *mazegen.Map) {
	t.Helper()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c, _ := m.CellAt(x, y)
			if right, ok := m.CellAt(x+1, y); ok {
				assert.Equal(t, c.Right, right.Left, "walls between (%d,%d) and (%d,%d) disagree", x, y, x+1, y)
			}
			if below, ok := m.CellAt(x, y+1); ok {
				assert.Equal(t, c.Bottom, below.Top, "walls between (%d,%d) and (%d,%d) disagree", x, y, x, y+1)
			}
		}
	}
}

func TestGenerate_InvalidDimensions(t *testing.T) {
	_, err := mazegen.Generate(0, 5)
	assert.ErrorIs(t, err, mazegen.ErrInvalidDimensions)
	_, err = mazegen.Generate(5, 0)
	assert.ErrorIs(t, err, mazegen.ErrInvalidDimensions)
}

func TestGenerate_SingleCell(t *testing.T) {
	m, err := mazegen.Generate(1, 1, mazegen.WithSeed(1))
	require.NoError(t, err)
	c, _ := m.CellAt(0, 0)
	assert.Equal(t, mazegen.Closed, c.Top)
	assert.Equal(t, mazegen.Closed, c.Right)
	assert.Equal(t, mazegen.Closed, c.Bottom)
	assert.Equal(t, mazegen.Closed, c.Left)
	assert.NotEqual(t, mazegen.ColorNone, c.Color, "origin must be painted")
}

func TestGenerate_PerfectMazeIsSpanningTree(t *testing.T) {
	// With loop probability 0 the maze must be a spanning tree:
	// exactly W*H-1 open internal connections and full reachability
	// (which together also rule out cycles).
	const w, h = 12, 9
	m, err := mazegen.Generate(w, h, mazegen.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, w*h-1, m.OpenConnections())
	assert.Equal(t, w*h, reachableCells(m))
	assertWallSymmetry(t, m)
}

func TestGenerate_AllCellsPainted(t *testing.T) {
	m, err := mazegen.Generate(8, 8, mazegen.WithSeed(7))
	require.NoError(t, err)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c, _ := m.CellAt(x, y)
			assert.NotEqual(t, mazegen.ColorNone, c.Color, "cell (%d,%d) left unpainted", x, y)
		}
	}
}

func TestGenerate_HighLoopProbability(t *testing.T) {
	// Near the upper bound the maze must stay fully reachable and, on
	// a maze of this size, carry extra connections beyond the spanning
	// minimum. Seeded for determinism.
	const w, h = 20, 20
	m, err := mazegen.Generate(w, h,
		mazegen.WithSeed(1234),
		mazegen.WithLoopProbability(0.95))
	require.NoError(t, err)

	assert.Equal(t, w*h, reachableCells(m), "loops must never disconnect the maze")
	assert.Greater(t, m.OpenConnections(), w*h-1, "expected at least one loop beyond the spanning tree")
	assertWallSymmetry(t, m)
}

func TestGenerate_LoopDensityGrowsWithProbability(t *testing.T) {
	// Monotone relationship in expectation: averaged over several
	// seeds, a higher loop probability yields at least as many open
	// connections as a lower one.
	const w, h = 16, 16
	total := func(p float64) int {
		sum := 0
		for seed := int64(0); seed < 8; seed++ {
			m, err := mazegen.Generate(w, h,
				mazegen.WithSeed(seed),
				mazegen.WithLoopProbability(p))
			require.NoError(t, err)
			sum += m.OpenConnections()
		}

		return sum
	}

	low, high := total(0.1), total(0.9)
	assert.GreaterOrEqual(t, high, low)
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	a, err := mazegen.Generate(10, 10, mazegen.WithSeed(99), mazegen.WithLoopProbability(0.5))
	require.NoError(t, err)
	b, err := mazegen.Generate(10, 10, mazegen.WithSeed(99), mazegen.WithLoopProbability(0.5))
	require.NoError(t, err)

	assert.Equal(t, a.Cells, b.Cells, "same seed must reproduce the same maze, walls and colors included")
}

// ------------------------------------------------------------------------
// 4. Option validation.
// ------------------------------------------------------------------------

func TestWithLoopProbability_RangeEnforced(t *testing.T) {
	assert.Panics(t, func() { mazegen.WithLoopProbability(-0.1)(&mazegen.Options{}) })
	assert.Panics(t, func() { mazegen.WithLoopProbability(1.0)(&mazegen.Options{}) })
	assert.NotPanics(t, func() { mazegen.WithLoopProbability(0.99)(&mazegen.Options{}) })
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { mazegen.WithRand(nil)(&mazegen.Options{}) })
}
