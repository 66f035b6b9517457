// Package mazegen implements randomized iterative backtracking with
// probabilistic loop insertion and region coloring.
//
// The generator keeps an explicit stack instead of recursing: the top
// cell is peeked, not popped, so a cell stays current until all of its
// candidates are exhausted. This is what guarantees that every cell is
// visited and wall-connected into one spanning structure — loops only
// ever add connections, they cannot disconnect anything.
package mazegen

import (
	"math/rand"
	"time"
)

// Generate produces a new width×height maze.
//
// Algorithm:
//  1. Build a fully-walled map; push (0,0), mark it visited, draw an
//     initial region color.
//  2. While the stack is non-empty, peek the top cell and collect its
//     candidates: unvisited neighbors always qualify; a visited
//     neighbor qualifies with probability LoopProbability/6.2,
//     permitting an extra connection.
//  3. No candidates: pop (backtrack) and draw a fresh region color for
//     subsequent cells.
//  4. Otherwise pick one candidate uniformly at random, open the
//     mutual wall, paint the candidate with the current region color,
//     mark it visited if new, and push it.
//
// Randomness contract: a zero loop probability yields a perfect maze
// (a spanning tree); larger values raise expected extra-connection
// density monotonically; full reachability holds for every value.
//
// Returns ErrInvalidDimensions when width or height is below 1.
// Complexity: O(W×H) expected time, O(W×H) memory.
func Generate(width, height int, opts ...Option) (*Map, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Resolve the RNG: explicit source if provided, otherwise a
	//    time-seeded one local to this call. No global state.
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 3) Build the fully-walled map; dimension validation lives there.
	m, err := NewMap(width, height)
	if err != nil {
		return nil, err
	}

	// 4) Seed the walk at the origin with a random region color.
	origin := Coord{X: 0, Y: 0}
	stack := []Coord{origin}
	visited := make(map[Coord]bool, width*height)
	visited[origin] = true
	color := randColor(rng)
	m.cellAt(origin.X, origin.Y).Color = color

	// 5) Carve until the stack drains.
	var cur Coord
	for len(stack) > 0 {
		// Peek, do not pop: the cell stays current until exhausted.
		cur = stack[len(stack)-1]

		cands := m.candidates(cur, visited, rng, cfg.LoopProbability)
		if len(cands) == 0 {
			// Backtrack and reseed the region color so the next run
			// paints a fresh contiguous patch.
			stack = stack[:len(stack)-1]
			color = randColor(rng)
			continue
		}

		next := cands[rng.Intn(len(cands))]

		// Adjacency is guaranteed by candidate construction; a Connect
		// failure here would be a bug in this loop, not a user error.
		if err = m.Connect(cur, next); err != nil {
			return nil, err
		}

		m.cellAt(next.X, next.Y).Color = color
		if !visited[next] {
			visited[next] = true
		}
		stack = append(stack, next)
	}

	return m, nil
}

// candidates collects the generation candidates of cur: every
// unvisited neighbor, plus each visited neighbor readmitted with the
// damped loop probability. Readmitting a visited neighbor is what
// produces a loop — an extra connection beyond the spanning minimum.
func (m *Map) candidates(cur Coord, visited map[Coord]bool, rng *rand.Rand, loopProb float64) []Coord {
	cands := make([]Coord, 0, 4)
	var at Coord
	for _, nb := range m.Neighbors(cur.X, cur.Y) {
		at = nb.Coord()
		if !visited[at] {
			cands = append(cands, at)
			continue
		}
		if loopProb > 0 && rng.Float64() < loopProb/loopFactor {
			cands = append(cands, at)
		}
	}

	return cands
}

// randColor draws one color uniformly from the fixed palette.
func randColor(rng *rand.Rand) Color {
	return palette[rng.Intn(len(palette))]
}
