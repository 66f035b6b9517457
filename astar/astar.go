// Package astar implements cost-aware A* search with node re-opening
// on a grid.Grid.
//
// Notes on implementation choices:
//
//   - The frontier needs arbitrary-element removal to evict a node that
//     a cheaper rediscovery superseded. Instead of a decrease-key heap
//     we use lazy eviction: the cheaper node replaces the old one in
//     the reached index and is pushed; a popped node that no longer
//     matches its reached entry is stale and skipped.
//   - Ties on equal f are broken by a monotone insertion sequence
//     number, so expansion order is deterministic within one run.
//   - The heuristic is the straight-line distance truncated to an
//     integer. Movement costs are charged per destination cell, not
//     per unit of distance, so for cost tables whose cheapest step is
//     ≥ 1 the estimate never overshoots; with per-step costs below 1
//     it would stop being a strict lower bound. The heuristic is kept
//     as-is for behavioral compatibility with the plans this searches.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/mkessel/gridpath/grid"
)

// Find computes an optimal path from start to goal on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must lie within g (ErrInvalidEndpoint).
//  3. goal must lie within g (ErrInvalidEndpoint).
//
// A non-traversable start or goal is not a distinct error: the
// neighbor-walk semantics simply never reach the goal and the search
// reports ErrNoPath.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Find(g *grid.Grid, start, goal grid.Coord, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 3) Validate both endpoints are inside the grid. Fail fast with
	//    coordinate context before any search state is allocated.
	if !g.InBounds(start.X, start.Y) {
		return Result{}, fmt.Errorf("%w: start (%d,%d)", ErrInvalidEndpoint, start.X, start.Y)
	}
	if !g.InBounds(goal.X, goal.Y) {
		return Result{}, fmt.Errorf("%w: goal (%d,%d)", ErrInvalidEndpoint, goal.X, goal.Y)
	}

	// 4) Initialize the runner: root node with accumulated cost 0,
	//    f = h(start, goal), inserted into both frontier and reached.
	r := &runner{
		g:       g,
		goal:    goal,
		options: cfg,
		reached: make(map[grid.Coord]*node),
		pq:      make(nodePQ, 0),
	}
	r.init(start)

	// 5) Run the expansion loop to completion.
	return r.process()
}

// node is one search state: the cell it stands on, an optional link to
// its predecessor, and the accumulated cost of the route that created
// it. Nodes are immutable after creation; a superseded node is simply
// dropped from the reached index, never edited in place. Parent chains
// are shared between frontier and reached entries, which is safe
// because nothing ever mutates an ancestor.
type node struct {
	cell   grid.Cell
	parent *node
	cost   int // accumulated movement cost from the start
	f      int // cost + heuristic(cell, goal)
	seq    uint64
}

// steps walks the parent links back to the root and returns the route
// in start→goal order.
func (n *node) steps() []grid.Cell {
	var path []grid.Cell
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.cell)
	}
	// Reverse in place: parents were collected goal-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// heuristic is the straight-line distance between a and b, truncated
// to a non-negative integer.
func heuristic(a, b grid.Coord) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return int(math.Sqrt(dx*dx + dy*dy))
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *grid.Grid
	goal    grid.Coord
	options Options
	reached map[grid.Coord]*node // best known node per coordinate
	pq      nodePQ               // frontier ordered by (f, seq)
	seq     uint64               // insertion counter for tie-breaking
}

// init seeds the frontier and the reached index with the start node.
func (r *runner) init(start grid.Coord) {
	cell, _ := r.g.CellAt(start.X, start.Y)
	root := &node{
		cell: cell,
		cost: 0,
		f:    heuristic(start, r.goal),
		seq:  r.seq,
	}
	r.seq++

	heap.Init(&r.pq)
	heap.Push(&r.pq, root)
	r.reached[start] = root
}

// process is the core loop: pop the minimum-f node, finish if it is
// the goal, otherwise expand its traversable neighbors.
func (r *runner) process() (Result, error) {
	var n *node
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-f entry.
		n = heap.Pop(&r.pq).(*node)

		// 2) Skip entries a cheaper rediscovery has superseded. A node
		//    is live only while it is still the reached entry for its
		//    coordinate.
		if r.reached[n.cell.Coord()] != n {
			continue
		}

		// 3) Goal test on pop, not on generation: only a popped node is
		//    guaranteed to carry the optimal cost for its coordinate.
		if n.cell.Coord() == r.goal {
			return Result{Path: n.steps(), TotalCost: n.cost}, nil
		}

		// 4) Expand every traversable neighbor.
		r.expand(n)
	}

	// 5) Frontier exhausted without reaching the goal.
	return Result{}, ErrNoPath
}

// expand relaxes all traversable neighbors of n. A neighbor enters the
// frontier when it is first seen or when the new route is strictly
// cheaper than its reached entry; equal or worse routes are ignored.
func (r *runner) expand(n *node) {
	var (
		cost int
		prev *node
		ok   bool
	)
	for _, nb := range r.g.Neighbors(n.cell.X, n.cell.Y) {
		// Movement cost is charged for entering the neighbor cell.
		step, _ := r.g.MovementCost(nb)
		cost = n.cost + step
		if cost > r.options.MaxCost {
			continue
		}

		prev, ok = r.reached[nb.Coord()]
		if ok && cost >= prev.cost {
			// Not strictly cheaper: never re-add, never re-lower.
			continue
		}

		child := &node{
			cell:   nb,
			parent: n,
			cost:   cost,
			f:      cost + heuristic(nb.Coord(), r.goal),
			seq:    r.seq,
		}
		r.seq++

		// Replacing the reached entry is also the eviction: the old
		// frontier entry, if any, turns stale and is skipped on pop.
		r.reached[nb.Coord()] = child
		heap.Push(&r.pq, child)
	}
}

// nodePQ is a min-heap of *node ordered by f ascending, with the
// insertion sequence number as a deterministic tie-break.
type nodePQ []*node

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority; equal f
// falls back to earlier insertion.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
