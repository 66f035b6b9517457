// File: mazegen/example_test.go
package mazegen_test

import (
	"fmt"

	"github.com/mkessel/gridpath/mazegen"
)

// ExampleGenerate demonstrates carving a perfect maze.
// Scenario:
//
//   - 4×3 maze, loop probability 0, fixed seed
//   - a perfect maze is a spanning tree: exactly W*H-1 = 11 open
//     internal connections, whatever the seed
func ExampleGenerate() {
	m, err := mazegen.Generate(4, 3, mazegen.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("size:", m.Width, "x", m.Height)
	fmt.Println("connections:", m.OpenConnections())

	// Output:
	// size: 4 x 3
	// connections: 11
}

// ExampleMap_Connect shows the two-sided wall update: opening a
// passage from one cell is always visible from the other.
func ExampleMap_Connect() {
	m, _ := mazegen.NewMap(2, 1)
	_ = m.Connect(mazegen.Coord{X: 0, Y: 0}, mazegen.Coord{X: 1, Y: 0})

	a, _ := m.CellAt(0, 0)
	b, _ := m.CellAt(1, 0)
	fmt.Println("a.Right:", a.Right)
	fmt.Println("b.Left:", b.Left)

	// Output:
	// a.Right: open
	// b.Left: open
}
