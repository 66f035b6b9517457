// File: render/example_test.go
package render_test

import (
	"fmt"

	"github.com/mkessel/gridpath/grid"
	"github.com/mkessel/gridpath/render"
)

// ExampleText renders a tiny plan with a path overlaid down the left
// column.
func ExampleText() {
	g, _ := grid.NewFromTerrain([][]grid.Terrain{
		{grid.Grass, grid.Sand},
		{grid.Grass, grid.Wall},
	})

	fmt.Print(render.Text(g, render.WithPath([]grid.Cell{
		{X: 0, Y: 0}, {X: 0, Y: 1},
	})))

	// Output:
	// 🤖🟨
	// 🤖⬛
}
