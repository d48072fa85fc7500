package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// ExampleBuild parses a small board and walks east from the origin until
// the edge is reached.
func ExampleBuild() {
	g, err := grid.Build([]string{"...#", "...."}, binary)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r := grid.Ray{Dir: grid.East}
	steps := 0
	for {
		next, ok := r.Step(g)
		if !ok || g.Get(next.Point) {
			break
		}
		r = next
		steps++
	}
	fmt.Printf("%dx%d grid, stopped at %v after %d steps\n", g.Height, g.Width, r.Point, steps)
	// Output: 2x4 grid, stopped at 0,2 after 2 steps
}
