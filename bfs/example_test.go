package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/grid"
)

// ExampleWalk finds the step distance through a small maze.
func ExampleWalk() {
	g, _ := grid.Build([]string{
		"..#",
		"#..",
		"#.#",
	}, func(r rune) (bool, bool) { return r == '.', r == '.' || r == '#' })

	res, err := bfs.Walk(g, grid.Point{Row: 0, Col: 0},
		bfs.WithFilterNeighbor(func(_, to grid.Point, _ grid.Direction) bool {
			return g.Get(to)
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	goal := grid.Point{Row: 2, Col: 1}
	path, _ := res.PathTo(goal)
	fmt.Println("depth:", res.Depth[goal])
	fmt.Println("path:", path)
	// Output:
	// depth: 3
	// path: [0,0 0,1 1,1 2,1]
}
