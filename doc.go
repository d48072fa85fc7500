// Package gridwalk is a collection of small puzzle solvers built around one
// engine: walking a rectangular grid under different transition rules.
//
// What lives here?
//
//	A pure-Go set of packages, one per algorithm family:
//		• Grid model: immutable boards of terrain tags, bounded single steps
//		• Reachability: BFS flood with neighbour filters and depth limits
//		• Exploration: DFS over arbitrary comparable states
//		• Shortest paths: Dijkstra with run-length and exclusion constraints
//		• Geometry: shoelace area and Pick's theorem on lattice polygons
//		• Puzzles: pipe loops, light beams, rolling rocks, dig plans,
//		  garden steps, long hikes, almanac range remapping
//
// Why this layout?
//
//   - Each algorithm is usable on its own with functional options and hooks
//     (OnVisit, OnEnqueue, OnEnergize…).
//   - Puzzle packages only describe their alphabet and rules; traversal is
//     shared.
//   - Library packages never log and never panic on input; they return
//     sentinel errors wrapped with context.
//
// Packages:
//
//	grid/       Grid[T], Point, Direction, Ray, Build from text
//	bfs/        breadth-first Walk over any grid
//	dfs/        generic depth-first Explore with a visited set
//	dijkstra/   constrained shortest path on cost grids
//	geometry/   Shoelace, Perimeter, Interior, Total
//	pipes/      loop tracing and enclosed area
//	beam/       mirror and splitter deflection, energized cells
//	tilt/       rolling rocks, spin cycles, cycle detection
//	dig/        dig plan grammar and lagoon volume
//	garden/     plots reachable in exactly N steps, walled or endless
//	hike/       longest walk over one-way slopes
//	almanac/    seed ranges through remapping stages
//	input/      line and integer readers
//	cmd/aoc/    command-line runner
//
// Quick ASCII example:
//
//	    S-7
//	    |.|
//	    L-J
//
//	is a loop of eight pipes enclosing one tile.
//
//	go install github.com/katalvlaran/gridwalk/cmd/aoc@latest
package gridwalk
