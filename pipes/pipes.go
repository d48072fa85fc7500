package pipes

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/geometry"
	"github.com/katalvlaran/gridwalk/grid"
)

// Parse builds a Map from text lines and locates S.
func Parse(lines []string) (*Map, error) {
	g, err := grid.Build(lines, decode)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find(Pipe.IsStart)
	if !ok {
		return nil, ErrNoStart
	}
	return &Map{Grid: g, Start: start}, nil
}

// Connected reports whether a step from `from` in direction d is
// traversable: from opens towards d and the neighbour opens back.
func (m *Map) Connected(from grid.Point, d grid.Direction) bool {
	to, ok := m.Grid.Neighbor(from, d)
	if !ok {
		return false
	}
	return m.Grid.Get(from).Connects(d) && m.Grid.Get(to).Connects(d.Opposite())
}

// Reachable returns every cell connected to from through agreeing pipes,
// including from itself.
func (m *Map) Reachable(from grid.Point) (mapset.Set[grid.Point], error) {
	res, err := bfs.Walk(m.Grid, from, bfs.WithFilterNeighbor(
		func(p, _ grid.Point, d grid.Direction) bool { return m.Connected(p, d) },
	))
	if err != nil {
		return mapset.Set[grid.Point]{}, fmt.Errorf("pipes: flood from %v: %w", from, err)
	}
	seen := mapset.New[grid.Point]()
	for _, p := range res.Order {
		seen.Put(p)
	}
	return seen, nil
}

// TraceLoop walks from S along each connected direction in N, E, S, W
// order. From the first cell on, it takes the first unvisited connected
// neighbour until no move remains. The first walk that ends next to S with
// a connection back to it is the loop; if none does, ErrNoLoop.
func (m *Map) TraceLoop() (*Loop, error) {
	longest := 1
	for _, d := range grid.Directions {
		if !m.Connected(m.Start, d) {
			continue
		}
		path, closed := m.walkFrom(d)
		if closed {
			return &Loop{Path: path}, nil
		}
		longest = max(longest, len(path))
	}
	return nil, fmt.Errorf("%w: walked %d cells from %v", ErrNoLoop, longest, m.Start)
}

// walkFrom leaves S in direction d and follows pipes until stuck. It
// reports whether the walk closed back onto S.
func (m *Map) walkFrom(d grid.Direction) ([]grid.Point, bool) {
	first, _ := m.Grid.Neighbor(m.Start, d)
	path := []grid.Point{m.Start, first}
	visited := map[grid.Point]bool{m.Start: true, first: true}

	cur := first
	for {
		next, ok := m.step(cur, visited)
		if !ok {
			break
		}
		visited[next] = true
		path = append(path, next)
		cur = next
	}

	// A closed loop on a square lattice has at least four cells.
	return path, len(path) >= 4 && m.adjacentTo(cur, m.Start)
}

// step picks the first unvisited connected neighbour of p.
func (m *Map) step(p grid.Point, visited map[grid.Point]bool) (grid.Point, bool) {
	for _, d := range grid.Directions {
		if !m.Connected(p, d) {
			continue
		}
		n, _ := m.Grid.Neighbor(p, d)
		if !visited[n] {
			return n, true
		}
	}
	return grid.Point{}, false
}

// adjacentTo reports whether p has a connected step onto target.
func (m *Map) adjacentTo(p, target grid.Point) bool {
	for _, d := range grid.Directions {
		if n, ok := m.Grid.Neighbor(p, d); ok && n == target && m.Connected(p, d) {
			return true
		}
	}
	return false
}

// Farthest returns the number of steps from S to the point of the loop
// farthest from it.
func (l *Loop) Farthest() int {
	return len(l.Path) / 2
}

// Enclosed counts the cells strictly inside the loop.
func (l *Loop) Enclosed() int {
	vertices := make([]geometry.Pt[int], len(l.Path))
	for i, p := range l.Path {
		vertices[i] = geometry.Pt[int]{Row: p.Row, Col: p.Col}
	}
	return geometry.Interior(geometry.Shoelace(vertices), len(l.Path))
}
