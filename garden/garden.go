// Package garden counts the garden plots an elf can stand on after an
// exact number of steps.
//
// A plot reachable in d steps is also reachable in d+2, d+4, ... by
// stepping back and forth, so the plots occupied after exactly n steps
// are those at BFS distance ≤ n with the same parity as n.
//
// On the infinitely repeated garden the count is walked directly by
// TiledReachable. For a square map with S in the centre, the count at
// r, r+size, r+2·size, ... steps grows quadratically, and
// InfiniteReachable extrapolates from the first three terms.
package garden

import (
	"context"
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/grid"
)

var (
	// ErrNoStart is returned when the map has no S cell.
	ErrNoStart = errors.New("garden: no start cell")

	// ErrNotCentred is returned by InfiniteReachable when the map is not
	// square with S in the middle.
	ErrNotCentred = errors.New("garden: map is not square around the start")
)

// Tile is the content of one cell.
type Tile rune

const (
	// Plot is open ground.
	Plot Tile = '.'
	// Rock blocks movement.
	Rock Tile = '#'
	// Start is the elf's starting plot.
	Start Tile = 'S'
)

func decode(r rune) (Tile, bool) {
	switch t := Tile(r); t {
	case Plot, Rock, Start:
		return t, true
	}
	return 0, false
}

// Map is a parsed garden and the elf's starting cell.
type Map struct {
	Grid  *grid.Grid[Tile]
	Start grid.Point
}

// Parse reads the garden map and finds S.
func Parse(lines []string) (*Map, error) {
	g, err := grid.Build(lines, decode)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find(func(t Tile) bool { return t == Start })
	if !ok {
		return nil, ErrNoStart
	}
	return &Map{Grid: g, Start: start}, nil
}

// Plots returns the cells the elf may occupy after exactly steps steps.
func (m *Map) Plots(steps int) (mapset.Set[grid.Point], error) {
	out := mapset.New[grid.Point]()
	err := m.walk(context.Background(), m.Grid, m.Grid.Get, steps, out.Put)
	if err != nil {
		return mapset.Set[grid.Point]{}, err
	}
	return out, nil
}

// Reachable counts the plots from Plots.
func (m *Map) Reachable(steps int) (int, error) {
	plots, err := m.Plots(steps)
	if err != nil {
		return 0, err
	}
	return plots.Size(), nil
}

// TiledReachable counts the plots reachable in exactly steps steps when
// the map repeats endlessly in every direction. The start cell only
// exists in the original copy.
func (m *Map) TiledReachable(ctx context.Context, steps int) (int64, error) {
	var n int64
	err := m.walk(ctx, endless{}, m.tileAt, steps, func(grid.Point) { n++ })
	if err != nil {
		return 0, err
	}
	return n, nil
}

// InfiniteReachable answers TiledReachable for step counts too large to
// walk. With size the map's side and steps = k·size + r, it walks r,
// r+size and r+2·size steps and extends the quadratic through them to k.
// The map must be square with S in its centre, otherwise ErrNotCentred.
func (m *Map) InfiniteReachable(ctx context.Context, steps int) (int64, error) {
	size := m.Grid.Height
	if m.Grid.Width != size || m.Start != (grid.Point{Row: size / 2, Col: size / 2}) {
		return 0, fmt.Errorf("%w: %dx%d with start %v", ErrNotCentred, m.Grid.Height, m.Grid.Width, m.Start)
	}
	k, r := steps/size, steps%size
	if steps < 0 || k < 3 {
		return m.TiledReachable(ctx, steps)
	}

	var terms [3]int64
	for i := range terms {
		n, err := m.TiledReachable(ctx, r+i*size)
		if err != nil {
			return 0, err
		}
		terms[i] = n
	}
	first := terms[1] - terms[0]
	second := terms[2] - 2*terms[1] + terms[0]
	k64 := int64(k)
	return terms[0] + k64*first + k64*(k64-1)/2*second, nil
}

// walk floods space from S for at most steps steps, skipping rocks, and
// hands keep every cell whose distance has the parity of steps.
func (m *Map) walk(ctx context.Context, space bfs.Space, tile func(grid.Point) Tile, steps int, keep func(grid.Point)) error {
	if steps < 0 {
		return fmt.Errorf("garden: negative step count %d", steps)
	}
	if steps == 0 {
		keep(m.Start)
		return nil
	}
	_, err := bfs.Walk(space, m.Start,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(steps),
		bfs.WithFilterNeighbor(func(_, to grid.Point, _ grid.Direction) bool {
			return tile(to) != Rock
		}),
		bfs.WithOnVisit(func(p grid.Point, depth int) error {
			if depth%2 == steps%2 {
				keep(p)
			}
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("garden: %w", err)
	}
	return nil
}

// tileAt reads p on the endlessly repeated map.
func (m *Map) tileAt(p grid.Point) Tile {
	return m.Grid.Get(grid.Point{
		Row: wrap(p.Row, m.Grid.Height),
		Col: wrap(p.Col, m.Grid.Width),
	})
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// endless is a board without edges.
type endless struct{}

func (endless) InBounds(grid.Point) bool { return true }

func (endless) Neighbor(p grid.Point, d grid.Direction) (grid.Point, bool) {
	return p.Add(d), true
}
