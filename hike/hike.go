// Package hike finds the longest scenic hike across a trail map: a walk
// from the single open cell of the top row to the single open cell of
// the bottom row that never steps on the same cell twice.
//
// Icy slopes (^ > v <) can only be crossed downhill. The search first
// collapses the map into junctions joined by corridors, then tries every
// simple route between junctions.
package hike

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/dfs"
	"github.com/katalvlaran/gridwalk/grid"
)

var (
	// ErrNoTrailhead is returned when the top or bottom row has no open cell.
	ErrNoTrailhead = errors.New("hike: no open cell in the top or bottom row")

	// ErrNoRoute is returned when the goal cannot be reached from the start.
	ErrNoRoute = errors.New("hike: goal unreachable")
)

// Tile is the content of one cell.
type Tile rune

const (
	// Path is open trail.
	Path Tile = '.'
	// Forest cannot be entered.
	Forest Tile = '#'
	// SlopeNorth can only be crossed heading north.
	SlopeNorth Tile = '^'
	// SlopeEast can only be crossed heading east.
	SlopeEast Tile = '>'
	// SlopeSouth can only be crossed heading south.
	SlopeSouth Tile = 'v'
	// SlopeWest can only be crossed heading west.
	SlopeWest Tile = '<'
)

var downhill = map[Tile]grid.Direction{
	SlopeNorth: grid.North,
	SlopeEast:  grid.East,
	SlopeSouth: grid.South,
	SlopeWest:  grid.West,
}

func decode(r rune) (Tile, bool) {
	switch t := Tile(r); t {
	case Path, Forest, SlopeNorth, SlopeEast, SlopeSouth, SlopeWest:
		return t, true
	}
	return 0, false
}

// Map is a parsed trail map with its two trailheads.
type Map struct {
	Grid  *grid.Grid[Tile]
	Start grid.Point
	Goal  grid.Point
}

// Parse reads the trail map. The start is the first path cell of the top
// row, the goal the first path cell of the bottom row.
func Parse(lines []string) (*Map, error) {
	g, err := grid.Build(lines, decode)
	if err != nil {
		return nil, err
	}
	top := strings.IndexRune(lines[0], rune(Path))
	bottom := strings.IndexRune(lines[len(lines)-1], rune(Path))
	if top < 0 || bottom < 0 {
		return nil, ErrNoTrailhead
	}
	return &Map{
		Grid:  g,
		Start: grid.Point{Row: 0, Col: runeColumn(lines[0], top)},
		Goal:  grid.Point{Row: g.Height - 1, Col: runeColumn(lines[len(lines)-1], bottom)},
	}, nil
}

// runeColumn converts a byte offset into a rune column.
func runeColumn(line string, offset int) int {
	return len([]rune(line[:offset]))
}

// Option configures Longest.
type Option func(*Options)

// Options holds Longest settings.
type Options struct {
	// Ctx is checked while routes are enumerated.
	Ctx context.Context

	// Slippery makes slopes one-way. When false they behave like Path.
	Slippery bool
}

// DefaultOptions returns a background context with slippery slopes.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Slippery: true}
}

// WithContext bounds Longest by ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDrySlopes lets the hiker walk slopes in any direction.
func WithDrySlopes() Option {
	return func(o *Options) {
		o.Slippery = false
	}
}

// corridor joins two junctions.
type corridor struct {
	to     int
	length int
}

// Longest returns the number of steps of the longest hike from Start to
// Goal, or ErrNoRoute.
func (m *Map) Longest(opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	junctions := m.junctions()
	index := make(map[grid.Point]int, len(junctions))
	for i, p := range junctions {
		index[p] = i
	}
	links := make([][]corridor, len(junctions))
	for i, p := range junctions {
		out, err := m.corridors(o, p, index)
		if err != nil {
			return 0, fmt.Errorf("hike: corridors from %v: %w", p, err)
		}
		links[i] = out
	}

	r := &router{
		links: links,
		goal:  index[m.Goal],
		seen:  make([]bool, len(junctions)),
		ctx:   o.Ctx,
		best:  -1,
	}
	r.route(index[m.Start], 0)
	if r.err != nil {
		return 0, fmt.Errorf("hike: %w", r.err)
	}
	if r.best < 0 {
		return 0, fmt.Errorf("%w: from %v to %v", ErrNoRoute, m.Start, m.Goal)
	}
	return r.best, nil
}

// junctions lists Start, Goal and every open cell with three or more open
// neighbours, in that order.
func (m *Map) junctions() []grid.Point {
	out := []grid.Point{m.Start}
	if m.Goal != m.Start {
		out = append(out, m.Goal)
	}
	for _, p := range m.Grid.Points() {
		if m.Grid.Get(p) == Forest || p == m.Start || p == m.Goal {
			continue
		}
		open := 0
		for _, d := range grid.Directions {
			if n, ok := m.Grid.Neighbor(p, d); ok && m.Grid.Get(n) != Forest {
				open++
			}
		}
		if open >= 3 {
			out = append(out, p)
		}
	}
	return out
}

// corridors walks every corridor leaving from and reports the junctions
// it ends at with their lengths. Two corridors to the same junction are
// both kept.
func (m *Map) corridors(o Options, from grid.Point, index map[grid.Point]int) ([]corridor, error) {
	dist := map[grid.Point]int{from: 0}
	var out []corridor

	expand := func(p grid.Point) []grid.Point {
		var next []grid.Point
		for _, d := range grid.Directions {
			n, ok := m.step(p, d, o.Slippery)
			if !ok {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			if j, isJunction := index[n]; isJunction {
				out = append(out, corridor{to: j, length: dist[p] + 1})
				continue
			}
			dist[n] = dist[p] + 1
			next = append(next, n)
		}
		return next
	}

	if _, err := dfs.Explore([]grid.Point{from}, expand, dfs.WithContext[grid.Point](o.Ctx)); err != nil {
		return nil, err
	}
	return out, nil
}

// step moves from p heading d if the hiker may: never into forest, and on
// slippery slopes only downhill, both leaving and entering.
func (m *Map) step(p grid.Point, d grid.Direction, slippery bool) (grid.Point, bool) {
	n, ok := m.Grid.Neighbor(p, d)
	if !ok {
		return grid.Point{}, false
	}
	to := m.Grid.Get(n)
	if to == Forest {
		return grid.Point{}, false
	}
	if slippery {
		if h, slope := downhill[m.Grid.Get(p)]; slope && h != d {
			return grid.Point{}, false
		}
		if h, slope := downhill[to]; slope && h != d {
			return grid.Point{}, false
		}
	}
	return n, true
}

// ctxEvery is how many routing steps pass between context checks.
const ctxEvery = 1 << 12

// router enumerates simple routes over the junction graph.
type router struct {
	links [][]corridor
	goal  int
	seen  []bool
	ctx   context.Context
	steps int
	best  int
	err   error
}

func (r *router) route(at, length int) {
	if r.err != nil {
		return
	}
	r.steps++
	if r.steps%ctxEvery == 0 {
		if err := r.ctx.Err(); err != nil {
			r.err = err
			return
		}
	}
	if at == r.goal {
		r.best = max(r.best, length)
		return
	}
	r.seen[at] = true
	for _, c := range r.links[at] {
		if !r.seen[c.to] {
			r.route(c.to, length+c.length)
		}
	}
	r.seen[at] = false
}
