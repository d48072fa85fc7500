// Package grid provides the rectangular board shared by every puzzle:
// construction from text, checked and unchecked lookups, and single-step
// movement that never leaves the board.
package grid

import (
	"fmt"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrShape if rows is empty, the first row is empty,
// or any row length differs.
// Algorithmic complexity: O(H×W) time and memory.
func New[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows or no columns", ErrShape)
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, h*w)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShape, r, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{Height: h, Width: w, cells: cells}, nil
}

// Build parses text lines into a Grid, mapping each character through
// decode. Lines are compared by rune count, so multi-byte alphabets are fine.
//
// Errors:
//   - ErrShape if there are no lines, the first line is empty, or lengths differ.
//   - ErrParse (wrapped with position and character) for unmapped characters.
func Build[T any](lines []string, decode Decoder[T]) (*Grid[T], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows or no columns", ErrShape)
	}
	rows := make([][]T, len(lines))
	for r, line := range lines {
		row := make([]T, 0, len(line))
		c := 0
		for _, ch := range line {
			tag, ok := decode(ch)
			if !ok {
				return nil, fmt.Errorf("%w %q at %d,%d", ErrParse, ch, r, c)
			}
			row = append(row, tag)
			c++
		}
		rows[r] = row
	}

	return New(rows)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the tag at (row, col), or ErrOutOfBounds.
func (g *Grid[T]) At(row, col int) (T, error) {
	p := Point{Row: row, Col: col}
	if !g.InBounds(p) {
		var zero T
		return zero, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Height, g.Width)
	}
	return g.cells[g.Index(p)], nil
}

// Get returns the tag at p without bounds checking.
// Callers must only pass points obtained from Neighbor, Points or Find.
func (g *Grid[T]) Get(p Point) T {
	return g.cells[g.Index(p)]
}

// Neighbor returns the adjacent position one step from p in direction d.
// The second result is false when that step would leave the grid.
func (g *Grid[T]) Neighbor(p Point, d Direction) (Point, bool) {
	n := p.Add(d)
	if !g.InBounds(n) {
		return Point{}, false
	}
	return n, true
}

// Step advances r one cell along its heading, keeping the heading.
func (r Ray) Step(g Stepper) (Ray, bool) {
	n, ok := g.Neighbor(r.Point, r.Dir)
	if !ok {
		return Ray{}, false
	}
	return Ray{Point: n, Dir: r.Dir}, true
}

// Index maps p to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid[T]) Index(p Point) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{Row: idx / g.Width, Col: idx % g.Width}
}

// Points returns every position in row-major order.
func (g *Grid[T]) Points() []Point {
	pts := make([]Point, 0, len(g.cells))
	for i := range g.cells {
		pts = append(pts, g.Coordinate(i))
	}
	return pts
}

// Find returns the first position, in row-major order, whose tag satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for i, v := range g.cells {
		if match(v) {
			return g.Coordinate(i), true
		}
	}
	return Point{}, false
}

// Cells returns a copy of the row-major tag store.
func (g *Grid[T]) Cells() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

// EdgeRays returns every border cell paired with the heading that points
// into the grid: top row heading South, bottom row North, left column East,
// right column West. Corner cells appear once per incident edge.
func (g *Grid[T]) EdgeRays() []Ray {
	rays := make([]Ray, 0, 2*(g.Width+g.Height))
	for c := 0; c < g.Width; c++ {
		rays = append(rays,
			Ray{Point: Point{Row: 0, Col: c}, Dir: South},
			Ray{Point: Point{Row: g.Height - 1, Col: c}, Dir: North},
		)
	}
	for r := 0; r < g.Height; r++ {
		rays = append(rays,
			Ray{Point: Point{Row: r, Col: 0}, Dir: East},
			Ray{Point: Point{Row: r, Col: g.Width - 1}, Dir: West},
		)
	}
	return rays
}

// Render draws the grid with one line per row using render for each tag.
func (g *Grid[T]) Render(render func(T) rune) string {
	buf := make([]rune, 0, g.Height*(g.Width+1))
	for i, v := range g.cells {
		buf = append(buf, render(v))
		if (i+1)%g.Width == 0 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
