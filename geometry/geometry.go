// Package geometry computes areas of rectilinear lattice polygons traced on
// a grid: the shoelace formula for the polygon area and Pick's theorem for
// converting between area, boundary, and interior lattice-point counts.
//
// All functions are generic over signed integers so that small pipe loops
// (int) and very large dig plans (int64) share one implementation.
package geometry

import (
	"golang.org/x/exp/constraints"
)

// Pt is a lattice vertex in (row, col) order.
type Pt[T constraints.Signed] struct {
	Row, Col T
}

// Shoelace returns the area enclosed by the closed polygon through vertices.
// The closing edge from the last vertex back to the first is implied; a
// repeated first vertex at the end is harmless.
// Cross products are summed with sign, then the absolute value is halved.
// Complexity: O(n).
func Shoelace[T constraints.Signed](vertices []Pt[T]) T {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	var twice T
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		twice += a.Row*b.Col - b.Row*a.Col
	}
	if twice < 0 {
		twice = -twice
	}
	return twice / 2
}

// Perimeter returns the total Manhattan length of the closed polygon,
// i.e. the number of lattice points on its boundary for rectilinear input.
func Perimeter[T constraints.Signed](vertices []Pt[T]) T {
	n := len(vertices)
	if n < 2 {
		return 0
	}
	var total T
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		total += abs(a.Row-b.Row) + abs(a.Col-b.Col)
	}
	return total
}

// Interior applies Pick's theorem, A = i + b/2 - 1, solved for the number
// of lattice points strictly inside the polygon.
func Interior[T constraints.Signed](area, boundary T) T {
	return area - boundary/2 + 1
}

// Total returns interior plus boundary lattice points, the count of grid
// cells covered by a trench dug along the polygon together with its inside.
func Total[T constraints.Signed](area, boundary T) T {
	return Interior(area, boundary) + boundary
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
