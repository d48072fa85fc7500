// Package grid defines core types, directions, and sentinel errors
// for the grid model.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrParse indicates an input character with no terrain mapping.
	ErrParse = errors.New("grid: unrecognized character")
	// ErrShape indicates empty input or rows of differing lengths.
	ErrShape = errors.New("grid: input must be a non-empty rectangle")
	// ErrOutOfBounds indicates a lookup outside the grid extent.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Decoder maps one input character to a terrain tag.
// It reports false when the character is not part of the puzzle alphabet.
type Decoder[T any] func(r rune) (T, bool)

// Point is a zero-based (row, column) position.
type Point struct {
	Row, Col int
}

// Add returns p moved by one step in direction d.
func (p Point) Add(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// String renders p as "row,col".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	// North moves one row up.
	North Direction = iota
	// East moves one column right.
	East
	// South moves one row down.
	South
	// West moves one column left.
	West
)

// Directions lists the cardinal headings in canonical N, E, S, W order.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the (row, col) offset of a single step.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// TurnRight returns the heading after a clockwise quarter turn.
func (d Direction) TurnRight() Direction { return (d + 1) % 4 }

// TurnLeft returns the heading after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction { return (d + 3) % 4 }

// Vertical reports whether d is North or South.
func (d Direction) Vertical() bool { return d == North || d == South }

// String returns the single-letter compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// Ray is a position travelling in a direction, the unit state of
// directional traversals.
type Ray struct {
	Point
	Dir Direction
}

// String renders r as "row,col/dir".
func (r Ray) String() string {
	return r.Point.String() + "/" + r.Dir.String()
}

// Stepper is anything that can take a bounded single step, most
// notably *Grid[T] for any T.
type Stepper interface {
	Neighbor(p Point, d Direction) (Point, bool)
}

// Grid is an immutable rectangular board of terrain tags.
// Cells are stored row-major; Height and Width are both > 0.
type Grid[T any] struct {
	Height, Width int
	cells         []T
}
