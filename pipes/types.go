package pipes

import (
	"errors"

	"github.com/katalvlaran/gridwalk/grid"
)

var (
	// ErrNoStart is returned by Parse when the map has no S cell.
	ErrNoStart = errors.New("pipes: no start cell")

	// ErrNoLoop is returned when the path out of S does not close.
	ErrNoLoop = errors.New("pipes: path from start does not close")
)

// Pipe is a bitmask of the headings a cell connects to.
type Pipe uint8

const (
	// Ground has no connections.
	Ground Pipe = 0

	startBit Pipe = 1 << 4
)

func bit(d grid.Direction) Pipe { return 1 << d }

// The pipe alphabet.
var (
	Vertical   = bit(grid.North) | bit(grid.South)
	Horizontal = bit(grid.East) | bit(grid.West)
	NorthEast  = bit(grid.North) | bit(grid.East)
	NorthWest  = bit(grid.North) | bit(grid.West)
	SouthWest  = bit(grid.South) | bit(grid.West)
	SouthEast  = bit(grid.South) | bit(grid.East)
	Start      = bit(grid.North) | bit(grid.East) | bit(grid.South) | bit(grid.West) | startBit
)

// Connects reports whether p opens towards d.
func (p Pipe) Connects(d grid.Direction) bool { return p&bit(d) != 0 }

// IsStart reports whether p is the S marker.
func (p Pipe) IsStart() bool { return p&startBit != 0 }

// decode is the fixed character table for pipe maps.
func decode(r rune) (Pipe, bool) {
	switch r {
	case '|':
		return Vertical, true
	case '-':
		return Horizontal, true
	case 'L':
		return NorthEast, true
	case 'J':
		return NorthWest, true
	case '7':
		return SouthWest, true
	case 'F':
		return SouthEast, true
	case '.':
		return Ground, true
	case 'S':
		return Start, true
	}
	return Ground, false
}

// Map is a parsed pipe maze together with its start cell.
type Map struct {
	Grid  *grid.Grid[Pipe]
	Start grid.Point
}

// Loop is the closed cycle through S, listed in walking order starting at S.
type Loop struct {
	Path []grid.Point
}
