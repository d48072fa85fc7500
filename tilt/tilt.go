// Package tilt simulates rounded rocks rolling across a tilting platform
// and measures the load they put on its north edge.
//
// A spin cycle tilts north, west, south, then east. Platforms settle into
// a repeating sequence of states after a short prefix, so LoadAfter finds
// the period by hashing snapshots and only simulates up to the first
// repeat plus the remainder.
package tilt

import (
	"fmt"

	"tailscale.com/util/deephash"

	"github.com/katalvlaran/gridwalk/grid"
)

// Tile is the content of one platform cell.
type Tile rune

const (
	// Round rocks roll when the platform tilts.
	Round Tile = 'O'
	// Cube rocks stay put and stop rolling rocks.
	Cube Tile = '#'
	// Empty is free space.
	Empty Tile = '.'
)

func decode(r rune) (Tile, bool) {
	switch t := Tile(r); t {
	case Round, Cube, Empty:
		return t, true
	}
	return 0, false
}

// Parse builds an immutable platform grid.
func Parse(lines []string) (*grid.Grid[Tile], error) {
	return grid.Build(lines, decode)
}

// Platform is a mutable copy of a platform grid.
type Platform struct {
	Height, Width int
	cells         []Tile
}

// NewPlatform copies g so it can be tilted.
func NewPlatform(g *grid.Grid[Tile]) *Platform {
	return &Platform{Height: g.Height, Width: g.Width, cells: g.Cells()}
}

// lane returns the cell indices of one row or column ordered from the
// edge the rocks roll towards.
func (p *Platform) lane(d grid.Direction, k int) []int {
	var idx []int
	switch d {
	case grid.North:
		for r := 0; r < p.Height; r++ {
			idx = append(idx, r*p.Width+k)
		}
	case grid.South:
		for r := p.Height - 1; r >= 0; r-- {
			idx = append(idx, r*p.Width+k)
		}
	case grid.West:
		for c := 0; c < p.Width; c++ {
			idx = append(idx, k*p.Width+c)
		}
	case grid.East:
		for c := p.Width - 1; c >= 0; c-- {
			idx = append(idx, k*p.Width+c)
		}
	}
	return idx
}

// Tilt rolls every round rock as far as it goes towards d. Cube rocks and
// the platform edge stop them.
func (p *Platform) Tilt(d grid.Direction) {
	lanes := p.Width
	if !d.Vertical() {
		lanes = p.Height
	}
	for k := 0; k < lanes; k++ {
		idx := p.lane(d, k)
		free := 0
		for i, at := range idx {
			switch p.cells[at] {
			case Cube:
				free = i + 1
			case Round:
				p.cells[at] = Empty
				p.cells[idx[free]] = Round
				free++
			}
		}
	}
}

// SpinCycle tilts north, west, south and east in turn.
func (p *Platform) SpinCycle() {
	for _, d := range [...]grid.Direction{grid.North, grid.West, grid.South, grid.East} {
		p.Tilt(d)
	}
}

// Load sums, over all round rocks, their distance from the south edge
// counted so the bottom row weighs 1.
func (p *Platform) Load() int {
	total := 0
	for i, t := range p.cells {
		if t == Round {
			total += p.Height - i/p.Width
		}
	}
	return total
}

// String renders the platform one row per line.
func (p *Platform) String() string {
	buf := make([]rune, 0, p.Height*(p.Width+1))
	for i, t := range p.cells {
		buf = append(buf, rune(t))
		if (i+1)%p.Width == 0 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}

// NorthLoad tilts a copy of g north once and returns its load.
func NorthLoad(g *grid.Grid[Tile]) int {
	p := NewPlatform(g)
	p.Tilt(grid.North)
	return p.Load()
}

// LoadAfter returns the north load after the given number of spin cycles.
func LoadAfter(g *grid.Grid[Tile], cycles int) (int, error) {
	if cycles < 0 {
		return 0, fmt.Errorf("tilt: negative cycle count %d", cycles)
	}
	p := NewPlatform(g)
	hash := deephash.HasherForType[[]Tile]()
	seen := make(map[deephash.Sum]int)

	for i := 0; i < cycles; i++ {
		key := hash(&p.cells)
		if first, ok := seen[key]; ok {
			remaining := (cycles - i) % (i - first)
			for ; remaining > 0; remaining-- {
				p.SpinCycle()
			}
			return p.Load(), nil
		}
		seen[key] = i
		p.SpinCycle()
	}
	return p.Load(), nil
}
