package beam

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridwalk/grid"
)

var (
	// ErrNilGrid is returned when no grid is supplied.
	ErrNilGrid = errors.New("beam: grid is nil")

	// ErrSeedOutOfBounds is returned when the seed ray starts off the grid.
	ErrSeedOutOfBounds = errors.New("beam: seed out of bounds")
)

// Tile is the content of one cell.
type Tile rune

const (
	// Empty lets a beam pass straight through.
	Empty Tile = '.'
	// Slash is a mirror turning east into north and north into east.
	Slash Tile = '/'
	// Backslash is a mirror turning east into south and south into east.
	Backslash Tile = '\\'
	// SplitVertical passes vertical beams and splits horizontal ones
	// north and south.
	SplitVertical Tile = '|'
	// SplitHorizontal passes horizontal beams and splits vertical ones
	// east and west.
	SplitHorizontal Tile = '-'
)

func decode(r rune) (Tile, bool) {
	switch t := Tile(r); t {
	case Empty, Slash, Backslash, SplitVertical, SplitHorizontal:
		return t, true
	}
	return 0, false
}

// Option configures Energize.
type Option func(*Options)

// Options holds Energize settings.
type Options struct {
	// OnEnergize is called each time a new cell lights up, with the
	// running count of energized cells.
	OnEnergize func(count int)

	// Ctx is checked by the underlying exploration.
	Ctx context.Context
}

// WithOnEnergize registers a growth observer.
func WithOnEnergize(fn func(count int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnergize = fn
		}
	}
}

// WithContext bounds Energize by ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns a background context and a no-op observer.
func DefaultOptions() Options {
	return Options{
		OnEnergize: func(int) {},
		Ctx:        context.Background(),
	}
}

// deflections maps a tile and an incoming heading (indexed by
// grid.Direction) to the outgoing headings.
var deflections = map[Tile][4][]grid.Direction{
	Empty: {
		grid.North: {grid.North},
		grid.East:  {grid.East},
		grid.South: {grid.South},
		grid.West:  {grid.West},
	},
	Slash: {
		grid.North: {grid.East},
		grid.East:  {grid.North},
		grid.South: {grid.West},
		grid.West:  {grid.South},
	},
	Backslash: {
		grid.North: {grid.West},
		grid.East:  {grid.South},
		grid.South: {grid.East},
		grid.West:  {grid.North},
	},
	SplitVertical: {
		grid.North: {grid.North},
		grid.East:  {grid.North, grid.South},
		grid.South: {grid.South},
		grid.West:  {grid.North, grid.South},
	},
	SplitHorizontal: {
		grid.North: {grid.East, grid.West},
		grid.East:  {grid.East},
		grid.South: {grid.East, grid.West},
		grid.West:  {grid.West},
	},
}
