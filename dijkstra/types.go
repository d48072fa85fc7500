// Package dijkstra defines core types and configuration options
// for the run-constrained shortest-path search over a cost grid.
//
// Entering a cell adds that cell's cost. A walker may not reverse, may not
// continue straight for more than MaxRun cells, and may only turn (or stop
// at the goal) after at least MinRun cells in its current heading.
//
// Options:
//
//	– Start:      cell the walk begins on (cost not charged). Default top-left.
//	– Goal:       cell to reach. Default bottom-right.
//	– MinRun:     cells required in a heading before turning or finishing.
//	– MaxRun:     longest straight run; 0 means unbounded.
//	– Exclusion:  predicate marking cells that may never be entered.
//	– ReturnPath: if true, Result.Path lists the cells from Start to Goal.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrStartOutOfBounds if Start lies outside the grid.
//	– ErrGoalOutOfBounds  if Goal lies outside the grid.
//	– ErrNegativeCost     if any cell cost is negative.
//	– ErrBadRun           if MinRun/MaxRun are negative or MinRun > MaxRun.
//	– ErrNoPath           if no valid walk reaches Goal.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGrid indicates that a nil grid was passed to ShortestPath.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates that the start cell is not on the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start out of bounds")

	// ErrGoalOutOfBounds indicates that the goal cell is not on the grid.
	ErrGoalOutOfBounds = errors.New("dijkstra: goal out of bounds")

	// ErrNegativeCost indicates that a cell carries a negative cost.
	ErrNegativeCost = errors.New("dijkstra: negative cell cost encountered")

	// ErrBadRun indicates an invalid MinRun/MaxRun combination.
	ErrBadRun = errors.New("dijkstra: invalid run constraints")

	// ErrNoPath indicates that the goal cannot be reached under the constraints.
	ErrNoPath = errors.New("dijkstra: no path to goal")
)

// Options configures the behavior of ShortestPath.
type Options struct {
	Start      grid.Point
	Goal       grid.Point
	MinRun     int
	MaxRun     int
	Exclusion  func(p grid.Point) bool
	ReturnPath bool

	goalSet bool
	err     error
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithStart sets the starting cell.
func WithStart(p grid.Point) Option {
	return func(o *Options) {
		o.Start = p
	}
}

// WithGoal sets the target cell.
func WithGoal(p grid.Point) Option {
	return func(o *Options) {
		o.Goal = p
		o.goalSet = true
	}
}

// WithMinRun requires n cells in a heading before the walker may turn or
// stop. Negative values cause ErrBadRun.
func WithMinRun(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MinRun %d", ErrBadRun, n)
			return
		}
		o.MinRun = n
	}
}

// WithMaxRun caps straight runs at n cells; 0 disables the cap.
// Negative values cause ErrBadRun.
func WithMaxRun(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRun %d", ErrBadRun, n)
			return
		}
		o.MaxRun = n
	}
}

// WithExclusion marks cells that may never be entered.
func WithExclusion(excluded func(p grid.Point) bool) Option {
	return func(o *Options) {
		if excluded != nil {
			o.Exclusion = excluded
		}
	}
}

// WithReturnPath enables reconstruction of the winning path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Start:      0,0
//   - Goal:       bottom-right (resolved against the grid)
//   - MinRun:     0 (turn at will)
//   - MaxRun:     0 (no cap)
//   - Exclusion:  nothing excluded
//   - ReturnPath: false
func DefaultOptions() Options {
	return Options{
		Exclusion: func(grid.Point) bool { return false },
	}
}

// GoalCorner returns an exclusion predicate blocking rows [h-margin, h-1)
// and columns [w-margin, w-1) of an h×w grid: the block of cells sitting
// diagonally inside the bottom-right corner, leaving the last row and
// column open.
func GoalCorner(h, w, margin int) func(p grid.Point) bool {
	return func(p grid.Point) bool {
		return p.Row >= h-margin && p.Row < h-1 && p.Col >= w-margin && p.Col < w-1
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Cost is the sum of the costs of every cell entered.
	Cost int64

	// Path lists cells from Start to Goal inclusive; nil unless ReturnPath.
	Path []grid.Point

	// Expanded counts the search states settled before reaching Goal.
	Expanded int
}
