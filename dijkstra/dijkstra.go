// Package dijkstra implements Dijkstra's shortest-path algorithm on a grid
// of non-negative cell costs, where legal moves depend on the heading and
// the length of the current straight run.
//
// The search runs over states (cell, heading, run) rather than cells: the
// same cell reached with a different heading or run length offers
// different continuations, so each combination is settled independently.
//
// Complexity:
//
//   - Time:  O(S log S) with S = H×W×4×R states (R = MaxRun, or max(H,W)
//     when unbounded).
//   - Space: O(S) for distances, settled flags and the lazy heap.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all cells to detect negative costs and fail fast.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop as soon as the goal is popped with an acceptable run.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// ParseCosts reads a grid of single-digit cell costs.
func ParseCosts(lines []string) (*grid.Grid[int], error) {
	return grid.Build(lines, func(r rune) (int, bool) {
		if r < '0' || r > '9' {
			return 0, false
		}
		return int(r - '0'), true
	})
}

// ShortestPath finds the cheapest constrained walk from Start to Goal.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadRun).
//  2. g must be non-nil (ErrNilGrid).
//  3. Start and Goal must lie on the grid.
//  4. No cell may have a negative cost (ErrNegativeCost).
//
// Returns ErrNoPath when every reachable state is exhausted without
// settling the goal.
func ShortestPath(g *grid.Grid[int], opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.MaxRun > 0 && cfg.MinRun > cfg.MaxRun {
		return nil, fmt.Errorf("%w: MinRun %d > MaxRun %d", ErrBadRun, cfg.MinRun, cfg.MaxRun)
	}

	// 2) Validate grid
	if g == nil {
		return nil, ErrNilGrid
	}
	if !cfg.goalSet {
		cfg.Goal = grid.Point{Row: g.Height - 1, Col: g.Width - 1}
	}

	// 3) Validate endpoints
	if !g.InBounds(cfg.Start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, cfg.Start)
	}
	if !g.InBounds(cfg.Goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, cfg.Goal)
	}

	// 4) Pre-scan costs
	for _, p := range g.Points() {
		if c := g.Get(p); c < 0 {
			return nil, fmt.Errorf("%w: %d at %v", ErrNegativeCost, c, p)
		}
	}

	// 5) Run
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[state]int64),
		settled: make(map[state]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[state]state)
	}
	r.init()

	return r.process()
}

// state is one search node. run == 0 only for the start state, which has
// no heading yet.
type state struct {
	p   grid.Point
	dir grid.Direction
	run int
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *grid.Grid[int]
	options Options
	dist    map[state]int64
	prev    map[state]state
	settled map[state]bool
	pq      statePQ
}

// init seeds the heap with the start state at cost 0.
func (r *runner) init() {
	start := state{p: r.options.Start}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{s: start, dist: 0})
}

// process pops states in cost order until the goal is settled.
func (r *runner) process() (*Result, error) {
	expanded := 0
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest state; skip stale entries.
		item := heap.Pop(&r.pq).(*stateItem)
		if r.settled[item.s] {
			continue
		}
		r.settled[item.s] = true
		expanded++

		// 2) Goal check: must have travelled at least MinRun in the final heading.
		if item.s.p == r.options.Goal && r.canStop(item.s) {
			res := &Result{Cost: item.dist, Expanded: expanded}
			if r.prev != nil {
				res.Path = r.path(item.s)
			}
			return res, nil
		}

		// 3) Relax successors.
		r.relax(item.s, item.dist)
	}

	return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, r.options.Start, r.options.Goal)
}

// canStop reports whether the walk may end in s.
func (r *runner) canStop(s state) bool {
	return s.run == 0 || s.run >= r.options.MinRun
}

// relax pushes every legal successor of s whose cost improves.
func (r *runner) relax(s state, d int64) {
	for _, dir := range grid.Directions {
		next, ok := r.move(s, dir)
		if !ok {
			continue
		}
		nd := d + int64(r.g.Get(next.p))
		if old, seen := r.dist[next]; seen && nd >= old {
			continue
		}
		r.dist[next] = nd
		if r.prev != nil {
			r.prev[next] = s
		}
		heap.Push(&r.pq, &stateItem{s: next, dist: nd})
	}
}

// move applies the run rules to a step from s heading dir.
func (r *runner) move(s state, dir grid.Direction) (state, bool) {
	run := 1
	if s.run > 0 {
		switch {
		case dir == s.dir.Opposite():
			return state{}, false
		case dir == s.dir:
			run = s.run + 1
			if r.options.MaxRun > 0 && run > r.options.MaxRun {
				return state{}, false
			}
		case s.run < r.options.MinRun:
			return state{}, false
		}
	}
	n, ok := r.g.Neighbor(s.p, dir)
	if !ok || r.options.Exclusion(n) {
		return state{}, false
	}
	return state{p: n, dir: dir, run: run}, true
}

// path walks predecessor links back from s.
func (r *runner) path(s state) []grid.Point {
	var out []grid.Point
	for cur := s; ; {
		out = append(out, cur.p)
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// stateItem is a heap entry: a state and its tentative cost.
type stateItem struct {
	s    state
	dist int64
}

// statePQ is a min-heap of *stateItem, ordered by dist ascending.
// Outdated entries stay in the heap and are skipped when popped.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
