// Package bfs provides breadth-first search over a grid,
// returning unweighted step distances, parent links, and visit order.
//
// BFS explores cells in increasing distance from a start cell,
// with optional hooks, depth limiting, and neighbour filtering.
package bfs

import (
	"context"
	"fmt"
	"reflect"

	"github.com/katalvlaran/gridwalk/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	p     grid.Point
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	space   Space
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[grid.Point]bool
	res     *Result
}

// Walk runs breadth-first search over space starting from start,
// applying any number of functional Options.
// Returns ErrNilSpace or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func Walk(space Space, start grid.Point, opts ...Option) (*Result, error) {
	if isNil(space) {
		return nil, ErrNilSpace
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	if !space.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	// Prepare walker
	w := &walker{
		space:   space,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[grid.Point]bool),
		res: &Result{
			Depth:  make(map[grid.Point]int),
			Parent: make(map[grid.Point]grid.Point),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks p visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(p grid.Point, d int, parent *grid.Point) {
	w.visited[p] = true
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.p, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.p)
	if err := w.opts.OnVisit(item.p, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.p, err)
	}
	return nil
}

// enqueueNeighbors probes the four headings, applies filtering and MaxDepth,
// and enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, d := range grid.Directions {
		nbr, ok := w.space.Neighbor(item.p, d)
		if !ok || w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.p, nbr, d) {
			continue
		}
		from := item.p
		w.enqueue(nbr, nextDepth, &from)
	}
}

// isNil catches both a nil interface and a typed nil pointer inside it.
func isNil(s Space) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
