package dfs

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// explorer holds internal state for a single Explore run.
type explorer[S comparable] struct {
	expand func(S) []S
	opts   Options[S]
	ctx    context.Context
	stack  []S
	res    *Result[S]
}

// Explore runs a depth-first walk from seeds, calling expand on each newly
// seen state to obtain its successors. A state is visited at most once, so
// the walk terminates whenever the reachable state space is finite.
//
// Seeds are pushed in reverse so that seeds[0] is processed first; likewise
// successors are pushed in reverse so the first one returned by expand is
// explored first.
func Explore[S comparable](seeds []S, expand func(S) []S, opts ...Option[S]) (*Result[S], error) {
	// 1. Validate input
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	// 2. Resolve options
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// 3. Prepare explorer
	e := &explorer[S]{
		expand: expand,
		opts:   o,
		ctx:    o.Ctx,
		stack:  make([]S, 0, len(seeds)),
		res:    &Result[S]{Visited: mapset.New[S]()},
	}
	e.push(seeds)

	// 4. Drain the stack
	return e.res, e.run()
}

// push appends states in reverse so the first element ends up on top.
func (e *explorer[S]) push(states []S) {
	for i := len(states) - 1; i >= 0; i-- {
		e.stack = append(e.stack, states[i])
	}
}

// run pops states until the stack is empty, an error occurs, or the
// context is canceled.
func (e *explorer[S]) run() error {
	for len(e.stack) > 0 {
		select {
		case <-e.ctx.Done():
			return e.ctx.Err()
		default:
		}

		top := len(e.stack) - 1
		s := e.stack[top]
		e.stack = e.stack[:top]
		if e.res.Visited.Has(s) {
			continue
		}
		if err := e.visit(s); err != nil {
			return err
		}
		e.push(e.expand(s))
	}
	return nil
}

// visit records s, enforces MaxStates, and invokes OnVisit.
func (e *explorer[S]) visit(s S) error {
	if e.opts.MaxStates > 0 && e.res.Visited.Size() >= e.opts.MaxStates {
		return fmt.Errorf("%w: %d", ErrStateLimit, e.opts.MaxStates)
	}
	e.res.Visited.Put(s)
	e.res.Order = append(e.res.Order, s)
	if err := e.opts.OnVisit(s); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %v: %w", s, err)
	}
	return nil
}
