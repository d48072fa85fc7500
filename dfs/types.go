package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Sentinel errors for Explore.
var (
	// ErrNoSeeds indicates Explore was called without any starting state.
	ErrNoSeeds = errors.New("dfs: no seed states")

	// ErrStateLimit indicates the walk saw more distinct states than allowed.
	ErrStateLimit = errors.New("dfs: state limit exceeded")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures Explore behavior.
type Option[S comparable] func(*Options[S])

// Options holds parameters for Explore.
type Options[S comparable] struct {
	// Ctx allows cancellation; checked once per popped state.
	Ctx context.Context

	// OnVisit is invoked the first time a state is seen.
	// Returning an error aborts the walk.
	OnVisit func(s S) error

	// MaxStates, if > 0, caps the number of distinct states.
	MaxStates int

	err error
}

// DefaultOptions returns Options with:
//   - Ctx = context.Background()
//   - no-op OnVisit
//   - MaxStates = 0 (unbounded)
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:     context.Background(),
		OnVisit: func(S) error { return nil },
	}
}

// WithContext sets a cancellation context.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook called once per distinct state.
func WithOnVisit[S comparable](fn func(s S) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxStates limits the walk to n distinct states.
// n == 0 means unbounded; n < 0 is rejected with ErrOptionViolation.
func WithMaxStates[S comparable](n int) Option[S] {
	return func(o *Options[S]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Result holds the outcome of Explore.
type Result[S comparable] struct {
	// Visited contains every distinct state processed.
	Visited mapset.Set[S]

	// Order lists states in the order they were first visited.
	Order []S
}
