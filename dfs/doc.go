// Package dfs implements depth-first exploration of an implicit state
// space: states are produced on demand by an expand function and every
// distinct state is processed exactly once.
//
// What:
//
//   - Explore: pops states from an explicit LIFO stack, records each
//     unseen one, and pushes its successors. Supports:
//   - Multiple seeds (all pushed before the first pop)
//   - Visit hooks that may abort the walk
//   - Cancellation via context.Context
//   - A ceiling on the number of distinct states
//
// Why:
//   - Beams split and loop back on themselves; the set of (position,
//     heading) states is finite, so recording each one guarantees
//     termination even on cyclic boards.
//   - An explicit stack keeps deep traversals off the goroutine stack.
//
// Key Types:
//
//   - Option[S]: functional options for Explore
//   - Options[S]: holds Context, OnVisit, MaxStates
//   - Result[S]: Visited set (mapset.Set[S]) and Order slice
//
// Complexity:
//
//   - Explore: Time O(N·k), Memory O(N) for N distinct states with at
//     most k successors each.
//
// Errors:
//
//   - ErrNoSeeds        no starting state was supplied
//   - ErrStateLimit     more than MaxStates distinct states were seen
//   - context.Canceled  Explore canceled via context
//   - hook errors       propagated from OnVisit
//
// Functions:
//
//   - Explore[S comparable](seeds []S, expand func(S) []S, opts ...Option[S]) (*Result[S], error)
package dfs
