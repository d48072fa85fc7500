// Package pipes solves the pipe-maze puzzle: a grid of pipe segments in
// which one cell, marked S, starts a closed loop.
//
// What:
//
//   - Parse: decodes the pipe alphabet into connection bitmasks.
//   - Reachable: flood fill from any cell, moving only between cells whose
//     connections agree on both ends (bfs.Walk with a reciprocal filter).
//   - TraceLoop: follows the loop out of S and back again.
//   - Loop.Farthest: steps to the cell farthest along the loop.
//   - Loop.Enclosed: cells strictly inside the loop, by shoelace area and
//     Pick's theorem.
//
// Complexity:
//
//   - Parse, Reachable, TraceLoop: O(H×W)
//   - Enclosed: O(L) for a loop of length L
//
// Errors:
//
//   - grid.ErrParse / grid.ErrShape from Parse
//   - ErrNoStart  no S in the input
//   - ErrNoLoop   the walk out of S never returns to it
package pipes
