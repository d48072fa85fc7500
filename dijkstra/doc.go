// Package dijkstra provides Dijkstra's shortest-path algorithm on a grid of
// non-negative cell costs with movement constraints.
//
// Overview:
//
//   - ShortestPath computes the minimum total cost of a walk from Start to
//     Goal, where entering a cell costs that cell's value.
//   - The walker may never reverse in place.
//   - Straight runs are bounded by MaxRun, and turning (or finishing) is only
//     allowed after MinRun cells in the current heading.
//   - An optional exclusion predicate blocks cells outright; GoalCorner
//     builds the one used by the crucible puzzle.
//
// When to use:
//
//   - Crucible-style routing where vehicles cannot turn freely.
//   - Plain grid shortest paths (leave MinRun and MaxRun at 0).
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, Result.Path lists the winning cells.
//   - Result.Expanded reports how many states were settled, handy for tuning.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = H×W×4×R states.
//   - Space: O(S).
//
// Errors:
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds
//   - ErrNegativeCost, ErrBadRun
//   - ErrNoPath
//
// Example:
//
//	g, _ := dijkstra.ParseCosts(lines)
//	res, err := dijkstra.ShortestPath(g,
//	    dijkstra.WithMinRun(4),
//	    dijkstra.WithMaxRun(10),
//	)
package dijkstra
