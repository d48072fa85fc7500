// Package bfs provides breadth-first search over the cells of a grid,
// returning unweighted step distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (cardinal steps) from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (steps) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Transition rules are supplied by WithFilterNeighbor, which sees the
//     source cell, the candidate cell, and the heading between them.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Flood reachability: pipes connect only when both ends agree, which is
//     a pure neighbour filter.
//   - Step counting: garden plots reachable in exactly N steps are a depth
//     and parity query over one BFS layer structure.
//
// Determinism
//
//	Neighbours are expanded in grid.Directions order (N, E, S, W), so the
//	visit sequence is fully reproducible.
//
// Complexity (C = cells in the space)
//
//   - Time:   O(C)   (each cell seen at most once, four probes per cell)
//   - Memory: O(C)   (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.Walk(g, start,
//	    bfs.WithFilterNeighbor(func(from, to grid.Point, d grid.Direction) bool {
//	        return open(to)
//	    }),
//	    bfs.WithMaxDepth(64),
//	)
//	if err != nil {
//	    // ErrNilSpace, ErrStartOutOfBounds, ErrOptionViolation,
//	    // context errors, or hook errors
//	}
package bfs
