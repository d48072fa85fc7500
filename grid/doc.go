// Package grid models a rectangular, immutable 2D board of terrain tags and
// the four-way movement rules every traversal in this module is built on.
//
// What:
//
//   - Grid[T] wraps a dense row-major store of tags of any type T.
//   - Build parses text lines through a per-puzzle character table (Decoder).
//   - Neighbor performs a single cardinal step and never wraps around.
//   - Ray pairs a position with a heading, the unit of directional search.
//
// Why:
//
//   - Every puzzle board (pipes, mirrors, heat costs, rocks, gardens) shares
//     the same shape rules; only the tag table differs.
//   - Keeping the board read-only lets searches attach their own state
//     (visited sets, run-lengths, costs) without touching terrain.
//
// Complexity:
//
//   - Build:      O(H×W) time and memory.
//   - At/Get:     O(1).
//   - Neighbor:   O(1).
//
// Errors:
//
//   - ErrParse:       a character has no entry in the decoder table.
//   - ErrShape:       input is empty or rows have differing lengths.
//   - ErrOutOfBounds: a checked lookup fell outside [0,Height)×[0,Width).
package grid
