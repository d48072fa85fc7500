// Package beam simulates light travelling through a grid of mirrors and
// splitters and counts the cells it energizes.
//
// A beam state is a grid.Ray: the cell a beam occupies and the heading it
// entered with. Each tile maps an incoming heading to one or two outgoing
// headings (Deflect). Energize explores the state space with dfs.Explore,
// so loops between mirrors terminate once every (cell, heading) pair has
// been seen. At most 4×H×W states exist.
//
// MaxEnergized tries every edge seed concurrently with an errgroup bounded
// by the CPU count; seeds share only the read-only grid.
package beam
