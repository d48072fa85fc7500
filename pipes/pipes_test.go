package pipes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/pipes"
)

var square = []string{
	"S-7.",
	"|.|.",
	"L-J.",
	"....",
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse_Errors(t *testing.T) {
	_, err := pipes.Parse([]string{"|-", "L?"})
	require.ErrorIs(t, err, grid.ErrParse)

	_, err = pipes.Parse([]string{"|-", "LJ"})
	require.ErrorIs(t, err, pipes.ErrNoStart)
}

func TestParse_Start(t *testing.T) {
	m, err := pipes.Parse(square)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{Row: 0, Col: 0}, m.Start)
	assert.True(t, m.Grid.Get(m.Start).IsStart())
}

//----------------------------------------------------------------------------//
// Connectivity
//----------------------------------------------------------------------------//

// TestConnected requires both ends to agree.
func TestConnected(t *testing.T) {
	m, err := pipes.Parse([]string{
		"S-7",
		"|||",
		"LJ.",
	})
	require.NoError(t, err)
	assert.True(t, m.Connected(grid.Point{Row: 0, Col: 0}, grid.East))
	assert.True(t, m.Connected(grid.Point{Row: 0, Col: 1}, grid.West))
	// '|' at 1,1 does not open towards '-' at 0,1
	assert.False(t, m.Connected(grid.Point{Row: 1, Col: 1}, grid.North))
	// J opens west onto L, which opens east
	assert.True(t, m.Connected(grid.Point{Row: 2, Col: 1}, grid.West))
	// never off the grid
	assert.False(t, m.Connected(grid.Point{Row: 0, Col: 0}, grid.North))
}

// TestReachable_Symmetric checks q ∈ flood(p) ⇔ p ∈ flood(q) on every pair.
func TestReachable_Symmetric(t *testing.T) {
	m, err := pipes.Parse([]string{
		"-L|F7",
		"7S-7|",
		"L|7||",
		"-L-J|",
		"L|-JF",
	})
	require.NoError(t, err)

	floods := make(map[grid.Point]map[grid.Point]bool)
	for _, p := range m.Grid.Points() {
		set, err := m.Reachable(p)
		require.NoError(t, err)
		floods[p] = map[grid.Point]bool{}
		set.Each(func(q grid.Point) { floods[p][q] = true })
		assert.True(t, floods[p][p], "flood of %v must contain itself", p)
	}
	for p, reach := range floods {
		for q := range reach {
			assert.True(t, floods[q][p], "%v reaches %v but not back", p, q)
		}
	}
}

func TestReachable_Loop(t *testing.T) {
	m, err := pipes.Parse(square)
	require.NoError(t, err)
	set, err := m.Reachable(m.Start)
	require.NoError(t, err)
	assert.Equal(t, 8, set.Size())
	assert.False(t, set.Has(grid.Point{Row: 1, Col: 1}))
}

//----------------------------------------------------------------------------//
// Loop
//----------------------------------------------------------------------------//

func TestTraceLoop_Square(t *testing.T) {
	m, err := pipes.Parse(square)
	require.NoError(t, err)
	loop, err := m.TraceLoop()
	require.NoError(t, err)
	assert.Len(t, loop.Path, 8)
	assert.Equal(t, 4, loop.Farthest())
	assert.Equal(t, 1, loop.Enclosed())
}

func TestTraceLoop_Winding(t *testing.T) {
	m, err := pipes.Parse([]string{
		"..F7.",
		".FJ|.",
		"SJ.L7",
		"|F--J",
		"LJ...",
	})
	require.NoError(t, err)
	loop, err := m.TraceLoop()
	require.NoError(t, err)
	assert.Equal(t, 8, loop.Farthest())
	assert.Equal(t, 1, loop.Enclosed())
}

func TestTraceLoop_Enclosed(t *testing.T) {
	m, err := pipes.Parse([]string{
		"...........",
		".S-------7.",
		".|F-----7|.",
		".||.....||.",
		".||.....||.",
		".|L-7.F-J|.",
		".|..|.|..|.",
		".L--J.L--J.",
		"...........",
	})
	require.NoError(t, err)
	loop, err := m.TraceLoop()
	require.NoError(t, err)
	assert.Equal(t, 4, loop.Enclosed())
}

// TestTraceLoop_StubAtStart skips a dead-end pipe touching S.
func TestTraceLoop_StubAtStart(t *testing.T) {
	m, err := pipes.Parse([]string{
		".|...",
		".S-7.",
		".|.|.",
		".L-J.",
	})
	require.NoError(t, err)
	loop, err := m.TraceLoop()
	require.NoError(t, err)
	assert.Len(t, loop.Path, 8)
	assert.Equal(t, 4, loop.Farthest())
	assert.Equal(t, 1, loop.Enclosed())
	assert.NotContains(t, loop.Path, grid.Point{Row: 0, Col: 1})
}

func TestTraceLoop_Open(t *testing.T) {
	m, err := pipes.Parse([]string{
		"S--.",
		"....",
	})
	require.NoError(t, err)
	_, err = m.TraceLoop()
	require.ErrorIs(t, err, pipes.ErrNoLoop)
}
