package hike_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/hike"
)

var sample = []string{
	"#.#####################",
	"#.......#########...###",
	"#######.#########.#.###",
	"###.....#.>.>.###.#.###",
	"###v#####.#v#.###.#.###",
	"###.>...#.#.#.....#...#",
	"###v###.#.#.#########.#",
	"###...#.#.#.......#...#",
	"#####.#.#.#######.#.###",
	"#.....#.#.#.......#...#",
	"#.#####.#.#.#########v#",
	"#.#...#...#...###...>.#",
	"#.#.#v#######v###.###v#",
	"#...#.>.#...>.>.#.###.#",
	"#####v#.#.###v#.#.###.#",
	"#.....#...#...#.#.#...#",
	"#.#########.###.#.#.###",
	"#...###...#...#...#.###",
	"###.###.#.###v#####v###",
	"#...#...#.#.>.>.#.>.###",
	"#.###.###.#.###.#.#v###",
	"#.....###...###...#...#",
	"#####################.#",
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse(t *testing.T) {
	m, err := hike.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{Row: 0, Col: 1}, m.Start)
	assert.Equal(t, grid.Point{Row: 22, Col: 21}, m.Goal)
}

func TestParse_Errors(t *testing.T) {
	_, err := hike.Parse([]string{"#.#", "#x#"})
	require.ErrorIs(t, err, grid.ErrParse)

	_, err = hike.Parse([]string{"###", "#.#", "#.#"})
	require.ErrorIs(t, err, hike.ErrNoTrailhead)

	_, err = hike.Parse([]string{"#.#", "#.#", "###"})
	require.ErrorIs(t, err, hike.ErrNoTrailhead)
}

//----------------------------------------------------------------------------//
// Longest
//----------------------------------------------------------------------------//

func TestLongest_Sample(t *testing.T) {
	m, err := hike.Parse(sample)
	require.NoError(t, err)

	n, err := m.Longest()
	require.NoError(t, err)
	assert.Equal(t, 94, n)

	n, err = m.Longest(hike.WithDrySlopes())
	require.NoError(t, err)
	assert.Equal(t, 154, n)
}

// TestLongest_Corridor has no junctions at all.
func TestLongest_Corridor(t *testing.T) {
	m, err := hike.Parse([]string{
		"#.###",
		"#...#",
		"###.#",
	})
	require.NoError(t, err)
	n, err := m.Longest()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

// TestLongest_PrefersDetour takes the long branch of a fork.
func TestLongest_PrefersDetour(t *testing.T) {
	m, err := hike.Parse([]string{
		"#.#####",
		"#.....#",
		"#.###.#",
		"#.#...#",
		"#.#.###",
		"#...#.#",
		"###.#.#",
		"###...#",
		"#####.#",
	})
	require.NoError(t, err)
	n, err := m.Longest()
	require.NoError(t, err)
	// down the left side is 12 steps, the right detour 16
	assert.Equal(t, 16, n)
}

// TestLongest_UphillBlocked cannot climb a slope that points back.
func TestLongest_UphillBlocked(t *testing.T) {
	m, err := hike.Parse([]string{
		"#.#",
		"#^#",
		"#.#",
	})
	require.NoError(t, err)

	_, err = m.Longest()
	require.ErrorIs(t, err, hike.ErrNoRoute)

	n, err := m.Longest(hike.WithDrySlopes())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLongest_Cancelled(t *testing.T) {
	m, err := hike.Parse(sample)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Longest(hike.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
