package dig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/dig"
	"github.com/katalvlaran/gridwalk/grid"
)

var sample = []string{
	"R 6 (#70c710)",
	"D 5 (#0dc571)",
	"L 2 (#5713f0)",
	"D 2 (#d2c081)",
	"R 2 (#59c680)",
	"D 2 (#411b91)",
	"L 5 (#8ceee2)",
	"U 2 (#caa173)",
	"L 1 (#1b58a2)",
	"U 2 (#caa171)",
	"R 2 (#7807d2)",
	"U 3 (#a77fa3)",
	"L 2 (#015232)",
	"U 2 (#7a21e3)",
}

func TestParsePlan(t *testing.T) {
	plan, err := dig.ParsePlan(sample)
	require.NoError(t, err)
	require.Len(t, plan, 14)
	assert.Equal(t, dig.Instruction{Dir: grid.East, Meters: 6, Colour: "70c710"}, plan[0])
	assert.Equal(t, grid.North, plan[13].Dir)
}

func TestParsePlan_Errors(t *testing.T) {
	for _, lines := range [][]string{
		{"X 6 (#70c710)"},
		{"R six (#70c710)"},
		{"R 6 (#70c7)"},
		{"R 6 #70c710"},
	} {
		_, err := dig.ParsePlan(lines)
		assert.ErrorIs(t, err, dig.ErrParse, "%q", lines)
	}
}

func TestDecode(t *testing.T) {
	in := dig.Instruction{Dir: grid.East, Meters: 6, Colour: "70c710"}
	out, err := in.Decode()
	require.NoError(t, err)
	assert.Equal(t, grid.East, out.Dir)
	assert.EqualValues(t, 461937, out.Meters)

	_, err = dig.Instruction{Colour: "70c714"}.Decode()
	require.ErrorIs(t, err, dig.ErrParse)
	_, err = dig.Instruction{Colour: "70c"}.Decode()
	require.ErrorIs(t, err, dig.ErrParse)
}

func TestLagoon(t *testing.T) {
	plan, err := dig.ParsePlan(sample)
	require.NoError(t, err)
	volume, err := dig.Lagoon(plan)
	require.NoError(t, err)
	assert.EqualValues(t, 62, volume)

	decoded, err := dig.DecodeAll(plan)
	require.NoError(t, err)
	volume, err = dig.Lagoon(decoded)
	require.NoError(t, err)
	assert.EqualValues(t, 952408144115, volume)
}

// TestLagoon_Square digs a 3×3 outline: eight trench cells around one hole.
func TestLagoon_Square(t *testing.T) {
	plan := []dig.Instruction{
		{Dir: grid.East, Meters: 2},
		{Dir: grid.South, Meters: 2},
		{Dir: grid.West, Meters: 2},
		{Dir: grid.North, Meters: 2},
	}
	volume, err := dig.Lagoon(plan)
	require.NoError(t, err)
	assert.EqualValues(t, 9, volume)
}

func TestLagoon_Rejects(t *testing.T) {
	_, err := dig.Lagoon(nil)
	require.ErrorIs(t, err, dig.ErrParse)

	_, err = dig.Lagoon([]dig.Instruction{
		{Dir: grid.East, Meters: 2},
		{Dir: grid.South, Meters: 2},
		{Dir: grid.West, Meters: 2},
	})
	require.ErrorIs(t, err, dig.ErrParse)

	// only the last dig misses the origin
	plan, err := dig.ParsePlan(append(sample[:len(sample):len(sample)], "R 1 (#000000)"))
	require.NoError(t, err)
	_, err = dig.Lagoon(plan)
	require.ErrorIs(t, err, dig.ErrParse)
}
