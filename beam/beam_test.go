package beam_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/beam"
	"github.com/katalvlaran/gridwalk/grid"
)

var contraption = []string{
	`.|...\....`,
	`|.-.\.....`,
	`.....|-...`,
	`........|.`,
	`..........`,
	`.........\`,
	`..../.\\..`,
	`.-.-/..|..`,
	`.|....-|.\`,
	`..//.|....`,
}

func parse(t testing.TB, lines ...string) *grid.Grid[beam.Tile] {
	t.Helper()
	g, err := beam.Parse(lines)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Deflect
//----------------------------------------------------------------------------//

// TestDeflect_Table spot-checks every tile kind.
func TestDeflect_Table(t *testing.T) {
	cases := []struct {
		tile beam.Tile
		in   grid.Direction
		out  []grid.Direction
	}{
		{beam.Empty, grid.West, []grid.Direction{grid.West}},
		{beam.Slash, grid.East, []grid.Direction{grid.North}},
		{beam.Slash, grid.South, []grid.Direction{grid.West}},
		{beam.Backslash, grid.East, []grid.Direction{grid.South}},
		{beam.Backslash, grid.North, []grid.Direction{grid.West}},
		{beam.SplitVertical, grid.North, []grid.Direction{grid.North}},
		{beam.SplitVertical, grid.East, []grid.Direction{grid.North, grid.South}},
		{beam.SplitHorizontal, grid.West, []grid.Direction{grid.West}},
		{beam.SplitHorizontal, grid.South, []grid.Direction{grid.East, grid.West}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, beam.Deflect(tc.tile, tc.in), "%c heading %v", tc.tile, tc.in)
	}
}

// TestDeflect_MirrorsReverse checks that a mirror sends a reversed beam back
// the way it came.
func TestDeflect_MirrorsReverse(t *testing.T) {
	for _, tile := range []beam.Tile{beam.Slash, beam.Backslash} {
		for _, d := range grid.Directions {
			out := beam.Deflect(tile, d)
			require.Len(t, out, 1)
			back := beam.Deflect(tile, out[0].Opposite())
			assert.Equal(t, []grid.Direction{d.Opposite()}, back)
		}
	}
}

//----------------------------------------------------------------------------//
// Energize
//----------------------------------------------------------------------------//

func TestEnergize_Validation(t *testing.T) {
	_, err := beam.Energize(nil, grid.Ray{})
	require.ErrorIs(t, err, beam.ErrNilGrid)

	g := parse(t, "..")
	_, err = beam.Energize(g, grid.Ray{Point: grid.Point{Row: 0, Col: 2}, Dir: grid.East})
	require.ErrorIs(t, err, beam.ErrSeedOutOfBounds)

	_, err = beam.Parse([]string{".x"})
	require.ErrorIs(t, err, grid.ErrParse)
}

// TestEnergize_SingleCell covers the 1×1 grid for every tile and heading.
func TestEnergize_SingleCell(t *testing.T) {
	for _, row := range []string{".", "/", `\`, "|", "-"} {
		g := parse(t, row)
		for _, d := range grid.Directions {
			n, err := beam.Energize(g, grid.Ray{Dir: d})
			require.NoError(t, err)
			assert.Equal(t, 1, n, "tile %s heading %v", row, d)
		}
	}
}

// TestEnergize_SeedTileDeflects makes the first mirror act on the seed.
func TestEnergize_SeedTileDeflects(t *testing.T) {
	g := parse(t,
		`\..`,
		`...`,
		`...`,
	)
	n, err := beam.Energize(g, grid.Ray{Dir: grid.East})
	require.NoError(t, err)
	assert.Equal(t, 3, n) // straight down the first column
}

func TestEnergize_Contraption(t *testing.T) {
	g := parse(t, contraption...)
	seed := grid.Ray{Dir: grid.East}
	n, err := beam.Energize(g, seed)
	require.NoError(t, err)
	assert.Equal(t, 46, n)

	again, err := beam.Energize(g, seed)
	require.NoError(t, err)
	assert.Equal(t, n, again, "energize must be idempotent")
}

// TestEnergize_Loop terminates when mirrors trap the beam in a cycle.
func TestEnergize_Loop(t *testing.T) {
	g := parse(t,
		`/-\`,
		`|.|`,
		`\-/`,
	)
	n, err := beam.Energize(g, grid.Ray{Point: grid.Point{Row: 0, Col: 1}, Dir: grid.East})
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

// TestEnergize_Monotonic observes a strictly growing count ending at the total.
func TestEnergize_Monotonic(t *testing.T) {
	g := parse(t, contraption...)
	var seen []int
	n, err := beam.Energize(g, grid.Ray{Dir: grid.East}, beam.WithOnEnergize(func(c int) {
		seen = append(seen, c)
	}))
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i], seen[i-1])
	}
	assert.Equal(t, n, seen[len(seen)-1])
}

//----------------------------------------------------------------------------//
// MaxEnergized
//----------------------------------------------------------------------------//

func TestMaxEnergized_Contraption(t *testing.T) {
	g := parse(t, contraption...)
	best, seed, err := beam.MaxEnergized(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 51, best)

	n, err := beam.Energize(g, seed)
	require.NoError(t, err)
	assert.Equal(t, best, n)
}

func TestMaxEnergized_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := beam.MaxEnergized(ctx, parse(t, contraption...))
	require.ErrorIs(t, err, context.Canceled)

	_, _, err = beam.MaxEnergized(context.Background(), nil)
	require.ErrorIs(t, err, beam.ErrNilGrid)
}
