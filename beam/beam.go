package beam

import (
	"context"
	"fmt"
	"runtime"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridwalk/dfs"
	"github.com/katalvlaran/gridwalk/grid"
)

// Parse builds a tile grid from text lines.
func Parse(lines []string) (*grid.Grid[Tile], error) {
	return grid.Build(lines, decode)
}

// Deflect returns the headings a beam leaves tile with when it arrived
// heading in. The returned slice is shared and must not be modified.
func Deflect(tile Tile, in grid.Direction) []grid.Direction {
	table, ok := deflections[tile]
	if !ok {
		return nil
	}
	return table[in]
}

// Energize fires a beam into seed.Point heading seed.Dir and returns the
// number of distinct cells it passes through. The seed cell's own tile
// deflects the beam.
func Energize(g *grid.Grid[Tile], seed grid.Ray, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if !g.InBounds(seed.Point) {
		return 0, fmt.Errorf("%w: %v", ErrSeedOutOfBounds, seed)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lit := mapset.New[grid.Point]()
	onVisit := func(r grid.Ray) error {
		if !lit.Has(r.Point) {
			lit.Put(r.Point)
			o.OnEnergize(lit.Size())
		}
		return nil
	}

	expand := func(r grid.Ray) []grid.Ray {
		outs := Deflect(g.Get(r.Point), r.Dir)
		next := make([]grid.Ray, 0, len(outs))
		for _, d := range outs {
			if n, ok := (grid.Ray{Point: r.Point, Dir: d}).Step(g); ok {
				next = append(next, n)
			}
		}
		return next
	}

	if _, err := dfs.Explore([]grid.Ray{seed}, expand,
		dfs.WithContext[grid.Ray](o.Ctx),
		dfs.WithOnVisit(onVisit),
	); err != nil {
		return 0, fmt.Errorf("beam: energize from %v: %w", seed, err)
	}
	return lit.Size(), nil
}

// MaxEnergized evaluates every edge seed (grid.EdgeRays) and returns the
// best count together with the seed that achieved it. Ties go to the
// earliest seed in EdgeRays order.
func MaxEnergized(ctx context.Context, g *grid.Grid[Tile]) (int, grid.Ray, error) {
	if g == nil {
		return 0, grid.Ray{}, ErrNilGrid
	}
	seeds := g.EdgeRays()
	counts := make([]int, len(seeds))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, seed := range seeds {
		i, seed := i, seed // per-iteration copies (go directive < 1.22)
		eg.Go(func() error {
			n, err := Energize(g, seed, WithContext(ctx))
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, grid.Ray{}, err
	}

	best := 0
	for i := range counts {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return counts[best], seeds[best], nil
}
