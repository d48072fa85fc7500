package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridwalk/almanac"
	"github.com/katalvlaran/gridwalk/beam"
	"github.com/katalvlaran/gridwalk/dig"
	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/garden"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/hike"
	"github.com/katalvlaran/gridwalk/pipes"
	"github.com/katalvlaran/gridwalk/tilt"
)

// Answer is one labelled puzzle result.
type Answer struct {
	Label string
	Value int64
}

// solver turns the lines of one input file into answers.
type solver func(ctx context.Context, lines []string) ([]Answer, error)

// puzzle is a registry entry.
type puzzle struct {
	title string
	solve solver
}

// spinCycles is how many spin cycles the tilting platform runs.
const spinCycles = 1_000_000_000

// gardenSteps is the elf's step budget on the walled garden, and
// gardenInfiniteSteps the budget on the endlessly repeating one.
const (
	gardenSteps         = 64
	gardenInfiniteSteps = 26_501_365
)

var puzzles = map[int]puzzle{
	5:  {"seed almanac", solveAlmanac},
	10: {"pipe maze", solvePipes},
	14: {"parabolic reflector dish", solveTilt},
	16: {"floor will be lava", solveBeam},
	17: {"clumsy crucible", solveCrucible},
	18: {"lavaduct lagoon", solveLagoon},
	21: {"step counter", solveGarden},
	23: {"a long walk", solveHike},
}

func solveAlmanac(_ context.Context, lines []string) ([]Answer, error) {
	a, err := almanac.Parse(lines)
	if err != nil {
		return nil, err
	}
	lowest, err := a.Lowest(a.Seeds)
	if err != nil {
		return nil, err
	}
	ranges, err := a.SeedRanges()
	if err != nil {
		return nil, err
	}
	lowestRange, err := a.LowestRange(ranges)
	if err != nil {
		return nil, err
	}
	return []Answer{
		{"lowest location", lowest},
		{"lowest location over seed ranges", lowestRange},
	}, nil
}

func solvePipes(_ context.Context, lines []string) ([]Answer, error) {
	m, err := pipes.Parse(lines)
	if err != nil {
		return nil, err
	}
	loop, err := m.TraceLoop()
	if err != nil {
		return nil, err
	}
	return []Answer{
		{"farthest loop step", int64(loop.Farthest())},
		{"enclosed tiles", int64(loop.Enclosed())},
	}, nil
}

func solveTilt(_ context.Context, lines []string) ([]Answer, error) {
	g, err := tilt.Parse(lines)
	if err != nil {
		return nil, err
	}
	spun, err := tilt.LoadAfter(g, spinCycles)
	if err != nil {
		return nil, err
	}
	return []Answer{
		{"north load", int64(tilt.NorthLoad(g))},
		{"load after spin cycles", int64(spun)},
	}, nil
}

func solveBeam(ctx context.Context, lines []string) ([]Answer, error) {
	g, err := beam.Parse(lines)
	if err != nil {
		return nil, err
	}
	n, err := beam.Energize(g, grid.Ray{Dir: grid.East}, beam.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	best, seed, err := beam.MaxEnergized(ctx, g)
	if err != nil {
		return nil, err
	}
	log.WithField("seed", seed.String()).Debug("best beam seed")
	return []Answer{
		{"energized tiles", int64(n)},
		{"most energized tiles", int64(best)},
	}, nil
}

func solveCrucible(_ context.Context, lines []string) ([]Answer, error) {
	g, err := dijkstra.ParseCosts(lines)
	if err != nil {
		return nil, err
	}
	normal, err := dijkstra.ShortestPath(g, dijkstra.WithMaxRun(3))
	if err != nil {
		return nil, fmt.Errorf("crucible: %w", err)
	}
	ultra, err := dijkstra.ShortestPath(g, dijkstra.WithMinRun(4), dijkstra.WithMaxRun(10))
	if err != nil {
		return nil, fmt.Errorf("ultra crucible: %w", err)
	}
	log.WithField("expanded", normal.Expanded+ultra.Expanded).Debug("crucible search done")
	return []Answer{
		{"least heat loss", normal.Cost},
		{"least heat loss (ultra)", ultra.Cost},
	}, nil
}

func solveLagoon(_ context.Context, lines []string) ([]Answer, error) {
	plan, err := dig.ParsePlan(lines)
	if err != nil {
		return nil, err
	}
	decoded, err := dig.DecodeAll(plan)
	if err != nil {
		return nil, err
	}
	volume, err := dig.Lagoon(plan)
	if err != nil {
		return nil, err
	}
	decodedVolume, err := dig.Lagoon(decoded)
	if err != nil {
		return nil, fmt.Errorf("decoded plan: %w", err)
	}
	return []Answer{
		{"lagoon volume", volume},
		{"lagoon volume from colours", decodedVolume},
	}, nil
}

func solveGarden(ctx context.Context, lines []string) ([]Answer, error) {
	m, err := garden.Parse(lines)
	if err != nil {
		return nil, err
	}
	n, err := m.Reachable(gardenSteps)
	if err != nil {
		return nil, err
	}
	endless, err := m.InfiniteReachable(ctx, gardenInfiniteSteps)
	if err != nil {
		return nil, err
	}
	return []Answer{
		{fmt.Sprintf("plots after %d steps", gardenSteps), int64(n)},
		{fmt.Sprintf("plots after %d steps on the endless garden", gardenInfiniteSteps), endless},
	}, nil
}

func solveHike(ctx context.Context, lines []string) ([]Answer, error) {
	m, err := hike.Parse(lines)
	if err != nil {
		return nil, err
	}
	icy, err := m.Longest(hike.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	dry, err := m.Longest(hike.WithContext(ctx), hike.WithDrySlopes())
	if err != nil {
		return nil, fmt.Errorf("dry slopes: %w", err)
	}
	log.WithField("icy", icy).Debug("hike search done")
	return []Answer{
		{"longest hike", int64(icy)},
		{"longest hike on dry slopes", int64(dry)},
	}, nil
}
