// Command aoc runs the puzzle solvers against their input files.
//
//	aoc list              show the available days
//	aoc run <day>         solve one day (--input overrides the file)
//	aoc all               solve every day that has an input file
//
// Inputs default to <inputs>/day<N>/input.txt, where --inputs (or
// AOC_INPUT_DIR) defaults to "days". A .env file in the working directory
// is loaded first.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/gridwalk/input"
)

var log = logrus.New()

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("could not load .env")
	}
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("aoc failed")
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "aoc",
		Usage: "solve grid traversal and range puzzles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "inputs",
				Value:   "days",
				Usage:   "directory holding day<N>/input.txt",
				Sources: cli.EnvVars("AOC_INPUT_DIR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("AOC_DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetLevel(logrus.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "show the available days",
				Action: func(_ context.Context, cmd *cli.Command) error {
					w := cmd.Root().Writer
					for _, day := range days() {
						fmt.Fprintf(w, "day %2d  %s\n", day, puzzles[day].title)
					}
					return nil
				},
			},
			{
				Name:      "run",
				Usage:     "solve one day",
				ArgsUsage: "<day>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "input",
						Usage: "input file (default <inputs>/day<N>/input.txt)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					day, err := strconv.Atoi(cmd.Args().First())
					if err != nil {
						return fmt.Errorf("run: day must be a number, got %q", cmd.Args().First())
					}
					path := cmd.String("input")
					if path == "" {
						path = input.Path(cmd.String("inputs"), day)
					}
					return runDay(ctx, cmd.Root().Writer, day, path)
				},
			},
			{
				Name:  "all",
				Usage: "solve every day that has an input file",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					dir := cmd.String("inputs")
					for _, day := range days() {
						path := input.Path(dir, day)
						if _, err := os.Stat(path); err != nil {
							log.WithFields(logrus.Fields{"day": day, "input": path}).Warn("skipping, no input")
							continue
						}
						if err := runDay(ctx, cmd.Root().Writer, day, path); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}

// days returns the registered day numbers in ascending order.
func days() []int {
	ds := maps.Keys(puzzles)
	slices.Sort(ds)
	return ds
}

// runDay solves one day and prints one line per answer.
func runDay(ctx context.Context, w io.Writer, day int, path string) error {
	p, ok := puzzles[day]
	if !ok {
		return fmt.Errorf("no solver for day %d", day)
	}
	lines, err := input.Lines(path)
	if err != nil {
		return err
	}

	start := time.Now()
	answers, err := p.solve(ctx, lines)
	if err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}
	log.WithFields(logrus.Fields{
		"day":   day,
		"input": path,
		"took":  time.Since(start),
	}).Debug("solved")

	for _, a := range answers {
		fmt.Fprintf(w, "day %d: %s = %d\n", day, a.Label, a.Value)
	}
	return nil
}
