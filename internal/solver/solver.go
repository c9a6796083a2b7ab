// Package solver registers the daily puzzles and runs them against their inputs.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc25/cascade"
	"github.com/katalvlaran/aoc25/dial"
	"github.com/katalvlaran/aoc25/idrange"
	"github.com/katalvlaran/aoc25/interval"
	"github.com/katalvlaran/aoc25/joltage"
)

// ErrUnknownDay indicates a day with no registered puzzle.
var ErrUnknownDay = errors.New("solver: unknown day")

// Func computes one answer from raw puzzle input.
type Func func(input string) (int, error)

// Puzzle is a registered day.
type Puzzle struct {
	Day          int
	Name         string
	Part1, Part2 Func
}

// Answer is the outcome of solving one day.
type Answer struct {
	Day     int           `json:"day"`
	Name    string        `json:"name"`
	Part1   int           `json:"part1"`
	Part2   int           `json:"part2"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Loader returns the raw input of a day.
type Loader func(day int) (string, error)

// FileLoader reads dayNN.txt from dir.
func FileLoader(dir string) Loader {
	return func(day int) (string, error) {
		b, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("day%02d.txt", day)))
		if err != nil {
			return "", fmt.Errorf("load day %d input: %w", day, err)
		}
		return string(b), nil
	}
}

// Registry returns every puzzle keyed by day. opts configure the cascade
// engine behind day 4.
func Registry(opts ...cascade.Option) map[int]Puzzle {
	return map[int]Puzzle{
		1: {Day: 1, Name: "dial", Part1: dial.Part1, Part2: dial.Part2},
		2: {Day: 2, Name: "idrange", Part1: idrange.Part1, Part2: idrange.Part2},
		3: {Day: 3, Name: "joltage", Part1: joltage.Part1, Part2: joltage.Part2},
		4: {
			Day:  4,
			Name: "cascade",
			Part1: func(input string) (int, error) {
				g, err := cascade.Parse(input)
				if err != nil {
					return 0, err
				}
				return cascade.CountEligible(g, opts...), nil
			},
			Part2: func(input string) (int, error) {
				g, err := cascade.Parse(input)
				if err != nil {
					return 0, err
				}
				return cascade.RunToFixpoint(g, opts...), nil
			},
		},
		5: {Day: 5, Name: "interval", Part1: interval.Part1, Part2: interval.Part2},
	}
}

// Days returns the registered days in ascending order.
func Days(puzzles map[int]Puzzle) []int {
	days := make([]int, 0, len(puzzles))
	for d := range puzzles {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Runner solves puzzles concurrently, one goroutine per day.
type Runner struct {
	Puzzles map[int]Puzzle
	Load    Loader
	Logger  *slog.Logger
}

// Solve runs the requested days (all registered days when empty) and returns
// answers ordered by day. The first failure cancels the remaining days.
func (r *Runner) Solve(ctx context.Context, days []int) ([]Answer, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if len(days) == 0 {
		days = Days(r.Puzzles)
	}
	for _, d := range days {
		if _, ok := r.Puzzles[d]; !ok {
			return nil, fmt.Errorf("day %d: %w", d, ErrUnknownDay)
		}
	}

	answers := make([]Answer, len(days))
	eg, egctx := errgroup.WithContext(ctx)
	for i, d := range days {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			p := r.Puzzles[d]
			input, err := r.Load(d)
			if err != nil {
				return err
			}
			start := time.Now()
			a := Answer{Day: d, Name: p.Name}
			if a.Part1, err = p.Part1(input); err != nil {
				return fmt.Errorf("day %d part 1: %w", d, err)
			}
			if a.Part2, err = p.Part2(input); err != nil {
				return fmt.Errorf("day %d part 2: %w", d, err)
			}
			a.Elapsed = time.Since(start)
			logger.Debug("solved", "day", d, "name", p.Name, "elapsed", a.Elapsed)
			answers[i] = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(answers, func(a, b Answer) int { return a.Day - b.Day })
	return answers, nil
}
