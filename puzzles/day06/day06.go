// Package day06 counts winning button hold times for boat races.
package day06

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2023/interval"
	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/workpool"
)

// Race is one time limit and the record distance to beat.
type Race struct{ Time, Record int }

// chunk is the number of hold times one worker checks per job.
const chunk = 1 << 20

// Solver implements puzzle.Solver for day 6.
type Solver struct{}

// New returns the day 6 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 6 }

func (*Solver) Solve(ctx context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	races, long, err := Parse(in.Lines())
	if err != nil {
		return nil, err
	}

	product := 1
	for _, r := range races {
		n, err := Ways(ctx, in.Workers, r)
		if err != nil {
			return nil, err
		}
		product *= n
	}
	answers := []puzzle.Answer{{Part: 1, Template: "product: {}", Value: product}}

	ways, err := Ways(ctx, in.Workers, long)
	if err != nil {
		return answers, err
	}

	return append(answers, puzzle.Answer{Part: 2, Template: "ways to win: {}", Value: ways}), nil
}

// Ways counts hold times h in [0, Time] with h*(Time-h) > Record. The range
// is cut into chunks counted in parallel.
func Ways(ctx context.Context, workers int, r Race) (int, error) {
	count := func(_ context.Context, c interval.Range[int]) (int, error) {
		n := 0
		for h := c.Lo; h < c.Hi; h++ {
			if h*(r.Time-h) > r.Record {
				n++
			}
		}
		return n, nil
	}

	return workpool.MapReduce(ctx, workers, workpool.Chunks(r.Time+1, chunk), count, func(a, b int) int { return a + b }, 0)
}

// Parse reads the Time and Distance rows. The second result joins each row's
// digits into a single race.
func Parse(lines []string) ([]Race, Race, error) {
	if len(lines) != 2 {
		return nil, Race{}, puzzle.Malformed(0, "", "want 2 lines, got %d", len(lines))
	}
	var rows [2][]int
	var joined [2]int
	for i, l := range lines {
		_, body, err := puzzle.Cut(i+1, l, ":")
		if err != nil {
			return nil, Race{}, err
		}
		if rows[i], err = puzzle.Fields(i+1, body); err != nil {
			return nil, Race{}, err
		}
		if joined[i], err = strconv.Atoi(strings.Join(strings.Fields(body), "")); err != nil {
			return nil, Race{}, &puzzle.InputError{Line: i + 1, Text: l, Err: err}
		}
	}
	if len(rows[0]) != len(rows[1]) {
		return nil, Race{}, puzzle.Malformed(2, lines[1], "%d times but %d distances", len(rows[0]), len(rows[1]))
	}
	races := make([]Race, len(rows[0]))
	for i := range races {
		races[i] = Race{Time: rows[0][i], Record: rows[1][i]}
	}

	return races, Race{Time: joined[0], Record: joined[1]}, nil
}
