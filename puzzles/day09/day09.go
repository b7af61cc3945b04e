// Package day09 extrapolates OASIS sensor histories.
package day09

import (
	"context"

	"github.com/katalvlaran/advent2023/puzzle"
)

// Solver implements puzzle.Solver for day 9.
type Solver struct{}

// New returns the day 9 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 9 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	next, prev := 0, 0
	for i, l := range in.Lines() {
		seq, err := puzzle.Fields(i+1, l)
		if err != nil {
			return nil, err
		}
		if len(seq) == 0 {
			return nil, puzzle.Malformed(i+1, l, "empty history")
		}
		p, n := Extrapolate(seq)
		next += n
		prev += p
	}
	const template = "sum of extrapolated values: {}"

	return []puzzle.Answer{
		{Part: 1, Template: template, Value: next},
		{Part: 2, Template: template, Value: prev},
	}, nil
}

// Extrapolate returns the values one step before and after seq, found by
// repeated differencing until a row is all zero.
func Extrapolate(seq []int) (before, after int) {
	row := append([]int(nil), seq...)
	sign := 1
	for len(row) > 0 {
		after += row[len(row)-1]
		before += sign * row[0]
		sign = -sign
		zero := true
		for i := 0; i+1 < len(row); i++ {
			row[i] = row[i+1] - row[i]
			if row[i] != 0 {
				zero = false
			}
		}
		row = row[:len(row)-1]
		if zero {
			break
		}
	}

	return before, after
}
