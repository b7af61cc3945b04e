// Package day11 sums galaxy distances in an expanding universe.
package day11

import (
	"context"

	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Option configures the Solver.
type Option func(*Solver)

// WithFactors sets how many rows or columns each empty one becomes, per part.
func WithFactors(part1, part2 int) Option {
	return func(s *Solver) { s.factors = [2]int{part1, part2} }
}

// Solver implements puzzle.Solver for day 11.
type Solver struct{ factors [2]int }

// New returns the day 11 solver with factors 2 and 1,000,000.
func New(opts ...Option) *Solver {
	s := &Solver{factors: [2]int{2, 1_000_000}}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (*Solver) Day() int { return 11 }

func (s *Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	g, err := in.Grid()
	if err != nil {
		return nil, err
	}
	const template = "sum of distances: {}"
	answers := make([]puzzle.Answer, 0, 2)
	for i, f := range s.factors {
		answers = append(answers, puzzle.Answer{Part: i + 1, Template: template, Value: Distances(g, f)})
	}

	return answers, nil
}

// Distances returns the summed Manhattan distance over every galaxy pair
// after each empty row and column is replaced by factor copies.
func Distances(g *gridgraph.Grid, factor int) int {
	galaxies := g.FindAll('#')
	rowUsed := make([]bool, g.Rows)
	colUsed := make([]bool, g.Cols)
	for _, p := range galaxies {
		rowUsed[p.Row] = true
		colUsed[p.Col] = true
	}
	rowAt := stretch(rowUsed, factor)
	colAt := stretch(colUsed, factor)

	moved := make([]gridgraph.Point, len(galaxies))
	for i, p := range galaxies {
		moved[i] = gridgraph.Point{Row: rowAt[p.Row], Col: colAt[p.Col]}
	}
	total := 0
	for i := range moved {
		for j := i + 1; j < len(moved); j++ {
			total += moved[i].Manhattan(moved[j])
		}
	}

	return total
}

// stretch maps each index to its position once unused indices widen.
func stretch(used []bool, factor int) []int {
	out := make([]int, len(used))
	pos := 0
	for i, u := range used {
		out[i] = pos
		if u {
			pos++
		} else {
			pos += factor
		}
	}

	return out
}
