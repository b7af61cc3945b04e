// Package day13 locates the lines of reflection in mirror valley patterns.
package day13

import (
	"context"
	"fmt"

	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Solver implements puzzle.Solver for day 13.
type Solver struct{}

// New returns the day 13 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 13 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	var grids []*gridgraph.Grid
	for _, b := range in.Blocks() {
		g, err := puzzle.ParseGrid(b)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}

	const template = "summarize grids: {}"
	var answers []puzzle.Answer
	for part, smudges := range []int{0, 1} {
		total := 0
		for i, g := range grids {
			v, err := Summarize(g, smudges)
			if err != nil {
				return answers, fmt.Errorf("pattern %d: %w", i+1, err)
			}
			total += v
		}
		answers = append(answers, puzzle.Answer{Part: part + 1, Template: template, Value: total})
	}

	return answers, nil
}

// Summarize finds the reflection line whose two sides differ in exactly
// smudges cells and scores it: columns left of a vertical line, or 100 times
// the rows above a horizontal one.
func Summarize(g *gridgraph.Grid, smudges int) (int, error) {
	for r := 1; r < g.Rows; r++ {
		if mismatches(g, r, true) == smudges {
			return 100 * r, nil
		}
	}
	for c := 1; c < g.Cols; c++ {
		if mismatches(g, c, false) == smudges {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: no reflection with %d smudges", puzzle.ErrNoSolution, smudges)
}

// mismatches counts differing cell pairs mirrored across the line before
// row (or column) k.
func mismatches(g *gridgraph.Grid, k int, horizontal bool) int {
	n, span := g.Cols, g.Rows
	if !horizontal {
		n, span = g.Rows, g.Cols
	}
	diff := 0
	for a, b := k-1, k; a >= 0 && b < span; a, b = a-1, b+1 {
		for i := 0; i < n; i++ {
			pa, pb := gridgraph.Point{Row: a, Col: i}, gridgraph.Point{Row: b, Col: i}
			if !horizontal {
				pa, pb = gridgraph.Point{Row: i, Col: a}, gridgraph.Point{Row: i, Col: b}
			}
			if g.At(pa) != g.At(pb) {
				diff++
			}
		}
	}

	return diff
}
