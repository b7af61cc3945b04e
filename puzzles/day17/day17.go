// Package day17 routes crucibles through the city with minimal heat loss.
package day17

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/advent2023/dijkstra"
	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Crucible bounds how many blocks a crucible moves in a straight line:
// it must go at least MinRun before turning or stopping and at most MaxRun.
type Crucible struct{ MinRun, MaxRun int }

var (
	// Normal is the part 1 crucible.
	Normal = Crucible{MinRun: 1, MaxRun: 3}
	// Ultra is the part 2 crucible.
	Ultra = Crucible{MinRun: 4, MaxRun: 10}
)

// state is a search node: position, heading and the straight run so far.
type state struct {
	at      gridgraph.Point
	heading gridgraph.Dir
	run     int
}

// Solver implements puzzle.Solver for day 17.
type Solver struct{}

// New returns the day 17 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 17 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	g, err := in.Grid()
	if err != nil {
		return nil, err
	}
	heat, err := gridgraph.Digits(g)
	if err != nil {
		return nil, &puzzle.InputError{Err: err}
	}

	const template = "Minimal Heat Loss:  {}"
	var answers []puzzle.Answer
	for i, c := range []Crucible{Normal, Ultra} {
		loss, err := MinHeatLoss(heat, c)
		if err != nil {
			return answers, err
		}
		answers = append(answers, puzzle.Answer{Part: i + 1, Template: template, Value: loss})
	}

	return answers, nil
}

// MinHeatLoss returns the least total heat lost moving a crucible from the
// top-left block to the bottom-right one. The starting block costs nothing.
func MinHeatLoss(heat *gridgraph.Cells[int], c Crucible) (int, error) {
	goal := gridgraph.Point{Row: heat.Rows - 1, Col: heat.Cols - 1}
	starts := []state{{heading: gridgraph.Right}, {heading: gridgraph.Down}}

	successors := func(s state, emit dijkstra.Emit[state]) {
		try := func(d gridgraph.Dir, run int) {
			if p := s.at.Step(d); heat.InBounds(p) {
				emit(state{at: p, heading: d, run: run}, heat.At(p))
			}
		}
		if s.run < c.MaxRun {
			try(s.heading, s.run+1)
		}
		// the start has no run yet; both initial headings cover turning there
		if s.run >= c.MinRun {
			try(s.heading.Turn(true), 1)
			try(s.heading.Turn(false), 1)
		}
	}
	done := func(s state) bool { return s.at == goal && s.run >= c.MinRun }

	res, err := dijkstra.Search(starts, successors, done)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return 0, fmt.Errorf("%w: %w", puzzle.ErrNoSolution, err)
	}
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}
