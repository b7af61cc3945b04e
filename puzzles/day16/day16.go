// Package day16 traces light beams through a contraption of mirrors and splitters.
package day16

import (
	"context"

	"github.com/katalvlaran/advent2023/bfs"
	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/workpool"
)

// Beam is a beam front: the cell it occupies and the way it travels.
type Beam struct {
	At      gridgraph.Point
	Heading gridgraph.Dir
}

// Solver implements puzzle.Solver for day 16.
type Solver struct{}

// New returns the day 16 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 16 }

func (*Solver) Solve(ctx context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	g, err := in.Grid()
	if err != nil {
		return nil, err
	}
	const template = "number of energized:  {}"

	first, err := Energized(ctx, g, Beam{Heading: gridgraph.Right})
	if err != nil {
		return nil, err
	}
	answers := []puzzle.Answer{{Part: 1, Template: template, Value: first}}

	best, err := workpool.MapReduce(ctx, in.Workers, Entries(g), func(ctx context.Context, b Beam) (int, error) {
		return Energized(ctx, g, b)
	}, func(a, b int) int { return max(a, b) }, 0)
	if err != nil {
		return answers, err
	}

	return append(answers, puzzle.Answer{Part: 2, Template: template, Value: best}), nil
}

// Entries lists every beam entering from the grid's edge.
func Entries(g *gridgraph.Grid) []Beam {
	out := make([]Beam, 0, 2*(g.Rows+g.Cols))
	for r := 0; r < g.Rows; r++ {
		out = append(out,
			Beam{At: gridgraph.Point{Row: r, Col: 0}, Heading: gridgraph.Right},
			Beam{At: gridgraph.Point{Row: r, Col: g.Cols - 1}, Heading: gridgraph.Left})
	}
	for c := 0; c < g.Cols; c++ {
		out = append(out,
			Beam{At: gridgraph.Point{Row: 0, Col: c}, Heading: gridgraph.Down},
			Beam{At: gridgraph.Point{Row: g.Rows - 1, Col: c}, Heading: gridgraph.Up})
	}

	return out
}

// Energized counts cells visited by the beam entering at start. Beam states
// repeat in loops, so they are explored as a graph rather than simulated.
func Energized(ctx context.Context, g *gridgraph.Grid, start Beam) (int, error) {
	next := func(b Beam) []Beam {
		var out []Beam
		for _, d := range deflect(g.At(b.At), b.Heading) {
			if p := b.At.Step(d); g.InBounds(p) {
				out = append(out, Beam{At: p, Heading: d})
			}
		}
		return out
	}
	res, err := bfs.Reach([]Beam{start}, next, bfs.WithContext[Beam](ctx))
	if err != nil {
		return 0, err
	}
	cells := make(map[gridgraph.Point]struct{}, len(res.Order))
	for _, b := range res.Order {
		cells[b.At] = struct{}{}
	}

	return len(cells), nil
}

// deflect returns the headings leaving a tile entered with heading d.
func deflect(tile byte, d gridgraph.Dir) []gridgraph.Dir {
	switch tile {
	case '/':
		// Right<->Up, Left<->Down
		return []gridgraph.Dir{[4]gridgraph.Dir{gridgraph.Right, gridgraph.Up, gridgraph.Left, gridgraph.Down}[d]}
	case '\\':
		// Right<->Down, Left<->Up
		return []gridgraph.Dir{[4]gridgraph.Dir{gridgraph.Left, gridgraph.Down, gridgraph.Right, gridgraph.Up}[d]}
	case '|':
		if !d.Vertical() {
			return []gridgraph.Dir{gridgraph.Up, gridgraph.Down}
		}
	case '-':
		if d.Vertical() {
			return []gridgraph.Dir{gridgraph.Left, gridgraph.Right}
		}
	}

	return []gridgraph.Dir{d}
}
