// Package day21 counts the garden plots an elf can stand on after a number
// of steps, on the map itself and on its infinite tiling.
package day21

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/advent2023/bfs"
	"github.com/katalvlaran/advent2023/dijkstra"
	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/workpool"
)

// Solver implements puzzle.Solver for day 21.
type Solver struct {
	steps, farSteps int
}

// WithSteps overrides the step counts of part 1 and part 2.
func WithSteps(near, far int) func(*Solver) {
	return func(s *Solver) { s.steps, s.farSteps = near, far }
}

// New returns the day 21 solver.
func New(opts ...func(*Solver)) *Solver {
	s := &Solver{steps: 64, farSteps: 26501365}
	for _, o := range opts {
		o(s)
	}

	return s
}

func (*Solver) Day() int { return 21 }

func (s *Solver) Solve(ctx context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	g, err := in.Grid()
	if err != nil {
		return nil, err
	}
	if _, ok := g.Find('S'); !ok {
		return nil, puzzle.Malformed(0, "", "no start tile")
	}
	const template = "Reachable plots: {}"

	near, err := Reachable(g, s.steps)
	if err != nil {
		return nil, err
	}
	answers := []puzzle.Answer{{Part: 1, Template: template, Value: near}}

	far, err := Extrapolate(ctx, g, s.farSteps)
	if err != nil {
		return answers, err
	}

	return append(answers, puzzle.Answer{Part: 2, Template: template, Value: far}), nil
}

func garden(b byte) bool { return b != '#' }

// Reachable counts the plots of g, without tiling, occupiable after exactly
// steps moves from S. A plot qualifies when its distance is at most steps
// and has the same parity, since any move can be undone.
func Reachable(g *gridgraph.Grid, steps int) (int, error) {
	start, _ := g.Find('S')
	dist, _, err := dijkstra.Dijkstra(g.ToCoreGraph(garden),
		dijkstra.Source(start.ID()), dijkstra.WithMaxDistance(int64(steps)))
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range dist {
		if d != math.MaxInt64 && d%2 == int64(steps%2) {
			n++
		}
	}

	return n, nil
}

// Infinite counts plots occupiable after exactly steps moves on the endless
// tiling of g, by breadth-first search over unwrapped coordinates.
func Infinite(ctx context.Context, g *gridgraph.Grid, steps int) (int, error) {
	start, _ := g.Find('S')
	next := func(p gridgraph.Point) []gridgraph.Point {
		out := make([]gridgraph.Point, 0, 4)
		for _, d := range gridgraph.Dirs {
			q := p.Step(d)
			if garden(g.At(wrap(q, g.Rows, g.Cols))) {
				out = append(out, q)
			}
		}

		return out
	}
	if steps == 0 {
		return 1, nil
	}
	res, err := bfs.Reach([]gridgraph.Point{start}, next,
		bfs.WithContext[gridgraph.Point](ctx), bfs.WithMaxDepth[gridgraph.Point](steps))
	if err != nil {
		return 0, err
	}

	return res.CountAtParity(steps), nil
}

// Extrapolate answers Infinite for huge step counts. On a square map with S
// in the centre, the count sampled every map-width steps past the first edge
// grows quadratically, so three samples fix it. The map must have that shape
// and steps must land on a sample point; otherwise ErrDegenerate.
func Extrapolate(ctx context.Context, g *gridgraph.Grid, steps int) (int, error) {
	size := g.Rows
	start, _ := g.Find('S')
	switch {
	case g.Cols != size:
		return 0, fmt.Errorf("%w: map is %dx%d, not square", puzzle.ErrDegenerate, g.Rows, g.Cols)
	case start != (gridgraph.Point{Row: size / 2, Col: size / 2}):
		return 0, fmt.Errorf("%w: start %v is not centred", puzzle.ErrDegenerate, start)
	case steps < size/2 || (steps-size/2)%size != 0:
		return 0, fmt.Errorf("%w: %d steps does not end on a map edge", puzzle.ErrDegenerate, steps)
	}

	rem := steps % size
	y, err := workpool.Map(ctx, 3, []int{rem, rem + size, rem + 2*size}, func(ctx context.Context, k int) (int, error) {
		return Infinite(ctx, g, k)
	})
	if err != nil {
		return 0, err
	}
	n := (steps - rem) / size

	return y[0] + n*(y[1]-y[0]) + n*(n-1)/2*(y[2]-2*y[1]+y[0]), nil
}

func wrap(p gridgraph.Point, rows, cols int) gridgraph.Point {
	return gridgraph.Point{Row: ((p.Row % rows) + rows) % rows, Col: ((p.Col % cols) + cols) % cols}
}
