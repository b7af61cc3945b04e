// Package day10 traces the animal's pipe loop and counts the tiles it encloses.
package day10

import (
	"context"
	"fmt"

	"github.com/katalvlaran/advent2023/bfs"
	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
)

// pipes lists the two openings of every pipe shape.
var pipes = map[byte][2]gridgraph.Dir{
	'|': {gridgraph.Up, gridgraph.Down},
	'-': {gridgraph.Left, gridgraph.Right},
	'L': {gridgraph.Up, gridgraph.Right},
	'J': {gridgraph.Up, gridgraph.Left},
	'7': {gridgraph.Down, gridgraph.Left},
	'F': {gridgraph.Down, gridgraph.Right},
}

// Solver implements puzzle.Solver for day 10.
type Solver struct{}

// New returns the day 10 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 10 }

func (*Solver) Solve(ctx context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	g, err := in.Grid()
	if err != nil {
		return nil, err
	}
	loop, err := Trace(ctx, g)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		{Part: 1, Template: "farthest distance: {}", Value: loop.Farthest},
		{Part: 2, Template: "number of inside points: {}", Value: loop.Inside()},
	}, nil
}

// Loop is the main pipe loop through S.
type Loop struct {
	Grid     *gridgraph.Grid // S replaced by its inferred shape
	Tiles    map[gridgraph.Point]bool
	Farthest int
}

// Trace infers the shape under S from the neighbours that connect back to it
// and walks the loop breadth-first in both directions at once; the last tile
// reached is the farthest point.
func Trace(ctx context.Context, g *gridgraph.Grid) (*Loop, error) {
	start, ok := g.Find('S')
	if !ok {
		return nil, puzzle.Malformed(0, "", "no start tile S")
	}
	grid := g.Clone()
	shape, err := inferShape(grid, start)
	if err != nil {
		return nil, err
	}
	grid.Set(start, shape)

	next := func(p gridgraph.Point) []gridgraph.Point {
		ends, ok := pipes[grid.At(p)]
		if !ok {
			return nil
		}
		out := make([]gridgraph.Point, 0, 2)
		for _, d := range ends {
			if q := p.Step(d); connects(grid, q, d.Reverse()) {
				out = append(out, q)
			}
		}
		return out
	}
	res, err := bfs.Reach([]gridgraph.Point{start}, next, bfs.WithContext[gridgraph.Point](ctx))
	if err != nil {
		return nil, err
	}

	loop := &Loop{Grid: grid, Tiles: make(map[gridgraph.Point]bool, len(res.Order))}
	for _, p := range res.Order {
		loop.Tiles[p] = true
		loop.Farthest = max(loop.Farthest, res.Depth[p])
	}

	return loop, nil
}

// connects reports whether the pipe at p opens toward d.
func connects(g *gridgraph.Grid, p gridgraph.Point, d gridgraph.Dir) bool {
	c, ok := g.Get(p)
	if !ok {
		return false
	}
	ends, ok := pipes[c]

	return ok && (ends[0] == d || ends[1] == d)
}

func inferShape(g *gridgraph.Grid, start gridgraph.Point) (byte, error) {
	var open []gridgraph.Dir
	for _, d := range gridgraph.Dirs {
		if connects(g, start.Step(d), d.Reverse()) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return 0, fmt.Errorf("%w: start %v connects to %d pipes, want 2", puzzle.ErrNoSolution, start, len(open))
	}
	for shape, ends := range pipes {
		if (ends[0] == open[0] && ends[1] == open[1]) || (ends[0] == open[1] && ends[1] == open[0]) {
			return shape, nil
		}
	}

	return 0, fmt.Errorf("%w: no pipe shape opens %v and %v", puzzle.ErrNoSolution, open[0], open[1])
}

// Inside counts tiles enclosed by the loop. Every tile is drawn as a 3x3
// block with the loop's pipes as walls, which opens the gaps between
// adjacent parallel pipes; a flood from the border then marks the outside.
func (l *Loop) Inside() int {
	const k = 3
	zoom := gridgraph.New(l.Grid.Rows*k, l.Grid.Cols*k, '.')
	for p := range l.Tiles {
		center := p.Scale(k).Add(gridgraph.Point{Row: 1, Col: 1})
		zoom.Set(center, '#')
		for _, d := range pipes[l.Grid.At(p)] {
			zoom.Set(center.Step(d), '#')
		}
	}

	outside := make(map[gridgraph.Point]bool)
	for _, comp := range zoom.Components(gridgraph.Conn4, func(c byte) bool { return c == '.' }) {
		if zoom.TouchesBorder(comp) {
			for _, p := range comp {
				outside[p] = true
			}
		}
	}

	inside := 0
	for r := 0; r < l.Grid.Rows; r++ {
		for c := 0; c < l.Grid.Cols; c++ {
			p := gridgraph.Point{Row: r, Col: c}
			if l.Tiles[p] {
				continue
			}
			if !outside[p.Scale(k).Add(gridgraph.Point{Row: 1, Col: 1})] {
				inside++
			}
		}
	}

	return inside
}
