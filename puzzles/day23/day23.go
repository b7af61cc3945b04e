// Package day23 finds the longest scenic hike through the forest.
package day23

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2023/dfs"
	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Solver implements puzzle.Solver for day 23.
type Solver struct{}

// New returns the day 23 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 23 }

func (*Solver) Solve(ctx context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	g, err := in.Grid()
	if err != nil {
		return nil, err
	}
	const template = "Longest walk: {}"

	var answers []puzzle.Answer
	for part, move := range []gridgraph.MoveFunc{downhill, nil} {
		n, err := Longest(ctx, g, move)
		if err != nil {
			return answers, err
		}
		answers = append(answers, puzzle.Answer{Part: part + 1, Template: template, Value: n})
	}

	return answers, nil
}

func path(b byte) bool { return b != '#' }

// downhill forbids leaving a slope tile except in the direction it points.
func downhill(g *gridgraph.Grid, from gridgraph.Point, d gridgraph.Dir) bool {
	if want, ok := gridgraph.DirFromByte(g.At(from)); ok {
		return want == d
	}

	return true
}

// Ends returns the single open tile of the top row and of the bottom row.
func Ends(g *gridgraph.Grid) (start, goal gridgraph.Point, err error) {
	for _, r := range []int{0, g.Rows - 1} {
		row := g.Row(r)
		c := strings.IndexByte(row, '.')
		if c < 0 || strings.Count(row, ".") != 1 {
			return start, goal, puzzle.Malformed(r+1, row, "want exactly one opening")
		}
		if r == 0 {
			start = gridgraph.Point{Row: r, Col: c}
		} else {
			goal = gridgraph.Point{Row: r, Col: c}
		}
	}

	return start, goal, nil
}

// Longest returns the length of the longest hike that never revisits a
// tile. move restricts travel on slopes; nil treats slopes as paths.
func Longest(ctx context.Context, g *gridgraph.Grid, move gridgraph.MoveFunc) (int, error) {
	start, goal, err := Ends(g)
	if err != nil {
		return 0, err
	}
	c, err := gridgraph.Compress(g, start, goal, path, move)
	if err != nil {
		return 0, err
	}
	adj := make([][]dfs.Arc, len(c.Adj))
	for i, arcs := range c.Adj {
		for _, a := range arcs {
			adj[i] = append(adj[i], dfs.Arc{To: a.To, Weight: a.Weight})
		}
	}

	n, err := dfs.LongestPath(adj, c.Index[start], c.Index[goal], dfs.WithCancelContext(ctx))
	switch {
	case errors.Is(err, dfs.ErrNoPath):
		return 0, fmt.Errorf("%w: %w", puzzle.ErrNoSolution, err)
	case errors.Is(err, dfs.ErrTooLarge):
		return 0, fmt.Errorf("%w: %w", puzzle.ErrDegenerate, err)
	}

	return n, err
}
