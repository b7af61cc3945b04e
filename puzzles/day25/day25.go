// Package day25 splits the component wiring diagram into two groups by
// cutting three wires.
package day25

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2023/bfs"
	"github.com/katalvlaran/advent2023/core"
	"github.com/katalvlaran/advent2023/flow"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Solver implements puzzle.Solver for day 25.
type Solver struct {
	wires int
}

// WithWires sets how many wires the cut must sever.
func WithWires(n int) func(*Solver) { return func(s *Solver) { s.wires = n } }

// New returns the day 25 solver.
func New(opts ...func(*Solver)) *Solver {
	s := &Solver{wires: 3}
	for _, o := range opts {
		o(s)
	}

	return s
}

func (*Solver) Day() int { return 25 }

func (s *Solver) Solve(ctx context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	g, err := Parse(in.Lines())
	if err != nil {
		return nil, err
	}
	a, b, err := Split(ctx, g, s.wires)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{{Part: 1, Template: "Product of cluster size: {}", Value: a * b}}, nil
}

// Split finds a cut of exactly wires edges and returns the sizes of both
// sides. The first vertex is fixed as source and every other vertex tried
// as sink; unit-capacity max flow equals the min cut between them, and the
// search stops one augmenting path past the target so large flows stay
// cheap.
func Split(ctx context.Context, g *core.Graph, wires int) (int, int, error) {
	vs := g.Vertices()
	if len(vs) < 2 {
		return 0, 0, fmt.Errorf("%w: %d components", puzzle.ErrDegenerate, len(vs))
	}
	reach, err := bfs.Graph(g, vs[0], bfs.WithContext[string](ctx))
	if err != nil {
		return 0, 0, err
	}
	if len(reach.Order) < len(vs) {
		return 0, 0, fmt.Errorf("%w: diagram is already split (%d of %d reachable)", puzzle.ErrDegenerate, len(reach.Order), len(vs))
	}
	for _, sink := range vs[1:] {
		res, err := flow.EdmondsKarp(ctx, g, vs[0], sink, flow.WithLimit(wires+1))
		if err != nil {
			return 0, 0, err
		}
		if !res.Limited && res.MaxFlow == int64(wires) {
			side, err := cut(ctx, g, vs[0], res.SourceSide, wires)
			if err != nil {
				return 0, 0, err
			}
			return side, len(vs) - side, nil
		}
	}

	return 0, 0, fmt.Errorf("%w: no %d-wire cut", puzzle.ErrNoSolution, wires)
}

// cut removes the wires crossing from side to the rest on a copy of g and
// returns how many components stay connected to source.
func cut(ctx context.Context, g *core.Graph, source string, side []string, wires int) (int, error) {
	in := make(map[string]bool, len(side))
	for _, id := range side {
		in[id] = true
	}
	h := g.Clone()
	removed := 0
	for _, e := range h.Edges() {
		if in[e.From] == in[e.To] {
			continue
		}
		if err := h.RemoveEdge(e.ID); err != nil {
			return 0, err
		}
		removed++
	}
	if removed != wires {
		return 0, fmt.Errorf("%w: cut severs %d wires, want %d", puzzle.ErrNoSolution, removed, wires)
	}
	reach, err := bfs.Graph(h, source, bfs.WithContext[string](ctx))
	if err != nil {
		return 0, err
	}

	return len(reach.Order), nil
}

// Parse reads "name: other other ..." lines into an undirected graph.
func Parse(lines []string) (*core.Graph, error) {
	g := core.NewGraph()
	for i, l := range lines {
		from, rest, err := puzzle.Cut(i+1, l, ":")
		if err != nil {
			return nil, err
		}
		from = strings.TrimSpace(from)
		to := strings.Fields(rest)
		if from == "" || len(to) == 0 {
			return nil, puzzle.Malformed(i+1, l, "want name: neighbours")
		}
		for _, t := range to {
			if g.HasEdge(from, t) || g.HasEdge(t, from) {
				continue
			}
			if _, err := g.AddEdge(from, t, 0); err != nil {
				return nil, &puzzle.InputError{Line: i + 1, Text: l, Err: err}
			}
		}
	}

	return g, nil
}
