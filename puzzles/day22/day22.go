// Package day22 settles falling sand bricks and reasons about which ones
// can be disintegrated.
package day22

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2023/core"
	"github.com/katalvlaran/advent2023/dfs"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Brick spans the inclusive box From..To.
type Brick struct {
	From, To [3]int
}

// Stack is a settled pile: Below[i] lists the bricks brick i rests on and
// Above[i] those resting on it. Order lists bricks bottom-up so that every
// brick follows all of its supporters.
type Stack struct {
	Bricks []Brick
	Below  [][]int
	Above  [][]int
	Order  []int
}

// Solver implements puzzle.Solver for day 22.
type Solver struct{}

// New returns the day 22 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 22 }

func (*Solver) Solve(ctx context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	bricks, err := Parse(in.Lines())
	if err != nil {
		return nil, err
	}
	s, err := Settle(ctx, bricks)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		{Part: 1, Template: "Desintegratable blocks: {}", Value: s.Safe()},
		{Part: 2, Template: "Total falling blocks: {}", Value: s.ChainReaction()},
	}, nil
}

// Settle drops every brick straight down until it rests on the ground or
// another brick, then orders the support graph topologically.
func Settle(ctx context.Context, bricks []Brick) (*Stack, error) {
	bricks = slices.Clone(bricks)
	slices.SortStableFunc(bricks, func(a, b Brick) int { return cmp.Compare(a.From[2], b.From[2]) })

	type cell struct{ top, id int }
	height := make(map[[2]int]cell)
	s := &Stack{
		Bricks: bricks,
		Below:  make([][]int, len(bricks)),
		Above:  make([][]int, len(bricks)),
	}
	g := core.NewGraph(core.WithDirected(true))
	for i, b := range bricks {
		_ = g.AddVertex(strconv.Itoa(i))
		floor := 0
		for x := b.From[0]; x <= b.To[0]; x++ {
			for y := b.From[1]; y <= b.To[1]; y++ {
				floor = max(floor, height[[2]int{x, y}].top)
			}
		}
		for x := b.From[0]; x <= b.To[0]; x++ {
			for y := b.From[1]; y <= b.To[1]; y++ {
				c, ok := height[[2]int{x, y}]
				if ok && c.top == floor && !slices.Contains(s.Below[i], c.id) {
					s.Below[i] = append(s.Below[i], c.id)
					s.Above[c.id] = append(s.Above[c.id], i)
					if _, err := g.AddEdge(strconv.Itoa(c.id), strconv.Itoa(i), 0); err != nil {
						return nil, err
					}
				}
			}
		}
		drop := b.From[2] - floor - 1
		b.From[2] -= drop
		b.To[2] -= drop
		bricks[i] = b
		for x := b.From[0]; x <= b.To[0]; x++ {
			for y := b.From[1]; y <= b.To[1]; y++ {
				height[[2]int{x, y}] = cell{top: b.To[2], id: i}
			}
		}
	}

	order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	if err != nil {
		return nil, err
	}
	s.Order = make([]int, len(order))
	for k, id := range order {
		s.Order[k], _ = strconv.Atoi(id)
	}

	return s, nil
}

// Safe counts bricks whose removal leaves every brick above them supported.
func (s *Stack) Safe() int {
	n := 0
	for i := range s.Bricks {
		if !slices.ContainsFunc(s.Above[i], func(j int) bool { return len(s.Below[j]) == 1 }) {
			n++
		}
	}

	return n
}

// Falling counts the other bricks that fall when brick i is removed.
func (s *Stack) Falling(i int) int {
	fallen := make([]bool, len(s.Bricks))
	fallen[i] = true
	n := 0
	for _, j := range s.Order {
		if j == i || fallen[j] || len(s.Below[j]) == 0 {
			continue
		}
		if !slices.ContainsFunc(s.Below[j], func(k int) bool { return !fallen[k] }) {
			fallen[j] = true
			n++
		}
	}

	return n
}

// ChainReaction sums Falling over every brick.
func (s *Stack) ChainReaction() int {
	total := 0
	for i := range s.Bricks {
		total += s.Falling(i)
	}

	return total
}

// Parse reads "x,y,z~x,y,z" lines. Coordinates are normalised so From is the
// low corner; bricks must sit above the ground at z=0.
func Parse(lines []string) ([]Brick, error) {
	bricks := make([]Brick, 0, len(lines))
	for i, l := range lines {
		a, b, err := puzzle.Cut(i+1, l, "~")
		if err != nil {
			return nil, err
		}
		from, err := puzzle.Fields(i+1, a)
		if err != nil {
			return nil, err
		}
		to, err := puzzle.Fields(i+1, b)
		if err != nil {
			return nil, err
		}
		if len(from) != 3 || len(to) != 3 {
			return nil, puzzle.Malformed(i+1, l, "want two x,y,z corners")
		}
		var br Brick
		for k := 0; k < 3; k++ {
			br.From[k], br.To[k] = min(from[k], to[k]), max(from[k], to[k])
		}
		if br.From[2] < 1 {
			return nil, puzzle.Malformed(i+1, l, "brick below ground: %s", strings.TrimSpace(l))
		}
		bricks = append(bricks, br)
	}

	return bricks, nil
}
