// Package day14 tilts the reflector dish platform and measures its load.
package day14

import (
	"context"
	"slices"

	"tailscale.com/util/deephash"

	"github.com/katalvlaran/advent2023/cycle"
	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Option configures the Solver.
type Option func(*Solver)

// WithSpins sets the number of spin cycles for part 2.
func WithSpins(n int) Option { return func(s *Solver) { s.spins = n } }

// Solver implements puzzle.Solver for day 14.
type Solver struct{ spins int }

// New returns the day 14 solver; part 2 spins a billion times.
func New(opts ...Option) *Solver {
	s := &Solver{spins: 1_000_000_000}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (*Solver) Day() int { return 14 }

func (s *Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	g, err := in.Grid()
	if err != nil {
		return nil, err
	}
	const template = "load:  {}"
	start := Parse(g)

	north := start.Clone()
	north.Tilt(gridgraph.Up)
	answers := []puzzle.Answer{{Part: 1, Template: template, Value: north.Load()}}

	end, err := cycle.Run(start, func(p *Platform) *Platform {
		next := p.Clone()
		next.Spin()
		return next
	}, (*Platform).Key, s.spins)
	if err != nil {
		return answers, err
	}

	return append(answers, puzzle.Answer{Part: 2, Template: template, Value: end.Load()}), nil
}

// Platform stores rounded rocks and cube rocks as bitsets indexed
// row*Cols+col. Cube rocks never move and are shared between clones.
type Platform struct {
	Rows, Cols int
	round      []uint64
	cube       []uint64
}

// Parse reads 'O' (rounded), '#' (cube) and '.' cells.
func Parse(g *gridgraph.Grid) *Platform {
	words := (g.Rows*g.Cols + 63) / 64
	p := &Platform{Rows: g.Rows, Cols: g.Cols, round: make([]uint64, words), cube: make([]uint64, words)}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			switch g.At(gridgraph.Point{Row: r, Col: c}) {
			case 'O':
				setBit(p.round, r*g.Cols+c)
			case '#':
				setBit(p.cube, r*g.Cols+c)
			}
		}
	}

	return p
}

// Clone copies the rounded rocks.
func (p *Platform) Clone() *Platform {
	out := *p
	out.round = slices.Clone(p.round)

	return &out
}

// Key digests the rounded-rock layout; cube rocks are identical across states.
func (p *Platform) Key() deephash.Sum { return cycle.Hash(&p.round) }

// Spin tilts north, west, south, then east.
func (p *Platform) Spin() {
	for _, d := range []gridgraph.Dir{gridgraph.Up, gridgraph.Left, gridgraph.Down, gridgraph.Right} {
		p.Tilt(d)
	}
}

// Tilt rolls every rounded rock toward d until it meets an edge, a cube rock
// or another settled rock.
func (p *Platform) Tilt(d gridgraph.Dir) {
	lines, length := p.Cols, p.Rows
	if !d.Vertical() {
		lines, length = p.Rows, p.Cols
	}
	for line := 0; line < lines; line++ {
		free := 0
		for k := 0; k < length; k++ {
			i := p.index(d, line, k)
			switch {
			case getBit(p.cube, i):
				free = k + 1
			case getBit(p.round, i):
				clearBit(p.round, i)
				setBit(p.round, p.index(d, line, free))
				free++
			}
		}
	}
}

// index maps position k along line, counted from the side rocks roll
// toward, to a cell index.
func (p *Platform) index(d gridgraph.Dir, line, k int) int {
	switch d {
	case gridgraph.Up:
		return k*p.Cols + line
	case gridgraph.Down:
		return (p.Rows-1-k)*p.Cols + line
	case gridgraph.Left:
		return line*p.Cols + k
	default:
		return line*p.Cols + p.Cols - 1 - k
	}
}

// Load is the sum over rounded rocks of their distance from the south edge.
func (p *Platform) Load() int {
	total := 0
	for i := 0; i < p.Rows*p.Cols; i++ {
		if getBit(p.round, i) {
			total += p.Rows - i/p.Cols
		}
	}

	return total
}

// String renders the platform like the puzzle input.
func (p *Platform) String() string {
	g := gridgraph.New(p.Rows, p.Cols, '.')
	for i := 0; i < p.Rows*p.Cols; i++ {
		switch {
		case getBit(p.round, i):
			g.Set(g.Coordinate(i), 'O')
		case getBit(p.cube, i):
			g.Set(g.Coordinate(i), '#')
		}
	}

	return g.String()
}

func getBit(b []uint64, i int) bool { return b[i>>6]&(1<<(i&63)) != 0 }
func setBit(b []uint64, i int)      { b[i>>6] |= 1 << (i & 63) }
func clearBit(b []uint64, i int)    { b[i>>6] &^= 1 << (i & 63) }
