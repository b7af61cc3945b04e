// Package day03 sums engine part numbers and gear ratios from a schematic.
package day03

import (
	"context"

	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Number is a horizontal run of digits on the schematic.
type Number struct {
	Value int
	Row   int
	Lo    int // first column
	Hi    int // one past the last column
}

// Solver implements puzzle.Solver for day 3.
type Solver struct{}

// New returns the day 3 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 3 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	g, err := in.Grid()
	if err != nil {
		return nil, err
	}

	// every symbol cell collects the numbers touching it
	touching := make(map[gridgraph.Point][]int)
	parts := 0
	for _, n := range Numbers(g) {
		isPart := false
		for _, p := range n.border(g) {
			c := g.At(p)
			if c == '.' || isDigit(c) {
				continue
			}
			isPart = true
			touching[p] = append(touching[p], n.Value)
		}
		if isPart {
			parts += n.Value
		}
	}

	ratios := 0
	for p, nums := range touching {
		if g.At(p) == '*' && len(nums) == 2 {
			ratios += nums[0] * nums[1]
		}
	}

	return []puzzle.Answer{
		{Part: 1, Template: "Sum of part numbers: {}", Value: parts},
		{Part: 2, Template: "Sum of gear ratios: {}", Value: ratios},
	}, nil
}

// Numbers scans g row by row for digit runs.
func Numbers(g *gridgraph.Grid) []Number {
	var out []Number
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; {
			if !isDigit(g.At(gridgraph.Point{Row: r, Col: c})) {
				c++
				continue
			}
			n := Number{Row: r, Lo: c}
			for ; c < g.Cols && isDigit(g.At(gridgraph.Point{Row: r, Col: c})); c++ {
				n.Value = n.Value*10 + int(g.At(gridgraph.Point{Row: r, Col: c})-'0')
			}
			n.Hi = c
			out = append(out, n)
		}
	}

	return out
}

// border lists the in-bounds cells around n, each once.
func (n Number) border(g *gridgraph.Grid) []gridgraph.Point {
	var out []gridgraph.Point
	for r := n.Row - 1; r <= n.Row+1; r++ {
		for c := n.Lo - 1; c <= n.Hi; c++ {
			p := gridgraph.Point{Row: r, Col: c}
			if r == n.Row && c >= n.Lo && c < n.Hi {
				continue
			}
			if g.InBounds(p) {
				out = append(out, p)
			}
		}
	}

	return out
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
