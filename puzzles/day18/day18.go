// Package day18 measures the lava lagoon dug from a dig plan.
package day18

import (
	"context"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Step is one dig instruction.
type Step struct {
	Dir gridgraph.Dir
	Len int
}

// Solver implements puzzle.Solver for day 18.
type Solver struct{}

// New returns the day 18 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 18 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	plain, hex, err := Parse(in.Lines())
	if err != nil {
		return nil, err
	}
	const template = "Inside Area: {}"

	return []puzzle.Answer{
		{Part: 1, Template: template, Value: Area(plain)},
		{Part: 2, Template: template, Value: Area(hex)},
	}, nil
}

// Area counts the cubic metres dug, trench included. The shoelace formula
// gives the polygon's area through trench centres; Pick's theorem turns that
// into interior points, and adding the boundary yields area + perimeter/2 + 1.
func Area(steps []Step) int {
	var (
		p         gridgraph.Point
		twice     int
		perimeter int
	)
	for _, s := range steps {
		q := p.Add(s.Dir.Delta().Scale(s.Len))
		twice += p.Col*q.Row - q.Col*p.Row
		perimeter += s.Len
		p = q
	}

	return gridgraph.Abs(twice)/2 + perimeter/2 + 1
}

// Parse reads "R 6 (#70c710)" lines into the plain plan and the plan encoded
// in the colour: five hex digits of length, then 0-3 for R, D, L, U.
func Parse(lines []string) (plain, hex []Step, err error) {
	hexDirs := [4]gridgraph.Dir{gridgraph.Right, gridgraph.Down, gridgraph.Left, gridgraph.Up}
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) != 3 || len(f[0]) != 1 {
			return nil, nil, puzzle.Malformed(i+1, l, "want DIR LEN (#rrggbb)")
		}
		d, ok := gridgraph.DirFromByte(f[0][0])
		if !ok {
			return nil, nil, puzzle.Malformed(i+1, l, "bad direction %q", f[0])
		}
		n, err := puzzle.ParseInt(i+1, f[1])
		if err != nil {
			return nil, nil, err
		}
		plain = append(plain, Step{Dir: d, Len: n})

		code := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
		if len(code) != 6 || code[5] < '0' || code[5] > '3' {
			return nil, nil, puzzle.Malformed(i+1, l, "bad colour %q", f[2])
		}
		length, err := strconv.ParseInt(code[:5], 16, 64)
		if err != nil {
			return nil, nil, &puzzle.InputError{Line: i + 1, Text: l, Err: err}
		}
		hex = append(hex, Step{Dir: hexDirs[code[5]-'0'], Len: int(length)})
	}

	return plain, hex, nil
}
