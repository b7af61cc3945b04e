// Package day05 maps seed ranges through the almanac's category maps.
package day05

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2023/interval"
	"github.com/katalvlaran/advent2023/puzzle"
)

type span = interval.Range[int]

// Rule moves Src by Delta.
type Rule struct {
	Src   span
	Delta int
}

// Map is one category translation; values no rule covers map to themselves.
type Map struct {
	Name  string
	Rules []Rule
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds []int
	Maps  []Map
}

// Solver implements puzzle.Solver for day 5.
type Solver struct{}

// New returns the day 5 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 5 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	a, err := Parse(in.Blocks())
	if err != nil {
		return nil, err
	}
	const template = "Lowest location number: {}"

	singles := make([]span, 0, len(a.Seeds))
	for _, s := range a.Seeds {
		singles = append(singles, span{Lo: s, Hi: s + 1})
	}
	low, err := a.Lowest(singles)
	if err != nil {
		return nil, err
	}
	answers := []puzzle.Answer{{Part: 1, Template: template, Value: low}}

	if len(a.Seeds)%2 != 0 {
		return answers, puzzle.Malformed(1, "", "odd number of seed values for ranges")
	}
	ranges := make([]span, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r, err := interval.FromLength(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return answers, &puzzle.InputError{Line: 1, Err: err}
		}
		ranges = append(ranges, r)
	}

	if low, err = a.Lowest(ranges); err != nil {
		return answers, err
	}

	return append(answers, puzzle.Answer{Part: 2, Template: template, Value: low}), nil
}

// Lowest pushes every range through all maps and returns the smallest
// resulting value. Ranges are merged after each map so overlapping seed
// ranges are translated once. An almanac without seeds has no lowest
// location and yields ErrNoSolution.
func (a *Almanac) Lowest(seeds []span) (int, error) {
	cur := interval.Merge(seeds)
	for _, m := range a.Maps {
		cur = interval.Merge(m.Apply(cur))
	}
	if len(cur) == 0 {
		return 0, fmt.Errorf("%w: no seeds", puzzle.ErrNoSolution)
	}

	return cur[0].Lo, nil
}

// Apply translates every range. Ranges straddling a rule boundary are split
// so each piece is moved by exactly one rule or by none.
func (m Map) Apply(in []span) []span {
	var out []span
	pending := in
	for _, rule := range m.Rules {
		var rest []span
		for _, r := range pending {
			for _, piece := range r.SplitAt(rule.Src.Lo, rule.Src.Hi) {
				if _, inside := piece.Intersect(rule.Src); inside {
					out = append(out, piece.Shift(rule.Delta))
				} else {
					rest = append(rest, piece)
				}
			}
		}
		pending = rest
	}

	return append(out, pending...)
}

// Parse reads the seeds block followed by one block per map.
func Parse(blocks [][]string) (*Almanac, error) {
	if len(blocks) == 0 {
		return nil, &puzzle.InputError{Err: puzzle.ErrMalformedInput}
	}
	_, seeds, err := puzzle.Cut(1, blocks[0][0], "seeds:")
	if err != nil {
		return nil, err
	}
	a := &Almanac{}
	if a.Seeds, err = puzzle.Fields(1, seeds); err != nil {
		return nil, err
	}

	line := len(blocks[0]) + 2
	for _, b := range blocks[1:] {
		m := Map{Name: strings.TrimSuffix(b[0], " map:")}
		for i, row := range b[1:] {
			v, err := puzzle.Fields(line+i+1, row)
			if err != nil {
				return nil, err
			}
			if len(v) != 3 {
				return nil, puzzle.Malformed(line+i+1, row, "want 3 numbers, got %d", len(v))
			}
			src, err := interval.FromLength(v[1], v[2])
			if err != nil {
				return nil, &puzzle.InputError{Line: line + i + 1, Text: row, Err: err}
			}
			m.Rules = append(m.Rules, Rule{Src: src, Delta: v[0] - v[1]})
		}
		a.Maps = append(a.Maps, m)
		line += len(b) + 1
	}

	return a, nil
}
