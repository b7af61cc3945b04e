// Package day01 recovers calibration values from amended document lines.
package day01

import (
	"context"
	"strings"

	"github.com/katalvlaran/advent2023/puzzle"
)

const template = "Calibration value {}"

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Solver implements puzzle.Solver for day 1.
type Solver struct{}

// New returns the day 1 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 1 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	lines := in.Lines()
	p1, err := sum(lines, false)
	if err != nil {
		return nil, err
	}
	answers := []puzzle.Answer{{Part: 1, Template: template, Value: p1}}
	p2, err := sum(lines, true)
	if err != nil {
		return answers, err
	}

	return append(answers, puzzle.Answer{Part: 2, Template: template, Value: p2}), nil
}

func sum(lines []string, spelled bool) (int, error) {
	total := 0
	for i, l := range lines {
		first, last := -1, -1
		for j := range l {
			d, ok := digitAt(l, j, spelled)
			if !ok {
				continue
			}
			if first < 0 {
				first = d
			}
			last = d
		}
		if first < 0 {
			return 0, puzzle.Malformed(i+1, l, "no digit")
		}
		total += first*10 + last
	}

	return total, nil
}

// digitAt reads a digit starting at l[j]. Spelled words may overlap
// ("eightwo" holds 8 and 2), so every index is tried.
func digitAt(l string, j int, spelled bool) (int, bool) {
	if c := l[j]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for k, w := range words {
		if strings.HasPrefix(l[j:], w) {
			return k + 1, true
		}
	}

	return 0, false
}
