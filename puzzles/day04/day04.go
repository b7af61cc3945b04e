// Package day04 scores scratchcards.
package day04

import (
	"context"
	"strings"

	"github.com/katalvlaran/advent2023/puzzle"
)

// Solver implements puzzle.Solver for day 4.
type Solver struct{}

// New returns the day 4 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 4 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	matches, err := Matches(in.Lines())
	if err != nil {
		return nil, err
	}

	score := 0
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, m := range matches {
		if m > 0 {
			score += 1 << (m - 1)
		}
		// copies never run past the end of the table
		for j := i + 1; j <= i+m && j < len(matches); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}

	return []puzzle.Answer{
		{Part: 1, Template: "Sum of scores: {}", Value: score},
		{Part: 2, Template: "Total cards: {}", Value: total},
	}, nil
}

// Matches returns, per card, how many of its numbers are winning numbers.
func Matches(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		_, body, err := puzzle.Cut(i+1, l, ":")
		if err != nil {
			return nil, err
		}
		win, have, err := puzzle.Cut(i+1, body, "|")
		if err != nil {
			return nil, err
		}
		winning, err := puzzle.Fields(i+1, win)
		if err != nil {
			return nil, err
		}
		mine, err := puzzle.Fields(i+1, strings.TrimSpace(have))
		if err != nil {
			return nil, err
		}
		set := make(map[int]struct{}, len(winning))
		for _, w := range winning {
			set[w] = struct{}{}
		}
		n := 0
		for _, v := range mine {
			if _, ok := set[v]; ok {
				n++
			}
		}
		out = append(out, n)
	}

	return out, nil
}
