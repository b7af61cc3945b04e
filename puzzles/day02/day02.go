// Package day02 checks cube games against a bag limit.
package day02

import (
	"context"
	"strings"

	"github.com/katalvlaran/advent2023/puzzle"
)

// Set is one handful of cubes.
type Set struct{ Red, Green, Blue int }

// Game is a numbered series of handfuls.
type Game struct {
	ID    int
	Draws []Set
}

// Option configures the Solver.
type Option func(*Solver)

// WithBag overrides the 12 red, 13 green, 14 blue bag used by part 1.
func WithBag(bag Set) Option { return func(s *Solver) { s.bag = bag } }

// Solver implements puzzle.Solver for day 2.
type Solver struct{ bag Set }

// New returns the day 2 solver.
func New(opts ...Option) *Solver {
	s := &Solver{bag: Set{Red: 12, Green: 13, Blue: 14}}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (*Solver) Day() int { return 2 }

func (s *Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	games, err := Parse(in.Lines())
	if err != nil {
		return nil, err
	}

	possible, power := 0, 0
	for _, g := range games {
		need := g.Minimum()
		if need.Red <= s.bag.Red && need.Green <= s.bag.Green && need.Blue <= s.bag.Blue {
			possible += g.ID
		}
		power += need.Red * need.Green * need.Blue
	}

	return []puzzle.Answer{
		{Part: 1, Template: "Number of possible games: {}", Value: possible},
		{Part: 2, Template: "Minimum Power: {}", Value: power},
	}, nil
}

// Minimum is the smallest bag that could have produced every draw.
func (g Game) Minimum() Set {
	var m Set
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}

	return m
}

// Parse reads lines of the form "Game 3: 8 green, 6 blue; 5 red".
func Parse(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, l := range lines {
		head, body, err := puzzle.Cut(i+1, l, ":")
		if err != nil {
			return nil, err
		}
		id, err := puzzle.ParseInt(i+1, strings.TrimPrefix(head, "Game "))
		if err != nil {
			return nil, err
		}
		g := Game{ID: id}
		for _, draw := range strings.Split(body, ";") {
			var set Set
			for _, item := range strings.Split(draw, ",") {
				n, color, ok := strings.Cut(strings.TrimSpace(item), " ")
				if !ok {
					return nil, puzzle.Malformed(i+1, l, "bad cube count %q", item)
				}
				count, err := puzzle.ParseInt(i+1, n)
				if err != nil {
					return nil, err
				}
				switch color {
				case "red":
					set.Red += count
				case "green":
					set.Green += count
				case "blue":
					set.Blue += count
				default:
					return nil, puzzle.Malformed(i+1, l, "unknown color %q", color)
				}
			}
			g.Draws = append(g.Draws, set)
		}
		games = append(games, g)
	}

	return games, nil
}
