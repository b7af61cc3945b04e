// Package day07 ranks Camel Cards hands and totals their winnings.
package day07

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/katalvlaran/advent2023/puzzle"
)

// Kind is the hand type, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int
}

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Solver implements puzzle.Solver for day 7.
type Solver struct{}

// New returns the day 7 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int { return 7 }

func (*Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	hands, err := Parse(in.Lines())
	if err != nil {
		return nil, err
	}
	const template = "winnings: {}"

	return []puzzle.Answer{
		{Part: 1, Template: template, Value: Winnings(hands, false)},
		{Part: 2, Template: template, Value: Winnings(hands, true)},
	}, nil
}

// Winnings ranks hands weakest to strongest and sums rank*bid. With jokers,
// J is the weakest card but counts as whatever makes the best kind.
func Winnings(hands []Hand, jokers bool) int {
	ranked := slices.Clone(hands)
	strength := order
	if jokers {
		strength = jokerOrder
	}
	slices.SortStableFunc(ranked, func(a, b Hand) int {
		if c := cmp.Compare(Classify(a.Cards, jokers), Classify(b.Cards, jokers)); c != 0 {
			return c
		}
		for i := 0; i < len(a.Cards); i++ {
			if c := cmp.Compare(strings.IndexByte(strength, a.Cards[i]), strings.IndexByte(strength, b.Cards[i])); c != 0 {
				return c
			}
		}
		return 0
	})

	total := 0
	for i, h := range ranked {
		total += (i + 1) * h.Bid
	}

	return total
}

// Classify returns the kind of cards.
func Classify(cards string, jokers bool) Kind {
	counts := make(map[byte]int, 5)
	wild := 0
	for i := 0; i < len(cards); i++ {
		if jokers && cards[i] == 'J' {
			wild++
			continue
		}
		counts[cards[i]]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	groups = append(groups, 0, 0)
	// jokers always join the largest group
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}

	return HighCard
}

// Parse reads "CARDS BID" lines.
func Parse(lines []string) ([]Hand, error) {
	hands := make([]Hand, 0, len(lines))
	for i, l := range lines {
		cards, bid, err := puzzle.Cut(i+1, l, " ")
		if err != nil {
			return nil, err
		}
		if len(cards) != 5 {
			return nil, puzzle.Malformed(i+1, l, "hand %q is not five cards", cards)
		}
		for j := 0; j < len(cards); j++ {
			if strings.IndexByte(order, cards[j]) < 0 {
				return nil, puzzle.Malformed(i+1, l, "unknown card %q", cards[j])
			}
		}
		n, err := puzzle.ParseInt(i+1, bid)
		if err != nil {
			return nil, err
		}
		hands = append(hands, Hand{Cards: cards, Bid: n})
	}

	return hands, nil
}
