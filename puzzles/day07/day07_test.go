package day07_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day07"
)

const example = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestExample(t *testing.T) {
	got, err := day07.New().Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	assert.Equal(t, 6440, got[0].Value)
	assert.Equal(t, 5905, got[1].Value)
}

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		cards  string
		jokers bool
		want   day07.Kind
	}{
		{"AAAAA", false, day07.FiveOfAKind},
		{"AA8AA", false, day07.FourOfAKind},
		{"23332", false, day07.FullHouse},
		{"TTT98", false, day07.ThreeOfAKind},
		{"23432", false, day07.TwoPair},
		{"A23A4", false, day07.OnePair},
		{"23456", false, day07.HighCard},
		{"JJJJJ", true, day07.FiveOfAKind},
		{"KTJJT", true, day07.FourOfAKind},
		{"2345J", true, day07.OnePair},
		{"2233J", true, day07.FullHouse},
	} {
		assert.Equal(t, tc.want, day07.Classify(tc.cards, tc.jokers), tc.cards)
	}
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{"32T3K", "32T3 765", "32T3X 765", "32T3K x"} {
		_, err := day07.Parse([]string{bad})
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, bad)
	}
}
