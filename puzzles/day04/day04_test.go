package day04_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day04"
)

const example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestExample(t *testing.T) {
	got, err := day04.New().Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	assert.Equal(t, "Sum of scores: 13", got[0].String())
	assert.Equal(t, "Total cards: 30", got[1].String())
}

func TestMatches(t *testing.T) {
	m, err := day04.Matches(puzzle.NewInput(example).Lines())
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 2, 1, 0, 0}, m)

	_, err = day04.Matches([]string{"Card 1: 1 2 3"})
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
