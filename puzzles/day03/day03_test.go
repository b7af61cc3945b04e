package day03_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day03"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestExample(t *testing.T) {
	got, err := day03.New().Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	assert.Equal(t, 4361, got[0].Value)
	assert.Equal(t, 467835, got[1].Value)
}

func TestNumbers(t *testing.T) {
	g, err := puzzle.NewInput("12.\n..7\n").Grid()
	require.NoError(t, err)
	assert.Equal(t, []day03.Number{{Value: 12, Row: 0, Lo: 0, Hi: 2}, {Value: 7, Row: 1, Lo: 2, Hi: 3}}, day03.Numbers(g))
}

func TestRagged(t *testing.T) {
	_, err := day03.New().Solve(context.Background(), puzzle.NewInput("..\n...\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
