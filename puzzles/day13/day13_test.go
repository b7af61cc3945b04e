package day13_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day13"
)

const example = `#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
`

func TestExample(t *testing.T) {
	got, err := day13.New().Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	assert.Equal(t, "summarize grids: 405", got[0].String())
	assert.Equal(t, "summarize grids: 400", got[1].String())
}

func TestNoReflection(t *testing.T) {
	got, err := day13.New().Solve(context.Background(), puzzle.NewInput("#.\n..\n"))
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
	assert.Empty(t, got)
}
