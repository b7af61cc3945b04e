package day21_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day21"
)

const example = `...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
`

func TestReachable(t *testing.T) {
	g, err := gridgraph.ParseString(example)
	require.NoError(t, err)
	for steps, want := range map[int]int{0: 1, 1: 2, 6: 16, 64: 42} {
		got, err := day21.Reachable(g, steps)
		require.NoError(t, err)
		assert.Equal(t, want, got, "steps=%d", steps)
	}
}

func TestInfinite(t *testing.T) {
	g, err := gridgraph.ParseString(example)
	require.NoError(t, err)
	for steps, want := range map[int]int{6: 16, 10: 50, 50: 1594, 100: 6536} {
		got, err := day21.Infinite(context.Background(), g, steps)
		require.NoError(t, err)
		assert.Equal(t, want, got, "steps=%d", steps)
	}
}

func TestExtrapolate(t *testing.T) {
	// on an open field exactly (n+1)^2 plots are reachable
	rows := make([]string, 11)
	for i := range rows {
		rows[i] = strings.Repeat(".", 11)
	}
	rows[5] = ".....S....."
	open, err := gridgraph.Parse(rows)
	require.NoError(t, err)
	got, err := day21.Extrapolate(context.Background(), open, 49)
	require.NoError(t, err)
	assert.Equal(t, 2500, got)

	// three samples reproduce the first three sample points exactly
	g, err := gridgraph.ParseString(example)
	require.NoError(t, err)
	got, err = day21.Extrapolate(context.Background(), g, 27)
	require.NoError(t, err)
	assert.Equal(t, 427, got)

	_, err = day21.Extrapolate(context.Background(), g, 28)
	assert.ErrorIs(t, err, puzzle.ErrDegenerate)
	lopsided, err := gridgraph.ParseString("S..\n...\n...")
	require.NoError(t, err)
	_, err = day21.Extrapolate(context.Background(), lopsided, 4)
	assert.ErrorIs(t, err, puzzle.ErrDegenerate)
	wide, err := gridgraph.ParseString("....\n.S..\n....")
	require.NoError(t, err)
	_, err = day21.Extrapolate(context.Background(), wide, 4)
	assert.ErrorIs(t, err, puzzle.ErrDegenerate)
}

func TestSolve(t *testing.T) {
	got, err := day21.New(day21.WithSteps(6, 27)).Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Reachable plots: 16", got[0].String())
	assert.Equal(t, "Reachable plots: 427", got[1].String())

	answers, err := day21.New().Solve(context.Background(), puzzle.NewInput(example))
	assert.ErrorIs(t, err, puzzle.ErrDegenerate)
	assert.Len(t, answers, 1)

	_, err = day21.New().Solve(context.Background(), puzzle.NewInput("...\n...\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
