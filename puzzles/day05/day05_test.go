package day05_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/interval"
	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day05"
)

const example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestExample(t *testing.T) {
	got, err := day05.New().Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	assert.Equal(t, 35, got[0].Value)
	assert.Equal(t, 46, got[1].Value)
}

// TestApply_PreservesCount checks that a map only moves values: the total
// length of the ranges is unchanged.
func TestApply_PreservesCount(t *testing.T) {
	a, err := day05.Parse(puzzle.NewInput(example).Blocks())
	require.NoError(t, err)
	require.Len(t, a.Maps, 7)
	assert.Equal(t, "seed-to-soil", a.Maps[0].Name)

	in := []interval.Range[int]{{Lo: 0, Hi: 120}, {Lo: 40, Hi: 60}}
	for _, m := range a.Maps {
		out := m.Apply(in)
		assert.Equal(t, interval.Total(in), interval.Total(out), m.Name)
		in = out
	}
}

func TestOddSeedCount(t *testing.T) {
	got, err := day05.New().Solve(context.Background(), puzzle.NewInput("seeds: 1 2 3\n\na map:\n5 1 1\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Value)
}

func TestNoSeeds(t *testing.T) {
	got, err := day05.New().Solve(context.Background(), puzzle.NewInput("seeds:\n\na map:\n5 1 1\n"))
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
	assert.Empty(t, got)
}

func TestLowest_OverlappingSeeds(t *testing.T) {
	a, err := day05.Parse(puzzle.NewInput(example).Blocks())
	require.NoError(t, err)

	low, err := a.Lowest([]interval.Range[int]{{Lo: 79, Hi: 93}, {Lo: 82, Hi: 83}, {Lo: 55, Hi: 68}})
	require.NoError(t, err)
	assert.Equal(t, 46, low)
}
