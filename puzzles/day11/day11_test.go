package day11_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/gridgraph"
	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day11"
)

const example = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func TestExample(t *testing.T) {
	got, err := day11.New(day11.WithFactors(2, 10)).Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	assert.Equal(t, 374, got[0].Value)
	assert.Equal(t, 1030, got[1].Value)
}

func TestFactors(t *testing.T) {
	g, err := gridgraph.ParseString(example)
	require.NoError(t, err)
	assert.Equal(t, 8410, day11.Distances(g, 100))

	// the part 2 answer grows linearly in the factor
	d2, d3 := day11.Distances(g, 2), day11.Distances(g, 3)
	assert.Equal(t, d2+(d3-d2)*(1_000_000-2), day11.Distances(g, 1_000_000))
}
