package day22_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day22"
)

const example = `1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9
`

func TestExample(t *testing.T) {
	got, err := day22.New().Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	assert.Equal(t, "Desintegratable blocks: 5", got[0].String())
	assert.Equal(t, "Total falling blocks: 7", got[1].String())
}

func TestSettle(t *testing.T) {
	bricks, err := day22.Parse(puzzle.NewInput(example).Lines())
	require.NoError(t, err)
	s, err := day22.Settle(context.Background(), bricks)
	require.NoError(t, err)

	// G drops from z=8 onto F at z=4
	assert.Equal(t, [3]int{1, 1, 5}, s.Bricks[6].From)
	assert.Equal(t, [3]int{1, 1, 6}, s.Bricks[6].To)
	// B and C both land on A; D and E both rest on B and C
	assert.Equal(t, []int{1, 2}, s.Above[0])
	assert.ElementsMatch(t, []int{1, 2}, s.Below[3])
	assert.Equal(t, 6, s.Falling(0))
	assert.Equal(t, 1, s.Falling(5))
	assert.Equal(t, 0, s.Falling(6))

	pos := make(map[int]int, len(s.Order))
	for k, id := range s.Order {
		pos[id] = k
	}
	for i, below := range s.Below {
		for _, j := range below {
			assert.Less(t, pos[j], pos[i])
		}
	}

	_, err = day22.Settle(context.Background(), bricks[:0])
	require.NoError(t, err)
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"1,0,1", "1,0~1,2,1", "1,0,0~1,2,0", "a,0,1~1,2,1"} {
		_, err := day22.Parse([]string{in})
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
