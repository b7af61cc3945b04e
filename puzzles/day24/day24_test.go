package day24_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day24"
)

const example = `19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3
`

func TestExample(t *testing.T) {
	got, err := day24.New(day24.WithBounds(7, 27)).Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Intersections: 2", got[0].String())
	assert.Equal(t, "Stone start sum: 47", got[1].String())
}

func TestThrow(t *testing.T) {
	hail, err := day24.Parse(puzzle.NewInput(example).Lines())
	require.NoError(t, err)
	rock, err := day24.Throw(hail)
	require.NoError(t, err)
	assert.Equal(t, day24.Hail{P: [3]int64{24, 13, 10}, V: [3]int64{-3, 1, 2}}, rock)

	// the rock meets every stone at some non-negative time
	for _, h := range hail {
		var tm int64 = -1
		for k := 0; k < 3; k++ {
			if dv := h.V[k] - rock.V[k]; dv != 0 {
				tm = (rock.P[k] - h.P[k]) / dv
				break
			}
		}
		require.GreaterOrEqual(t, tm, int64(0))
		for k := 0; k < 3; k++ {
			assert.Equal(t, h.P[k]+h.V[k]*tm, rock.P[k]+rock.V[k]*tm)
		}
	}

	_, err = day24.Throw(hail[:2])
	assert.ErrorIs(t, err, puzzle.ErrDegenerate)
}

func TestCrossings(t *testing.T) {
	hail, err := day24.Parse(puzzle.NewInput(example).Lines())
	require.NoError(t, err)
	assert.Equal(t, 2, day24.Crossings(hail, 7, 27))
	assert.Equal(t, 0, day24.Crossings(hail, 100, 200))
	// A and B cross at (14.333, 15.333); B and C are parallel
	assert.Equal(t, 1, day24.Crossings(hail[:2], 14, 16))
	assert.Equal(t, 0, day24.Crossings(hail[1:3], -1000, 1000))
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"1, 2, 3", "1, 2 @ 1, 2, 3", "1, 2, x @ 1, 2, 3"} {
		_, err := day24.Parse([]string{in})
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
