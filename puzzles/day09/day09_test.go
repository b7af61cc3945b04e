package day09_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day09"
)

const example = "0 3 6 9 12 15\n1 3 6 10 15 21\n10 13 16 21 30 45\n"

func TestExample(t *testing.T) {
	got, err := day09.New().Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	assert.Equal(t, 114, got[0].Value)
	assert.Equal(t, 2, got[1].Value)
}

func TestExtrapolate(t *testing.T) {
	before, after := day09.Extrapolate([]int{10, 13, 16, 21, 30, 45})
	assert.Equal(t, 5, before)
	assert.Equal(t, 68, after)

	before, after = day09.Extrapolate([]int{7})
	assert.Equal(t, 7, before)
	assert.Equal(t, 7, after)
}
