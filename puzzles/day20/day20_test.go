package day20_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day20"
)

const first = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`

const second = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`

func TestExamples(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{first, "Pulse product: 32000000"},
		{second, "Pulse product: 11687500"},
	} {
		got, err := day20.New().Solve(context.Background(), puzzle.NewInput(tc.in))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, tc.want, got[0].String())
	}
}

func TestPress_Counts(t *testing.T) {
	n, err := day20.Parse(puzzle.NewInput(first).Lines())
	require.NoError(t, err)
	assert.Equal(t, day20.Counts{Low: 8, High: 4}, n.Press(nil))

	n, err = day20.Parse(puzzle.NewInput(second).Lines())
	require.NoError(t, err)
	var trace []string
	n.Press(func(from, to string, high bool) {
		if to == "output" {
			trace = append(trace, map[bool]string{true: "high", false: "low"}[high])
		}
	})
	assert.Equal(t, []string{"high", "low"}, trace)
}

// Two flip-flop counters feed a conjunction hub that drives rx. Inverter ia
// first fires high on press 4 and ib on press 8, so rx first sees low on 8.
const counters = `broadcaster -> a1, b1
%a1 -> a2
%a2 -> ia
&ia -> hub
%b1 -> b2
%b2 -> b3
%b3 -> ib
&ib -> hub
&hub -> rx
`

func TestPressesUntilLow(t *testing.T) {
	n, err := day20.Parse(puzzle.NewInput(counters).Lines())
	require.NoError(t, err)
	got, err := n.PressesUntilLow(context.Background(), "rx", 100)
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	answers, err := day20.New().Solve(context.Background(), puzzle.NewInput(counters))
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, 5249*2501, answers[0].Value)
	assert.Equal(t, 8, answers[1].Value)

	_, err = n.PressesUntilLow(context.Background(), "zz", 100)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
	_, err = n.PressesUntilLow(context.Background(), "hub", 100)
	assert.ErrorIs(t, err, puzzle.ErrDegenerate)
	_, err = n.PressesUntilLow(context.Background(), "rx", 1)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}

func TestParse_Errors(t *testing.T) {
	_, err := day20.Parse([]string{"%a -> b"})
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	_, err = day20.Parse([]string{"broadcaster -> a", "%a -> b", "&a -> b"})
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	_, err = day20.Parse([]string{"broadcaster a"})
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	for _, in := range []string{
		"&broadcaster -> a\n%a -> broadcaster\n",
		"%broadcaster -> a\n%a -> b\n",
		"%a -> broadcaster\n",
	} {
		var answers []puzzle.Answer
		require.NotPanics(t, func() {
			answers, err = day20.New().Solve(context.Background(), puzzle.NewInput(in))
		}, in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
		assert.Empty(t, answers)
	}
}
