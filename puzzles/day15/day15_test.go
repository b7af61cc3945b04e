package day15_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/puzzle"
	"github.com/katalvlaran/advent2023/puzzles/day15"
)

const example = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n"

func TestHash(t *testing.T) {
	assert.Equal(t, 52, day15.Hash("HASH"))
	assert.Equal(t, 0, day15.Hash("rn"))
	assert.Equal(t, 3, day15.Hash("pc"))
}

func TestExample(t *testing.T) {
	got, err := day15.New().Solve(context.Background(), puzzle.NewInput(example))
	require.NoError(t, err)
	assert.Equal(t, "checksum:  1320", got[0].String())
	assert.Equal(t, "power:  145", got[1].String())
}

func TestBoxes(t *testing.T) {
	var b day15.Boxes
	for _, s := range []string{"rn=1", "cm-", "qp=3", "cm=2", "qp-", "pc=4", "ot=9", "ab=5", "pc-", "pc=6", "ot=7"} {
		require.NoError(t, b.Apply(s))
	}
	assert.Equal(t, []day15.Lens{{"rn", 1}, {"cm", 2}}, b[0])
	assert.Equal(t, []day15.Lens{{"ot", 7}, {"ab", 5}, {"pc", 6}}, b[3])

	assert.ErrorIs(t, b.Apply("xx"), puzzle.ErrMalformedInput)
	assert.ErrorIs(t, b.Apply("xx=0"), puzzle.ErrMalformedInput)
}
