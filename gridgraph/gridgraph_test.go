package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/gridgraph"
)

func TestParse_Errors(t *testing.T) {
	_, err := gridgraph.Parse(nil)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.ParseString("\n")
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.Parse([]string{"...", "..", "..."})
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParse_RoundTrip(t *testing.T) {
	g, err := gridgraph.ParseString("#.#\r\n.S.\r\n#.#\r\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, "#.#\n.S.\n#.#\n", g.String())

	s, ok := g.Find('S')
	require.True(t, ok)
	assert.Equal(t, gridgraph.Point{Row: 1, Col: 1}, s)
	assert.Len(t, g.FindAll('#'), 4)

	_, ok = g.Get(gridgraph.Point{Row: 3, Col: 0})
	assert.False(t, ok)

	cp := g.Clone()
	cp.Set(s, '.')
	assert.Equal(t, byte('S'), g.At(s))
}

func TestNeighbors(t *testing.T) {
	g, err := gridgraph.ParseString("#.#\n.S.\n#.#")
	require.NoError(t, err)
	open := func(c byte) bool { return c != '#' }
	center := gridgraph.Point{Row: 1, Col: 1}

	assert.Len(t, g.Neighbors(center, gridgraph.Conn4, open), 4)
	assert.Len(t, g.Neighbors(center, gridgraph.Conn8, open), 4)
	assert.Len(t, g.Neighbors(center, gridgraph.Conn8, nil), 8)
	// corners only see in-bounds cells
	assert.Len(t, g.Neighbors(gridgraph.Point{}, gridgraph.Conn8, nil), 3)
}

func TestDir(t *testing.T) {
	for _, d := range gridgraph.Dirs {
		assert.Equal(t, d, d.Reverse().Reverse())
		assert.Equal(t, d.Reverse(), d.Turn(true).Turn(true))
		assert.Equal(t, d, d.Turn(true).Turn(false))
		back, ok := gridgraph.DirFromByte(d.String()[0])
		require.True(t, ok)
		assert.Equal(t, d, back)
	}
	p := gridgraph.Point{Row: 2, Col: 2}
	assert.Equal(t, gridgraph.Point{Row: 1, Col: 2}, p.Step(gridgraph.Up))
	assert.Equal(t, 4, p.Manhattan(gridgraph.Point{Row: 0, Col: 4}))
	assert.Equal(t, "2,2", p.ID())
}

func TestDigits(t *testing.T) {
	g, _ := gridgraph.ParseString("12\n34")
	c, err := gridgraph.Digits(g)
	require.NoError(t, err)
	assert.Equal(t, 4, c.At(gridgraph.Point{Row: 1, Col: 1}))

	g, _ = gridgraph.ParseString("1x")
	_, err = gridgraph.Digits(g)
	require.ErrorIs(t, err, gridgraph.ErrBadDigit)
}

func TestComponents(t *testing.T) {
	g, err := gridgraph.ParseString(".##.\n##..\n..##")
	require.NoError(t, err)
	land := func(c byte) bool { return c == '#' }

	comps := g.Components(gridgraph.Conn4, land)
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 4)
	assert.Len(t, comps[1], 2)

	// diagonal touch merges them
	assert.Len(t, g.Components(gridgraph.Conn8, land), 1)
	assert.True(t, g.TouchesBorder(comps[0]))
}

func TestToCoreGraph(t *testing.T) {
	g, _ := gridgraph.ParseString("..#\n...")
	cg := g.ToCoreGraph(func(c byte) bool { return c != '#' })
	assert.Equal(t, 5, cg.VertexCount())
	// 0,0-0,1  0,0-1,0  0,1-1,1  1,0-1,1  1,1-1,2
	assert.Equal(t, 5, cg.EdgeCount())
	assert.True(t, cg.HasEdge("1,2", "1,1"))
	assert.False(t, cg.HasVertex("0,2"))
}
