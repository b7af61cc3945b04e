package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/gridgraph"
)

const hikeMap = `#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#`

func open(c byte) bool { return c != '#' }

func slopes(g *gridgraph.Grid, from gridgraph.Point, d gridgraph.Dir) bool {
	if want, ok := gridgraph.DirFromByte(g.At(from)); ok {
		return want == d
	}
	return true
}

func hike(t *testing.T) (*gridgraph.Grid, gridgraph.Point, gridgraph.Point) {
	t.Helper()
	g, err := gridgraph.ParseString(hikeMap)
	require.NoError(t, err)
	return g, gridgraph.Point{Row: 0, Col: 1}, gridgraph.Point{Row: g.Rows - 1, Col: g.Cols - 2}
}

// gridDistances runs a plain BFS over every open cell from src.
func gridDistances(g *gridgraph.Grid, src gridgraph.Point) map[gridgraph.Point]int {
	dist := map[gridgraph.Point]int{src: 0}
	queue := []gridgraph.Point{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u, gridgraph.Conn4, open) {
			if _, seen := dist[v]; !seen {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

func TestCompress_Shape(t *testing.T) {
	g, start, goal := hike(t)
	c, err := gridgraph.Compress(g, start, goal, open, nil)
	require.NoError(t, err)

	require.Equal(t, 0, c.Index[start])
	require.Equal(t, len(c.Nodes)-1, c.Index[goal])
	// start, goal and seven junctions
	assert.Len(t, c.Nodes, 9)
	for from, arcs := range c.Adj {
		for _, a := range arcs {
			assert.Positive(t, a.Weight, "arc %d->%d", from, a.To)
		}
	}

	_, err = gridgraph.Compress(g, gridgraph.Point{Row: -1}, goal, open, nil)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestCompress_PreservesDistances checks that shortest distances between
// decision points are the same before and after compression.
func TestCompress_PreservesDistances(t *testing.T) {
	g, start, goal := hike(t)
	c, err := gridgraph.Compress(g, start, goal, open, nil)
	require.NoError(t, err)

	n := len(c.Nodes)
	fw := make([][]int, n)
	for i := range fw {
		fw[i] = make([]int, n)
		for j := range fw[i] {
			fw[i][j] = math.MaxInt32
		}
		fw[i][i] = 0
	}
	for from, arcs := range c.Adj {
		for _, a := range arcs {
			fw[from][a.To] = min(fw[from][a.To], a.Weight)
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				fw[i][j] = min(fw[i][j], fw[i][k]+fw[k][j])
			}
		}
	}

	for i, p := range c.Nodes {
		want := gridDistances(g, p)
		for j, q := range c.Nodes {
			assert.Equal(t, want[q], fw[i][j], "distance %v -> %v", p, q)
		}
	}
}

func TestCompress_SlopesAreOneWay(t *testing.T) {
	g, start, goal := hike(t)
	undirected, err := gridgraph.Compress(g, start, goal, open, nil)
	require.NoError(t, err)
	directed, err := gridgraph.Compress(g, start, goal, open, slopes)
	require.NoError(t, err)

	assert.Equal(t, undirected.Nodes, directed.Nodes)
	assert.Less(t, directed.Arcs(), undirected.Arcs())
	// nothing climbs back to the start
	for _, arcs := range directed.Adj {
		for _, a := range arcs {
			assert.NotEqual(t, 0, a.To)
		}
	}

	cg := directed.ToCoreGraph()
	assert.Equal(t, len(directed.Nodes), cg.VertexCount())
	assert.Equal(t, directed.Arcs(), cg.EdgeCount())
}
