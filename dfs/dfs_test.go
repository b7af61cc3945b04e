package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/core"
	"github.com/katalvlaran/advent2023/dfs"
)

func directed(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	return g
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(core.NewGraph())
	require.ErrorIs(t, err, dfs.ErrGraphNotDirected)

	g := directed(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	_, err = dfs.TopologicalSort(g)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(directed(t, [2]string{"A", "B"}), dfs.WithCancelContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestTopologicalSort_RespectsEdges(t *testing.T) {
	edges := [][2]string{
		{"shirt", "tie"}, {"tie", "jacket"}, {"pants", "shoes"},
		{"pants", "belt"}, {"belt", "jacket"}, {"shirt", "belt"}, {"socks", "shoes"},
	}
	g := directed(t, edges...)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 7)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range edges {
		assert.Less(t, pos[e[0]], pos[e[1]], "%s must precede %s", e[0], e[1])
	}
}

func TestTopologicalSort_DeepChain(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	const n = 5000
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge(id(i), id(i+1), 0)
		require.NoError(t, err)
	}
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, id(0), order[0])
	assert.Equal(t, id(n-1), order[n-1])
}

func id(i int) string {
	const digits = "0123456789"
	return string([]byte{digits[i/1000%10], digits[i/100%10], digits[i/10%10], digits[i%10]})
}

func TestLongestPath(t *testing.T) {
	// 0 → 1 → 3 short, 0 → 2 → 1 → 3 long, and a tempting cycle 1 ↔ 2
	adj := [][]dfs.Arc{
		{{To: 1, Weight: 1}, {To: 2, Weight: 5}},
		{{To: 3, Weight: 1}, {To: 2, Weight: 10}},
		{{To: 1, Weight: 2}},
		{},
	}
	got, err := dfs.LongestPath(adj, 0, 3)
	require.NoError(t, err)
	// 0-1-2 is a dead end once 1 is used; best is 0-2-1-3
	assert.Equal(t, 8, got)

	got, err = dfs.LongestPath(adj, 3, 3)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = dfs.LongestPath(adj, 3, 0)
	require.ErrorIs(t, err, dfs.ErrNoPath)

	_, err = dfs.LongestPath(adj, 0, 7)
	require.ErrorIs(t, err, dfs.ErrNodeIndex)

	_, err = dfs.LongestPath(make([][]dfs.Arc, 65), 0, 1)
	require.ErrorIs(t, err, dfs.ErrTooLarge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.LongestPath(adj, 0, 3, dfs.WithCancelContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestLongestPath_MatchesBruteForce compares against plain enumeration on a
// dense undirected graph where the goal has several predecessors.
func TestLongestPath_MatchesBruteForce(t *testing.T) {
	const n = 7
	adj := make([][]dfs.Arc, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && (u+v)%3 != 0 {
				adj[u] = append(adj[u], dfs.Arc{To: v, Weight: (u*7 + v*3) % 11})
			}
		}
	}
	var brute func(u int, seen map[int]bool, dist int) int
	brute = func(u int, seen map[int]bool, dist int) int {
		if u == n-1 {
			return dist
		}
		best := -1
		for _, a := range adj[u] {
			if seen[a.To] {
				continue
			}
			seen[a.To] = true
			best = max(best, brute(a.To, seen, dist+a.Weight))
			delete(seen, a.To)
		}
		return best
	}

	got, err := dfs.LongestPath(adj, 0, n-1)
	require.NoError(t, err)
	assert.Equal(t, brute(0, map[int]bool{0: true}, 0), got)
}
