package flow

import (
	"context"

	"github.com/katalvlaran/advent2023/core"
)

// arc is one direction of a residual edge; rev indexes the paired arc in
// the adjacency list of to.
type arc struct {
	to  int
	rev int
	cap int64
}

// network is the indexed residual graph built from a *core.Graph.
type network struct {
	ids   []string
	index map[string]int
	adj   [][]arc
}

// addArc inserts u→v with capacity c and its zero-capacity reverse.
// For undirected edges the reverse gets the same capacity.
func (n *network) addArc(u, v int, c, back int64) {
	n.adj[u] = append(n.adj[u], arc{to: v, rev: len(n.adj[v]), cap: c})
	n.adj[v] = append(n.adj[v], arc{to: u, rev: len(n.adj[u]) - 1, cap: back})
}

// buildNetwork copies g into a residual network.
//
// Capacity is the edge weight on a weighted graph and 1 otherwise. Each
// undirected edge becomes a pair of opposing arcs of equal capacity. Loops
// carry no flow and are skipped.
//
// Complexity: O(V + E).
func buildNetwork(ctx context.Context, g *core.Graph) (*network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids := g.Vertices()
	n := &network{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		adj:   make([][]arc, len(ids)),
	}
	for i, id := range ids {
		n.index[id] = i
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		c := int64(1)
		if g.Weighted() {
			c = e.Weight
		}
		if c < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: c}
		}
		var back int64
		if !e.Directed {
			back = c
		}
		n.addArc(n.index[e.From], n.index[e.To], c, back)
	}

	return n, nil
}
