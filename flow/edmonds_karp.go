package flow

import (
	"context"
	"sort"

	"github.com/katalvlaran/advent2023/core"
)

// EdmondsKarp computes the maximum flow from source to sink using shortest
// (fewest-arc) augmenting paths found by BFS.
//
// Errors:
//   - ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound, ErrSameSourceSink.
//   - EdgeError on a negative capacity.
//   - ErrBadLimit from WithLimit.
//   - ctx.Err() when the context is canceled between augmentations.
//
// Complexity: O(V · E²); O(k · E) with WithLimit(k).
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink string, opts ...Option) (Result, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return Result{}, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return Result{}, ErrSinkNotFound
	}
	if source == sink {
		return Result{}, ErrSameSourceSink
	}

	n, err := buildNetwork(ctx, g)
	if err != nil {
		return Result{}, err
	}
	s, t := n.index[source], n.index[sink]

	var (
		res   Result
		paths int
	)
	for {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		if cfg.Limit > 0 && paths == cfg.Limit {
			res.Limited = true
			break
		}
		parent, ok := n.augmentingPath(s, t)
		if !ok {
			break
		}
		res.MaxFlow += n.augment(parent, s, t)
		paths++
	}
	res.SourceSide = n.reachable(s)

	return res, nil
}

// step records the arc used to enter a vertex during BFS.
type step struct {
	from int
	arc  int
}

// augmentingPath runs BFS over arcs with spare capacity and returns the
// parent steps when t was reached.
func (n *network) augmentingPath(s, t int) ([]step, bool) {
	parent := make([]step, len(n.adj))
	for i := range parent {
		parent[i].from = -1
	}
	parent[s].from = s
	queue := []int{s}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for i, a := range n.adj[u] {
			if a.cap <= 0 || parent[a.to].from != -1 {
				continue
			}
			parent[a.to] = step{from: u, arc: i}
			if a.to == t {
				return parent, true
			}
			queue = append(queue, a.to)
		}
	}

	return nil, false
}

// augment pushes the bottleneck along the parent chain and returns it.
func (n *network) augment(parent []step, s, t int) int64 {
	bottle := int64(-1)
	for v := t; v != s; v = parent[v].from {
		c := n.adj[parent[v].from][parent[v].arc].cap
		if bottle < 0 || c < bottle {
			bottle = c
		}
	}
	for v := t; v != s; v = parent[v].from {
		a := &n.adj[parent[v].from][parent[v].arc]
		a.cap -= bottle
		n.adj[v][a.rev].cap += bottle
	}

	return bottle
}

// reachable lists the vertex IDs reachable from s through arcs with spare
// capacity, sorted ascending.
func (n *network) reachable(s int) []string {
	seen := make([]bool, len(n.adj))
	seen[s] = true
	queue := []int{s}
	for head := 0; head < len(queue); head++ {
		for _, a := range n.adj[queue[head]] {
			if a.cap > 0 && !seen[a.to] {
				seen[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}
	out := make([]string, 0, len(queue))
	for _, v := range queue {
		out = append(out, n.ids[v])
	}
	sort.Strings(out)

	return out
}
