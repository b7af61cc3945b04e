package dfs

import (
	"fmt"

	"github.com/katalvlaran/advent2023/core"
)

// frame is one entry of the explicit DFS stack: a vertex and the index of
// the next outgoing edge to explore.
type frame struct {
	id   string
	next int
	out  []*core.Edge
}

// TopologicalSort computes a linear ordering of all vertices in the directed
// graph g such that for every edge u→v, u appears before v.
//
// Vertices are rooted in sorted order and edges followed in core.Neighbors
// order, so the result is deterministic. The traversal uses an explicit
// stack; deep chains do not grow the goroutine stack.
//
// Errors:
//   - ErrGraphNil, ErrGraphNotDirected for invalid input.
//   - ErrCycleDetected when a back-edge is found.
//   - ErrNeighborFetch when neighbor lookup fails.
//   - the context error when cancelled via WithCancelContext.
//
// Complexity: Time O(V + E), Memory O(V).
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrGraphNotDirected
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	order := make([]string, 0, len(verts))
	push := func(stack []frame, id string) ([]frame, error) {
		out, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		state[id] = Gray
		return append(stack, frame{id: id, out: out}), nil
	}

	for _, root := range verts {
		if state[root] != White {
			continue
		}
		stack, err := push(nil, root)
		if err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			select {
			case <-o.ctx.Done():
				return nil, o.ctx.Err()
			default:
			}

			top := &stack[len(stack)-1]
			if top.next == len(top.out) {
				state[top.id] = Black
				order = append(order, top.id)
				stack = stack[:len(stack)-1]
				continue
			}
			to := top.out[top.next].To
			top.next++
			switch state[to] {
			case Gray:
				return nil, fmt.Errorf("%w: via %s→%s", ErrCycleDetected, top.id, to)
			case White:
				if stack, err = push(stack, to); err != nil {
					return nil, err
				}
			}
		}
	}

	// reverse post-order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
