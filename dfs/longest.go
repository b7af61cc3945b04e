package dfs

import "fmt"

// cancelCheckInterval is how many expansions pass between context checks.
const cancelCheckInterval = 1 << 14

// LongestPath returns the length of the longest simple path from start to
// goal in the weighted directed graph adj, where adj[u] lists the arcs
// leaving node u.
//
// The search is exhaustive depth-first backtracking with a per-path visited
// bitset, so it is exponential in the worst case. Run it on a
// junction-compressed graph. If exactly one node has an arc into goal,
// reaching that node commits the path to goal; this prunes most of the tree
// on grid mazes without changing the result.
//
// Errors:
//   - ErrNodeIndex for start or goal outside adj.
//   - ErrTooLarge for more than 64 nodes.
//   - ErrNoPath when goal is unreachable from start.
//   - the context error when cancelled via WithCancelContext.
func LongestPath(adj [][]Arc, start, goal int, opts ...Option) (int, error) {
	n := len(adj)
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return 0, fmt.Errorf("%w: start=%d goal=%d nodes=%d", ErrNodeIndex, start, goal, n)
	}
	if n > 64 {
		return 0, fmt.Errorf("%w: %d nodes", ErrTooLarge, n)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.ctx.Err(); err != nil {
		return 0, err
	}

	s := &longestSearch{adj: adj, goal: goal, gate: -1, best: -1, ctx: o}
	s.findGate()
	if start == goal {
		return 0, nil
	}
	s.visit(start, uint64(1)<<start, 0)
	if s.err != nil {
		return 0, s.err
	}
	if s.best < 0 {
		return 0, ErrNoPath
	}

	return s.best, nil
}

type longestSearch struct {
	adj      [][]Arc
	goal     int
	gate     int // sole predecessor of goal, or -1
	gateArc  int
	best     int
	expanded int
	ctx      options
	err      error
}

// findGate records the only node with an arc into goal, if there is exactly one.
func (s *longestSearch) findGate() {
	gate, weight := -1, 0
	for u, arcs := range s.adj {
		if u == s.goal {
			continue
		}
		for _, a := range arcs {
			if a.To != s.goal {
				continue
			}
			if gate >= 0 && gate != u {
				return
			}
			gate, weight = u, max(weight, a.Weight)
		}
	}
	s.gate, s.gateArc = gate, weight
}

func (s *longestSearch) visit(u int, seen uint64, dist int) {
	if s.err != nil {
		return
	}
	s.expanded++
	if s.expanded%cancelCheckInterval == 0 {
		if err := s.ctx.ctx.Err(); err != nil {
			s.err = err
			return
		}
	}
	if u == s.goal {
		s.best = max(s.best, dist)
		return
	}
	if u == s.gate {
		s.best = max(s.best, dist+s.gateArc)
		return
	}
	for _, a := range s.adj[u] {
		bit := uint64(1) << a.To
		if seen&bit != 0 {
			continue
		}
		s.visit(a.To, seen|bit, dist+a.Weight)
	}
}
