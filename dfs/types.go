package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states used by TopologicalSort.
const (
	White = iota // not visited yet
	Gray         // on the current DFS stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrGraphNotDirected is returned when TopologicalSort is given an undirected graph.
	ErrGraphNotDirected = errors.New("dfs: graph must be directed")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

	// ErrNoPath indicates LongestPath found no simple path from start to goal.
	ErrNoPath = errors.New("dfs: no path to goal")

	// ErrTooLarge indicates LongestPath was given more nodes than its visited bitset holds.
	ErrTooLarge = errors.New("dfs: too many nodes for exhaustive search")

	// ErrNodeIndex indicates a start or goal index outside the adjacency list.
	ErrNodeIndex = errors.New("dfs: node index out of range")
)

// Option configures cancellation for the traversals in this package.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Arc is a weighted directed edge to node To.
type Arc struct {
	To     int
	Weight int
}
