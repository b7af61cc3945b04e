package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoStart is returned when a state-space search is given no start state.
	ErrNoStart = errors.New("bfs: no start state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a search over states of type S.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when the search is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize BFS execution.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip transitions by returning false.
	FilterNeighbor func(curr, next S) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and no hooks.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:            context.Background(),
		OnVisit:        func(S, int) error { return nil },
		FilterNeighbor: func(_, _ S) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips transitions when fn returns false.
func WithFilterNeighbor[S comparable](fn func(curr, next S) bool) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: distance (in steps) from the nearest start state.
type Result[S comparable] struct {
	Order []S
	Depth map[S]int
}

// Reached reports whether s was discovered.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// CountAtParity counts discovered states whose depth has the same parity as
// n and does not exceed n: the states occupiable after exactly n steps when
// every move can be undone.
func (r *Result[S]) CountAtParity(n int) int {
	count := 0
	for _, d := range r.Depth {
		if d <= n && d%2 == n%2 {
			count++
		}
	}

	return count
}
