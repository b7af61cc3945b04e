package flow

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameSourceSink is returned when source and sink name the same vertex.
	ErrSameSourceSink = errors.New("flow: source and sink are the same vertex")

	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrBadLimit is returned when WithLimit receives a non-positive bound.
	ErrBadLimit = errors.New("flow: augmentation limit must be positive")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// Result is the outcome of a max-flow run.
//
// MaxFlow is the flow pushed. SourceSide lists, sorted, the vertices still
// reachable from the source in the final residual network; when the run was
// not cut short by WithLimit they form the source side of a minimum cut.
// Limited is true when WithLimit stopped the search before saturation.
type Result struct {
	MaxFlow    int64
	SourceSide []string
	Limited    bool
}

// Options configures EdmondsKarp.
//   - Limit: stop after this many augmenting paths (0 means run to saturation).
type Options struct {
	Limit int
	err   error
}

// Option mutates Options.
type Option func(*Options)

// WithLimit stops the search after k augmenting paths. Useful when only
// "is the cut at most k-1" matters: with unit capacities, reaching the limit
// proves the flow is at least k.
func WithLimit(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadLimit, k)
			return
		}
		o.Limit = k
	}
}
