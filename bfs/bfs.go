package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/advent2023/core"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	s     S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  func(S) ([]S, error)
	opts  Options[S]
	ctx   context.Context
	queue []queueItem[S]
	res   *Result[S]
}

// Reach runs a multi-source breadth-first search over an implicit state space.
// next returns the successors of a state; states are deduplicated by equality.
// Returns ErrNoStart for an empty start set, ErrOptionViolation for bad
// options, the context error on cancellation, or a wrapped OnVisit error.
func Reach[S comparable](starts []S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	if len(starts) == 0 {
		return nil, ErrNoStart
	}

	return run(starts, func(s S) ([]S, error) { return next(s), nil }, opts)
}

// Graph runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func Graph(g *core.Graph, startID string, opts ...Option[string]) (*Result[string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	return run([]string{startID}, func(id string) ([]string, error) {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		return nbrs, nil
	}, opts)
}

func run[S comparable](starts []S, next func(S) ([]S, error), opts []Option[S]) (*Result[S], error) {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next:  next,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[S], 0, len(starts)),
		res: &Result[S]{
			Depth: make(map[S]int),
		},
	}
	for _, s := range starts {
		if !w.res.Reached(s) {
			w.enqueue(s, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue marks s discovered at depth d and adds it to the queue.
func (w *walker[S]) enqueue(s S, d int) {
	w.res.Depth[s] = d
	w.queue = append(w.queue, queueItem[S]{s: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.s)
		if err := w.opts.OnVisit(item.s, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.s, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		nbrs, err := w.next(item.s)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if !w.opts.FilterNeighbor(item.s, nbr) || w.res.Reached(nbr) {
				continue
			}
			w.enqueue(nbr, item.depth+1)
		}
	}

	return nil
}
