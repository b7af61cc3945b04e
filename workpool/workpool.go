// Package workpool runs independent, CPU-bound jobs on a bounded number of
// goroutines and folds their results deterministically.
package workpool

import (
	"context"
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/advent2023/interval"
)

// MapReduce applies fn to every item with at most workers goroutines in
// flight (workers <= 0 means GOMAXPROCS) and folds the results with reduce,
// starting from zero, in item order. Ordered folding keeps non-commutative
// reducers deterministic.
//
// The first error cancels the context handed to the remaining calls and is
// returned; no partial result is reported.
func MapReduce[I, O any](
	ctx context.Context,
	workers int,
	items []I,
	fn func(context.Context, I) (O, error),
	reduce func(acc, next O) O,
	zero O,
) (O, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]O, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := fn(gctx, item)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}

	acc := zero
	for _, r := range results {
		acc = reduce(acc, r)
	}

	return acc, nil
}

// Map is MapReduce that keeps every result, in item order.
func Map[I, O any](ctx context.Context, workers int, items []I, fn func(context.Context, I) (O, error)) ([]O, error) {
	wrap := func(ctx context.Context, item I) ([]O, error) {
		out, err := fn(ctx, item)
		return []O{out}, err
	}
	return MapReduce(ctx, workers, items, wrap, func(acc, next []O) []O { return append(acc, next...) }, make([]O, 0, len(items)))
}

// Chunks splits [0, n) into consecutive ranges of at most size integers.
// size <= 0 yields a single chunk.
func Chunks[T constraints.Integer](n, size T) []interval.Range[T] {
	if n <= 0 {
		return nil
	}
	if size <= 0 {
		size = n
	}
	out := make([]interval.Range[T], 0, int(n/size)+1)
	for lo := T(0); lo < n; lo += size {
		out = append(out, interval.Range[T]{Lo: lo, Hi: min(lo+size, n)})
	}

	return out
}
