// Package flow computes maximum flow and minimum cuts on *core.Graph with the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// # Graph Support
//
//   - Directed edges are arcs with capacity equal to their weight.
//   - Undirected edges become two opposing arcs of equal capacity.
//   - On an unweighted graph every edge has capacity 1.
//   - Parallel edges add up; loops are ignored.
//
// # Minimum cut
//
// After the run, Result.SourceSide holds every vertex reachable from the
// source in the residual network. By max-flow/min-cut duality the edges
// leaving that set form a minimum cut whose capacity equals Result.MaxFlow.
//
// WithLimit(k) stops after k augmenting paths, which turns the run into an
// O(k·E) test of "is the s–t edge connectivity below k".
//
// # Errors
//
//	ErrGraphNil       - nil graph.
//	ErrSourceNotFound - the source vertex is missing.
//	ErrSinkNotFound   - the sink vertex is missing.
//	ErrSameSourceSink - source == sink.
//	ErrBadLimit       - WithLimit with k <= 0.
//	EdgeError         - a negative capacity.
//	context.Canceled / context.DeadlineExceeded - if ctx is done.
package flow
