// Package bfs provides breadth-first search over implicit state spaces and
// over a core.Graph, returning unweighted distances and visit order.
//
// What
//
//   - Reach explores any comparable state type from one or more start states,
//     given a successor function. Flood fills, beam propagation and garden
//     walks are all expressed this way.
//   - Graph explores a *core.Graph from a start vertex following
//     core.NeighborIDs.
//   - Both return a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance (steps) from the nearest start
//   - Allows filtering of individual transitions via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Successors are enqueued in the order the successor function returns them;
//	core.NeighborIDs is sorted, so Graph visit order is fully reproducible.
//
// Complexity (V = states, E = transitions)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Reach([]Point{start}, next, bfs.WithMaxDepth[Point](64))
//	if err != nil {
//	    // ErrNoStart, ErrOptionViolation, ctx error, or hook error
//	}
//	plots := res.CountAtParity(64)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNoStart              if Reach is given no start states.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
