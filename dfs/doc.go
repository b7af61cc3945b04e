// Package dfs implements depth-first algorithms: topological sort on a
// directed core.Graph and exhaustive longest simple path on a small indexed
// graph.
//
// What:
//
//   - TopologicalSort: linear ordering of a directed acyclic graph using
//     White/Gray/Black vertex coloring; a Gray hit is a back-edge and yields
//     ErrCycleDetected.
//   - LongestPath: backtracking search for the longest path that never
//     revisits a node. The visited set travels with the path (a uint64
//     bitset), not with the search, so every simple path is considered.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - LongestPath:     Time O(number of simple paths), Memory O(depth)
//
// Errors:
//
//   - ErrGraphNil, ErrGraphNotDirected, ErrCycleDetected, ErrNeighborFetch
//   - ErrNodeIndex, ErrTooLarge, ErrNoPath
//   - context.Canceled when WithCancelContext is cancelled
package dfs
