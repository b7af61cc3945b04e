// Package dijkstra implements uniform-cost shortest-path search with
// non-negative weights, in two flavors.
//
// Overview:
//
//   - Dijkstra runs on an explicit weighted *core.Graph and returns the
//     distance (and optionally the predecessor) of every vertex.
//   - Search runs on an implicit state graph given by a successor function.
//     States carry whatever auxiliary data the puzzle needs (heading, streak
//     length) and are deduplicated by equality. It stops on the first goal pop.
//
// Key features:
//
//   - Functional options for the graph variant: ReturnPath, MaxDistance.
//   - Lazy decrease-key: improved distances push duplicates; stale heap entries
//     are skipped when popped.
//   - Explicit failure: an unreachable goal is ErrNoPath, never a panic.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (duplicate heap entries under lazy decrease-key)
//
// Example:
//
//	res, err := dijkstra.Search([]State{start}, successors, isGoal)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // goal unreachable
//	}
//	fmt.Println(res.Cost)
package dijkstra
