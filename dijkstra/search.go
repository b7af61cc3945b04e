package dijkstra

import (
	"container/heap"
	"fmt"
)

// Emit is handed to a successor function; call it once per reachable next
// state together with the cost of the move.
type Emit[S comparable] func(next S, cost int)

// SearchResult reports the outcome of Search.
//
// Cost is the minimum total cost to the first goal state popped, Goal is that
// state, and Expanded counts distinct states settled along the way.
type SearchResult[S comparable] struct {
	Cost     int
	Goal     S
	Expanded int
}

// Search runs uniform-cost search over an implicit state graph.
//
// starts seeds the frontier at cost 0. successors is called once per settled
// state and reports each next state with a non-negative move cost. The
// search terminates on the first pop of a state satisfying goal; because
// costs are non-negative, that cost is minimal over every path the
// successor function can generate.
//
// Errors:
//   - ErrNoStart when starts is empty.
//   - ErrNegativeWeight when a successor reports a negative cost.
//   - ErrNoPath when the frontier empties without reaching a goal.
//
// Complexity: O((V + E) log E) for V settled states and E emitted moves.
func Search[S comparable](starts []S, successors func(s S, emit Emit[S]), goal func(S) bool) (SearchResult[S], error) {
	var zero SearchResult[S]
	if len(starts) == 0 {
		return zero, ErrNoStart
	}

	best := make(map[S]int, 1024)
	settled := make(map[S]struct{}, 1024)
	pq := make(statePQ[S], 0, 1024)
	for _, s := range starts {
		best[s] = 0
		heap.Push(&pq, stateItem[S]{state: s})
	}

	var (
		cur    stateItem[S]
		badErr error
	)
	emit := func(next S, cost int) {
		if cost < 0 {
			if badErr == nil {
				badErr = fmt.Errorf("%w: step %v→%v cost=%d", ErrNegativeWeight, cur.state, next, cost)
			}
			return
		}
		if _, done := settled[next]; done {
			return
		}
		nd := cur.cost + cost
		if old, seen := best[next]; seen && old <= nd {
			return
		}
		best[next] = nd
		heap.Push(&pq, stateItem[S]{state: next, cost: nd})
	}

	for pq.Len() > 0 {
		cur = heap.Pop(&pq).(stateItem[S])
		if _, done := settled[cur.state]; done {
			continue
		}
		settled[cur.state] = struct{}{}
		if goal(cur.state) {
			return SearchResult[S]{Cost: cur.cost, Goal: cur.state, Expanded: len(settled)}, nil
		}
		successors(cur.state, emit)
		if badErr != nil {
			return zero, badErr
		}
	}

	return zero, ErrNoPath
}

// stateItem is a frontier entry: a state and its tentative cost.
type stateItem[S comparable] struct {
	state S
	cost  int
}

// statePQ is a min-heap of stateItem ordered by cost ascending.
type statePQ[S comparable] []stateItem[S]

func (pq statePQ[S]) Len() int            { return len(pq) }
func (pq statePQ[S]) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq statePQ[S]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ[S]) Push(x interface{}) { *pq = append(*pq, x.(stateItem[S])) }
func (pq *statePQ[S]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
