package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/advent2023/core"
	"github.com/katalvlaran/advent2023/dijkstra"
)

func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("A", "C", 7)

	dist, prev, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	fmt.Println(dist["C"], dijkstra.Path(prev, "A", "C"))
	// Output: 5 [A B C]
}

func ExampleSearch() {
	// smallest number of doublings and increments to get from 1 to 10
	next := func(n int, emit dijkstra.Emit[int]) {
		emit(n+1, 1)
		if n*2 <= 10 {
			emit(n*2, 1)
		}
	}
	res, _ := dijkstra.Search([]int{1}, next, func(n int) bool { return n == 10 })
	fmt.Println(res.Cost)
	// Output: 4
}
