package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/advent2023/core"
)

// Arc is a weighted edge of a Compressed graph: the corridor from its owner
// node to node To is Weight steps long.
type Arc struct {
	To     int
	Weight int
}

// MoveFunc reports whether a walker standing on from may step in direction d.
// The target cell has already been checked for bounds and passability.
type MoveFunc func(g *Grid, from Point, d Dir) bool

// Compressed is the junction graph of a corridor grid. Nodes[i] is the grid
// point of node i, Index inverts Nodes, and Adj[i] lists the corridors that
// can be walked starting from node i.
type Compressed struct {
	Nodes []Point
	Index map[Point]int
	Adj   [][]Arc
}

// Compress collapses every maximal run of degree-2 corridor cells into a
// single weighted arc between decision points. Decision points are start,
// goal, and every passable cell with three or more passable neighbors.
//
// move restricts direction of travel (e.g. one-way slopes); nil allows every
// step. Corridors that dead-end, or that a one-way cell forces back the way
// they came, produce no arc. Arcs are directed; an undirected corridor yields
// one arc from each end.
//
// Errors:
//   - ErrOutOfBounds: start or goal outside the grid.
//
// Complexity: O(W×H) time, O(J + A) memory for J junctions and A arcs.
func Compress(g *Grid, start, goal Point, passable func(byte) bool, move MoveFunc) (*Compressed, error) {
	for _, p := range []Point{start, goal} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	if move == nil {
		move = func(*Grid, Point, Dir) bool { return true }
	}
	open := func(p Point) bool {
		c, ok := g.Get(p)
		return ok && passable(c)
	}

	c := &Compressed{Index: make(map[Point]int)}
	addNode := func(p Point) {
		if _, ok := c.Index[p]; ok {
			return
		}
		c.Index[p] = len(c.Nodes)
		c.Nodes = append(c.Nodes, p)
	}
	addNode(start)
	for i, cell := range g.cells {
		if !passable(cell) {
			continue
		}
		p := g.Coordinate(i)
		if len(g.Neighbors(p, Conn4, passable)) >= 3 {
			addNode(p)
		}
	}
	addNode(goal)

	c.Adj = make([][]Arc, len(c.Nodes))
	for from, p := range c.Nodes {
		for _, d := range Dirs {
			if to, length, ok := c.walk(g, p, d, open, move); ok {
				c.Adj[from] = append(c.Adj[from], Arc{To: to, Weight: length})
			}
		}
	}

	return c, nil
}

// walk follows the corridor leaving p in direction d until it reaches the
// next node.
func (c *Compressed) walk(g *Grid, p Point, d Dir, open func(Point) bool, move MoveFunc) (int, int, bool) {
	if !open(p.Step(d)) || !move(g, p, d) {
		return 0, 0, false
	}
	cur, heading, length := p.Step(d), d, 1
	for {
		if idx, ok := c.Index[cur]; ok {
			return idx, length, true
		}
		next, found := heading, false
		for _, nd := range Dirs {
			if nd == heading.Reverse() || !open(cur.Step(nd)) {
				continue
			}
			next, found = nd, true
			break
		}
		if !found || !move(g, cur, next) {
			return 0, 0, false
		}
		cur, heading = cur.Step(next), next
		length++
	}
}

// Arcs returns the number of arcs in c.
func (c *Compressed) Arcs() int {
	n := 0
	for _, arcs := range c.Adj {
		n += len(arcs)
	}

	return n
}

// ToCoreGraph returns c as a weighted, directed *core.Graph keyed by Point.ID().
// Parallel corridors and corridors that loop back to their own node are kept.
func (c *Compressed) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	for _, p := range c.Nodes {
		_ = g.AddVertex(p.ID())
	}
	for from, arcs := range c.Adj {
		for _, a := range arcs {
			_, _ = g.AddEdge(c.Nodes[from].ID(), c.Nodes[a.To].ID(), int64(a.Weight))
		}
	}

	return g
}
