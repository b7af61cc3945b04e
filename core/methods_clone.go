// SPDX-License-Identifier: MIT

package core

// cloneEmpty returns a new Graph with the same options and vertices but no edges.
func (g *Graph) cloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.vertices)),
	}
	for id := range g.vertices {
		out.vertices[id] = &Vertex{ID: id}
		out.adjacency[id] = make(map[string]map[string]struct{})
	}

	return out
}

// Clone returns a deep copy of g. Edge IDs and the ID sequence are preserved,
// so edges added later to the clone never collide with copied ones.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := g.cloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out.nextEdgeID = g.nextEdgeID
	for eid, e := range g.edges {
		cp := *e
		out.edges[eid] = &cp
		linkEdge(out, &cp)
	}

	return out
}
