// SPDX-License-Identifier: MIT

package core

import "sort"

// Neighbors returns the edges leaving id: outgoing edges for a directed graph,
// incident edges for an undirected one. Self-loops appear once.
// The result is sorted by Edge.ID sequence; treat the edges as read-only.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			if e := g.edges[eid]; e != nil {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique IDs adjacent to id, sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		other := e.Other(id)
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	sort.Strings(out)

	return out, nil
}
