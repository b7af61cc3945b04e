// SPDX-License-Identifier: MIT

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID. Missing endpoints are
// created. Undirected edges are mirrored in the adjacency index.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrBadWeight: if the graph is unweighted and weight != 0.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed: if from→to exists and multi-edges are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e
	linkEdge(g, e)

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
//
// Errors:
//   - ErrEdgeNotFound: if no edge has the given ID.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	unlinkEdge(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists. Undirected edges
// answer in both directions.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the edge with the given ID. The result is read-only.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by insertion order (Edge.ID sequence).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID. Safe for concurrent callers.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence of a generated edge ID.
func edgeSeq(eid string) uint64 {
	n, err := strconv.ParseUint(eid[1:], 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// sortEdges orders edges by their numeric ID sequence so "e10" follows "e9".
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeSeq(es[i].ID) < edgeSeq(es[j].ID) })
}

// linkEdge registers e in the adjacency index. Caller holds muEdgeAdj.
func linkEdge(g *Graph, e *Edge) {
	ensureAdjacency(g, e.From, e.To)
	g.adjacency[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacency[e.To][e.From][e.ID] = struct{}{}
	}
}

// unlinkEdge removes e from the adjacency index. Caller holds muEdgeAdj.
func unlinkEdge(g *Graph, e *Edge) {
	if inner, ok := g.adjacency[e.From][e.To]; ok {
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if !e.Directed {
		if inner, ok := g.adjacency[e.To][e.From]; ok {
			delete(inner, e.ID)
			if len(inner) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}

func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}
