package gridgraph

// Components finds all contiguous regions of cells accepted by passable,
// according to conn. Components are discovered in row-major order of their
// first cell; each component lists its points in BFS order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(conn Connectivity, passable func(byte) bool) [][]Point {
	seen := make([]bool, len(g.cells))
	offsets := conn.offsets()
	var comps [][]Point

	for i0, c := range g.cells {
		if seen[i0] || !passable(c) {
			continue
		}
		queue := []Point{g.Coordinate(i0)}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range offsets {
				v := u.Add(d)
				vc, ok := g.Get(v)
				if !ok || !passable(vc) {
					continue
				}
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// TouchesBorder reports whether any point of comp lies on the outer frame of g.
func (g *Grid) TouchesBorder(comp []Point) bool {
	for _, p := range comp {
		if p.Row == 0 || p.Col == 0 || p.Row == g.Rows-1 || p.Col == g.Cols-1 {
			return true
		}
	}

	return false
}
