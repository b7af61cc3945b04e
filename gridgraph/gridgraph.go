package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent2023/core"
)

// Grid is a dense rectangular character grid. It is built once by Parse and
// is safe for concurrent reads; Set is the only mutator.
type Grid struct {
	Rows, Cols int
	cells      []byte
}

// Parse builds a Grid from text lines. Every line must have the same length.
// Returns ErrEmptyGrid for no rows or an empty first row and a wrapped
// ErrNonRectangular naming the first offending row.
// Complexity: O(W×H).
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	g := &Grid{Rows: len(lines), Cols: cols, cells: make([]byte, 0, len(lines)*cols)}
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r+1, len(line), cols)
		}
		g.cells = append(g.cells, line...)
	}

	return g, nil
}

// ParseString splits s into lines (tolerating CRLF and a trailing newline) and calls Parse.
func ParseString(s string) (*Grid, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil, ErrEmptyGrid
	}

	return Parse(strings.Split(s, "\n"))
}

// New returns a Grid of the given size with every cell set to fill.
func New(rows, cols int, fill byte) *Grid {
	g := &Grid{Rows: rows, Cols: cols, cells: make([]byte, rows*cols)}
	for i := range g.cells {
		g.cells[i] = fill
	}

	return g
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Get returns the cell at p and whether p is inside the grid.
func (g *Grid) Get(p Point) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}

	return g.cells[p.Row*g.Cols+p.Col], true
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Point) byte {
	return g.cells[p.Row*g.Cols+p.Col]
}

// Set overwrites the cell at p. p must be in bounds.
func (g *Grid) Set(p Point, b byte) {
	g.cells[p.Row*g.Cols+p.Col] = b
}

// Row returns row r as a string.
func (g *Grid) Row(r int) string {
	return string(g.cells[r*g.Cols : (r+1)*g.Cols])
}

// Find returns the first point (row-major) holding b.
func (g *Grid) Find(b byte) (Point, bool) {
	for i, c := range g.cells {
		if c == b {
			return g.Coordinate(i), true
		}
	}

	return Point{}, false
}

// FindAll returns every point holding b in row-major order.
func (g *Grid) FindAll(b byte) []Point {
	var out []Point
	for i, c := range g.cells {
		if c == b {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Neighbors returns the in-bounds neighbors of p under conn whose cell
// satisfies passable (nil accepts every cell).
func (g *Grid) Neighbors(p Point, conn Connectivity, passable func(byte) bool) []Point {
	offs := conn.offsets()
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		q := p.Add(d)
		c, ok := g.Get(q)
		if !ok || (passable != nil && !passable(c)) {
			continue
		}
		out = append(out, q)
	}

	return out
}

// Index maps p to its row-major index.
func (g *Grid) Index(p Point) int { return p.Row*g.Cols + p.Col }

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{idx / g.Cols, idx % g.Cols}
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{Rows: g.Rows, Cols: g.Cols, cells: make([]byte, len(g.cells))}
	copy(cp.cells, g.cells)

	return cp
}

func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.Rows)
	for r := 0; r < g.Rows; r++ {
		sb.WriteString(g.Row(r))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ToCoreGraph converts the passable cells of g into a weighted, undirected
// *core.Graph. Each cell becomes a vertex with ID Point.ID(); unit-weight
// edges join orthogonal passable neighbors.
// Complexity: O(W×H) time and memory.
func (g *Grid) ToCoreGraph(passable func(byte) bool) *core.Graph {
	cg := core.NewGraph(core.WithWeighted())
	for i, c := range g.cells {
		if !passable(c) {
			continue
		}
		p := g.Coordinate(i)
		_ = cg.AddVertex(p.ID())
		// Right and Down only, so every undirected pair is added once.
		for _, d := range []Dir{Right, Down} {
			q := p.Step(d)
			if nc, ok := g.Get(q); ok && passable(nc) {
				_, _ = cg.AddEdge(p.ID(), q.ID(), 1)
			}
		}
	}

	return cg
}
