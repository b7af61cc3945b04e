package gridgraph

import "fmt"

// Cells is a dense typed grid, typically a numeric cost per cell.
type Cells[T any] struct {
	Rows, Cols int
	data       []T
}

// NewCells returns a zero-valued Cells of the given size.
func NewCells[T any](rows, cols int) *Cells[T] {
	return &Cells[T]{Rows: rows, Cols: cols, data: make([]T, rows*cols)}
}

// MapCells converts every character of g with fn. The first error aborts the
// conversion and is returned wrapped with the failing point.
func MapCells[T any](g *Grid, fn func(byte) (T, error)) (*Cells[T], error) {
	out := NewCells[T](g.Rows, g.Cols)
	for i, c := range g.cells {
		v, err := fn(c)
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", g.Coordinate(i), err)
		}
		out.data[i] = v
	}

	return out, nil
}

// Digits converts a grid of decimal digits into integer costs.
func Digits(g *Grid) (*Cells[int], error) {
	return MapCells(g, func(c byte) (int, error) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadDigit, c)
		}
		return int(c - '0'), nil
	})
}

// InBounds reports whether p lies within the grid.
func (c *Cells[T]) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < c.Rows && p.Col >= 0 && p.Col < c.Cols
}

// At returns the value at p. p must be in bounds.
func (c *Cells[T]) At(p Point) T { return c.data[p.Row*c.Cols+p.Col] }

// Set overwrites the value at p. p must be in bounds.
func (c *Cells[T]) Set(p Point, v T) { c.data[p.Row*c.Cols+p.Col] = v }
