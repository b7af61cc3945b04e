// Package gridgraph models puzzle input as a rectangular character grid and
// treats it as a graph.
//
// What:
//
//   - Grid wraps a rectangular character grid parsed from text lines; rows of
//     differing length are rejected with ErrNonRectangular.
//   - Point is a row-major (Row, Col) coordinate; Dir is one of the four
//     orthogonal headings with Turn and Reverse for successor generation.
//   - Cells[T] is a dense typed grid (Digits builds integer cost grids).
//   - Components identifies connected regions (flood fill) under Conn4 or Conn8.
//   - ToCoreGraph converts passable cells to a *core.Graph for graph algorithms.
//   - Compress performs junction compression: maximal runs of degree-2
//     corridor cells collapse into single weighted arcs between decision points.
//
// Complexity:
//
//   - Parse, Components, ToCoreGraph, Compress: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a required point lies outside the grid.
//   - ErrBadDigit: Digits met a non-digit cell.
package gridgraph
