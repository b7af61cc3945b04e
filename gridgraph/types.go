package gridgraph

import (
	"errors"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid was used where a cell is required.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBadDigit indicates a non-digit cell in a digit cost grid.
	ErrBadDigit = errors.New("gridgraph: cell is not a decimal digit")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns neighbor deltas for the connectivity, in clockwise order from north.
func (c Connectivity) offsets() []Point {
	if c == Conn8 {
		return []Point{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return []Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Point is a row-major grid coordinate. Row grows downward, Col grows rightward.
type Point struct {
	Row, Col int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.Row + q.Row, p.Col + q.Col} }

// Scale returns p multiplied component-wise by k.
func (p Point) Scale(k int) Point { return Point{p.Row * k, p.Col * k} }

// Step returns the neighbor of p in direction d.
func (p Point) Step(d Dir) Point { return p.Add(d.Delta()) }

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return Abs(p.Row-q.Row) + Abs(p.Col-q.Col)
}

// ID is the vertex identifier used when a grid is converted to a core.Graph.
func (p Point) ID() string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col)
}

func (p Point) String() string { return "<" + p.ID() + ">" }

// Dir is one of the four orthogonal headings.
type Dir uint8

const (
	Up Dir = iota
	Right
	Down
	Left
)

// Dirs lists the four headings clockwise from Up.
var Dirs = [4]Dir{Up, Right, Down, Left}

// Delta returns the unit step of d.
func (d Dir) Delta() Point {
	switch d {
	case Up:
		return Point{-1, 0}
	case Right:
		return Point{0, 1}
	case Down:
		return Point{1, 0}
	default:
		return Point{0, -1}
	}
}

// Reverse returns the opposite heading.
func (d Dir) Reverse() Dir { return (d + 2) % 4 }

// Turn rotates d by a quarter turn, clockwise when right is true.
func (d Dir) Turn(right bool) Dir {
	if right {
		return (d + 1) % 4
	}

	return (d + 3) % 4
}

// Vertical reports whether d is Up or Down.
func (d Dir) Vertical() bool { return d == Up || d == Down }

func (d Dir) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	default:
		return "<"
	}
}

// DirFromByte parses the arrow and letter spellings used by puzzle inputs
// ('^','>','v','<' and 'U','R','D','L').
func DirFromByte(b byte) (Dir, bool) {
	switch b {
	case '^', 'U':
		return Up, true
	case '>', 'R':
		return Right, true
	case 'v', 'D':
		return Down, true
	case '<', 'L':
		return Left, true
	}

	return 0, false
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
