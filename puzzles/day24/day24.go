// Package day24 intersects hailstone trajectories and finds the rock throw
// that hits every hailstone.
package day24

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/advent2023/matrix"
	"github.com/katalvlaran/advent2023/puzzle"
)

// Hail is a hailstone's position at t=0 and its velocity per nanosecond.
type Hail struct {
	P, V [3]int64
}

// Solver implements puzzle.Solver for day 24.
type Solver struct {
	lo, hi int64
}

// WithBounds sets the test area used by part 1 on both X and Y.
func WithBounds(lo, hi int64) func(*Solver) {
	return func(s *Solver) { s.lo, s.hi = lo, hi }
}

// New returns the day 24 solver.
func New(opts ...func(*Solver)) *Solver {
	s := &Solver{lo: 200_000_000_000_000, hi: 400_000_000_000_000}
	for _, o := range opts {
		o(s)
	}

	return s
}

func (*Solver) Day() int { return 24 }

func (s *Solver) Solve(_ context.Context, in *puzzle.Input) ([]puzzle.Answer, error) {
	hail, err := Parse(in.Lines())
	if err != nil {
		return nil, err
	}
	answers := []puzzle.Answer{{Part: 1, Template: "Intersections: {}", Value: Crossings(hail, s.lo, s.hi)}}

	rock, err := Throw(hail)
	if err != nil {
		return answers, err
	}
	sum := new(big.Int).Add(big.NewInt(rock.P[0]), big.NewInt(rock.P[1]))
	sum.Add(sum, big.NewInt(rock.P[2]))

	return append(answers, puzzle.Answer{Part: 2, Template: "Stone start sum: {}", Value: sum}), nil
}

// Crossings counts pairs whose X/Y paths cross inside [lo, hi] on both axes,
// in the future for both stones. Parallel paths never count.
func Crossings(hail []Hail, lo, hi int64) int {
	bl, bh := new(big.Rat).SetInt64(lo), new(big.Rat).SetInt64(hi)
	n := 0
	for i, a := range hail {
		for _, b := range hail[i+1:] {
			x, y, ok := cross(a, b)
			if ok && x.Cmp(bl) >= 0 && x.Cmp(bh) <= 0 && y.Cmp(bl) >= 0 && y.Cmp(bh) <= 0 {
				n++
			}
		}
	}

	return n
}

// cross intersects the X/Y rays of a and b. Times are t = num/det for a and
// u = num/det for b; both must be non-negative.
func cross(a, b Hail) (*big.Rat, *big.Rat, bool) {
	det := a.V[0]*b.V[1] - a.V[1]*b.V[0]
	if det == 0 {
		return nil, nil, false
	}
	dx, dy := b.P[0]-a.P[0], b.P[1]-a.P[1]
	tn := big.NewInt(dx)
	tn.Mul(tn, big.NewInt(b.V[1])).Sub(tn, new(big.Int).Mul(big.NewInt(dy), big.NewInt(b.V[0])))
	un := big.NewInt(dx)
	un.Mul(un, big.NewInt(a.V[1])).Sub(un, new(big.Int).Mul(big.NewInt(dy), big.NewInt(a.V[0])))
	d := big.NewInt(det)
	if tn.Sign()*d.Sign() < 0 || un.Sign()*d.Sign() < 0 {
		return nil, nil, false
	}
	t := new(big.Rat).SetFrac(tn, d)

	x := new(big.Rat).Mul(t, new(big.Rat).SetInt64(a.V[0]))
	x.Add(x, new(big.Rat).SetInt64(a.P[0]))
	y := new(big.Rat).Mul(t, new(big.Rat).SetInt64(a.V[1]))
	y.Add(y, new(big.Rat).SetInt64(a.P[1]))

	return x, y, true
}

// Throw finds the rock that collides with every hailstone. For each stone
// (P-p)×(V-v) = 0; subtracting that identity for two stones cancels the
// non-linear P×V term, so two pairs give six linear equations in the six
// unknowns. Pairs are tried until one system is non-singular.
func Throw(hail []Hail) (Hail, error) {
	if len(hail) < 3 {
		return Hail{}, fmt.Errorf("%w: need 3 hailstones, got %d", puzzle.ErrDegenerate, len(hail))
	}
	for j := 1; j < len(hail); j++ {
		for k := j + 1; k < len(hail); k++ {
			a, b := equations(hail[0], hail[j]), equations(hail[0], hail[k])
			m, err := matrix.FromInts(append(a.rows, b.rows...))
			if err != nil {
				return Hail{}, err
			}
			x, err := matrix.SolveRat(m, matrix.VecFromInts(append(a.rhs, b.rhs...)))
			if errors.Is(err, matrix.ErrSingular) {
				continue
			}
			if err != nil {
				return Hail{}, err
			}
			var rock Hail
			for i, v := range x {
				if !v.IsInt() || !v.Num().IsInt64() {
					return Hail{}, fmt.Errorf("%w: non-integral throw %s", puzzle.ErrNoSolution, v.RatString())
				}
				if i < 3 {
					rock.P[i] = v.Num().Int64()
				} else {
					rock.V[i-3] = v.Num().Int64()
				}
			}

			return rock, nil
		}
	}

	return Hail{}, fmt.Errorf("%w: every hailstone system is singular", puzzle.ErrDegenerate)
}

type system struct {
	rows [][]int64
	rhs  []int64
}

// equations returns P×w + d×V = pj×vj - pi×vi with w = vj-vi and d = pj-pi,
// over the unknowns (Px, Py, Pz, Vx, Vy, Vz).
func equations(i, j Hail) system {
	var w, d [3]int64
	for k := 0; k < 3; k++ {
		w[k], d[k] = j.V[k]-i.V[k], j.P[k]-i.P[k]
	}
	ci, cj := crossProduct(i.P, i.V), crossProduct(j.P, j.V)

	return system{
		rows: [][]int64{
			{0, w[2], -w[1], 0, -d[2], d[1]},
			{-w[2], 0, w[0], d[2], 0, -d[0]},
			{w[1], -w[0], 0, -d[1], d[0], 0},
		},
		rhs: []int64{cj[0] - ci[0], cj[1] - ci[1], cj[2] - ci[2]},
	}
}

func crossProduct(a, b [3]int64) [3]int64 {
	return [3]int64{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

// Parse reads "px, py, pz @ vx, vy, vz" lines.
func Parse(lines []string) ([]Hail, error) {
	hail := make([]Hail, 0, len(lines))
	for i, l := range lines {
		p, v, err := puzzle.Cut(i+1, l, "@")
		if err != nil {
			return nil, err
		}
		var h Hail
		for half, s := range []string{p, v} {
			xs, err := puzzle.Fields(i+1, s)
			if err != nil {
				return nil, err
			}
			if len(xs) != 3 {
				return nil, puzzle.Malformed(i+1, l, "want 3 components, got %d", len(xs))
			}
			for k, x := range xs {
				if half == 0 {
					h.P[k] = int64(x)
				} else {
					h.V[k] = int64(x)
				}
			}
		}
		hail = append(hail, h)
	}

	return hail, nil
}
