// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Exact linear solves over math/big rationals.
//   - Used where float64 elimination would lose the integer answer (coordinates
//     in the 1e14 range multiplied together overflow the 53-bit mantissa).

package matrix

import (
	"fmt"
	"math/big"
)

// SolveRat solves a·x = b for x by Gaussian elimination with partial
// pivoting on exact rationals. Inputs are not mutated.
//
// Implementation:
//   - Stage 1: validate shape (a is n×n, len(b) == n) and copy into an
//     augmented n×(n+1) work matrix.
//   - Stage 2: forward elimination; the pivot is the first row at or below
//     the diagonal with the largest absolute value in the column.
//   - Stage 3: back substitution.
//
// Errors:
//   - ErrDimensionMismatch if a is empty, ragged or non-square, or b has the wrong length.
//   - ErrNilEntry if any entry is nil.
//   - ErrSingular if a column has no non-zero pivot.
//
// Complexity:
//   - Time O(n³) big.Rat operations, Space O(n²).
func SolveRat(a [][]*big.Rat, b []*big.Rat) ([]*big.Rat, error) {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("%d rows, rhs %d: %w", n, len(b), ErrDimensionMismatch))
	}

	// Stage 1: augmented copy.
	m := make([][]*big.Rat, n)
	for i, row := range a {
		if len(row) != n {
			return nil, matrixErrorf(opSolve, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), n, ErrDimensionMismatch))
		}
		if b[i] == nil {
			return nil, matrixErrorf(opSolve, fmt.Errorf("rhs %d: %w", i, ErrNilEntry))
		}
		m[i] = make([]*big.Rat, n+1)
		for j, v := range row {
			if v == nil {
				return nil, matrixErrorf(opSolve, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNilEntry))
			}
			m[i][j] = new(big.Rat).Set(v)
		}
		m[i][n] = new(big.Rat).Set(b[i])
	}

	// Stage 2: forward elimination.
	var (
		abs    = new(big.Rat)
		best   = new(big.Rat)
		factor = new(big.Rat)
		tmp    = new(big.Rat)
	)
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if m[r][col].Sign() == 0 {
				continue
			}
			abs.Abs(m[r][col])
			if pivot < 0 || abs.Cmp(best) > 0 {
				pivot = r
				best.Set(abs)
			}
		}
		if pivot < 0 {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: %w", col, ErrSingular))
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := col + 1; r < n; r++ {
			if m[r][col].Sign() == 0 {
				continue
			}
			factor.Quo(m[r][col], m[col][col])
			for c := col; c <= n; c++ {
				tmp.Mul(factor, m[col][c])
				m[r][c].Sub(m[r][c], tmp)
			}
		}
	}

	// Stage 3: back substitution.
	x := make([]*big.Rat, n)
	for i := n - 1; i >= 0; i-- {
		sum := new(big.Rat).Set(m[i][n])
		for j := i + 1; j < n; j++ {
			tmp.Mul(m[i][j], x[j])
			sum.Sub(sum, tmp)
		}
		x[i] = sum.Quo(sum, m[i][i])
	}

	return x, nil
}

// FromInts converts an integer matrix to rationals.
// Returns ErrDimensionMismatch for an empty or ragged input.
func FromInts(rows [][]int64) ([][]*big.Rat, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opFromInt, ErrDimensionMismatch)
	}
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, matrixErrorf(opFromInt, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch))
		}
		out[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			out[i][j] = big.NewRat(v, 1)
		}
	}

	return out, nil
}

// VecFromInts converts an integer vector to rationals.
func VecFromInts(v []int64) []*big.Rat {
	out := make([]*big.Rat, len(v))
	for i, x := range v {
		out[i] = big.NewRat(x, 1)
	}

	return out
}
