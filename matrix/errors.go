// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All solvers return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No solver panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a non-square coefficient matrix or a right-hand side of wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular indicates that no unique solution exists: elimination met a
	// column with no non-zero pivot.
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrNilEntry indicates a nil *big.Rat inside an operand.
	ErrNilEntry = errors.New("matrix: nil entry")
)

// Operation name constants for unified error wrapping.
const (
	opSolve   = "SolveRat"
	opFromInt = "FromInts"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
