// SPDX-License-Identifier: MIT

// Package matrix solves small dense linear systems exactly.
//
// Values are *big.Rat so that systems whose coefficients are products of
// large integers keep an exact integer solution. SolveRat performs
// Gaussian elimination with partial pivoting; FromInts and VecFromInts build
// operands from int64 data.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrSingular,
// ErrNilEntry) wrapped with the operation name; match them with errors.Is.
package matrix
