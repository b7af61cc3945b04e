// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2023/matrix"
)

func mustInts(t *testing.T, rows [][]int64) [][]*big.Rat {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

func ratStrings(xs []*big.Rat) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.RatString()
	}

	return out
}

func TestSolveRat_Integral(t *testing.T) {
	// 2x + y - z = 8; -3x - y + 2z = -11; -2x + y + 2z = -3
	a := mustInts(t, [][]int64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
	x, err := matrix.SolveRat(a, matrix.VecFromInts([]int64{8, -11, -3}))
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "-1"}, ratStrings(x))
}

func TestSolveRat_NeedsPivot(t *testing.T) {
	// zero on the leading diagonal forces a row swap
	a := mustInts(t, [][]int64{{0, 1}, {2, 0}})
	x, err := matrix.SolveRat(a, matrix.VecFromInts([]int64{3, 1}))
	require.NoError(t, err)
	assert.Equal(t, []string{"1/2", "3"}, ratStrings(x))
}

func TestSolveRat_DoesNotMutate(t *testing.T) {
	a := mustInts(t, [][]int64{{4, 2}, {1, 3}})
	b := matrix.VecFromInts([]int64{10, 5})
	_, err := matrix.SolveRat(a, b)
	require.NoError(t, err)
	assert.Equal(t, "4", a[0][0].RatString())
	assert.Equal(t, "1", a[1][0].RatString())
	assert.Equal(t, "10", b[0].RatString())
}

func TestSolveRat_LargeExact(t *testing.T) {
	// coefficients near 4e14 multiply past float64 precision
	const p = 412345678901234
	a := mustInts(t, [][]int64{{p, 1}, {1, p}})
	want := []int64{3, 7}
	b := []*big.Rat{
		new(big.Rat).SetInt64(p*3 + 7),
		new(big.Rat).SetInt64(3 + p*7),
	}
	x, err := matrix.SolveRat(a, b)
	require.NoError(t, err)
	for i := range want {
		require.True(t, x[i].IsInt())
		assert.Equal(t, want[i], x[i].Num().Int64())
	}
}

func TestSolveRat_Errors(t *testing.T) {
	_, err := matrix.SolveRat(nil, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	a := mustInts(t, [][]int64{{1, 2}, {2, 4}})
	_, err = matrix.SolveRat(a, matrix.VecFromInts([]int64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.SolveRat(a, matrix.VecFromInts([]int64{1}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	ragged := [][]*big.Rat{{big.NewRat(1, 1)}, {big.NewRat(1, 1), big.NewRat(2, 1)}}
	_, err = matrix.SolveRat(ragged, matrix.VecFromInts([]int64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	a[1][1] = nil
	_, err = matrix.SolveRat(a, matrix.VecFromInts([]int64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrNilEntry)

	_, err = matrix.FromInts([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
