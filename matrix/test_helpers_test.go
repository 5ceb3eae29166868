// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/clusternet/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) code paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustSet assigns m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%g)", i, j, v)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// FromRows builds a *Dense from a rectangular [][]float64 literal.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, len(rows), len(rows[0]))
	flat := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		require.Len(t, r, len(rows[0]))
		flat = append(flat, r...)
	}
	require.NoError(t, m.Fill(flat))

	return m
}

// CompareExact asserts m equals want element by element.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "at (%d,%d)", i, j)
		}
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errors.Is(err, target), "expected errors.Is(%v, %v)", err, target)
}

// pathAdjacency returns the 0/1 adjacency of the path 0-1-...-(n-1).
func pathAdjacency(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	for i := 0; i+1 < n; i++ {
		MustSet(t, m, i, i+1, 1)
		MustSet(t, m, i+1, i, 1)
	}

	return m
}
