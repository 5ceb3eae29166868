// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/clusternet/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"1x1", 1, 1, nil},
		{"2x3", 2, 3, nil},
		{"zero rows", 0, 3, matrix.ErrBadShape},
		{"negative cols", 2, -1, matrix.ErrBadShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.NewDense(tc.rows, tc.cols)
			if tc.wantErr != nil {
				AssertErrorIs(t, err, tc.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.rows, m.Rows())
			assert.Equal(t, tc.cols, m.Cols())
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					assert.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	MustSet(t, m, 1, 2, 7)
	assert.Equal(t, 7.0, MustAt(t, m, 1, 2))

	_, err := m.At(2, 0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	AssertErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	AssertErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
}

func TestDense_SetRejectsNaNAllowsInf(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	AssertErrorIs(t, m.Set(0, 1, math.NaN()), matrix.ErrNaN)
	require.NoError(t, m.Set(0, 1, math.Inf(1)))
	assert.True(t, math.IsInf(MustAt(t, m, 0, 1), 1))
}

func TestDense_Fill(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	AssertErrorIs(t, m.Fill([]float64{1, 2, 3}), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, m.Fill([]float64{1, math.NaN(), 3, 4}), matrix.ErrNaN)
	assert.Zero(t, MustAt(t, m, 0, 0), "failed Fill must not write")

	require.NoError(t, m.Fill([]float64{1, 2, 3, 4}))
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{0, 1}, {1, 0}})
	c := m.Clone().(*matrix.Dense)
	require.True(t, m.Equal(c))

	MustSet(t, c, 0, 1, 0)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 1))
	assert.False(t, m.Equal(c))
	assert.False(t, m.Equal(nil))
	assert.False(t, m.Equal(MustDense(t, 2, 3)))
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{0, 1}, {1, 0}})
	assert.Equal(t, "[0, 1]\n[1, 0]\n", m.String())
}
