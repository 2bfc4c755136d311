// SPDX-License-Identifier: MIT

package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lina/matrix"
)

func TestNewMatrix_Shape(t *testing.T) {
	m := MustMatrix(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, []int{3, 3}, matrix.RowLens_TestOnly(m))

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.Equal(t, i*3+j+1, MustAt(t, m, i, j))
		}
	}
}

func TestNewMatrix_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		want error
	}{
		{"nil", nil, matrix.ErrEmpty},
		{"no rows", [][]int{}, matrix.ErrEmpty},
		{"empty first row", [][]int{{}, {1}}, matrix.ErrEmpty},
		{"ragged", [][]int{{1, 2}, {3}}, matrix.ErrRagged},
		{"ragged longer", [][]int{{1}, {2, 3}}, matrix.ErrRagged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewMatrix(tc.rows)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
		})
	}
}

func TestNewMatrix_ReportsEveryRaggedRow(t *testing.T) {
	_, err := matrix.NewMatrix([][]int{{1, 2}, {3}, {4, 5}, {6, 7, 8}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	msg := err.Error()
	require.True(t, strings.HasPrefix(msg, "NewMatrix: "), msg)
	require.Contains(t, msg, "row 1 has 1 elements, want 2")
	require.Contains(t, msg, "row 3 has 3 elements, want 2")
	require.NotContains(t, msg, "row 2")
}

func TestNewMatrix_CopiesInput(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	m := MustMatrix(t, src)
	src[0][0] = 100
	require.Equal(t, 1, MustAt(t, m, 0, 0))
}

func TestMatrix_AccessBounds(t *testing.T) {
	m := MustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	for _, ij := range [][2]int{{3, 0}, {0, 3}, {3, 3}, {-1, 0}, {0, -1}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		_, err = m.AtRef(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 0), matrix.ErrOutOfRange)
	}

	_, err := m.At(m.Rows(), m.Cols())
	require.EqualError(t, err, "Matrix.At(3,3): matrix: index out of range")
}

func TestMatrix_SetAndRef(t *testing.T) {
	m := MustMatrix(t, [][]int{{1, 2}, {3, 4}})

	require.NoError(t, m.Set(0, 0, 10))
	p, err := m.AtRef(1, 1)
	require.NoError(t, err)
	*p = 40

	require.Equal(t, [][]int{{10, 2}, {3, 40}}, m.Slice())
	// shape never changes through element writes
	require.Equal(t, []int{2, 2}, matrix.RowLens_TestOnly(m))
}

func TestMatrix_Row(t *testing.T) {
	m := MustMatrix(t, [][]int{{1, 2}, {3, 4}})

	r, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, r.Slice())

	// the returned Vector is a copy
	require.NoError(t, r.Set(0, 99))
	require.Equal(t, 3, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMatrix_CloneEqual(t *testing.T) {
	m := MustMatrix(t, [][]int{{1, 2}, {3, 4}})
	c := m.Clone()

	require.True(t, m.Equal(c))
	require.False(t, matrix.SharesStorage_TestOnly(m, c))

	require.NoError(t, c.Set(0, 1, 7))
	require.False(t, m.Equal(c))
	require.Equal(t, 2, MustAt(t, m, 0, 1))

	other := MustMatrix(t, [][]int{{1, 2, 3}})
	require.False(t, m.Equal(other))
	require.False(t, m.Equal(nil))
}

func TestNewZerosIdentity(t *testing.T) {
	z, err := matrix.NewZeros[float64](2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.Slice())

	_, err = matrix.NewZeros[int](0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	id, err := matrix.NewIdentity[int](3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.Slice())

	like, err := matrix.ZerosLike(id)
	require.NoError(t, err)
	require.Equal(t, 3, like.Rows())
	require.Equal(t, 3, like.Cols())
}
