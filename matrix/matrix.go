// SPDX-License-Identifier: MIT

// Package matrix - Matrix: a rectangular two-dimensional numeric container.
//
// Purpose:
//   - Compose an Array of row Arrays; each row is exclusively owned.
//   - Establish rectangularity once in NewMatrix. Rows are only mutated
//     element-wise afterwards, so the invariant cannot be broken.
//   - Guarantee safety at the public surface: At/AtRef/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) copy; At/AtRef/Set: O(1); Clone/Equal/Slice: O(r*c).
package matrix

import (
	"fmt"
	"slices"
)

const (
	ctxMatAt    = "At"
	ctxMatAtRef = "AtRef"
	ctxMatSet   = "Set"
	ctxMatRow   = "Row"
	opNew       = "NewMatrix"
)

// cellErrorf wraps an error with a uniform Matrix context and callsite indices.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an r×c grid of numbers stored as r independent row Arrays.
//   - r, c hold dimensions (both ≥ 1).
//   - rows holds exactly r rows, each of length c.
type Matrix[T Number] struct {
	r, c int
	rows *Array[*Array[T]]
}

// NewMatrix copies a rectangular two-dimensional slice into a new Matrix.
// Implementation:
//   - Stage 1: reject an empty outer slice or an empty first row (ErrEmpty).
//   - Stage 2: validate every row against the first row's length; all
//     offending rows are reported together (ErrRagged).
//   - Stage 3: copy each row into its own Array.
//
// Errors:
//   - ErrEmpty, ErrRagged (both match ErrInvalidArgument).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix[T Number](rows [][]T) (*Matrix[T], error) {
	if err := validateRows(rows); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	r, c := len(rows), len(rows[0])
	out := make([]*Array[T], r)
	for i, row := range rows {
		out[i] = &Array[T]{data: slices.Clone(row)}
	}

	return &Matrix[T]{r: r, c: c, rows: &Array[*Array[T]]{data: out}}, nil
}

// newMatrixZero allocates an r×c zero matrix. Callers guarantee r, c ≥ 1.
func newMatrixZero[T Number](r, c int) *Matrix[T] {
	out := make([]*Array[T], r)
	for i := range out {
		out[i] = newArrayZero[T](c)
	}

	return &Matrix[T]{r: r, c: c, rows: &Array[*Array[T]]{data: out}}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.c }

// row returns the backing slice of row i without bounds checks.
// Package-internal; kernels use it after shape validation.
func (m *Matrix[T]) row(i int) []T { return m.rows.data[i].data }

// inBounds reports whether (i, j) addresses a cell.
func (m *Matrix[T]) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns the element at (i, j).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if !m.inBounds(i, j) {
		var zero T
		return zero, cellErrorf(ctxMatAt, i, j, ErrOutOfRange)
	}

	return m.row(i)[j], nil
}

// AtRef returns a pointer to the element at (i, j) for in-place mutation.
func (m *Matrix[T]) AtRef(i, j int) (*T, error) {
	if !m.inBounds(i, j) {
		return nil, cellErrorf(ctxMatAtRef, i, j, ErrOutOfRange)
	}

	return &m.row(i)[j], nil
}

// Set overwrites the element at (i, j).
func (m *Matrix[T]) Set(i, j int, v T) error {
	if !m.inBounds(i, j) {
		return cellErrorf(ctxMatSet, i, j, ErrOutOfRange)
	}
	m.row(i)[j] = v

	return nil
}

// Row returns a copy of row i as a Vector.
func (m *Matrix[T]) Row(i int) (*Vector[T], error) {
	if i < 0 || i >= m.r {
		return nil, cellErrorf(ctxMatRow, i, 0, ErrOutOfRange)
	}
	v := newVectorZero[T](m.c)
	copy(v.arr.data, m.row(i))

	return v, nil
}

// Clone returns a deep copy; no row is shared with m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := newMatrixZero[T](m.r, m.c)
	for i := 0; i < m.r; i++ {
		copy(out.row(i), m.row(i))
	}

	return out
}

// Equal reports whether n has the same shape and values as m.
// NaN never equals anything, so a matrix holding NaN is not Equal to itself.
func (m *Matrix[T]) Equal(n *Matrix[T]) bool {
	if m == nil || n == nil {
		return m == n
	}
	if m.r != n.r || m.c != n.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		if !slices.Equal(m.row(i), n.row(i)) {
			return false
		}
	}

	return true
}

// Slice returns a copy of the contents as a two-dimensional slice.
func (m *Matrix[T]) Slice() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = slices.Clone(m.row(i))
	}

	return out
}
