// SPDX-License-Identifier: MIT

// Package matrix - read-only traversal and rendering.
//
// The package never prints. Renderers consume Values (row-major) or
// RowValues (one copied row at a time) and own the output format.
package matrix

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Values yields every element in row-major order.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < m.r; i++ {
			for _, v := range m.row(i) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// RowValues yields (row index, copy of row). Mutating the yielded slice does
// not touch m.
func (m *Matrix[T]) RowValues() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < m.r; i++ {
			if !yield(i, slices.Clone(m.row(i))) {
				return
			}
		}
	}
}

// String renders e.g. "Matrix([[1 2] [3 4]], rows=2, cols=2)".
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Matrix([")
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.rows.data[i].String())
	}
	fmt.Fprintf(&sb, "], rows=%d, cols=%d)", m.r, m.c)

	return sb.String()
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Array[int])(nil)
	_ fmt.Stringer = (*Vector[int])(nil)
	_ fmt.Stringer = (*Matrix[int])(nil)
)
