// SPDX-License-Identifier: MIT

// Package matrix - Vector: a named one-dimensional numeric container.
//
// Vector composes an Array and caches its length at construction. Access is
// call-style (At) rather than subscript-style (Get); Get exists only so that
// Vector satisfies Indexed.
package matrix

import (
	"fmt"
	"iter"
)

const (
	opVecAdd   = "Vector.Add"
	opVecSub   = "Vector.Sub"
	opVecDot   = "Vector.Dot"
	ctxAt      = "At"
	ctxAtRef   = "AtRef"
	ctxVecSet  = "Set"
	vectorName = "Vector"
)

// Vector is a fixed-length sequence of numbers.
type Vector[T Number] struct {
	arr    *Array[T]
	length int // == arr.Len(), fixed at construction
}

// NewVector copies seq into a new Vector.
//
// Errors:
//   - ErrEmpty when len(seq) == 0.
func NewVector[T Number](seq []T) (*Vector[T], error) {
	arr, err := NewArray(seq)
	if err != nil {
		return nil, fmt.Errorf("NewVector: %w", ErrEmpty)
	}

	return &Vector[T]{arr: arr, length: len(seq)}, nil
}

// newVectorZero allocates an n-element zero Vector (n ≥ 1, caller-checked).
func newVectorZero[T Number](n int) *Vector[T] {
	return &Vector[T]{arr: newArrayZero[T](n), length: n}
}

// Len returns the cached element count.
func (v *Vector[T]) Len() int { return v.length }

// vectorErrorf tags err with the Vector method and index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", vectorName, method, i, err)
}

// At returns the element at i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.arr.data[i], nil
}

// AtRef returns a pointer to the element at i for in-place mutation.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= v.length {
		return nil, vectorErrorf(ctxAtRef, i, ErrOutOfRange)
	}

	return &v.arr.data[i], nil
}

// Set overwrites the element at i.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.length {
		return vectorErrorf(ctxVecSet, i, ErrOutOfRange)
	}
	v.arr.data[i] = x

	return nil
}

// Get is At under the Indexed name.
func (v *Vector[T]) Get(i int) (T, error) { return v.At(i) }

// sameLength validates that both vectors are non-nil and equally long.
func (v *Vector[T]) sameLength(w *Vector[T]) error {
	if v == nil || w == nil {
		return ErrNilMatrix
	}
	if v.length != w.length {
		return fmt.Errorf("%w: lengths %d and %d", ErrDimensionMismatch, v.length, w.length)
	}

	return nil
}

// Add returns the element-wise sum v + w as a new Vector.
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	if err := v.sameLength(w); err != nil {
		return nil, matrixErrorf(opVecAdd, err)
	}
	out := newVectorZero[T](v.length)
	for i, x := range v.arr.data {
		out.arr.data[i] = x + w.arr.data[i]
	}

	return out, nil
}

// Sub returns the element-wise difference v - w as a new Vector.
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	if err := v.sameLength(w); err != nil {
		return nil, matrixErrorf(opVecSub, err)
	}
	out := newVectorZero[T](v.length)
	for i, x := range v.arr.data {
		out.arr.data[i] = x - w.arr.data[i]
	}

	return out, nil
}

// Scale returns s·v as a new Vector.
func (v *Vector[T]) Scale(s T) *Vector[T] {
	out := newVectorZero[T](v.length)
	for i, x := range v.arr.data {
		out.arr.data[i] = x * s
	}

	return out
}

// Dot returns Σ v[i]·w[i], accumulated in T.
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	var sum T
	if err := v.sameLength(w); err != nil {
		return sum, matrixErrorf(opVecDot, err)
	}
	for i, x := range v.arr.data {
		sum += x * w.arr.data[i]
	}

	return sum, nil
}

// Equal reports whether w has the same length and values.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if v == nil || w == nil {
		return v == w
	}

	return v.length == w.length && v.arr.Equal(w.arr)
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T { return v.arr.Slice() }

// Values yields the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] { return v.arr.Values() }

// String renders e.g. "Vector([1 2 3], length=3)".
func (v *Vector[T]) String() string {
	return fmt.Sprintf("%s(%s, length=%d)", vectorName, v.arr, v.length)
}
