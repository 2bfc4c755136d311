// SPDX-License-Identifier: MIT

// Package matrix - Array: fixed-length bounded container with checked access.
//
// Purpose:
//   - Hold an ordered, non-empty sequence of T whose length never changes.
//   - Guarantee safety at the public surface: Get/Ref/Set return errors instead of panicking.
//   - Serve as the row storage for Matrix and the backing store for Vector.
//
// Complexity quicksheet:
//   - NewArray: O(n) copy; Len/Get/Ref/Set: O(1); Equal/Slice: O(n).
package matrix

import (
	"fmt"
	"iter"
	"slices"
)

// ---------- error context tags ----------

const (
	ctxGet = "Get"
	ctxRef = "Ref"
	ctxSet = "Set"
)

// arrayErrorf wraps err with the Array method and offending index.
func arrayErrorf(method string, index int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, index, err)
}

// Array is a fixed-length sequence of T with bounds-checked random access.
// The zero value is not usable; build one with NewArray.
type Array[T comparable] struct {
	data []T // len(data) >= 1, never resliced after construction
}

// NewArray copies seq into a new Array.
//
// Errors:
//   - ErrEmpty when len(seq) == 0.
//
// Complexity: O(n) time and memory.
func NewArray[T comparable](seq []T) (*Array[T], error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("NewArray: %w", ErrEmpty)
	}

	return &Array[T]{data: slices.Clone(seq)}, nil
}

// newArrayZero allocates an n-element zero-valued Array. n must be ≥ 1;
// kernels call it only after shape validation.
func newArrayZero[T comparable](n int) *Array[T] {
	return &Array[T]{data: make([]T, n)}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// checkIndex validates 0 ≤ i < Len.
func (a *Array[T]) checkIndex(method string, i int) error {
	if i < 0 || i >= len(a.data) {
		return arrayErrorf(method, i, ErrOutOfRange)
	}

	return nil
}

// Get returns the element at i.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex(ctxGet, i); err != nil {
		var zero T
		return zero, err
	}

	return a.data[i], nil
}

// Ref returns a pointer to the element at i for in-place mutation.
// The pointer stays valid for the lifetime of the Array, since the backing
// slice is never reallocated.
func (a *Array[T]) Ref(i int) (*T, error) {
	if err := a.checkIndex(ctxRef, i); err != nil {
		return nil, err
	}

	return &a.data[i], nil
}

// Set overwrites the element at i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex(ctxSet, i); err != nil {
		return err
	}
	a.data[i] = v

	return nil
}

// Equal reports whether b has the same length and element-wise equal values.
// A nil Array equals only another nil Array.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return slices.Equal(a.data, b.data)
}

// Slice returns a copy of the elements.
func (a *Array[T]) Slice() []T { return slices.Clone(a.data) }

// Values yields the elements in order.
func (a *Array[T]) Values() iter.Seq[T] { return slices.Values(a.data) }

// String renders the elements space-separated in brackets, e.g. "[1 2 3]".
func (a *Array[T]) String() string { return fmt.Sprint(a.data) }
