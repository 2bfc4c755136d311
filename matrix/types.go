// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the shared indexed-access capability.
// This file intentionally contains ONLY type-level declarations; containers
// live in array.go, vector.go and matrix.go.
package matrix

import "golang.org/x/exp/constraints"

// Number is the element bound for arithmetic containers and kernels.
// Anything outside it (strings, bools, structs) is rejected at compile time.
type Number interface {
	constraints.Integer | constraints.Float
}

// Indexed is the read side shared by Array and Vector: a fixed length and a
// bounds-checked getter. It deliberately has no mutators; mutation is exposed
// per concrete type so that Matrix rows can never be resized through it.
type Indexed[T any] interface {
	// Len returns the number of elements (always ≥ 1 for a live value).
	Len() int

	// Get returns the element at i or ErrOutOfRange when i ∉ [0, Len).
	Get(i int) (T, error)
}

// Compile-time assertions for capability conformance.
var (
	_ Indexed[int]     = (*Array[int])(nil)
	_ Indexed[float64] = (*Vector[float64])(nil)
)
