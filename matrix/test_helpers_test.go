// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and a naive reference multiply.
//   - Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lina/matrix"
)

// tHelper is implemented by *testing.T and *rapid.T.
type tHelper interface{ Helper() }

// MustMatrix builds a Matrix from rows or fails the test.
// It accepts require.TestingT so rapid property bodies can call it too.
func MustMatrix[T matrix.Number](tb require.TestingT, rows [][]T) *matrix.Matrix[T] {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	m, err := matrix.NewMatrix(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T matrix.Number](tb require.TestingT, m *matrix.Matrix[T], i, j int) T {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// naiveMul is the textbook i→j→k product used as the reference for Mul.
func naiveMul[T matrix.Number](a, b [][]T) [][]T {
	r, n, c := len(a), len(b), len(b[0])
	out := make([][]T, r)
	for i := 0; i < r; i++ {
		out[i] = make([]T, c)
		for j := 0; j < c; j++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// randInts returns an r×c slice of small ints from a seeded source.
func randInts(rng *rand.Rand, r, c int) [][]int64 {
	out := make([][]int64, r)
	for i := range out {
		out[i] = make([]int64, c)
		for j := range out[i] {
			out[i][j] = rng.Int63n(21) - 10
		}
	}

	return out
}

// randFloats returns an r×c slice of floats in [-1, 1).
func randFloats(rng *rand.Rand, r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = rng.Float64()*2 - 1
		}
	}

	return out
}
