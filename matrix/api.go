// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized rows×cols Matrix.
//
// Errors:
//   - ErrEmpty when rows <= 0 or cols <= 0.
func NewZeros[T Number](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewZeros", ErrEmpty)
	}

	return newMatrixZero[T](rows, cols), nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Useful as the neutral element of Mul.
func NewIdentity[T Number](n int) (*Matrix[T], error) {
	id, err := NewZeros[T](n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		id.row(i)[i] = 1
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newMatrixZero[T](m.r, m.c), nil
}

// ---------- Aliases (map 1:1 to kernels) ----------

// Sum is an alias for Add.
func Sum[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product[T Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Mul(a, b, opts...)
}

// T is an alias for Transpose.
func T[E Number](m *Matrix[E]) (*Matrix[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale.
func ScaleBy[T Number](m *Matrix[T], s T) (*Matrix[T], error) { return Scale(m, s) }
