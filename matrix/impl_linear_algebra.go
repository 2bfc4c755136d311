// SPDX-License-Identifier: MIT
// Package matrix provides the generic linear-algebra kernels over *Matrix[T]:
// element-wise addition and subtraction, cache-blocked multiplication,
// transpose, scalar scaling and the two-operand 2×2 determinant. All kernels
// perform fail-fast validation before allocating and return clear errors on
// shape violations.
//
// Purpose:
//   - Define operation tags and the canonical kernels used across the package.
//
// Notes:
//   - Kernels never mutate operands; every result owns freshly allocated rows.
//   - Validation errors are wrapped via matrixErrorf(op*, err).

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + b (sub=false) or out = a - b (sub=true).
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: allocate the result and walk rows i→j.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[T Number](a, b *Matrix[T], sub bool, opTag string) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newMatrixZero[T](a.r, a.c)
	var i, j int
	for i = 0; i < a.r; i++ {
		ra, rb, out := a.row(i), b.row(i), res.row(i)
		if sub {
			for j = range out {
				out[j] = ra[j] - rb[j]
			}
			continue
		}
		for j = range out {
			out[j] = ra[j] + rb[j]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, true, opSub) }

// Mul computes C = A × B with cache-blocked (tiled) loops.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows); resolve options.
//   - Stage 2: cut the row (i), column (j) and reduction (k) ranges into
//     tiles of edge bs; for every tile triple accumulate
//     C[ii][jj] += A[ii][kk] * B[kk][jj] over the tile's sub-ranges, each
//     clamped at the matrix edge for the last, possibly partial, tile.
//
// Behavior highlights:
//   - Accumulation happens in T; no wider accumulator is used.
//   - Integer results equal the naive product exactly. Float results may
//     differ in the last bits because the summation order follows the tiling.
//
// Inputs:
//   - a: r×n, b: n×c.
//   - opts: WithBlockSize(bs) overrides DefaultBlockSize.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch). No output is
//     allocated on failure.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bs := gatherOptions(opts...).blockSize

	rows, cols, inner := a.r, b.c, a.c
	res := newMatrixZero[T](rows, cols)

	var (
		i, j, k          int // tile origins
		ii, jj, kk       int // in-tile iterators
		iEnd, jEnd, kEnd int // clamped tile bounds
		acc              T
		aRow, outRow     []T
		aRows, bRows     = a.rows.data, b.rows.data
	)
	for i = 0; i < rows; i += bs {
		iEnd = min(i+bs, rows)
		for j = 0; j < cols; j += bs {
			jEnd = min(j+bs, cols)
			for k = 0; k < inner; k += bs {
				kEnd = min(k+bs, inner)
				for ii = i; ii < iEnd; ii++ {
					aRow, outRow = aRows[ii].data, res.row(ii)
					for jj = j; jj < jEnd; jj++ {
						acc = outRow[jj]
						for kk = k; kk < kEnd; kk++ {
							acc += aRow[kk] * bRows[kk].data[jj]
						}
						outRow[jj] = acc
					}
				}
			}
		}
	}

	return res, nil
}

// Transpose returns a new c×r matrix with out[j][i] = m[i][j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := newMatrixZero[T](m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j, v := range m.row(i) {
			res.row(j)[i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are m[i,j] * s.
// s = 0 yields an explicit zero matrix with the same shape.
//
// Errors:
//   - ErrNilMatrix.
func Scale[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newMatrixZero[T](m.r, m.c)
	for i := 0; i < m.r; i++ {
		out := res.row(i)
		for j, v := range m.row(i) {
			out[j] = v * s
		}
	}

	return res, nil
}

// Determinant returns a[0][0]*b[1][1] - a[1][0]*b[0][1] for two 2×2 operands.
//
// The entries are taken from both operands; with a == b this is the ordinary
// 2×2 determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNotTwoByTwo when either operand is not 2×2.
func Determinant[T Number](a, b *Matrix[T]) (T, error) {
	if err := ValidateTwoByTwo(a); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateTwoByTwo(b); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	return a.row(0)[0]*b.row(1)[1] - a.row(1)[0]*b.row(0)[1], nil
}
