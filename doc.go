// Package lina is a small generic linear-algebra container library.
//
// Everything lives in the matrix subpackage:
//
//	matrix/: Array, Vector and Matrix containers plus Transpose, Add, Sub,
//	          cache-blocked Mul, Scale and the 2×2 two-operand Determinant.
//
// Quick example:
//
//	a, _ := matrix.NewMatrix([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewMatrix([][]int{{5, 6}, {7, 8}})
//	c, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
//
//	go get github.com/katalvlaran/lina/matrix
package lina
