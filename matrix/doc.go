// Package matrix offers generic bounded containers and matrix algebra.
//
// The matrix package provides:
//
//   - Array, a fixed-length container with bounds-checked Get/Ref/Set.
//   - Vector, a numeric Array with a cached length, call-style At access
//     and element-wise Add/Sub/Scale/Dot.
//   - Matrix, a rectangular grid composed of independently owned row Arrays;
//     rectangularity is established once in NewMatrix and cannot be broken.
//   - Kernels Transpose, Add, Sub, Mul (cache-blocked), Scale and the
//     two-operand 2×2 Determinant, generic over Number.
//
// Every failure is an error that matches either ErrInvalidArgument or
// ErrOutOfRange via errors.Is. Kernels never mutate their operands and
// always return a freshly allocated Matrix.
//
// A Matrix is safe for concurrent readers; concurrent writers must be
// serialized by the caller.
package matrix
