// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors, accessors and kernels MUST return these sentinels
// (optionally wrapped with %w) and tests MUST check them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON KINDS
// -------------
// There are exactly two error kinds: ErrInvalidArgument and ErrOutOfRange.
// Every specific sentinel below wraps one of them, so callers can match either
// the precise cause (errors.Is(err, ErrRagged)) or the kind
// (errors.Is(err, ErrInvalidArgument)).
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> empty/ragged input -> dimension mismatch -> index range.

var (
	// ErrInvalidArgument is the kind for every shape or content violation
	// detected before any output is allocated.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that an index is outside [0, Len) or
	// [0, Rows) × [0, Cols). Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

var (
	// ErrEmpty is returned when a container is built from an empty sequence
	// (or a matrix whose first row is empty).
	ErrEmpty = fmt.Errorf("%w: empty data", ErrInvalidArgument)

	// ErrRagged is returned when matrix rows differ in length.
	ErrRagged = fmt.Errorf("%w: inconsistent row sizes", ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// of different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)

	// ErrNotTwoByTwo signals that a 2×2 operand was required.
	ErrNotTwoByTwo = fmt.Errorf("%w: operand is not 2x2", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil *Matrix (or *Vector) was passed in.
	ErrNilMatrix = fmt.Errorf("%w: nil operand", ErrInvalidArgument)
)
