// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks.
//   - Keep kernels minimal by delegating nil/shape/rectangularity checks here.
//   - Return sentinels wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks except validateRows are O(1) and allocate nothing.
//   - validateRows is O(r) and allocates only when it fails.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateRows checks that rows is a non-empty rectangular 2-D slice.
// Every ragged row is reported, not just the first one.
//
// Errors: ErrEmpty (no rows, or first row empty), ErrRagged.
// Complexity: O(r).
func validateRows[T any](rows [][]T) error {
	if len(rows) == 0 {
		return validatorErrorf("validateRows: no rows", ErrEmpty)
	}
	want := len(rows[0])
	if want == 0 {
		return validatorErrorf("validateRows: row 0", ErrEmpty)
	}

	var errs *multierror.Error
	for i := 1; i < len(rows); i++ {
		if got := len(rows[i]); got != want {
			errs = multierror.Append(errs,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, got, want, ErrRagged))
		}
	}
	if errs == nil {
		return nil
	}
	errs.ErrorFormat = joinErrors

	return validatorErrorf("validateRows", errs)
}

// joinErrors renders accumulated validation errors on one line.
func joinErrors(es []error) string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}

	return strings.Join(msgs, "; ")
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Use for Add/Sub.
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows (inner dimensions agree).
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateTwoByTwo ensures m is non-nil and exactly 2×2.
func ValidateTwoByTwo[T Number](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateTwoByTwo", err)
	}
	if m.r != 2 || m.c != 2 {
		return validatorErrorf(fmt.Sprintf("ValidateTwoByTwo: %dx%d", m.r, m.c), ErrNotTwoByTwo)
	}

	return nil
}
