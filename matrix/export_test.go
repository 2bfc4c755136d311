// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box)
//
// Purpose:
//   - Expose unexported invariants and panic messages to matrix_test ONLY.
//   - Compiled only with `go test`, so the production surface stays unchanged.

// PanicBlockSizeInvalid_TestOnly mirrors the WithBlockSize panic message.
const PanicBlockSizeInvalid_TestOnly = panicBlockSizeInvalid

// SharesStorage_TestOnly reports whether any row backing array of a is also
// a backing array of some row of b.
func SharesStorage_TestOnly[T Number](a, b *Matrix[T]) bool {
	for i := 0; i < a.r; i++ {
		pa := &a.row(i)[0]
		for j := 0; j < b.r; j++ {
			if pa == &b.row(j)[0] {
				return true
			}
		}
	}

	return false
}

// RowLens_TestOnly returns the length of every stored row.
func RowLens_TestOnly[T Number](m *Matrix[T]) []int {
	out := make([]int, m.r)
	for i := range out {
		out[i] = len(m.row(i))
	}

	return out
}
