// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the algebra kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBlockSize is the tile edge used by Mul for the row, column and
	// reduction dimensions. 32×32 tiles of 8-byte values keep three tiles
	// inside a typical 32 KiB L1 data cache.
	DefaultBlockSize = 32
)

// Panic messages (stable strings, exported to tests via export_test.go).
const (
	panicBlockSizeInvalid = "matrix: WithBlockSize: block size must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	blockSize int // > 0; DefaultBlockSize
}

// WithBlockSize sets the tile edge used by Mul.
// A block size ≥ max(rows, cols, inner) degenerates into a single tile, which
// is exactly the naive i→j→k product.
//
// Panics when n <= 0.
func WithBlockSize(n int) Option {
	if n <= 0 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = n }
}

// BlockSize reports the effective tile edge.
func (o Options) BlockSize() int { return o.blockSize }

// NewMatrixOptions resolves opts over the defaults. Handy for inspecting what
// a given option set will do before calling a kernel.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults, in order
// (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		blockSize: DefaultBlockSize,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
