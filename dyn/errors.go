// SPDX-License-Identifier: MIT
// Package dyn: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the dyn
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for programmer errors
// (out-of-range element indexing).

package dyn

import "errors"

// Every message is prefixed with "dyn: ..." for consistency and easy
// grepping. Context (shapes, tokens, positions) is added at call sites via
// fmt.Errorf("...: %w", ErrX); errors.Is still matches.

var (
	// ErrDimensionMismatch indicates incompatible shapes between operands:
	// Add/Sub on different sizes, Mul with a.Cols != b.Rows, a vector length
	// that does not match, or a matrix→vector conversion without exactly one
	// column. The wrapped message always carries both shapes.
	ErrDimensionMismatch = errors.New("dyn: dimension mismatch")

	// ErrRaggedInput indicates columns of unequal length supplied to a matrix
	// constructor or parser. Ragged data is rejected at construction, never
	// normalized.
	ErrRaggedInput = errors.New("dyn: ragged columns")

	// ErrParse indicates a malformed numeric token during text construction.
	// The wrapped message identifies the offending token and its position.
	ErrParse = errors.New("dyn: parse failure")

	// ErrBadShape indicates a nonsensical requested size (negative rows or
	// columns) for a zero-filled constructor.
	ErrBadShape = errors.New("dyn: invalid shape")
)
