// SPDX-License-Identifier: MIT
// Package fixed: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. Panics are
// reserved for programmer errors (out-of-range element indexing).

package fixed

import "errors"

// Every message is prefixed with "fixed: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) where
// context is essential; callers still match via errors.Is.

var (
	// ErrBadShape is returned when construction input does not match the
	// compile-time dimensions (wrong column count, ragged columns, or a flat
	// literal of the wrong length).
	ErrBadShape = errors.New("fixed: input does not match matrix dimensions")

	// ErrUnsupportedDimension is returned by Det for square dimensions above
	// the supported closed-form set (N > 3). The determinant must fail loudly
	// rather than fall through to a wrong numeric result.
	ErrUnsupportedDimension = errors.New("fixed: determinant unsupported for this dimension")

	// ErrLayoutMismatch is returned by Reinterpret when the source and target
	// element types do not share size and alignment. Reinterpretation is a
	// checked operation, never undefined behavior.
	ErrLayoutMismatch = errors.New("fixed: element memory layouts differ")
)
