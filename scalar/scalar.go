// SPDX-License-Identifier: MIT

// Package scalar: generic numeric constraints and identity/sign helpers.
// This file contains ONLY constraints and pure helpers; no container logic.
package scalar

import "golang.org/x/exp/constraints"

// Scalar is the arithmetic-closure capability: any fixed-width integer or
// floating-point type. Closure under +, -, *, / is native for these types,
// and the identities are expressible as conversions (T(0), T(1)).
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed is the sign capability: types for which negation and absolute value
// are meaningful.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Scalar]() T { return T(0) }

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Scalar]() T { return T(1) }

// Abs returns the absolute value of v.
// Note: for the minimum value of a signed integer type the result overflows
// back to itself, matching the behavior of math.Abs-style two's-complement
// negation. Complexity: O(1).
func Abs[T Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Max returns the larger of a and b.
// Complexity: O(1).
func Max[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
// Complexity: O(1).
func Min[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Clamp bounds v into [lo, hi]. Callers must ensure lo <= hi; the function
// applies Max then Min in that fixed order, so a reversed range resolves
// deterministically to hi.
// Complexity: O(1).
func Clamp[T Scalar](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}
