// SPDX-License-Identifier: MIT

// Package fixed: phantom dimension tags.
// A Dim is a zero-sized type whose only job is to carry a dimension in the
// type system. Matrix[T, M, N] instantiated with different tags yields
// different, incompatible Go types — the compile-time shape guarantee.
package fixed

// Dim is a compile-time dimension tag. Implementations are zero-sized and
// stateless; Dim() reports the dimension they stand for.
type Dim interface {
	Dim() int
}

// D0 … D6 are the stock dimension tags. The closed-form determinant covers
// squares up to D3; larger tags exist for rectangular shapes and products.
type (
	D0 struct{}
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
)

func (D0) Dim() int { return 0 }
func (D1) Dim() int { return 1 }
func (D2) Dim() int { return 2 }
func (D3) Dim() int { return 3 }
func (D4) Dim() int { return 4 }
func (D5) Dim() int { return 5 }
func (D6) Dim() int { return 6 }

// dimOf extracts the integer dimension of a tag type.
// Complexity: O(1); tags are zero-sized, so the var costs nothing.
func dimOf[D Dim]() int {
	var d D
	return d.Dim()
}
