// SPDX-License-Identifier: MIT

// Package fixed: raw views and checked reinterpretation.
// The views expose the backing storage without transferring ownership: the
// matrix remains the sole owner, callers must not outlive it, and the stated
// column-major padding-free layout is the interop contract. This file is the
// only place in the module that touches unsafe.
package fixed

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/linal/scalar"
)

// Slice exposes the backing storage as a flat column-major []T. Writes
// through the slice are visible in the matrix. The slice must not be resized
// or retained past the matrix's lifetime.
// Complexity: O(1).
func (m *Matrix[T, M, N]) Slice() []T {
	return m.data
}

// Bytes exposes the backing storage as raw bytes, little-to-big endian order
// as laid out in memory. Length is Len()*sizeof(T). Intended for
// serialization and FFI; the matrix stays the owner.
// Complexity: O(1).
func (m *Matrix[T, M, N]) Bytes() []byte {
	if len(m.data) == 0 {
		return nil
	}
	var t T

	return unsafe.Slice((*byte)(unsafe.Pointer(&m.data[0])), len(m.data)*int(unsafe.Sizeof(t)))
}

// Pointer returns the raw address of the first element, or nil for a
// zero-dimension matrix. For passing to foreign numeric code only.
// Complexity: O(1).
func (m *Matrix[T, M, N]) Pointer() unsafe.Pointer {
	if len(m.data) == 0 {
		return nil
	}

	return unsafe.Pointer(&m.data[0])
}

// Reinterpret views m's underlying bytes as element type U without
// conversion or copy: a zero-cost bit cast sharing the original storage.
// Stage 1 (Validate): T and U must have identical size and alignment;
// otherwise ErrLayoutMismatch — never a silent reinterpretation.
// Stage 2 (Execute): rebuild the backing slice header over the same memory.
//
// The result aliases m: writes through either matrix are visible in both.
// Complexity: O(1).
func Reinterpret[U, T scalar.Scalar, M, N Dim](m *Matrix[T, M, N]) (*Matrix[U, M, N], error) {
	var t T
	var u U
	if unsafe.Sizeof(t) != unsafe.Sizeof(u) {
		return nil, fmt.Errorf("Reinterpret: sizeof %d vs %d: %w", unsafe.Sizeof(t), unsafe.Sizeof(u), ErrLayoutMismatch)
	}
	if unsafe.Alignof(t) != unsafe.Alignof(u) {
		return nil, fmt.Errorf("Reinterpret: alignof %d vs %d: %w", unsafe.Alignof(t), unsafe.Alignof(u), ErrLayoutMismatch)
	}
	if len(m.data) == 0 {
		return &Matrix[U, M, N]{data: nil}, nil
	}

	return &Matrix[U, M, N]{
		data: unsafe.Slice((*U)(unsafe.Pointer(&m.data[0])), len(m.data)),
	}, nil
}
