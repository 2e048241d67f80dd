// SPDX-License-Identifier: MIT

// Package dyn: the conversion bridge — vector ↔ single-column matrix, and
// dynamic ↔ fixed. Every conversion copies; the two families never share
// storage, and the dynamic → fixed direction re-checks the runtime shape
// against the compile-time dimensions.
package dyn

import (
	"fmt"

	"github.com/katalvlaran/linal/fixed"
	"github.com/katalvlaran/linal/scalar"
)

// ToMatrix converts the vector into a single-column matrix of size (len, 1).
// The column is copied.
// Complexity: O(n).
func (v *Vector[T]) ToMatrix() *Matrix[T] {
	col := make([]T, v.n)
	copy(col, v.data)

	return &Matrix[T]{data: [][]T{col}, rows: v.n, cols: 1}
}

// VectorFromMatrix converts a single-column matrix back into a vector,
// copying the column and using the matrix's row count as the length.
// Returns ErrDimensionMismatch unless the matrix has exactly one column.
// Complexity: O(rows).
func VectorFromMatrix[T scalar.Scalar](m *Matrix[T]) (*Vector[T], error) {
	if m.cols != 1 {
		return nil, fmt.Errorf("VectorFromMatrix: shape %dx%d, want exactly one column: %w", m.rows, m.cols, ErrDimensionMismatch)
	}
	col := make([]T, m.rows)
	copy(col, m.data[0])

	return &Vector[T]{data: col, n: m.rows}, nil
}

// FromFixed builds a dynamic matrix from a fixed-dimension one — the
// dynamic-matrix-from-array-literal construction. The data is copied.
// Complexity: O(M*N).
func FromFixed[T scalar.Scalar, M, N fixed.Dim](src *fixed.Matrix[T, M, N]) *Matrix[T] {
	rows, cols := src.Size()

	return &Matrix[T]{data: src.Columns(), rows: rows, cols: cols}
}

// ToFixed copies a dynamic matrix into the fixed family. The runtime shape
// must match the compile-time dimensions M×N exactly; otherwise
// ErrDimensionMismatch (the dynamic analog of a compile error).
// Complexity: O(M*N).
func ToFixed[M, N fixed.Dim, T scalar.Scalar](m *Matrix[T]) (*fixed.Matrix[T, M, N], error) {
	out, err := fixed.New[T, M, N](m.data)
	if err != nil {
		return nil, fmt.Errorf("ToFixed: shape %dx%d does not fit the fixed dimensions: %w", m.rows, m.cols, ErrDimensionMismatch)
	}

	return out, nil
}
