// SPDX-License-Identifier: MIT

// Package dyn: the Matrix container — construction, indexing, copies and
// elementwise transforms. Arithmetic operators live in ops.go, parsing in
// parse.go, formatting in format.go, conversions in convert.go.
package dyn

import (
	"fmt"

	"github.com/katalvlaran/linal/scalar"
)

// Matrix is a rows×cols container over element type T with dimensions fixed
// at construction time and heap-backed storage.
//
// Invariant: data holds cols columns of exactly rows elements each
// (column-major, matching the fixed family); the cached size is established
// at construction, validated there, and trusted afterwards. Binary operators
// re-check only operand compatibility, not internal consistency.
type Matrix[T scalar.Scalar] struct {
	data [][]T // columns; data[c][r] is the element at row r, column c
	rows int
	cols int
}

// New constructs a Matrix from a column slice, deriving the size from the
// column count and the first column's length.
// Stage 1 (Validate): every column must match the first column's length;
// ragged input is rejected with ErrRaggedInput, never padded or truncated.
// Stage 2 (Execute): deep-copy the columns into owned storage.
// A zero-column input yields the (0,0) empty matrix.
// Complexity: O(rows*cols).
func New[T scalar.Scalar](cols [][]T) (*Matrix[T], error) {
	if len(cols) == 0 {
		return &Matrix[T]{}, nil
	}
	rows := len(cols[0])
	data := make([][]T, len(cols))
	for ci, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("New: column %d has %d rows, want %d: %w", ci, len(col), rows, ErrRaggedInput)
		}
		own := make([]T, rows)
		copy(own, col)
		data[ci] = own
	}

	return &Matrix[T]{data: data, rows: rows, cols: len(cols)}, nil
}

// WithSize builds a zero-filled rows×cols matrix.
// Returns ErrBadShape on negative dimensions; (0,c) and (r,0) are legal
// degenerate shapes and normalize to the empty matrix only when both are 0.
// Complexity: O(rows*cols).
func WithSize[T scalar.Scalar](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("WithSize: %dx%d: %w", rows, cols, ErrBadShape)
	}
	data := make([][]T, cols)
	for c := range data {
		data[c] = make([]T, rows)
	}

	return &Matrix[T]{data: data, rows: rows, cols: cols}, nil
}

// Rows returns the cached row count.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the cached column count.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Size returns (rows, cols).
// Complexity: O(1).
func (m *Matrix[T]) Size() (rows, cols int) { return m.rows, m.cols }

// Len returns the total element count rows*cols.
// Complexity: O(1).
func (m *Matrix[T]) Len() int { return m.rows * m.cols }

// boundsCheck panics unless (r,c) addresses a valid element; an index bug is
// a programmer error and fails fatally, matching the fixed family's policy.
func (m *Matrix[T]) boundsCheck(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("dyn: index (%d,%d) out of range for %dx%d matrix", r, c, m.rows, m.cols))
	}
}

// At returns the element at row r, column c. Panics on out-of-range indices.
// Complexity: O(1).
func (m *Matrix[T]) At(r, c int) T {
	m.boundsCheck(r, c)
	return m.data[c][r]
}

// Set assigns v at row r, column c. Panics on out-of-range indices.
// Complexity: O(1).
func (m *Matrix[T]) Set(r, c int, v T) {
	m.boundsCheck(r, c)
	m.data[c][r] = v
}

// Clone returns a deep copy; all columns are freshly allocated.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([][]T, m.cols)
	for c := range m.data {
		col := make([]T, m.rows)
		copy(col, m.data[c])
		data[c] = col
	}

	return &Matrix[T]{data: data, rows: m.rows, cols: m.cols}
}

// Columns copies the matrix out as a column slice sharing no storage.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Columns() [][]T {
	return m.Clone().data
}

// Equal reports exact elementwise equality, shapes included.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for c := range m.data {
		for r := range m.data[c] {
			if m.data[c][r] != o.data[c][r] {
				return false
			}
		}
	}

	return true
}

// Map returns a transformed copy with f applied to every element.
// Deterministic column-then-row traversal; every element visited once.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Map(f func(T) T) *Matrix[T] {
	out := m.Clone()
	out.Apply(f)

	return out
}

// Apply mutates the matrix in place, applying f to every element.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Apply(f func(T) T) {
	for c := range m.data {
		for r := range m.data[c] {
			m.data[c][r] = f(m.data[c][r])
		}
	}
}

// Transpose returns a new cols×rows matrix with rows and columns swapped.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	data := make([][]T, m.rows)
	var r, c int
	for r = 0; r < m.rows; r++ {
		col := make([]T, m.cols)
		for c = 0; c < m.cols; c++ {
			col[c] = m.data[c][r]
		}
		data[r] = col
	}

	return &Matrix[T]{data: data, rows: m.cols, cols: m.rows}
}
