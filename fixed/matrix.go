// SPDX-License-Identifier: MIT

// Package fixed: the Matrix container — construction, indexing, copies and
// shape accessors. Arithmetic lives in ops.go, elementwise transforms in
// elementwise.go, raw views in views.go.
package fixed

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linal/scalar"
)

// Matrix is an M×N (rows×cols) container over element type T with both
// dimensions fixed at compile time by the phantom tags M and N.
//
// Invariant: len(data) == M.Dim()*N.Dim() and the layout is column-major
// contiguous with no padding — element (r,c) lives at data[c*rows+r]. The
// invariant is established by every constructor and never re-validated.
//
// The matrix is the sole owner of its backing storage; methods that return a
// new Matrix always allocate a fresh backing slice.
type Matrix[T scalar.Scalar, M, N Dim] struct {
	data []T // column-major backing storage, len == rows*cols
}

// shape reports the compile-time dimensions of the instantiation.
// Complexity: O(1).
func shape[T scalar.Scalar, M, N Dim]() (rows, cols int) {
	return dimOf[M](), dimOf[N]()
}

// New constructs a Matrix from a column slice: cols[c][r] is the element at
// row r of column c, matching the column-major storage order.
// Stage 1 (Validate): exactly N columns, each of exactly M elements.
// Stage 2 (Execute): copy columns into fresh contiguous storage.
// Returns ErrBadShape if the literal does not match the dimensions.
// Complexity: O(M*N).
func New[T scalar.Scalar, M, N Dim](cols [][]T) (*Matrix[T, M, N], error) {
	r, c := shape[T, M, N]()
	// Validate column count against the compile-time dimension.
	if len(cols) != c {
		return nil, fmt.Errorf("New: got %d columns, want %d: %w", len(cols), c, ErrBadShape)
	}
	data := make([]T, r*c)
	var ci int
	for ci = 0; ci < c; ci++ {
		// Validate each column length; a ragged literal is rejected, never padded.
		if len(cols[ci]) != r {
			return nil, fmt.Errorf("New: column %d has %d elements, want %d: %w", ci, len(cols[ci]), r, ErrBadShape)
		}
		copy(data[ci*r:(ci+1)*r], cols[ci])
	}

	return &Matrix[T, M, N]{data: data}, nil
}

// Of constructs a Matrix from a flat literal in column-major order.
// Returns ErrBadShape unless exactly M*N values are supplied.
// Complexity: O(M*N).
func Of[T scalar.Scalar, M, N Dim](vals ...T) (*Matrix[T, M, N], error) {
	r, c := shape[T, M, N]()
	if len(vals) != r*c {
		return nil, fmt.Errorf("Of: got %d values, want %d: %w", len(vals), r*c, ErrBadShape)
	}
	data := make([]T, r*c)
	copy(data, vals)

	return &Matrix[T, M, N]{data: data}, nil
}

// Broadcast builds a matrix with every element set to v.
// Complexity: O(M*N).
func Broadcast[T scalar.Scalar, M, N Dim](v T) *Matrix[T, M, N] {
	r, c := shape[T, M, N]()
	data := make([]T, r*c)
	for i := range data {
		data[i] = v
	}

	return &Matrix[T, M, N]{data: data}
}

// Zero builds a matrix filled with the additive identity.
// Complexity: O(M*N).
func Zero[T scalar.Scalar, M, N Dim]() *Matrix[T, M, N] {
	r, c := shape[T, M, N]()

	return &Matrix[T, M, N]{data: make([]T, r*c)} // T's zero value is scalar.Zero
}

// One builds a matrix filled with the multiplicative identity.
// Complexity: O(M*N).
func One[T scalar.Scalar, M, N Dim]() *Matrix[T, M, N] {
	return Broadcast[T, M, N](scalar.One[T]())
}

// Eye builds the N×N identity matrix: ones on the main diagonal, zeros
// elsewhere.
// Complexity: O(N²).
func Eye[T scalar.Scalar, N Dim]() *Matrix[T, N, N] {
	n := dimOf[N]()
	m := Zero[T, N, N]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = scalar.One[T]()
	}

	return m
}

// Rows returns the compile-time row count M.
// Complexity: O(1).
func (m *Matrix[T, M, N]) Rows() int { return dimOf[M]() }

// Cols returns the compile-time column count N.
// Complexity: O(1).
func (m *Matrix[T, M, N]) Cols() int { return dimOf[N]() }

// Len returns the total element count M*N.
// Complexity: O(1).
func (m *Matrix[T, M, N]) Len() int { return len(m.data) }

// Size returns (rows, cols).
// Complexity: O(1).
func (m *Matrix[T, M, N]) Size() (rows, cols int) { return shape[T, M, N]() }

// boundsCheck panics unless (r,c) addresses a valid element. Out-of-range
// indexing is a programmer error, so it fails fatally like a slice access
// rather than returning a recoverable error.
func (m *Matrix[T, M, N]) boundsCheck(r, c int) {
	rows, cols := shape[T, M, N]()
	if r < 0 || r >= rows || c < 0 || c >= cols {
		panic(fmt.Sprintf("fixed: index (%d,%d) out of range for %dx%d matrix", r, c, rows, cols))
	}
}

// At returns the element at row r, column c. Panics on out-of-range indices.
// Complexity: O(1).
func (m *Matrix[T, M, N]) At(r, c int) T {
	m.boundsCheck(r, c)
	return m.data[c*dimOf[M]()+r]
}

// Set assigns v at row r, column c. Panics on out-of-range indices.
// Complexity: O(1).
func (m *Matrix[T, M, N]) Set(r, c int, v T) {
	m.boundsCheck(r, c)
	m.data[c*dimOf[M]()+r] = v
}

// Clone returns a deep copy with fresh backing storage.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Clone() *Matrix[T, M, N] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T, M, N]{data: data}
}

// Columns copies the matrix out as a column slice: out[c][r] == At(r,c).
// The result shares no storage with the matrix.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Columns() [][]T {
	r, c := shape[T, M, N]()
	out := make([][]T, c)
	for ci := 0; ci < c; ci++ {
		col := make([]T, r)
		copy(col, m.data[ci*r:(ci+1)*r])
		out[ci] = col
	}

	return out
}

// Equal reports exact elementwise equality.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Equal(o *Matrix[T, M, N]) bool {
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports elementwise equality within absolute tolerance eps.
// Intended for float instantiations where products accumulate rounding.
// Elements are compared through float64, so for integer instantiations with
// values beyond 2⁵³ the comparison is approximate; use Equal for exactness.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) EqualApprox(o *Matrix[T, M, N], eps float64) bool {
	for i := range m.data {
		if math.Abs(float64(m.data[i])-float64(o.data[i])) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: one "|a b c|" line per row, elements in
// row-major visual order. Display-only; no alignment guarantees.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) String() string {
	rows, cols := shape[T, M, N]()
	var sb strings.Builder
	var r, c int
	for r = 0; r < rows; r++ {
		sb.WriteByte('|')
		for c = 0; c < cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%v", m.data[c*rows+r])
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}
