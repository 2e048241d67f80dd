// SPDX-License-Identifier: MIT

// Package dyn: matrix arithmetic operators — the runtime analog of the fixed
// family's compile-time guarantee. Every binary operator validates operand
// shapes first and fails with ErrDimensionMismatch carrying both shapes; it
// never truncates, pads or partially applies. Non-assigning operators return
// a fresh matrix; *Assign forms mutate the receiver.
package dyn

import (
	"fmt"

	"github.com/katalvlaran/linal/scalar"
)

// sameShape returns a wrapped ErrDimensionMismatch unless a and b conform.
// Complexity: O(1).
func sameShape[T scalar.Scalar](op string, a, b *Matrix[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%s: shapes %dx%d vs %dx%d: %w", op, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// Add returns the elementwise sum m + o as a new matrix.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	if err := sameShape("Add", m, o); err != nil {
		return nil, err
	}
	out := m.Clone()
	for c := range out.data {
		for r := range out.data[c] {
			out.data[c][r] += o.data[c][r]
		}
	}

	return out, nil
}

// AddAssign adds o into m in place.
// Complexity: O(rows*cols).
func (m *Matrix[T]) AddAssign(o *Matrix[T]) error {
	if err := sameShape("AddAssign", m, o); err != nil {
		return err
	}
	for c := range m.data {
		for r := range m.data[c] {
			m.data[c][r] += o.data[c][r]
		}
	}

	return nil
}

// Sub returns the elementwise difference m - o as a new matrix.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	if err := sameShape("Sub", m, o); err != nil {
		return nil, err
	}
	out := m.Clone()
	for c := range out.data {
		for r := range out.data[c] {
			out.data[c][r] -= o.data[c][r]
		}
	}

	return out, nil
}

// SubAssign subtracts o from m in place.
// Complexity: O(rows*cols).
func (m *Matrix[T]) SubAssign(o *Matrix[T]) error {
	if err := sameShape("SubAssign", m, o); err != nil {
		return err
	}
	for c := range m.data {
		for r := range m.data[c] {
			m.data[c][r] -= o.data[c][r]
		}
	}

	return nil
}

// Mul computes the matrix product m·o: (r×n)·(n×p) → r×p.
// Stage 1 (Validate): inner dimensions must agree (m.Cols == o.Rows).
// Stage 2 (Execute): triple loop in fixed r→c→k order for deterministic
// accumulation, sized from the operands.
// Complexity: O(r*n*p).
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if m.cols != o.rows {
		return nil, fmt.Errorf("Mul: shapes %dx%d vs %dx%d: %w", m.rows, m.cols, o.rows, o.cols, ErrDimensionMismatch)
	}
	out, err := WithSize[T](m.rows, o.cols)
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	var r, c, k int
	var acc T
	for r = 0; r < m.rows; r++ {
		for c = 0; c < o.cols; c++ {
			acc = scalar.Zero[T]()
			for k = 0; k < m.cols; k++ {
				acc += m.data[k][r] * o.data[c][k]
			}
			out.data[c][r] = acc
		}
	}

	return out, nil
}

// MulAssign replaces m with the matrix product m·o. The receiver's shape
// becomes r×p, so unlike AddAssign this can change the receiver's size.
// On ErrDimensionMismatch the receiver is left untouched.
// Complexity: O(r*n*p).
func (m *Matrix[T]) MulAssign(o *Matrix[T]) error {
	out, err := m.Mul(o)
	if err != nil {
		return fmt.Errorf("MulAssign: %w", err)
	}
	*m = *out

	return nil
}

// MulVec computes the matrix-vector product m·v, treating v as a single
// column: (r×n)·(n) → vector of length r.
// Complexity: O(r*n).
func (m *Matrix[T]) MulVec(v *Vector[T]) (*Vector[T], error) {
	if m.cols != v.n {
		return nil, fmt.Errorf("MulVec: shape %dx%d vs length %d: %w", m.rows, m.cols, v.n, ErrDimensionMismatch)
	}
	out := make([]T, m.rows)
	var r, k int
	var acc T
	for r = 0; r < m.rows; r++ {
		acc = scalar.Zero[T]()
		for k = 0; k < m.cols; k++ {
			acc += m.data[k][r] * v.data[k]
		}
		out[r] = acc
	}

	return &Vector[T]{data: out, n: m.rows}, nil
}

// Scale returns a new matrix with every element multiplied by s.
// Like the fixed family, the non-assigning form returns the scaled copy and
// leaves the receiver untouched.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Scale(s T) *Matrix[T] {
	out := m.Clone()
	out.ScaleAssign(s)

	return out
}

// ScaleAssign multiplies every element by s in place.
// Complexity: O(rows*cols).
func (m *Matrix[T]) ScaleAssign(s T) {
	for c := range m.data {
		for r := range m.data[c] {
			m.data[c][r] *= s
		}
	}
}

// DivScalar returns a new matrix with every element divided by s.
// Complexity: O(rows*cols).
func (m *Matrix[T]) DivScalar(s T) *Matrix[T] {
	out := m.Clone()
	out.DivScalarAssign(s)

	return out
}

// DivScalarAssign divides every element by s in place.
// Complexity: O(rows*cols).
func (m *Matrix[T]) DivScalarAssign(s T) {
	for c := range m.data {
		for r := range m.data[c] {
			m.data[c][r] /= s
		}
	}
}
