// SPDX-License-Identifier: MIT

// Package dyn: the Vector container. A Vector is semantically a single-column
// Matrix; conversions between the two live in convert.go and always copy.
package dyn

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linal/scalar"
)

// Vector is a runtime-sized element sequence with a cached length.
// The cached length is established at construction and trusted afterwards;
// binary operators re-check only operand compatibility.
type Vector[T scalar.Scalar] struct {
	data []T
	n    int
}

// NewVector constructs a Vector owning a copy of data.
// Complexity: O(n).
func NewVector[T scalar.Scalar](data []T) *Vector[T] {
	own := make([]T, len(data))
	copy(own, data)

	return &Vector[T]{data: own, n: len(data)}
}

// VectorWithSize builds a zero-filled vector of length n.
// Returns ErrBadShape on negative n.
// Complexity: O(n).
func VectorWithSize[T scalar.Scalar](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("VectorWithSize: %d: %w", n, ErrBadShape)
	}

	return &Vector[T]{data: make([]T, n), n: n}, nil
}

// Len returns the cached element count.
// Complexity: O(1).
func (v *Vector[T]) Len() int { return v.n }

// At returns the element at index i. Panics on an out-of-range index.
// Complexity: O(1).
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("dyn: index %d out of range for vector of length %d", i, v.n))
	}
	return v.data[i]
}

// Set assigns val at index i. Panics on an out-of-range index.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, val T) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("dyn: index %d out of range for vector of length %d", i, v.n))
	}
	v.data[i] = val
}

// Clone returns a deep copy.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	return NewVector(v.data)
}

// Elements copies the vector out as a flat slice sharing no storage.
// Complexity: O(n).
func (v *Vector[T]) Elements() []T {
	out := make([]T, v.n)
	copy(out, v.data)

	return out
}

// Equal reports exact elementwise equality, lengths included.
// Complexity: O(n).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v.n != o.n {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Add returns the elementwise sum v + o as a new vector.
// Returns ErrDimensionMismatch (with both lengths) on incompatible operands.
// Complexity: O(n).
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	if v.n != o.n {
		return nil, fmt.Errorf("Add: lengths %d vs %d: %w", v.n, o.n, ErrDimensionMismatch)
	}
	out := v.Clone()
	for i := range out.data {
		out.data[i] += o.data[i]
	}

	return out, nil
}

// AddAssign adds o into v in place.
// Complexity: O(n).
func (v *Vector[T]) AddAssign(o *Vector[T]) error {
	if v.n != o.n {
		return fmt.Errorf("AddAssign: lengths %d vs %d: %w", v.n, o.n, ErrDimensionMismatch)
	}
	for i := range v.data {
		v.data[i] += o.data[i]
	}

	return nil
}

// Sub returns the elementwise difference v - o as a new vector.
// Complexity: O(n).
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	if v.n != o.n {
		return nil, fmt.Errorf("Sub: lengths %d vs %d: %w", v.n, o.n, ErrDimensionMismatch)
	}
	out := v.Clone()
	for i := range out.data {
		out.data[i] -= o.data[i]
	}

	return out, nil
}

// SubAssign subtracts o from v in place.
// Complexity: O(n).
func (v *Vector[T]) SubAssign(o *Vector[T]) error {
	if v.n != o.n {
		return fmt.Errorf("SubAssign: lengths %d vs %d: %w", v.n, o.n, ErrDimensionMismatch)
	}
	for i := range v.data {
		v.data[i] -= o.data[i]
	}

	return nil
}

// Scale returns a new vector with every element multiplied by s.
// Complexity: O(n).
func (v *Vector[T]) Scale(s T) *Vector[T] {
	out := v.Clone()
	for i := range out.data {
		out.data[i] *= s
	}

	return out
}

// DivScalar returns a new vector with every element divided by s.
// Complexity: O(n).
func (v *Vector[T]) DivScalar(s T) *Vector[T] {
	out := v.Clone()
	for i := range out.data {
		out.data[i] /= s
	}

	return out
}

// Dot computes the inner product Σ v[i]*o[i].
// Returns ErrDimensionMismatch on incompatible lengths.
// Complexity: O(n).
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	if v.n != o.n {
		return scalar.Zero[T](), fmt.Errorf("Dot: lengths %d vs %d: %w", v.n, o.n, ErrDimensionMismatch)
	}
	sum := scalar.Zero[T]()
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}

// String renders the vector as a single "|a b c|" row.
// Complexity: O(n).
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i, e := range v.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte('|')

	return sb.String()
}
