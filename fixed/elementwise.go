// SPDX-License-Identifier: MIT

// Package fixed: elementwise transforms, ordering-dependent ops and sign ops.
// Every function here visits each element exactly once in flat storage order
// (column-major), with no cross-element interaction.
package fixed

import "github.com/katalvlaran/linal/scalar"

// Map returns a transformed copy with f applied to every element.
// Traversal is flat column-major order; deterministic.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Map(f func(T) T) *Matrix[T, M, N] {
	out := make([]T, len(m.data))
	for i := range m.data {
		out[i] = f(m.data[i])
	}

	return &Matrix[T, M, N]{data: out}
}

// Apply mutates the matrix in place, applying f to every element.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Apply(f func(T) T) {
	for i := range m.data {
		m.data[i] = f(m.data[i])
	}
}

// Clamp bounds every element between the matching elements of lo and hi,
// mutating the receiver. Elements already inside [lo, hi] are untouched.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Clamp(lo, hi *Matrix[T, M, N]) {
	for i := range m.data {
		m.data[i] = scalar.Clamp(m.data[i], lo.data[i], hi.data[i])
	}
}

// Clamped returns a clamped copy without mutating the receiver.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Clamped(lo, hi *Matrix[T, M, N]) *Matrix[T, M, N] {
	out := m.Clone()
	out.Clamp(lo, hi)

	return out
}

// MaxByComponent returns a new matrix holding the pairwise larger element of
// m and o at every position.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) MaxByComponent(o *Matrix[T, M, N]) *Matrix[T, M, N] {
	out := make([]T, len(m.data))
	for i := range m.data {
		out[i] = scalar.Max(m.data[i], o.data[i])
	}

	return &Matrix[T, M, N]{data: out}
}

// MinByComponent returns a new matrix holding the pairwise smaller element of
// m and o at every position.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) MinByComponent(o *Matrix[T, M, N]) *Matrix[T, M, N] {
	out := make([]T, len(m.data))
	for i := range m.data {
		out[i] = scalar.Min(m.data[i], o.data[i])
	}

	return &Matrix[T, M, N]{data: out}
}

// Abs returns a copy with every element replaced by its absolute value.
// Gated on the sign capability, so unsigned instantiations do not compile.
// Complexity: O(M*N).
func Abs[T scalar.Signed, M, N Dim](m *Matrix[T, M, N]) *Matrix[T, M, N] {
	out := make([]T, len(m.data))
	for i := range m.data {
		out[i] = scalar.Abs(m.data[i])
	}

	return &Matrix[T, M, N]{data: out}
}

// AbsInPlace replaces every element with its absolute value, in place.
// Complexity: O(M*N).
func AbsInPlace[T scalar.Signed, M, N Dim](m *Matrix[T, M, N]) {
	for i := range m.data {
		m.data[i] = scalar.Abs(m.data[i])
	}
}
