// SPDX-License-Identifier: MIT

// Package fixed: arithmetic operators. All shape compatibility is enforced by
// the type system — two operands of the same Matrix[T, M, N] instantiation
// always conform, and Mul's inner dimension is shared by construction — so no
// operator here can fail at run time.
//
// Non-assigning operators allocate a fresh result and never mutate their
// operands; *Assign forms mutate the receiver in place. Loop orders are fixed
// (flat 0..n-1, or r→c→k for the product) for deterministic accumulation.
package fixed

import "github.com/katalvlaran/linal/scalar"

// Add returns the elementwise sum m + o as a new matrix.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Add(o *Matrix[T, M, N]) *Matrix[T, M, N] {
	out := make([]T, len(m.data))
	for i := range m.data {
		out[i] = m.data[i] + o.data[i]
	}

	return &Matrix[T, M, N]{data: out}
}

// AddAssign adds o into m in place.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) AddAssign(o *Matrix[T, M, N]) {
	for i := range m.data {
		m.data[i] += o.data[i]
	}
}

// Sub returns the elementwise difference m - o as a new matrix.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Sub(o *Matrix[T, M, N]) *Matrix[T, M, N] {
	out := make([]T, len(m.data))
	for i := range m.data {
		out[i] = m.data[i] - o.data[i]
	}

	return &Matrix[T, M, N]{data: out}
}

// SubAssign subtracts o from m in place.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) SubAssign(o *Matrix[T, M, N]) {
	for i := range m.data {
		m.data[i] -= o.data[i]
	}
}

// Mul computes the matrix product a·b: (M×N)·(N×P) → M×P. The shared inner
// dimension N is enforced by the type system. Accumulation order is fixed
// r→c→k for determinism.
// Complexity: O(M*N*P).
func Mul[T scalar.Scalar, M, N, P Dim](a *Matrix[T, M, N], b *Matrix[T, N, P]) *Matrix[T, M, P] {
	ar, inner := dimOf[M](), dimOf[N]()
	bc := dimOf[P]()
	out := make([]T, ar*bc)
	var r, c, k int
	var acc T
	for r = 0; r < ar; r++ {
		for c = 0; c < bc; c++ {
			acc = scalar.Zero[T]()
			for k = 0; k < inner; k++ {
				// a(r,k) at a.data[k*ar+r]; b(k,c) at b.data[c*inner+k].
				acc += a.data[k*ar+r] * b.data[c*inner+k]
			}
			out[c*ar+r] = acc
		}
	}

	return &Matrix[T, M, P]{data: out}
}

// Scale returns a new matrix with every element multiplied by s; the
// receiver is left untouched.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) Scale(s T) *Matrix[T, M, N] {
	out := make([]T, len(m.data))
	for i := range m.data {
		out[i] = m.data[i] * s
	}

	return &Matrix[T, M, N]{data: out}
}

// ScaleAssign multiplies every element by s in place.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) ScaleAssign(s T) {
	for i := range m.data {
		m.data[i] *= s
	}
}

// DivScalar returns a new matrix with every element divided by s. Division by
// the zero value follows the element type's semantics (±Inf/NaN for floats,
// runtime panic for integers), exactly as the plain / operator would.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) DivScalar(s T) *Matrix[T, M, N] {
	out := make([]T, len(m.data))
	for i := range m.data {
		out[i] = m.data[i] / s
	}

	return &Matrix[T, M, N]{data: out}
}

// DivScalarAssign divides every element by s in place.
// Complexity: O(M*N).
func (m *Matrix[T, M, N]) DivScalarAssign(s T) {
	for i := range m.data {
		m.data[i] /= s
	}
}
