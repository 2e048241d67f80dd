// SPDX-License-Identifier: MIT

// Package fixed: closed-form determinant for square matrices of dimension
// 0 through 3. Larger dimensions return ErrUnsupportedDimension — failing
// loudly beats returning a plausible wrong number.
package fixed

import (
	"fmt"

	"github.com/katalvlaran/linal/scalar"
)

// Det computes the determinant of a square N×N matrix.
// Stage 1 (Dispatch): switch on the compile-time dimension.
// Stage 2 (Execute): closed form — 0: one(); 1: the single entry;
// 2: ad−bc; 3: cofactor expansion along the first row.
// Returns ErrUnsupportedDimension for N > 3.
// Complexity: O(1) per supported dimension.
func Det[T scalar.Scalar, N Dim](m *Matrix[T, N, N]) (T, error) {
	n := dimOf[N]()
	switch n {
	case 0:
		// The empty product: det of the 0×0 matrix is the multiplicative identity.
		return scalar.One[T](), nil
	case 1:
		return m.data[0], nil
	case 2:
		// Column-major: data = [a c b d] for |a b; c d|.
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0), nil
	case 3:
		e11, e12, e13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
		e21, e22, e23 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
		e31, e32, e33 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

		// 2×2 minors complementary to the first row.
		minor1 := e22*e33 - e32*e23
		minor2 := e21*e33 - e31*e23
		minor3 := e21*e32 - e31*e22

		return e11*minor1 - e12*minor2 + e13*minor3, nil
	default:
		return scalar.Zero[T](), fmt.Errorf("Det: dimension %d: %w", n, ErrUnsupportedDimension)
	}
}
