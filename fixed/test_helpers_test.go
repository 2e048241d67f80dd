package fixed_test

import (
	"testing"

	"github.com/katalvlaran/linal/fixed"
	"github.com/katalvlaran/linal/scalar"
)

// mustOf builds a matrix from a flat column-major literal or fails the test.
func mustOf[T scalar.Scalar, M, N fixed.Dim](t *testing.T, vals ...T) *fixed.Matrix[T, M, N] {
	t.Helper()
	m, err := fixed.Of[T, M, N](vals...)
	if err != nil {
		t.Fatalf("Of(%v): %v", vals, err)
	}
	return m
}

// mustNew builds a matrix from a column slice or fails the test.
func mustNew[T scalar.Scalar, M, N fixed.Dim](t *testing.T, cols [][]T) *fixed.Matrix[T, M, N] {
	t.Helper()
	m, err := fixed.New[T, M, N](cols)
	if err != nil {
		t.Fatalf("New(%v): %v", cols, err)
	}
	return m
}
