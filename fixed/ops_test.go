package fixed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linal/fixed"
)

func TestAddSub_MutualInverse(t *testing.T) {
	a := mustOf[float64, fixed.D2, fixed.D3](t, 0.1, 3, 2.1, 4, -1, 0.5)
	b := mustOf[float64, fixed.D2, fixed.D3](t, 0.4, 1, 5, -6, 2, 2)

	// (A + B) - B == A for every element.
	back := a.Add(b).Sub(b)
	require.True(t, back.EqualApprox(a, 1e-12))
}

func TestAddAssign_SubAssign(t *testing.T) {
	a := mustOf[int, fixed.D2, fixed.D2](t, 1, 2, 3, 4)
	b := mustOf[int, fixed.D2, fixed.D2](t, 10, 20, 30, 40)
	a.AddAssign(b)
	require.Equal(t, 11, a.At(0, 0))
	require.Equal(t, 44, a.At(1, 1))
	a.SubAssign(b)
	require.Equal(t, 1, a.At(0, 0))
	require.Equal(t, 4, a.At(1, 1))
}

func TestMul_KnownProduct(t *testing.T) {
	// A (2×3) column-major: cols [1 4],[2 5],[3 6]  → |1 2 3; 4 5 6|
	a := mustNew[float64, fixed.D2, fixed.D3](t, [][]float64{{1, 4}, {2, 5}, {3, 6}})
	// B (3×2): cols [7 9 11],[8 10 12] → |7 8; 9 10; 11 12|
	b := mustNew[float64, fixed.D3, fixed.D2](t, [][]float64{{7, 9, 11}, {8, 10, 12}})

	p := fixed.Mul(a, b)
	// Classic textbook product: |58 64; 139 154|
	require.Equal(t, 58.0, p.At(0, 0))
	require.Equal(t, 64.0, p.At(0, 1))
	require.Equal(t, 139.0, p.At(1, 0))
	require.Equal(t, 154.0, p.At(1, 1))
}

func TestMul_Associative(t *testing.T) {
	a := mustOf[float64, fixed.D2, fixed.D3](t, 0.5, -1, 2, 3, 1.5, 0.25)
	b := mustOf[float64, fixed.D3, fixed.D2](t, 1, 0, 2, -1, 3, 0.5)
	c := mustOf[float64, fixed.D2, fixed.D2](t, 2, 1, -0.5, 4)

	left := fixed.Mul(fixed.Mul(a, b), c)
	right := fixed.Mul(a, fixed.Mul(b, c))
	require.True(t, left.EqualApprox(right, 1e-9), "(A*B)*C != A*(B*C)")
}

func TestMul_Identity(t *testing.T) {
	a := mustOf[float64, fixed.D3, fixed.D3](t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.True(t, fixed.Mul(a, fixed.Eye[float64, fixed.D3]()).Equal(a))
	require.True(t, fixed.Mul(fixed.Eye[float64, fixed.D3](), a).Equal(a))
}

// TestScale_ReturnsScaledCopy pins the contract of the non-assigning
// scalar operators: they return the scaled copy and leave the receiver untouched.
func TestScale_ReturnsScaledCopy(t *testing.T) {
	m := mustOf[float64, fixed.D2, fixed.D2](t, 1, 2, 3, 4)
	s := m.Scale(2)
	require.Equal(t, 2.0, s.At(0, 0))
	require.Equal(t, 8.0, s.At(1, 1))
	require.Equal(t, 1.0, m.At(0, 0)) // receiver unmodified
}

func TestDivScalar(t *testing.T) {
	m := mustOf[float64, fixed.D2, fixed.D2](t, 2, 4, 6, 8)
	d := m.DivScalar(2)
	require.Equal(t, 1.0, d.At(0, 0))
	require.Equal(t, 4.0, d.At(1, 1))
	require.Equal(t, 2.0, m.At(0, 0)) // receiver unmodified

	m.ScaleAssign(3)
	require.Equal(t, 6.0, m.At(0, 0))
	m.DivScalarAssign(3)
	require.Equal(t, 2.0, m.At(0, 0))
}
