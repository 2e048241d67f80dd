package dyn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linal/dyn"
	"github.com/katalvlaran/linal/fixed"
)

// TestVectorMatrixRoundTrip pins the bridge contract: "1 2 3" → vector →
// single-column matrix → vector reproduces the elements in order.
func TestVectorMatrixRoundTrip(t *testing.T) {
	v, err := dyn.ParseVector[float64]("1 2 3")
	require.NoError(t, err)

	m := v.ToMatrix()
	rows, cols := m.Size()
	require.Equal(t, 3, rows) // size tuple is (len, 1), consistently
	require.Equal(t, 1, cols)
	require.Equal(t, 2.0, m.At(1, 0))

	back, err := dyn.VectorFromMatrix(m)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, back.Elements())
}

func TestVectorFromMatrix_RequiresOneColumn(t *testing.T) {
	m, err := dyn.ParseMatrix[float64]("1 2;3 4")
	require.NoError(t, err)
	_, err = dyn.VectorFromMatrix(m)
	require.ErrorIs(t, err, dyn.ErrDimensionMismatch)

	empty, err := dyn.New[float64](nil)
	require.NoError(t, err)
	_, err = dyn.VectorFromMatrix(empty)
	require.ErrorIs(t, err, dyn.ErrDimensionMismatch)
}

func TestToMatrix_Copies(t *testing.T) {
	v := dyn.NewVector([]int{1, 2, 3})
	m := v.ToMatrix()
	m.Set(0, 0, 99)
	require.Equal(t, 1, v.At(0)) // no shared storage across the bridge
}

func TestFromFixed(t *testing.T) {
	f, err := fixed.New[float64, fixed.D2, fixed.D3]([][]float64{{1, 4}, {2, 5}, {3, 6}})
	require.NoError(t, err)

	d := dyn.FromFixed(f)
	rows, cols := d.Size()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, f.At(1, 2), d.At(1, 2))

	// Copy, not a view.
	d.Set(0, 0, 42)
	require.Equal(t, 1.0, f.At(0, 0))
}

func TestToFixed(t *testing.T) {
	d, err := dyn.ParseMatrix[float64]("2 0;0 3")
	require.NoError(t, err)

	f, err := dyn.ToFixed[fixed.D2, fixed.D2](d)
	require.NoError(t, err)
	det, err := fixed.Det(f)
	require.NoError(t, err)
	require.Equal(t, 6.0, det)

	// Wrong target dimensions fail fast.
	_, err = dyn.ToFixed[fixed.D3, fixed.D3](d)
	require.ErrorIs(t, err, dyn.ErrDimensionMismatch)
}
