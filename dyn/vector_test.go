package dyn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linal/dyn"
)

func TestNewVector_Owns(t *testing.T) {
	src := []int{1, 2, 3}
	v := dyn.NewVector(src)
	src[0] = 99
	require.Equal(t, 1, v.At(0))
	require.Equal(t, 3, v.Len())
}

func TestVectorWithSize(t *testing.T) {
	v, err := dyn.VectorWithSize[float64](4)
	require.NoError(t, err)
	require.Equal(t, 4, v.Len())
	require.Equal(t, 0.0, v.At(3))

	_, err = dyn.VectorWithSize[float64](-1)
	require.ErrorIs(t, err, dyn.ErrBadShape)
}

func TestVector_AtSetPanics(t *testing.T) {
	v := dyn.NewVector([]int{1, 2})
	require.Panics(t, func() { v.At(2) })
	require.Panics(t, func() { v.Set(-1, 0) })
}

func TestVector_AddSub(t *testing.T) {
	a := dyn.NewVector([]float64{4, 3, 2})
	b := dyn.NewVector([]float64{-2.5, 3, 2})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 6, 4}, sum.Elements())

	back, err := sum.Sub(b)
	require.NoError(t, err)
	require.True(t, back.Equal(a))

	short := dyn.NewVector([]float64{1})
	_, err = a.Add(short)
	require.ErrorIs(t, err, dyn.ErrDimensionMismatch)
	_, err = a.Sub(short)
	require.ErrorIs(t, err, dyn.ErrDimensionMismatch)
}

func TestVector_AssignForms(t *testing.T) {
	a := dyn.NewVector([]int{1, 2})
	b := dyn.NewVector([]int{10, 20})
	require.NoError(t, a.AddAssign(b))
	require.Equal(t, []int{11, 22}, a.Elements())
	require.NoError(t, a.SubAssign(b))
	require.Equal(t, []int{1, 2}, a.Elements())

	require.ErrorIs(t, a.AddAssign(dyn.NewVector([]int{1})), dyn.ErrDimensionMismatch)
}

func TestVector_ScaleDiv(t *testing.T) {
	v := dyn.NewVector([]float64{1, -2, 3})
	s := v.Scale(2)
	require.Equal(t, []float64{2, -4, 6}, s.Elements())
	require.Equal(t, 1.0, v.At(0)) // receiver untouched
	require.Equal(t, []float64{1, -2, 3}, s.DivScalar(2).Elements())
}

func TestVector_Dot(t *testing.T) {
	a := dyn.NewVector([]float64{1, 2, 3})
	b := dyn.NewVector([]float64{4, -5, 6})

	d, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 12.0, d) // 4 − 10 + 18

	_, err = a.Dot(dyn.NewVector([]float64{1}))
	require.ErrorIs(t, err, dyn.ErrDimensionMismatch)
}

func TestVector_String(t *testing.T) {
	require.Equal(t, "|1 2 3|", dyn.NewVector([]int{1, 2, 3}).String())
}
