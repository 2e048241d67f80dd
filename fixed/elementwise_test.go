package fixed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linal/fixed"
)

func TestMap_Apply(t *testing.T) {
	m := mustOf[int, fixed.D2, fixed.D2](t, 1, 2, 3, 4)

	doubled := m.Map(func(v int) int { return v * 2 })
	require.Equal(t, 2, doubled.At(0, 0))
	require.Equal(t, 1, m.At(0, 0)) // Map does not mutate

	m.Apply(func(v int) int { return v + 10 })
	require.Equal(t, 11, m.At(0, 0)) // Apply mutates in place
	require.Equal(t, 14, m.At(1, 1))
}

// TestClamp_CapsOutliers is the clamp property from the container contract:
// a cell holding 2 is capped to 1 under max [[1,1],[1,1]], in-range cells
// pass through unchanged.
func TestClamp_CapsOutliers(t *testing.T) {
	m := mustOf[float64, fixed.D2, fixed.D2](t, 2, 0.5, -1, 0.25)
	lo := fixed.Zero[float64, fixed.D2, fixed.D2]()
	hi := fixed.Broadcast[float64, fixed.D2, fixed.D2](1)

	out := m.Clamped(lo, hi)
	require.Equal(t, 1.0, out.At(0, 0))  // 2 capped at 1
	require.Equal(t, 0.5, out.At(1, 0))  // in range, untouched
	require.Equal(t, 0.0, out.At(0, 1))  // -1 raised to 0
	require.Equal(t, 0.25, out.At(1, 1)) // in range, untouched
	require.Equal(t, 2.0, m.At(0, 0))    // Clamped leaves the receiver alone

	m.Clamp(lo, hi)
	require.Equal(t, 1.0, m.At(0, 0)) // Clamp mutates
}

func TestMaxMinByComponent(t *testing.T) {
	a := mustOf[int, fixed.D2, fixed.D2](t, 1, 8, 3, -4)
	b := mustOf[int, fixed.D2, fixed.D2](t, 5, 2, -7, 6)

	mx := a.MaxByComponent(b)
	require.Equal(t, []int{5, 8, 3, 6}, mx.Slice())
	mn := a.MinByComponent(b)
	require.Equal(t, []int{1, 2, -7, -4}, mn.Slice())
}

func TestAbs(t *testing.T) {
	m := mustOf[float64, fixed.D2, fixed.D2](t, -1.5, 2, -3, 0)

	abs := fixed.Abs(m)
	require.Equal(t, []float64{1.5, 2, 3, 0}, abs.Slice())
	require.Equal(t, -1.5, m.At(0, 0)) // copy variant does not mutate

	fixed.AbsInPlace(m)
	require.Equal(t, 1.5, m.At(0, 0))
}
