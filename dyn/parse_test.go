package dyn_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linal/dyn"
)

// TestParseMatrix_WireFormat pins the documented grammar: "4 3 2;2 2 -1" is
// two columns of three rows, addressed as (row, col).
func TestParseMatrix_WireFormat(t *testing.T) {
	m, err := dyn.ParseMatrix[float64]("4 3 2;2 2 -1")
	require.NoError(t, err)

	rows, cols := m.Size()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 4.0, m.At(0, 0))  // column 0, row 0
	require.Equal(t, -1.0, m.At(2, 1)) // column 1, row 2
}

func TestParseMatrix_Negative_And_Decimal(t *testing.T) {
	m, err := dyn.ParseMatrix[float64]("-2.5 3 2;-2 2.5 3")
	require.NoError(t, err)
	require.Equal(t, -2.5, m.At(0, 0))
	require.Equal(t, 2.5, m.At(1, 1))
}

func TestParseMatrix_RepeatedSpaces(t *testing.T) {
	m, err := dyn.ParseMatrix[int]("1  2   3;4 5 6")
	require.NoError(t, err)
	rows, _ := m.Size()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, m.At(2, 0))
}

// TestParseMatrix_BadTokenFailsWholeParse guards against default-substitution:
// one malformed cell aborts everything and names the offender.
func TestParseMatrix_BadTokenFailsWholeParse(t *testing.T) {
	_, err := dyn.ParseMatrix[float64]("4 x 2;2 2 -1")
	if !errors.Is(err, dyn.ErrParse) {
		t.Fatalf("error = %v; want ErrParse", err)
	}
	require.Contains(t, err.Error(), `"x"`)
	require.Contains(t, err.Error(), "column 0")
	require.Contains(t, err.Error(), "row 1")
}

func TestParseMatrix_IntegerTokens(t *testing.T) {
	m, err := dyn.ParseMatrix[int]("1 2;3 4")
	require.NoError(t, err)
	require.Equal(t, 4, m.At(1, 1))

	// "2.5" must be a parse failure for an integer matrix, never a
	// truncation to 2.
	_, err = dyn.ParseMatrix[int]("1 2.5")
	require.ErrorIs(t, err, dyn.ErrParse)
}

// TestParse_IntegerRange pins the range contract for narrow and unsigned
// instantiations: a token outside T's range is ErrParse, never a wrap-around.
func TestParse_IntegerRange(t *testing.T) {
	// 300 does not fit int8; a wrapping parse would yield 44.
	_, err := dyn.ParseVector[int8]("300")
	require.ErrorIs(t, err, dyn.ErrParse)

	// -1 does not fit uint8; a wrapping parse would yield 255.
	_, err = dyn.ParseVector[uint8]("-1")
	require.ErrorIs(t, err, dyn.ErrParse)

	_, err = dyn.ParseMatrix[uint8]("1 2;3 256")
	require.ErrorIs(t, err, dyn.ErrParse)

	// The extremes of the type still parse.
	v, err := dyn.ParseVector[int8]("-128 127")
	require.NoError(t, err)
	require.Equal(t, int8(-128), v.At(0))
	require.Equal(t, int8(127), v.At(1))

	u, err := dyn.ParseVector[uint8]("0 255")
	require.NoError(t, err)
	require.Equal(t, uint8(255), u.At(1))
}

func TestParseMatrix_Ragged(t *testing.T) {
	_, err := dyn.ParseMatrix[float64]("4 3 2;2 2")
	require.ErrorIs(t, err, dyn.ErrRaggedInput)
}

func TestParseMatrix_Empty(t *testing.T) {
	for _, s := range []string{"", "   "} {
		_, err := dyn.ParseMatrix[float64](s)
		require.ErrorIs(t, err, dyn.ErrParse, "input %q", s)
	}
}

func TestParseMatrix_CustomDelimiter(t *testing.T) {
	m, err := dyn.ParseMatrix[int]("1 2|3 4", dyn.WithColumnDelimiter("|"))
	require.NoError(t, err)
	_, cols := m.Size()
	require.Equal(t, 2, cols)

	require.Panics(t, func() { dyn.WithColumnDelimiter("") })
}

func TestParseVector(t *testing.T) {
	v, err := dyn.ParseVector[float64]("4 3 2")
	require.NoError(t, err)
	require.Equal(t, []float64{4, 3, 2}, v.Elements())

	_, err = dyn.ParseVector[float64]("")
	require.ErrorIs(t, err, dyn.ErrParse)

	_, err = dyn.ParseVector[float64]("4 nope 2")
	require.ErrorIs(t, err, dyn.ErrParse)
	require.Contains(t, err.Error(), "position 1")
}
