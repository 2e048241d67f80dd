// Package dyn provides runtime-dimensioned matrices and vectors mirroring
// the arithmetic surface of the fixed family.
//
// Where fixed lets the compiler reject mismatched shapes, dyn validates every
// binary operator up front and fails with ErrDimensionMismatch — wrapped with
// both operand shapes — before touching any data. Nothing is ever silently
// truncated, padded or defaulted.
//
// Containers:
//
//   - Matrix[T] – a sequence of equal-length columns (column-major, matching
//     fixed's layout) with a cached (rows, cols) size. Ragged construction
//     input is rejected with ErrRaggedInput.
//   - Vector[T] – a flat element sequence with a cached length. Semantically
//     a single-column matrix; the two convert both ways, always by copy.
//
// The package also owns the text wire format — the only persisted format in
// scope: a vector is space-separated tokens ("4 3 2"), a matrix is
// semicolon-separated columns of space-separated tokens ("4 3 2;2 2 -1" is
// two columns of three rows). A malformed token fails the whole parse with
// ErrParse identifying the token and its position; no element is ever
// silently replaced by a default.
//
// Conversions to and from the fixed family (ToFixed, FromFixed) bridge the
// two container worlds; they copy, and ToFixed re-checks the shape against
// the compile-time dimensions.
package dyn
