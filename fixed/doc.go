// Package fixed provides compile-time dimensioned matrices over contiguous,
// column-major storage.
//
// Dimensions are phantom type tags (D0…D6) carried in the type itself, so a
// Matrix[float64, D2, D3] and a Matrix[float64, D3, D2] are distinct types:
// mismatched Add/Sub operands or an incompatible Mul simply do not compile.
// This is the Go rendition of const-generic dimensions — the shape check that
// dyn performs at run time happens here in the type checker.
//
// The fixed family offers:
//
//   - Construction: New (columns), Of (flat column-major), Zero, One,
//     Broadcast, Eye.
//   - Arithmetic: Add/Sub (+Assign forms), Mul (M×N · N×P → M×P), Scale and
//     DivScalar (+Assign forms).
//   - Elementwise: Map/Apply, Clamp/Clamped, MaxByComponent/MinByComponent,
//     Abs/AbsInPlace (sign capability).
//   - Determinant: closed-form for square dimensions 0–3; anything larger is
//     ErrUnsupportedDimension, never a silently wrong value.
//   - Raw views: Slice, Bytes, Pointer expose the backing storage for interop
//     with foreign numeric code; Reinterpret performs a checked zero-copy
//     element-type cast (ErrLayoutMismatch on incompatible layouts).
//
// Storage is column-major with no padding: element (r,c) lives at data[c*M+r].
// Index accessors panic on out-of-range indices — an index bug is a
// programmer error, matching Go's own slice semantics — while every
// user-suppliable failure (bad literal arity, unsupported determinant size,
// layout mismatch) is a sentinel error checked via errors.Is.
package fixed
