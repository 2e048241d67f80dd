// Package scalar declares the numeric capability set consumed by the fixed
// and dyn container families.
//
// The capabilities mirror the classic trait split:
//
//   - Scalar – closure under +, -, *, / plus the additive and multiplicative
//     identities (Zero, One). Every Go fixed-width integer and float
//     satisfies it.
//   - Signed – the sign capability (Abs); signed integers and floats.
//
// Ordering rides on Scalar itself: all conforming Go numeric types are
// ordered, so Max/Min/Clamp need no extra constraint.
//
// The package is intentionally tiny: concrete math lives in the container
// packages, scalar only names what an element type must provide.
package scalar
