// Package linal is a small, dependency-light toolbox of linear-algebra
// containers: statically dimensioned matrices checked by the type system,
// and dynamically sized matrices/vectors checked at runtime.
//
// 🚀 What is linal?
//
//	A generic container library that brings together:
//		• fixed/  — compile-time dimensioned Matrix[T, M, N] with phantom
//		  dimension tags, contiguous column-major storage, raw views and a
//		  checked reinterpret cast
//		• dyn/    — runtime dimensioned Matrix[T] and Vector[T] with the same
//		  operator vocabulary, text parsing and aligned formatting
//		• scalar/ — the numeric capability set (closure, sign) both families
//		  consume, built on Go generic constraints
//
// ✨ Why choose linal?
//
//   - One vocabulary – Add/Sub/Mul/Scale behave identically whether the shape
//     is known at compile time or at run time
//   - Fail-fast – shape mismatches are compile errors in fixed/ and sentinel
//     errors in dyn/; nothing is silently truncated or defaulted
//   - Pure Go – no cgo; unsafe is confined to the documented raw views
//
// The two families never share storage: converting between them, or between a
// vector and a single-column matrix, always copies.
//
// Quick taste:
//
//	a, _ := dyn.ParseMatrix[float64]("4 3 2;2 2 -1") // 3 rows × 2 columns
//	b, _ := dyn.ParseMatrix[float64]("1 1 1;1 1 1")
//	sum, err := a.Add(b)
//
//	go get github.com/katalvlaran/linal
package linal
