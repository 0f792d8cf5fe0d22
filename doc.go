// Package alder implements a small typed expression language: arithmetic,
// bitwise, logical, and comparison operators over 128-bit integers, float64s,
// and booleans.
//
// Source text is tokenized and parsed into an expression tree, then evaluated
// by a direct tree walk against a read-only environment of named constants.
// Operands are never converted implicitly; mixing integers and floats is a
// type error, and the `as` operator performs explicit casts. Every token,
// node, value, and error carries a byte-offset span into the source text so
// embedders can render caret diagnostics.
//
// The engine evaluates one expression to one value and stops. There is no
// assignment, no user-defined functions, and no I/O.
package alder
