package alder

import (
	"math"
	"math/big"
	"strconv"
)

// ValueKind discriminates the three runtime value variants.
type ValueKind int

const (
	// ValueInteger is a 128-bit signed integer.
	ValueInteger ValueKind = iota
	// ValueFloat is a 64-bit IEEE-754 float.
	ValueFloat
	// ValueBool is a boolean.
	ValueBool
)

// String returns the kind's name as used in error messages.
func (k ValueKind) String() string {
	switch k {
	case ValueInteger:
		return "integer"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "boolean"
	default:
		return "value(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the result of evaluating an expression: a 128-bit signed integer,
// a float64, or a bool. A value always carries the span of the subexpression
// that produced it, so later operations can report combined spans.
type Value struct {
	kind ValueKind
	i    *big.Int
	f    float64
	b    bool
	span Span
}

// Kind returns which variant the value holds.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Int returns a copy of the integer value. It is zero for other variants.
func (v Value) Int() *big.Int {
	if v.i == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.i)
}

// Float64 returns the float value. It is zero for other variants.
func (v Value) Float64() float64 {
	return v.f
}

// Bool returns the boolean value. It is false for other variants.
func (v Value) Bool() bool {
	return v.b
}

// Span returns the source span of the subexpression that produced the value.
func (v Value) Span() Span {
	return v.span
}

// String renders the value: integers and floats in their decimal string
// form, booleans as true or false.
func (v Value) String() string {
	switch v.kind {
	case ValueInteger:
		return v.i.String()
	case ValueFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// IntOf creates an integer value for use as an environment constant.
func IntOf(n int64) Value {
	return intValue(big.NewInt(n), Span{})
}

// Int128 creates an integer value from n, which must be within the 128-bit
// signed range. The value does not alias n.
func Int128(n *big.Int) Value {
	if !fitsInt128(n) {
		panic("alder: integer constant out of 128-bit range: " + n.String())
	}
	return intValue(new(big.Int).Set(n), Span{})
}

// FloatOf creates a float value for use as an environment constant.
func FloatOf(f float64) Value {
	return floatValue(f, Span{})
}

// BoolOf creates a boolean value for use as an environment constant.
func BoolOf(b bool) Value {
	return boolValue(b, Span{})
}

func intValue(i *big.Int, span Span) Value {
	return Value{kind: ValueInteger, i: i, span: span}
}

func floatValue(f float64, span Span) Value {
	return Value{kind: ValueFloat, f: f, span: span}
}

func boolValue(b bool, span Span) Value {
	return Value{kind: ValueBool, b: b, span: span}
}

// norm gives a missing integer payload a zero, so a Value built as a struct
// literal rather than by a constructor behaves like IntOf(0).
func (v Value) norm() Value {
	if v.kind == ValueInteger && v.i == nil {
		v.i = new(big.Int)
	}
	return v
}

// withSpan returns the value re-tagged with the span of the subexpression
// producing it.
func (v Value) withSpan(span Span) Value {
	v.span = span
	return v
}

// equal is structural equality across any variant pair. Mismatched variants
// compare unequal rather than erroring, including integer against float.
func (v Value) equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case ValueInteger:
		return v.i.Cmp(w.i) == 0
	case ValueFloat:
		// IEEE equality; NaN is unequal to itself.
		return v.f == w.f
	default:
		return v.b == w.b
	}
}

// The integer variant rides on big.Int constrained to the 128-bit signed
// range. Checked operations compute exactly and then range-check, so
// overflow is detected rather than wrapped, except shift-left which wraps to
// two's complement like a fixed-width machine shift.
var (
	minInt128 = new(big.Int).Lsh(big.NewInt(-1), 127)
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt32  = big.NewInt(math.MinInt32)
	maxInt32  = big.NewInt(math.MaxInt32)
	mod128    = new(big.Int).Lsh(big.NewInt(1), 128)
)

func fitsInt128(x *big.Int) bool {
	return x.Cmp(minInt128) >= 0 && x.Cmp(maxInt128) <= 0
}

func fitsInt32(x *big.Int) bool {
	return x.Cmp(minInt32) >= 0 && x.Cmp(maxInt32) <= 0
}

// fitsUint32 converts x to an unsigned 32-bit shift or exponent amount.
func fitsUint32(x *big.Int) (uint, bool) {
	if x.Sign() < 0 || x.BitLen() > 32 {
		return 0, false
	}
	return uint(x.Uint64()), true
}

// wrapInt128 reduces x into the 128-bit signed range, two's complement.
func wrapInt128(x *big.Int) *big.Int {
	m := new(big.Int).Mod(x, mod128)
	if m.Cmp(maxInt128) > 0 {
		m.Sub(m, mod128)
	}
	return m
}

// int128Float converts x to the nearest float64, the conversion a fixed
// 128-bit integer cast to float would perform.
func int128Float(x *big.Int) float64 {
	f, _ := new(big.Float).SetInt(x).Float64()
	return f
}

// truncInt128 truncates f toward zero and saturates it into the 128-bit
// signed range. NaN converts to zero.
func truncInt128(f float64) *big.Int {
	return floatInt128(math.Trunc(f))
}

// roundInt128 rounds f to the nearest integer, ties away from zero, and
// saturates it into the 128-bit signed range. NaN converts to zero.
func roundInt128(f float64) *big.Int {
	return floatInt128(math.Round(f))
}

func floatInt128(f float64) *big.Int {
	switch {
	case math.IsNaN(f):
		return new(big.Int)
	case math.IsInf(f, 1):
		return new(big.Int).Set(maxInt128)
	case math.IsInf(f, -1):
		return new(big.Int).Set(minInt128)
	}
	x, _ := big.NewFloat(f).Int(nil)
	if x.Cmp(minInt128) < 0 {
		return new(big.Int).Set(minInt128)
	}
	if x.Cmp(maxInt128) > 0 {
		return new(big.Int).Set(maxInt128)
	}
	return x
}
