package alder

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Eval walks the expression tree and produces its value. The walk is
// depth-first and left to right; the first error aborts evaluation and
// propagates with the span of the subexpression that caused it. Recursion
// depth equals expression nesting depth. A nil env evaluates against the
// built-in constants only.
func Eval(e *Expr, env *Env) (Value, error) {
	if env == nil {
		env = NewEnv()
	}
	return evalExpr(e, env)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...EnvOption) (Value, error) {
	e, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return Eval(e, NewEnv(opts...))
}

func evalExpr(e *Expr, env *Env) (Value, error) {
	switch e.Kind {
	case ExprBool:
		return boolValue(e.Bool, e.Span), nil
	case ExprInt:
		return evalIntLiteral(e)
	case ExprFloat:
		return evalFloatLiteral(e)
	case ExprIdent:
		v, ok := env.Lookup(e.Text)
		if !ok {
			return Value{}, runtimeErr("no variable `"+e.Text+"` found", e.Span)
		}
		return v.withSpan(e.Span), nil
	case ExprPrefix:
		v, err := evalExpr(e.Left, env)
		if err != nil {
			return Value{}, err
		}
		return applyPrefix(e.Op, v)
	case ExprInfix:
		if e.Op == OpAs {
			v, err := evalExpr(e.Left, env)
			if err != nil {
				return Value{}, err
			}
			return cast(v, e.Right)
		}
		l, err := evalExpr(e.Left, env)
		if err != nil {
			return Value{}, err
		}
		r, err := evalExpr(e.Right, env)
		if err != nil {
			return Value{}, err
		}
		return applyInfix(e.Op, l, r)
	default:
		panic("alder: invalid AST node kind " + strconv.Itoa(int(e.Kind)))
	}
}

func evalIntLiteral(e *Expr) (Value, error) {
	z, ok := new(big.Int).SetString(e.Text, 10)
	if !ok {
		return Value{}, runtimeErr("error converting `"+e.Text+"` to integer: invalid digit", e.Span)
	}
	if !fitsInt128(z) {
		return Value{}, runtimeErr("error converting `"+e.Text+"` to integer: value out of range", e.Span)
	}
	return intValue(z, e.Span), nil
}

func evalFloatLiteral(e *Expr) (Value, error) {
	f, err := strconv.ParseFloat(e.Text, 64)
	// Out-of-range literals saturate to infinity; only malformed text is an
	// error.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, runtimeErr("error converting `"+e.Text+"` to float: invalid syntax", e.Span)
	}
	return floatValue(f, e.Span), nil
}

// typeMismatch builds the error for a binary operator applied to operand
// kinds it is not defined for.
func typeMismatch(op Operator, l, r Value, span Span) error {
	return typeErr(fmt.Sprintf("cannot apply operator `%s` on types `%s` and `%s`", op.name(), l.kind, r.kind), span)
}

// checkedInt range-checks the result of an exact integer computation.
func checkedInt(z *big.Int, span Span, overflow string) (Value, error) {
	if !fitsInt128(z) {
		return Value{}, runtimeErr(overflow, span)
	}
	return intValue(z, span), nil
}

// applyInfix dispatches a binary operator over the operand values. Both
// arithmetic operands must hold the same variant; there are no implicit
// conversions. The result spans both operands.
func applyInfix(op Operator, l, r Value) (Value, error) {
	span := l.span.Join(r.span)
	switch op {
	case OpAdd:
		switch {
		case l.kind == ValueInteger && r.kind == ValueInteger:
			z := new(big.Int).Add(l.i, r.i)
			return checkedInt(z, span, fmt.Sprintf("failed to add `%s` and `%s`: value overflowed", l, r))
		case l.kind == ValueFloat && r.kind == ValueFloat:
			return floatValue(l.f+r.f, span), nil
		}
	case OpSub:
		switch {
		case l.kind == ValueInteger && r.kind == ValueInteger:
			z := new(big.Int).Sub(l.i, r.i)
			return checkedInt(z, span, fmt.Sprintf("failed to subtract `%s` from `%s`: value overflowed", r, l))
		case l.kind == ValueFloat && r.kind == ValueFloat:
			return floatValue(l.f-r.f, span), nil
		}
	case OpMul:
		switch {
		case l.kind == ValueInteger && r.kind == ValueInteger:
			z := new(big.Int).Mul(l.i, r.i)
			return checkedInt(z, span, fmt.Sprintf("failed to multiply `%s` by `%s`: value overflowed", l, r))
		case l.kind == ValueFloat && r.kind == ValueFloat:
			return floatValue(l.f*r.f, span), nil
		}
	case OpDiv:
		// Division always produces a float; zero divisors follow IEEE
		// semantics rather than erroring.
		switch {
		case l.kind == ValueInteger && r.kind == ValueInteger:
			return floatValue(int128Float(l.i)/int128Float(r.i), span), nil
		case l.kind == ValueFloat && r.kind == ValueFloat:
			return floatValue(l.f/r.f, span), nil
		}
	case OpIntDiv:
		switch {
		case l.kind == ValueInteger && r.kind == ValueInteger:
			return intDiv(l.i, r.i, l, r, span)
		case l.kind == ValueFloat && r.kind == ValueFloat:
			return intDiv(truncInt128(l.f), truncInt128(r.f), l, r, span)
		}
	case OpMod:
		switch {
		case l.kind == ValueInteger && r.kind == ValueInteger:
			if r.i.Sign() == 0 {
				return Value{}, runtimeErr(fmt.Sprintf("failed to modulo `%s` by `%s`: division by zero", l, r), span)
			}
			return intValue(new(big.Int).Rem(l.i, r.i), span), nil
		case l.kind == ValueFloat && r.kind == ValueFloat:
			return floatValue(math.Mod(l.f, r.f), span), nil
		}
	case OpPow:
		switch {
		case l.kind == ValueInteger && r.kind == ValueInteger:
			return intPow(l, r, span)
		case l.kind == ValueFloat && r.kind == ValueFloat:
			return floatValue(math.Pow(l.f, r.f), span), nil
		}
	case OpBAnd:
		if l.kind == ValueInteger && r.kind == ValueInteger {
			return intValue(new(big.Int).And(l.i, r.i), span), nil
		}
	case OpBOr:
		if l.kind == ValueInteger && r.kind == ValueInteger {
			return intValue(new(big.Int).Or(l.i, r.i), span), nil
		}
	case OpBXor:
		if l.kind == ValueInteger && r.kind == ValueInteger {
			return intValue(new(big.Int).Xor(l.i, r.i), span), nil
		}
	case OpBitShiftL, OpBitShiftR:
		if l.kind == ValueInteger && r.kind == ValueInteger {
			return shift(op, l, r, span)
		}
	case OpLAnd:
		if l.kind == ValueBool && r.kind == ValueBool {
			return boolValue(l.b && r.b, span), nil
		}
	case OpLOr:
		if l.kind == ValueBool && r.kind == ValueBool {
			return boolValue(l.b || r.b, span), nil
		}
	case OpEql:
		return boolValue(l.equal(r), span), nil
	case OpNEql:
		return boolValue(!l.equal(r), span), nil
	case OpLT, OpLE, OpGT, OpGE:
		return compare(op, l, r, span)
	default:
		panic("alder: operator `" + op.String() + "` is not infix")
	}
	return Value{}, typeMismatch(op, l, r, span)
}

func intDiv(li, ri *big.Int, l, r Value, span Span) (Value, error) {
	if ri.Sign() == 0 {
		return Value{}, runtimeErr(fmt.Sprintf("failed to integer divide `%s` by `%s`: value overflowed", l, r), span)
	}
	z := new(big.Int).Quo(li, ri)
	// The only overflowing quotient is the minimum value divided by -1.
	return checkedInt(z, span, fmt.Sprintf("failed to integer divide `%s` by `%s`: value overflowed", l, r))
}

func intPow(l, r Value, span Span) (Value, error) {
	exp, ok := fitsUint32(r.i)
	if !ok {
		return Value{}, runtimeErr(fmt.Sprintf("failed to raise `%s` to the power of `%s`: exponent out of range", l, r), span)
	}
	overflow := fmt.Sprintf("failed to raise `%s` to the power of `%s`: value overflowed", l, r)
	// Any base of magnitude at least 2 overflows 128 bits past exponent 127,
	// so refuse before computing a huge power.
	if exp > 127 && l.i.BitLen() > 1 {
		return Value{}, runtimeErr(overflow, span)
	}
	z := new(big.Int).Exp(l.i, new(big.Int).SetUint64(uint64(exp)), nil)
	return checkedInt(z, span, overflow)
}

func shift(op Operator, l, r Value, span Span) (Value, error) {
	dir := "left"
	if op == OpBitShiftR {
		dir = "right"
	}
	amt, ok := fitsUint32(r.i)
	if !ok {
		return Value{}, runtimeErr(fmt.Sprintf("failed to bitshift `%s` %s `%s`: shift amount out of range", l, dir, r), span)
	}
	if amt >= 128 {
		return Value{}, runtimeErr(fmt.Sprintf("failed to bitshift `%s` %s by `%s`: overflowed", l, dir, r), span)
	}
	if op == OpBitShiftL {
		// Bits shifted past the sign bit are discarded, as in a fixed-width
		// two's complement shift.
		return intValue(wrapInt128(new(big.Int).Lsh(l.i, amt)), span), nil
	}
	// Rsh on big.Int is an arithmetic shift for negative values.
	return intValue(new(big.Int).Rsh(l.i, amt), span), nil
}

func compare(op Operator, l, r Value, span Span) (Value, error) {
	switch {
	case l.kind == ValueInteger && r.kind == ValueInteger:
		c := l.i.Cmp(r.i)
		switch op {
		case OpLT:
			return boolValue(c < 0, span), nil
		case OpLE:
			return boolValue(c <= 0, span), nil
		case OpGT:
			return boolValue(c > 0, span), nil
		default:
			return boolValue(c >= 0, span), nil
		}
	case l.kind == ValueFloat && r.kind == ValueFloat:
		// Each operator applies natively so that every ordering against NaN
		// is false.
		switch op {
		case OpLT:
			return boolValue(l.f < r.f, span), nil
		case OpLE:
			return boolValue(l.f <= r.f, span), nil
		case OpGT:
			return boolValue(l.f > r.f, span), nil
		default:
			return boolValue(l.f >= r.f, span), nil
		}
	default:
		return Value{}, typeMismatch(op, l, r, span)
	}
}

// applyPrefix dispatches a unary operator. The result keeps the operand's
// span.
func applyPrefix(op Operator, v Value) (Value, error) {
	switch op {
	case OpSub:
		switch v.kind {
		case ValueInteger:
			z := new(big.Int).Neg(v.i)
			return checkedInt(z, v.span, fmt.Sprintf("failed to negate `%s`: value overflowed", v))
		case ValueFloat:
			return floatValue(-v.f, v.span), nil
		}
		return Value{}, typeErr(fmt.Sprintf("cannot make type `%s` negative", v.kind), v.span)
	case OpAdd:
		// Unary plus is absolute value, not identity.
		switch v.kind {
		case ValueInteger:
			z := new(big.Int).Abs(v.i)
			return checkedInt(z, v.span, fmt.Sprintf("failed to take absolute value of `%s`: value overflowed", v))
		case ValueFloat:
			return floatValue(math.Abs(v.f), v.span), nil
		}
		return Value{}, typeErr(fmt.Sprintf("cannot make type `%s` positive", v.kind), v.span)
	case OpLNot:
		if v.kind == ValueBool {
			return boolValue(!v.b, v.span), nil
		}
		return Value{}, runtimeErr(fmt.Sprintf("cannot logically negate `%s`", v.kind), v.span)
	case OpBNot:
		if v.kind == ValueInteger {
			return intValue(new(big.Int).Not(v.i), v.span), nil
		}
		return Value{}, runtimeErr(fmt.Sprintf("cannot bitwise negate `%s`", v.kind), v.span)
	default:
		panic("alder: operator `" + op.String() + "` is not prefix")
	}
}

// cast converts a value with the `as` operator. The target is the unevaluated
// right operand, which must be an identifier naming `float` or `int`. The
// result keeps the operand's span.
func cast(v Value, target *Expr) (Value, error) {
	if target.Kind != ExprIdent {
		return Value{}, typeErr("invalid type for `as` type operand", target.Span)
	}
	switch target.Text {
	case "float":
		switch v.kind {
		case ValueInteger:
			// Only integers that fit a signed 32-bit value widen to float.
			if !fitsInt32(v.i) {
				return Value{}, runtimeErr(fmt.Sprintf("failed to convert `%s` to `float`: value out of range", v), v.span)
			}
			return floatValue(float64(v.i.Int64()), v.span), nil
		case ValueFloat:
			return v, nil
		default:
			if v.b {
				return floatValue(1, v.span), nil
			}
			return floatValue(0, v.span), nil
		}
	case "int":
		switch v.kind {
		case ValueInteger:
			return v, nil
		case ValueFloat:
			// Round to nearest, ties away from zero, saturating.
			return intValue(roundInt128(v.f), v.span), nil
		default:
			if v.b {
				return intValue(big.NewInt(1), v.span), nil
			}
			return intValue(new(big.Int), v.span), nil
		}
	default:
		return Value{}, typeErr("unknown type `"+target.Text+"`", target.Span)
	}
}
