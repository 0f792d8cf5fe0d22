package alder

import "strings"

// ExprKind discriminates the variants of an expression node.
type ExprKind int8

const (
	exprNone ExprKind = iota

	// ExprBool is a boolean literal; Bool holds the value.
	ExprBool
	// ExprInt is an integer literal; Text holds the literal verbatim.
	ExprInt
	// ExprFloat is a float literal; Text holds the literal verbatim.
	ExprFloat
	// ExprIdent is an identifier; Text holds the name.
	ExprIdent
	// ExprPrefix is a unary operation; Op is the operator and Left the
	// operand.
	ExprPrefix
	// ExprInfix is a binary operation; Op is the operator, Left and Right
	// the operands. The parser resolves all precedence and associativity, so
	// the evaluator never reasons about either.
	ExprInfix
)

// Expr is a node in the abstract syntax tree of an expression. Numeric
// literals keep their original text rather than a parsed value so that
// conversion failures surface during evaluation with the literal's span.
type Expr struct {
	Kind ExprKind

	// Text is the literal text of ExprInt and ExprFloat nodes and the name
	// of ExprIdent nodes.
	Text string
	// Bool is the value of an ExprBool node.
	Bool bool

	Op    Operator
	Left  *Expr
	Right *Expr

	// Span covers the full token range of the subexpression, including any
	// enclosing parentheses.
	Span Span
}

// String renders the expression fully parenthesized.
func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expr) fmt(b *strings.Builder) {
	switch e.Kind {
	case ExprBool:
		if e.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case ExprInt, ExprFloat, ExprIdent:
		b.WriteString(e.Text)
	case ExprPrefix:
		b.WriteByte('(')
		b.WriteString(e.Op.String())
		e.Left.fmt(b)
		b.WriteByte(')')
	case ExprInfix:
		b.WriteByte('(')
		e.Left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(e.Op.String())
		b.WriteByte(' ')
		e.Right.fmt(b)
		b.WriteByte(')')
	default:
		// Invalid nodes use an invalid character.
		b.WriteByte('$')
	}
}
