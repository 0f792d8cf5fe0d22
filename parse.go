package alder

// Expr   = Or
// Or     = And { '||' And }
// And    = Cmp { '&&' Cmp }
// Cmp    = BOr { ('==' | '!=' | '<' | '<=' | '>' | '>=') BOr }
// BOr    = BXor { '|' BXor }
// BXor   = BAnd { '^' BAnd }
// BAnd   = Shift { '&' Shift }
// Shift  = Sum { ('<<' | '>>') Sum }
// Sum    = Term { ('+' | '-') Term }
// Term   = Cast { ('*' | '/' | '//' | '%') Cast }
// Cast   = Unary { 'as' Unary }
// Unary  = ('-' | '+' | '!' | '~') Unary | Pow
// Pow    = Atom [ '**' Unary ]
// Atom   = int | float | 'true' | 'false' | ident | '(' Expr ')'

// Binding powers, loosest first. Comparison and equality share a level in
// spirit but equality binds looser so `a < b == c > d` groups as
// `(a < b) == (c > d)`.
const (
	precLOr = 1 + iota
	precLAnd
	precEql
	precCmp
	precBOr
	precBXor
	precBAnd
	precShift
	precSum
	precTerm
	precCast
	precUnary
	precPow
)

// infixPrec returns the binding power of op in infix position and whether it
// is right-associative. ok is false for prefix-only operators.
func infixPrec(op Operator) (prec int, right, ok bool) {
	switch op {
	case OpLOr:
		return precLOr, false, true
	case OpLAnd:
		return precLAnd, false, true
	case OpEql, OpNEql:
		return precEql, false, true
	case OpLT, OpLE, OpGT, OpGE:
		return precCmp, false, true
	case OpBOr:
		return precBOr, false, true
	case OpBXor:
		return precBXor, false, true
	case OpBAnd:
		return precBAnd, false, true
	case OpBitShiftL, OpBitShiftR:
		return precShift, false, true
	case OpAdd, OpSub:
		return precSum, false, true
	case OpMul, OpDiv, OpIntDiv, OpMod:
		return precTerm, false, true
	case OpAs:
		return precCast, false, true
	case OpPow:
		return precPow, true, true
	default:
		return 0, false, false
	}
}

type parser struct {
	toks []Token
	pos  int
}

// Parse tokenizes source text and builds the expression tree the evaluator
// consumes. The whole input must form exactly one expression.
func Parse(src string) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks}
	e, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Kind != TokenEOF {
		return nil, parseErr("unexpected token `"+t.Text+"` after expression", t.Span)
	}
	return e, nil
}

// peek returns the current token without consuming it. Tokenize guarantees a
// trailing TokenEOF, so peek is always valid.
func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) bump() Token {
	t := p.toks[p.pos]
	if t.Kind != TokenEOF {
		p.pos++
	}
	return t
}

// expression parses operators of at least the given binding power using
// precedence climbing. Left-associative operators parse their right operand
// one level tighter; right-associative ones reuse their own level.
func (p *parser) expression(min int) (*Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.Kind != TokenOp {
			break
		}
		prec, right, ok := infixPrec(t.Op)
		if !ok || prec < min {
			break
		}
		p.bump()
		next := prec + 1
		if right {
			next = prec
		}
		rhs, err := p.expression(next)
		if err != nil {
			return nil, err
		}
		left = &Expr{
			Kind:  ExprInfix,
			Op:    t.Op,
			Left:  left,
			Right: rhs,
			Span:  left.Span.Join(rhs.Span),
		}
	}
	return left, nil
}

// unary parses any prefix operators and the operand they apply to. The
// operand binds tighter than every infix operator except `**`, so `-2**2`
// negates the power.
func (p *parser) unary() (*Expr, error) {
	t := p.peek()
	if t.Kind == TokenOp {
		switch t.Op {
		case OpSub, OpAdd, OpLNot, OpBNot:
			p.bump()
			operand, err := p.expression(precUnary)
			if err != nil {
				return nil, err
			}
			return &Expr{
				Kind: ExprPrefix,
				Op:   t.Op,
				Left: operand,
				Span: t.Span.Join(operand.Span),
			}, nil
		}
	}
	return p.atom()
}

func (p *parser) atom() (*Expr, error) {
	t := p.bump()
	switch t.Kind {
	case TokenInteger:
		return &Expr{Kind: ExprInt, Text: t.Text, Span: t.Span}, nil
	case TokenFloat:
		return &Expr{Kind: ExprFloat, Text: t.Text, Span: t.Span}, nil
	case TokenTrue:
		return &Expr{Kind: ExprBool, Bool: true, Span: t.Span}, nil
	case TokenFalse:
		return &Expr{Kind: ExprBool, Bool: false, Span: t.Span}, nil
	case TokenIdent:
		return &Expr{Kind: ExprIdent, Text: t.Text, Span: t.Span}, nil
	case TokenLParen:
		e, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		c := p.bump()
		if c.Kind != TokenRParen {
			return nil, parseErr("expected `)`", c.Span)
		}
		e.Span = t.Span.Join(c.Span)
		return e, nil
	case TokenOp:
		return nil, parseErr("unexpected operator `"+t.Text+"`", t.Span)
	case TokenRParen:
		return nil, parseErr("unexpected token `)`", t.Span)
	case TokenEOF:
		return nil, parseErr("expected an expression", t.Span)
	default:
		return nil, parseErr("unexpected token `"+t.Text+"`", t.Span)
	}
}
