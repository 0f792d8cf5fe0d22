package alder

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	tokenNone TokenKind = iota
	// TokenInteger is a decimal integer literal.
	TokenInteger
	// TokenFloat is a decimal literal with a fraction part, an exponent, or
	// both.
	TokenFloat
	// TokenIdent is an identifier that is not a keyword.
	TokenIdent
	// TokenTrue and TokenFalse are the boolean literal keywords.
	TokenTrue
	TokenFalse
	// TokenLParen and TokenRParen are the grouping brackets.
	TokenLParen
	TokenRParen
	// TokenOp is an operator; the Op field of the token says which.
	TokenOp
	// TokenEOF marks the end of the input. Tokenize always emits exactly one,
	// last, with an empty span at the end of the source.
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenInteger:
		return "integer"
	case TokenFloat:
		return "float"
	case TokenIdent:
		return "identifier"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenOp:
		return "operator"
	case TokenEOF:
		return "eof"
	default:
		return "none"
	}
}

// Operator enumerates every prefix and infix operator of the language.
type Operator int

const (
	opNone Operator = iota
	// Arithmetic.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpIntDiv
	OpMod
	OpPow
	// Bitwise.
	OpBitShiftL
	OpBitShiftR
	OpBAnd
	OpBOr
	OpBXor
	OpBNot
	// Logical.
	OpLAnd
	OpLOr
	OpLNot
	// Type cast.
	OpAs
	// Comparison.
	OpEql
	OpNEql
	OpLT
	OpLE
	OpGT
	OpGE
)

// String returns the operator as it appears in source text.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpIntDiv:
		return "//"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	case OpBitShiftL:
		return "<<"
	case OpBitShiftR:
		return ">>"
	case OpBAnd:
		return "&"
	case OpBOr:
		return "|"
	case OpBXor:
		return "^"
	case OpBNot:
		return "~"
	case OpLAnd:
		return "&&"
	case OpLOr:
		return "||"
	case OpLNot:
		return "!"
	case OpAs:
		return "as"
	case OpEql:
		return "=="
	case OpNEql:
		return "!="
	case OpLT:
		return "<"
	case OpLE:
		return "<="
	case OpGT:
		return ">"
	case OpGE:
		return ">="
	default:
		return "?"
	}
}

// name returns the operator's spelled-out name for error messages.
func (op Operator) name() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpIntDiv:
		return "integer divide"
	case OpMod:
		return "modulo"
	case OpPow:
		return "power"
	case OpBitShiftL:
		return "left bitshift"
	case OpBitShiftR:
		return "right bitshift"
	case OpBAnd:
		return "bitwise and"
	case OpBOr:
		return "bitwise or"
	case OpBXor:
		return "bitwise xor"
	case OpBNot:
		return "bitwise not"
	case OpLAnd:
		return "logical and"
	case OpLOr:
		return "logical or"
	case OpLNot:
		return "logical not"
	case OpAs:
		return "as"
	case OpEql:
		return "equal"
	case OpNEql:
		return "not equal"
	case OpLT, OpLE:
		return "less than"
	case OpGT, OpGE:
		return "greater than"
	default:
		return "?"
	}
}

// Token is one lexical unit of the source text. Text always slices the
// original source, so a token stays valid as long as the source does.
type Token struct {
	Kind TokenKind
	// Op is set only when Kind is TokenOp.
	Op   Operator
	Text string
	Span Span
}

func (t Token) String() string {
	if t.Kind == TokenOp {
		return "operator:" + t.Op.String() + "@" + t.Span.String()
	}
	return t.Kind.String() + ":" + t.Text + "@" + t.Span.String()
}
