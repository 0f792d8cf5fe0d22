package alder

import "unicode/utf8"

// isWhitespace reports whether r is skipped between tokens. The set is a
// fixed list of codepoints, not the Unicode whitespace property.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'', // next line
		'‎', '‏', // bidi marks
		' ', ' ': // line and paragraph separators
		return true
	}
	return false
}

func isIDStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isIDContinue(r rune) bool {
	return isIDStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// lexer scans source text left to right with one-rune lookahead. It never
// backtracks; pos only advances.
type lexer struct {
	src string
	pos int
}

const eofRune rune = 0

// peek returns the rune at the current position without consuming it.
func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return eofRune
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

// bump consumes the rune at the current position.
func (l *lexer) bump() rune {
	if l.pos >= len(l.src) {
		return eofRune
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += sz
	return r
}

// Tokenize converts source text into tokens. On success the returned slice
// always ends with exactly one TokenEOF whose span is the empty range at the
// end of the source. The first malformed character aborts lexing with a
// LexError; no tokens are returned.
func Tokenize(src string) ([]Token, error) {
	l := lexer{src: src}
	var tokens []Token
	for {
		start := l.pos
		r := l.bump()
		if r == eofRune {
			break
		}
		switch {
		case isWhitespace(r):
			continue
		case isDigit(r):
			tok, err := l.number(start)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case isIDStart(r):
			tokens = append(tokens, l.identifier(start))
		default:
			tok, err := l.operator(start, r)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, Token{Kind: TokenEOF, Span: NewSpan(len(src), len(src))})
	return tokens, nil
}

// token builds a token whose text is the source between start and the
// current position.
func (l *lexer) token(kind TokenKind, start int) Token {
	return Token{Kind: kind, Text: l.src[start:l.pos], Span: NewSpan(start, l.pos)}
}

func (l *lexer) opToken(op Operator, start int) Token {
	return Token{Kind: TokenOp, Op: op, Text: l.src[start:l.pos], Span: NewSpan(start, l.pos)}
}

// digits consumes a run of ASCII digits.
func (l *lexer) digits() int {
	n := 0
	for isDigit(l.peek()) {
		l.bump()
		n++
	}
	return n
}

// digitsAfter consumes the digits required after a `.` or exponent marker.
// A `.` or `e`/`E` directly following digits commits the token to a float;
// there is no fallback to an integer token.
func (l *lexer) digitsAfter(marker string) error {
	if l.digits() == 0 {
		return lexErr("expected number after `"+marker+"`", NewSpan(l.pos, l.pos+1))
	}
	return nil
}

// number scans an integer or float literal. The opening digit has already
// been consumed. The literal's text is kept verbatim; numeric conversion is
// the evaluator's job so that out-of-range literals report against the
// original spelling.
func (l *lexer) number(start int) (Token, error) {
	l.digits()
	switch l.peek() {
	case '.':
		l.bump()
		if err := l.digitsAfter("."); err != nil {
			return Token{}, err
		}
		if m := l.peek(); m == 'e' || m == 'E' {
			l.bump()
			if err := l.digitsAfter(string(m)); err != nil {
				return Token{}, err
			}
		}
		return l.token(TokenFloat, start), nil
	case 'e', 'E':
		m := l.bump()
		if err := l.digitsAfter(string(m)); err != nil {
			return Token{}, err
		}
		return l.token(TokenFloat, start), nil
	default:
		return l.token(TokenInteger, start), nil
	}
}

// identifier scans a maximal identifier and classifies keywords by exact
// text. The opening character has already been consumed.
func (l *lexer) identifier(start int) Token {
	for isIDContinue(l.peek()) {
		l.bump()
	}
	switch l.src[start:l.pos] {
	case "as":
		return l.opToken(OpAs, start)
	case "true":
		return l.token(TokenTrue, start)
	case "false":
		return l.token(TokenFalse, start)
	default:
		return l.token(TokenIdent, start)
	}
}

// pair consumes the lookahead rune and produces a two-character operator.
func (l *lexer) pair(op Operator, start int) Token {
	l.bump()
	return l.opToken(op, start)
}

// operator resolves the one- and two-character operators. Two-character
// forms are decided by peeking the next rune without committing it unless it
// completes a valid pair.
func (l *lexer) operator(start int, r rune) (Token, error) {
	switch r {
	case '(':
		return l.token(TokenLParen, start), nil
	case ')':
		return l.token(TokenRParen, start), nil
	case '+':
		return l.opToken(OpAdd, start), nil
	case '-':
		return l.opToken(OpSub, start), nil
	case '~':
		return l.opToken(OpBNot, start), nil
	case '^':
		return l.opToken(OpBXor, start), nil
	case '%':
		return l.opToken(OpMod, start), nil
	case '!':
		if l.peek() == '=' {
			return l.pair(OpNEql, start), nil
		}
		return l.opToken(OpLNot, start), nil
	case '|':
		if l.peek() == '|' {
			return l.pair(OpLOr, start), nil
		}
		return l.opToken(OpBOr, start), nil
	case '&':
		if l.peek() == '&' {
			return l.pair(OpLAnd, start), nil
		}
		return l.opToken(OpBAnd, start), nil
	case '*':
		if l.peek() == '*' {
			return l.pair(OpPow, start), nil
		}
		return l.opToken(OpMul, start), nil
	case '/':
		if l.peek() == '/' {
			return l.pair(OpIntDiv, start), nil
		}
		return l.opToken(OpDiv, start), nil
	case '=':
		if l.peek() == '=' {
			return l.pair(OpEql, start), nil
		}
		// There is no assignment, so a bare = is never valid.
		return Token{}, lexErr("unrecognized character `=`", NewSpan(start, l.pos))
	case '>':
		switch l.peek() {
		case '=':
			return l.pair(OpGE, start), nil
		case '>':
			return l.pair(OpBitShiftR, start), nil
		}
		return l.opToken(OpGT, start), nil
	case '<':
		switch l.peek() {
		case '=':
			return l.pair(OpLE, start), nil
		case '<':
			return l.pair(OpBitShiftL, start), nil
		}
		return l.opToken(OpLT, start), nil
	default:
		return Token{}, lexErr("unrecognized character `"+string(r)+"`", NewSpan(start, l.pos))
	}
}
