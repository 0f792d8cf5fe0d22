package alder

import "strconv"

// ErrorKind classifies what stage of evaluation an error came from.
type ErrorKind int

const (
	// LexError indicates malformed input text: an unrecognized character, a
	// bare `=`, or a numeric literal missing digits after `.` or an exponent
	// marker.
	LexError ErrorKind = iota
	// ParseError indicates a token sequence that does not form an
	// expression, such as unbalanced parentheses or a dangling operator.
	ParseError
	// TypeError indicates an operator applied to operand kinds it is not
	// defined for, or an invalid cast target.
	TypeError
	// RuntimeError indicates a failure while computing: literal text out of
	// range, arithmetic overflow, a division or shift argument out of range,
	// or an identifier missing from the environment.
	RuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case ParseError:
		return "parse error"
	case TypeError:
		return "type error"
	case RuntimeError:
		return "runtime error"
	default:
		return "error(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is an error produced by the lexer, parser, or evaluator. The first
// error encountered aborts the whole run; there is no recovery. Span locates
// the error in the source text so the caller can render a caret diagnostic.
type Error struct {
	// Message is the human-readable description, without position info.
	Message string
	// Kind is the error's classification.
	Kind ErrorKind
	// Span is the byte range of the source text the error refers to.
	Span Span
}

func (e *Error) Error() string {
	return e.Span.String() + ": " + e.Kind.String() + ": " + e.Message
}

func lexErr(msg string, span Span) *Error {
	return &Error{Message: msg, Kind: LexError, Span: span}
}

func parseErr(msg string, span Span) *Error {
	return &Error{Message: msg, Kind: ParseError, Span: span}
}

func typeErr(msg string, span Span) *Error {
	return &Error{Message: msg, Kind: TypeError, Span: span}
}

func runtimeErr(msg string, span Span) *Error {
	return &Error{Message: msg, Kind: RuntimeError, Span: span}
}
