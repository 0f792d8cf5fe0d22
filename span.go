package alder

import "strconv"

// Span is a half-open byte-offset range [Start, End) into the source text.
// Every token, expression node, value, and error carries one so that callers
// can point diagnostics at the exact source substring involved.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a span. Start must not exceed End.
func NewSpan(start, end int) Span {
	if start > end {
		panic("alder: inverted span " + strconv.Itoa(start) + ".." + strconv.Itoa(end))
	}
	return Span{Start: start, End: end}
}

// Join combines two spans into one covering both, taking the start of s and
// the end of t. Binary expressions use this to span both operands.
func (s Span) Join(t Span) Span {
	return Span{Start: s.Start, End: t.End}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return strconv.Itoa(s.Start) + ".." + strconv.Itoa(s.End)
}
