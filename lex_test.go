package alder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alder-lang/alder"
)

func tok(kind alder.TokenKind, text string, start, end int) alder.Token {
	return alder.Token{Kind: kind, Text: text, Span: alder.NewSpan(start, end)}
}

func op(o alder.Operator, text string, start, end int) alder.Token {
	return alder.Token{Kind: alder.TokenOp, Op: o, Text: text, Span: alder.NewSpan(start, end)}
}

func eof(at int) alder.Token {
	return alder.Token{Kind: alder.TokenEOF, Span: alder.NewSpan(at, at)}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []alder.Token
	}{
		{"empty", "", []alder.Token{eof(0)}},
		{"spaces", " \t\r\n ", []alder.Token{eof(5)}},
		{"unicode-spaces", "1 2", []alder.Token{
			tok(alder.TokenInteger, "1", 0, 1),
			tok(alder.TokenInteger, "2", 4, 5),
			eof(5),
		}},
		{"integer", "12831984", []alder.Token{tok(alder.TokenInteger, "12831984", 0, 8), eof(8)}},
		{"integers", "1283 1984", []alder.Token{
			tok(alder.TokenInteger, "1283", 0, 4),
			tok(alder.TokenInteger, "1984", 5, 9),
			eof(9),
		}},
		{"float", "8.10", []alder.Token{tok(alder.TokenFloat, "8.10", 0, 4), eof(4)}},
		{"float-exp", "1230E219", []alder.Token{tok(alder.TokenFloat, "1230E219", 0, 8), eof(8)}},
		{"float-frac-exp", "1023.123e39", []alder.Token{tok(alder.TokenFloat, "1023.123e39", 0, 11), eof(11)}},
		{"keywords", "true false trueish", []alder.Token{
			tok(alder.TokenTrue, "true", 0, 4),
			tok(alder.TokenFalse, "false", 5, 10),
			tok(alder.TokenIdent, "trueish", 11, 18),
			eof(18),
		}},
		{"ident-underscore", "_x2", []alder.Token{tok(alder.TokenIdent, "_x2", 0, 3), eof(3)}},
		{"parens", "()", []alder.Token{
			tok(alder.TokenLParen, "(", 0, 1),
			tok(alder.TokenRParen, ")", 1, 2),
			eof(2),
		}},
		{"as-cast", "pi * 8 as float ** 2", []alder.Token{
			tok(alder.TokenIdent, "pi", 0, 2),
			op(alder.OpMul, "*", 3, 4),
			tok(alder.TokenInteger, "8", 5, 6),
			op(alder.OpAs, "as", 7, 9),
			tok(alder.TokenIdent, "float", 10, 15),
			op(alder.OpPow, "**", 16, 18),
			tok(alder.TokenInteger, "2", 19, 20),
			eof(20),
		}},
		{"adjacent-pairs", "1==2<=3", []alder.Token{
			tok(alder.TokenInteger, "1", 0, 1),
			op(alder.OpEql, "==", 1, 3),
			tok(alder.TokenInteger, "2", 3, 4),
			op(alder.OpLE, "<=", 4, 6),
			tok(alder.TokenInteger, "3", 6, 7),
			eof(7),
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := alder.Tokenize(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: unexpected error %v", c.src, err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("tokenizing %q: wrong tokens (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeOperators(t *testing.T) {
	const src = "// && & | || + - == != / > < >> << >= <= ! ~ ** ^ % ( )"
	want := []alder.Operator{
		alder.OpIntDiv, alder.OpLAnd, alder.OpBAnd, alder.OpBOr, alder.OpLOr,
		alder.OpAdd, alder.OpSub, alder.OpEql, alder.OpNEql, alder.OpDiv,
		alder.OpGT, alder.OpLT, alder.OpBitShiftR, alder.OpBitShiftL,
		alder.OpGE, alder.OpLE, alder.OpLNot, alder.OpBNot, alder.OpPow,
		alder.OpBXor, alder.OpMod,
	}
	toks, err := alder.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenizing %q: unexpected error %v", src, err)
	}
	for i, o := range want {
		if toks[i].Kind != alder.TokenOp || toks[i].Op != o {
			t.Errorf("token %d: want operator %v, got %v", i, o, toks[i])
		}
	}
	rest := toks[len(want):]
	if len(rest) != 3 || rest[0].Kind != alder.TokenLParen || rest[1].Kind != alder.TokenRParen || rest[2].Kind != alder.TokenEOF {
		t.Errorf("trailing tokens wrong: %v", rest)
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		src  string
		msg  string
		span alder.Span
	}{
		{"8.", "expected number after `.`", alder.NewSpan(2, 3)},
		{"8.  ", "expected number after `.`", alder.NewSpan(2, 3)},
		{"8e", "expected number after `e`", alder.NewSpan(2, 3)},
		{"8E", "expected number after `E`", alder.NewSpan(2, 3)},
		{"8.10e", "expected number after `e`", alder.NewSpan(5, 6)},
		{"8.12E", "expected number after `E`", alder.NewSpan(5, 6)},
		{"1.e5", "expected number after `.`", alder.NewSpan(2, 3)},
		{".", "unrecognized character `.`", alder.NewSpan(0, 1)},
		{".5", "unrecognized character `.`", alder.NewSpan(0, 1)},
		{"=", "unrecognized character `=`", alder.NewSpan(0, 1)},
		{"8 = 2", "unrecognized character `=`", alder.NewSpan(2, 3)},
		{"$", "unrecognized character `$`", alder.NewSpan(0, 1)},
		{"1 ? 2", "unrecognized character `?`", alder.NewSpan(2, 3)},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks, err := alder.Tokenize(c.src)
			if err == nil {
				t.Fatalf("tokenizing %q: want error, got tokens %v", c.src, toks)
			}
			var ee *alder.Error
			if !errors.As(err, &ee) {
				t.Fatalf("tokenizing %q: error %v is not *alder.Error", c.src, err)
			}
			if ee.Kind != alder.LexError {
				t.Errorf("tokenizing %q: want LexError, got %v", c.src, ee.Kind)
			}
			if ee.Message != c.msg {
				t.Errorf("tokenizing %q: want message %q, got %q", c.src, c.msg, ee.Message)
			}
			if ee.Span != c.span {
				t.Errorf("tokenizing %q: want span %v, got %v", c.src, c.span, ee.Span)
			}
		})
	}
}

func TestTokenizeEOF(t *testing.T) {
	for _, src := range []string{"", "   ", "1 + 2", "x"} {
		toks, err := alder.Tokenize(src)
		if err != nil {
			t.Fatalf("tokenizing %q: unexpected error %v", src, err)
		}
		last := toks[len(toks)-1]
		if last.Kind != alder.TokenEOF {
			t.Errorf("tokenizing %q: last token is %v, not EOF", src, last)
		}
		if want := alder.NewSpan(len(src), len(src)); last.Span != want {
			t.Errorf("tokenizing %q: EOF span %v, want %v", src, last.Span, want)
		}
		for _, tk := range toks[:len(toks)-1] {
			if tk.Kind == alder.TokenEOF {
				t.Errorf("tokenizing %q: EOF token before end", src)
			}
		}
	}
}
