package alder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alder-lang/alder"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"literal", "42", "42"},
		{"ident", "pi", "pi"},
		{"bool", "true", "true"},
		{"precedence", "1+2*3", "(1 + (2 * 3))"},
		{"parens", "(1+2)*3", "((1 + 2) * 3)"},
		{"left-assoc", "1-2-3", "((1 - 2) - 3)"},
		{"term-chain", "8//3%2", "((8 // 3) % 2)"},
		{"pow-right-assoc", "2**3**2", "(2 ** (3 ** 2))"},
		{"neg-pow", "-2**2", "(-(2 ** 2))"},
		{"pow-neg", "2**-3", "(2 ** (-3))"},
		{"cast", "1 as float", "(1 as float)"},
		{"cast-chain", "1 as float as int", "((1 as float) as int)"},
		{"cast-tight", "1+2 as float", "(1 + (2 as float))"},
		{"cmp-vs-eql", "1 < 2 == 3 < 4", "((1 < 2) == (3 < 4))"},
		{"bitwise-ladder", "1|2^3&4", "(1 | (2 ^ (3 & 4)))"},
		{"shift-vs-sum", "1<<2+3", "(1 << (2 + 3))"},
		{"logic", "true && false || true", "((true && false) || true)"},
		{"lnot", "!true == false", "((!true) == false)"},
		{"bnot", "~1 & 2", "((~1) & 2)"},
		{"abs", "+x - 1", "((+x) - 1)"},
		{"nested-unary", "--1", "(-(-1))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := alder.Parse(c.src)
			if err != nil {
				t.Fatalf("parsing %q: unexpected error %v", c.src, err)
			}
			if got := e.String(); got != c.want {
				t.Errorf("parsing %q: want %s, got %s", c.src, c.want, got)
			}
		})
	}
}

func TestParseTree(t *testing.T) {
	e, err := alder.Parse("(1 + 20)")
	if err != nil {
		t.Fatal(err)
	}
	want := &alder.Expr{
		Kind: alder.ExprInfix,
		Op:   alder.OpAdd,
		Left: &alder.Expr{Kind: alder.ExprInt, Text: "1", Span: alder.NewSpan(1, 2)},
		Right: &alder.Expr{
			Kind: alder.ExprInt,
			Text: "20",
			Span: alder.NewSpan(5, 7),
		},
		// Parenthesized expressions span their parentheses.
		Span: alder.NewSpan(0, 8),
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("wrong tree (-want +got):\n%s", diff)
	}
}

func TestParseSpans(t *testing.T) {
	cases := []struct {
		src  string
		want alder.Span
	}{
		{"1 + 2", alder.NewSpan(0, 5)},
		{"-pi", alder.NewSpan(0, 3)},
		{"10 ** 2 - 1", alder.NewSpan(0, 11)},
		{"8 as float", alder.NewSpan(0, 10)},
	}
	for _, c := range cases {
		e, err := alder.Parse(c.src)
		if err != nil {
			t.Fatalf("parsing %q: unexpected error %v", c.src, err)
		}
		if e.Span != c.want {
			t.Errorf("parsing %q: root span %v, want %v", c.src, e.Span, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"", "expected an expression"},
		{"1 +", "expected an expression"},
		{"(1", "expected `)`"},
		{")", "unexpected token `)`"},
		{"(1))", "unexpected token `)` after expression"},
		{"1 2", "unexpected token `2` after expression"},
		{"1 ~ 2", "unexpected token `~` after expression"},
		{"** 2", "unexpected operator `**`"},
		{"as", "unexpected operator `as`"},
		{"1 + as", "unexpected operator `as`"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			e, err := alder.Parse(c.src)
			if err == nil {
				t.Fatalf("parsing %q: want error, got %s", c.src, e)
			}
			var ee *alder.Error
			if !errors.As(err, &ee) {
				t.Fatalf("parsing %q: error %v is not *alder.Error", c.src, err)
			}
			if ee.Kind != alder.ParseError {
				t.Errorf("parsing %q: want ParseError, got %v", c.src, ee.Kind)
			}
			if ee.Message != c.msg {
				t.Errorf("parsing %q: want message %q, got %q", c.src, c.msg, ee.Message)
			}
		})
	}
}

func TestParseLexErrorPassthrough(t *testing.T) {
	_, err := alder.Parse("1 + 8.")
	var ee *alder.Error
	if !errors.As(err, &ee) || ee.Kind != alder.LexError {
		t.Errorf("want LexError from Parse, got %v", err)
	}
}
