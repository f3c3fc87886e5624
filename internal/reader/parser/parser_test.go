package parser_test

import (
	"testing"

	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/lisperrors"
	"github.com/tlisp/tlisp/internal/printer"
	"github.com/tlisp/tlisp/internal/reader/lexer"
	"github.com/tlisp/tlisp/internal/reader/parser"
)

func parse(t *testing.T, s string) (cell.T, error) {
	t.Helper()

	l := lexer.New()
	l.Scan(s)

	return parser.New(l).ReadExpr()
}

func check(t *testing.T, s, want string) {
	t.Helper()

	v, err := parse(t, s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}

	got := printer.Print(v)
	if got != want {
		t.Fatalf("parsing %q: expected %s, got %s", s, want, got)
	}

	// Printed forms reparse to the same structure.
	w, err := parse(t, got)
	if err != nil {
		t.Fatalf("reparsing %s: %v", got, err)
	}

	if !v.Equal(w) {
		t.Fatalf("parsing %q: %s reparsed as %s", s, got, printer.Print(w))
	}
}

func syntax(t *testing.T, s string) {
	t.Helper()

	_, err := parse(t, s)
	if err == nil {
		t.Fatalf("parsing %q: expected a syntax error", s)
	}

	if !lisperrors.Is(err, lisperrors.Syntax) {
		t.Fatalf("parsing %q: expected a syntax error, got %v", s, err)
	}
}

func TestAtoms(t *testing.T) {
	check(t, "42", "42")
	check(t, "-7", "-7")
	check(t, "foo", "foo")
	check(t, "nil", "nil")
	check(t, "+12x", "+12x") // Not fully numeric, so a symbol.
	check(t, "+", "+")
}

func TestCasePreserved(t *testing.T) {
	check(t, "Foo", "Foo")
}

func TestLists(t *testing.T) {
	check(t, "()", "nil")
	check(t, "(1 2 3)", "(1 2 3)")
	check(t, "( 1  2\t3 )", "(1 2 3)")
	check(t, "(())", "(nil)")
	check(t, "((1) ((2)))", "((1) ((2)))")
}

func TestDottedPairs(t *testing.T) {
	check(t, "(a . b)", "(a . b)")
	check(t, "(a b . c)", "(a b . c)")
	check(t, "(a . (b . nil))", "(a b)")
}

func TestReaderMacros(t *testing.T) {
	check(t, "'x", "(quote x)")
	check(t, "'(1 2)", "(quote (1 2))")
	check(t, "`(a ,b ,@c)", "(quasiquote (a (unquote b) (unquote-splicing c)))")
	check(t, "''x", "(quote (quote x))")
}

func TestSyntaxErrors(t *testing.T) {
	syntax(t, "")
	syntax(t, ")")
	syntax(t, "(")
	syntax(t, "(1 2")
	syntax(t, "(. a)")
	syntax(t, "(a . b c)")
	syntax(t, "(a .)")
	syntax(t, "'")
}
