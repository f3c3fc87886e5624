package reader_test

import (
	"testing"

	"github.com/tlisp/tlisp/internal/printer"
	"github.com/tlisp/tlisp/internal/reader"
)

func TestReadLoop(t *testing.T) {
	r := reader.New()
	r.Feed("1 (2 3) 'x")

	want := []string{"1", "(2 3)", "(quote x)"}

	for _, w := range want {
		v, err := r.ReadExpr()
		if err != nil {
			t.Fatalf("expected %s, got error %v", w, err)
		}

		if got := printer.Print(v); got != w {
			t.Fatalf("expected %s, got %s", w, got)
		}
	}

	_, err := r.ReadExpr()
	if err == nil {
		t.Fatal("expected end of input")
	}

	if !reader.AtEOF(err) {
		t.Fatalf("expected end of input, got %v", err)
	}
}

func TestFeedRestarts(t *testing.T) {
	r := reader.New()
	r.Feed("1")

	if _, err := r.ReadExpr(); err != nil {
		t.Fatalf("reading first form: %v", err)
	}

	if _, err := r.ReadExpr(); !reader.AtEOF(err) {
		t.Fatalf("expected end of input, got %v", err)
	}

	r.Feed("2")

	v, err := r.ReadExpr()
	if err != nil {
		t.Fatalf("reading after second feed: %v", err)
	}

	if got := printer.Print(v); got != "2" {
		t.Fatalf("expected 2, got %s", got)
	}
}

func TestGenuineSyntaxErrorIsNotEOF(t *testing.T) {
	r := reader.New()
	r.Feed(")")

	_, err := r.ReadExpr()
	if err == nil {
		t.Fatal("expected a syntax error")
	}

	if reader.AtEOF(err) {
		t.Fatal("an unexpected ) is not end of input")
	}
}
