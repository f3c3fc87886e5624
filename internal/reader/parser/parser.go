// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for tlisp's
// s-expression grammar.
package parser

import (
	"github.com/tlisp/tlisp/internal/heap/pair"
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/lisperrors"
	"github.com/tlisp/tlisp/internal/reader/lexer"
	"github.com/tlisp/tlisp/internal/reader/token"
	"github.com/tlisp/tlisp/internal/value/integer"
	"github.com/tlisp/tlisp/internal/value/nilv"
	"github.com/tlisp/tlisp/internal/value/symbol"
)

// Reader macro target symbols.
//nolint:gochecknoglobals
var (
	quoteSym           = symbol.New("quote")
	quasiquoteSym      = symbol.New("quasiquote")
	unquoteSym         = symbol.New("unquote")
	unquoteSplicingSym = symbol.New("unquote-splicing")
)

// T holds the state of the parser: a lexer plus one token of lookahead.
type T struct {
	lex  *lexer.T
	peek *token.T
}

// New creates a parser reading from lex.
func New(lex *lexer.T) *T {
	return &T{lex: lex}
}

// Lexer returns the parser's underlying lexer, so the reader can feed it
// more text between calls to ReadExpr.
func (p *T) Lexer() *lexer.T {
	return p.lex
}

// ReadExpr consumes one s-expression. The "rest" of the input is
// implicit: it is whatever remains buffered in p's lexer for the next
// call. Internal helpers raise *lisperrors.Error by panicking; this is
// the single point that turns those back into a returned error.
func (p *T) ReadExpr() (v cell.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, lisperrors.Recover(r)
		}
	}()

	if p.lookahead() == nil {
		lisperrors.Raise(lisperrors.Syntax, "unexpected end of input")
	}

	return p.expr(), nil
}

func (p *T) next() *token.T {
	if p.peek != nil {
		t := p.peek
		p.peek = nil

		return t
	}

	return p.lex.Token()
}

func (p *T) lookahead() *token.T {
	if p.peek == nil {
		p.peek = p.lex.Token()
	}

	return p.peek
}

func (p *T) expr() cell.T {
	t := p.next()
	if t == nil {
		// Only reached inside a form already begun: a reader-macro
		// prefix or a dotted tail with nothing after it.
		lisperrors.Raise(lisperrors.Syntax, "incomplete expression")
	}

	switch t.Class {
	case token.LParen:
		return p.list()
	case token.RParen:
		lisperrors.Raise(lisperrors.Syntax, "unexpected )")
	case token.Dot:
		lisperrors.Raise(lisperrors.Syntax, "unexpected .")
	case token.Quote:
		return wrap(quoteSym, p.expr())
	case token.Quasiquote:
		return wrap(quasiquoteSym, p.expr())
	case token.Unquote:
		return wrap(unquoteSym, p.expr())
	case token.UnquoteSplice:
		return wrap(unquoteSplicingSym, p.expr())
	case token.Atom:
		return atom(t.Text)
	}

	lisperrors.Raise(lisperrors.Syntax, "unrecognized token")
	panic("unreachable")
}

// list reads the body of a `(` already consumed by expr, including the
// optional dotted tail.
func (p *T) list() cell.T {
	var elems []cell.T

	for {
		t := p.lookahead()
		if t == nil {
			lisperrors.Raise(lisperrors.Syntax, "unterminated list")
		}

		switch t.Class {
		case token.RParen:
			p.next()

			return build(elems, nilv.Nil)
		case token.Dot:
			if len(elems) == 0 {
				lisperrors.Raise(lisperrors.Syntax, "misplaced .")
			}

			p.next()

			tail := p.expr()

			closing := p.next()
			if closing == nil || closing.Class != token.RParen {
				lisperrors.Raise(lisperrors.Syntax, "expected ) after dotted tail")
			}

			return build(elems, tail)
		default:
			elems = append(elems, p.expr())
		}
	}
}

func build(elems []cell.T, tail cell.T) cell.T {
	for i := len(elems) - 1; i >= 0; i-- {
		tail = pair.Cons(elems[i], tail)
	}

	return tail
}

func wrap(sym cell.T, v cell.T) cell.T {
	return pair.Cons(sym, pair.Cons(v, nilv.Nil))
}

// atom classifies a scanned token's text: an Integer if the signed
// decimal scan consumes the whole token, the Nil value for the text
// "nil", and an interned Symbol otherwise.
func atom(text string) cell.T {
	if v, ok := integer.Parse(text); ok {
		return v
	}

	if text == "nil" {
		return nilv.Nil
	}

	return symbol.New(text)
}
