// Released under an MIT license. See LICENSE.

// Package reader ties together tlisp's lexer and parser into a
// restartable reader: callers feed it text and drive it in a loop,
// pulling one value per call until the buffer is exhausted.
package reader

import (
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/lisperrors"
	"github.com/tlisp/tlisp/internal/reader/lexer"
	"github.com/tlisp/tlisp/internal/reader/parser"
)

// T (reader) encapsulates a lexer and a parser over the same buffer.
type T struct {
	lex *lexer.T
	par *parser.T
}

// New creates a reader with an empty buffer.
func New() *T {
	l := lexer.New()

	return &T{lex: l, par: parser.New(l)}
}

// Feed appends text to the reader's buffer (one REPL line, or an entire
// loaded file).
func (r *T) Feed(text string) {
	r.lex.Scan(text)
}

// ReadExpr consumes one s-expression from the buffer. When the buffer
// has no further complete token, it returns a Syntax error; that error
// doubles as the loop-termination signal for callers that already have
// at least one value.
func (r *T) ReadExpr() (cell.T, error) {
	return r.par.ReadExpr()
}

// AtEOF reports whether err is the loop-termination Syntax error ReadExpr
// returns for a clean end of buffered input, as opposed to a genuine
// malformed-input syntax error. The error kind is Syntax either way;
// callers that need to tell "ran out of input" apart from "the input was
// wrong" inspect the detail text this helper checks.
func AtEOF(err error) bool {
	e, ok := err.(*lisperrors.Error)
	return ok && e.Kind == lisperrors.Syntax && e.Detail == "unexpected end of input"
}
