// Released under an MIT license. See LICENSE.

// Package lisperrors defines the four error kinds the evaluator can raise
// and the panic/recover boundary that turns them back into ordinary Go
// errors at the edge of the evaluator.
package lisperrors

import "fmt"

// Kind is one of the four error kinds the interpreter can surface.
type Kind int

// The four kinds. Every failure the evaluator or a built-in can raise is
// exactly one of these.
const (
	Syntax  Kind = iota // Reader failures, non-proper-list application, bad apply.
	Unbound             // Environment lookup miss.
	Args                // Wrong arity, in a special form, a built-in, or a closure bind.
	Type                // Operand of the wrong variant.
)

// String names the kind the way the REPL and loader print it.
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax error"
	case Unbound:
		return "Symbol not bound"
	case Args:
		return "Wrong number of arguments"
	case Type:
		return "Wrong type"
	default:
		return "Unknown error"
	}
}

// Error is a tlisp error: a kind plus optional detail for callers (tests,
// tooling) that want more than the four fixed REPL lines.
type Error struct {
	Kind   Kind
	Detail string
}

// New creates an *Error of the given kind.
func New(k Kind, detail string) *Error {
	return &Error{Kind: k, Detail: detail}
}

// Error implements the standard error interface. The REPL never prints
// this string directly — it prints Kind.String() alone — but it is what
// %v/fmt.Errorf callers see, and what test failures report.
func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Detail)
}

// Is reports whether err is a *Error of kind k.
func Is(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}

// Raise panics with a *Error of kind k. Internal code (built-ins, the
// applier, the reader) calls this instead of returning an error so that
// deeply nested helpers don't need to thread error returns through every
// call — a single recover() at the evaluator's boundary turns the panic
// back into an ordinary (value, err) return.
func Raise(k Kind, detail string) {
	panic(New(k, detail))
}

// Recover turns a recovered panic value r into an *Error. Panics that
// didn't originate from Raise (a Go runtime panic such as an index out
// of range, or integer division by zero, which tlisp does not trap) are
// re-panicked: they are bugs, not language-level errors, and should not
// be swallowed into one of the four documented kinds.
func Recover(r interface{}) *Error {
	if e, ok := r.(*Error); ok {
		return e
	}

	panic(r)
}
