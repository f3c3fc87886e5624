// Released under an MIT license. See LICENSE.

// Package env provides tlisp's lexical environments. An environment is
// itself a value — a pair (parent . bindings) — so it roots and garbage
// collects exactly like any other pair chain; this package is a thin
// set of functions over that convention, the same way closurev is a
// thin wrapper over the pair heap rather than a new heap citizen.
package env

import (
	"github.com/tlisp/tlisp/internal/heap/pair"
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/value/nilv"
)

// New creates a new, empty frame with the given parent. The root
// environment's parent is nilv.Nil.
func New(parent cell.T) cell.T {
	return pair.Cons(parent, pair.Null)
}

// Parent returns e's enclosing environment, or nilv.Nil for the root.
func Parent(e cell.T) cell.T {
	return pair.Car(e)
}

// Bindings returns e's own (symbol . value) list, not including any
// ancestor frame.
func Bindings(e cell.T) cell.T {
	return pair.Cdr(e)
}

// Get looks up sym starting in e and ascending through parents,
// first hit innermost-out, comparing symbols by identity. It reports
// ok=false if no frame in the chain binds sym.
func Get(e cell.T, sym cell.T) (cell.T, bool) {
	for !nilv.Is(e) {
		for b := Bindings(e); b != pair.Null; b = pair.Cdr(b) {
			entry := pair.Car(b)
			if pair.Car(entry) == sym {
				return pair.Cdr(entry), true
			}
		}

		e = Parent(e)
	}

	return nil, false
}

// Set binds sym to v in e. If sym is already bound in e's own frame, the
// existing binding is rebound in place; otherwise a new binding is
// prepended. Set never ascends to parents — that is what distinguishes
// `define` from a mutation-through-scope form, which tlisp does not
// have.
func Set(e cell.T, sym, v cell.T) {
	for b := Bindings(e); b != pair.Null; b = pair.Cdr(b) {
		entry := pair.Car(b)
		if pair.Car(entry) == sym {
			pair.SetCdr(entry, v)
			return
		}
	}

	pair.SetCdr(e, pair.Cons(pair.Cons(sym, v), Bindings(e)))
}

// Is returns true if c looks like an environment: either the root's
// parent marker (nilv.Nil) or a pair. Used only for sanity checks; nothing
// in tlisp distinguishes an environment value from an ordinary pair at the
// type level: an environment is itself a value.
func Is(c cell.T) bool {
	return nilv.Is(c) || pair.Is(c)
}
