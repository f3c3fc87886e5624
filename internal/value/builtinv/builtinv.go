// Released under an MIT license. See LICENSE.

// Package builtinv provides tlisp's Builtin type: an opaque reference to a
// host-implemented procedure.
package builtinv

import (
	"fmt"

	"github.com/tlisp/tlisp/internal/interface/cell"
)

const name = "builtin"

// Func is the shape every built-in procedure has: a raw, already-evaluated
// argument list in, a result cell out. Arity and type checking is each
// built-in's own responsibility (it raises via lisperrors.Raise).
type Func func(args cell.T) cell.T

// T (builtin) is a named, host-implemented procedure. Identity, not value,
// is what eq? compares: two builtins are eq? only if they are the same *T.
type T struct {
	label string
	fn    Func
}

// New wraps fn as a builtin named label (used only for the printer).
func New(label string, fn Func) cell.T {
	return &T{label: label, fn: fn}
}

// Call invokes the wrapped procedure.
func (b *T) Call(args cell.T) cell.T {
	return b.fn(args)
}

// The builtin type is a cell.

// Equal returns true if c is the identical builtin as b; builtins never
// compare equal to anything but themselves.
func (b *T) Equal(c cell.T) bool {
	p, ok := c.(*T)
	return ok && p == b
}

// Name returns the type name for the builtin b.
func (b *T) Name() string {
	return name
}

// The builtin type has a literal representation.

// Literal prints an opaque marker. Builtins do not round-trip through
// the reader.
func (b *T) Literal() string {
	return fmt.Sprintf("#<BUILTIN %s>", b.label)
}

// The builtin type is a boolean.

// Bool always returns true.
func (b *T) Bool() bool {
	return true
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; otherwise it panics. Builtin-typed-operator
// checks happen in eval, which raises its own lisperrors.Type error with
// more context, so To here just panics plainly — it is only ever called
// after an Is check succeeds.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}
