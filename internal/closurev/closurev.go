// Released under an MIT license. See LICENSE.

// Package closurev provides tlisp's Closure and Macro types. Both reuse
// the pair heap: their payload is the three-element chain
// (env . (params . body)). The Go type only adds the tag that tells the
// evaluator whether to evaluate arguments before applying (Closure) or
// hand them over raw and re-evaluate the result (Macro).
package closurev

import (
	"github.com/tlisp/tlisp/internal/heap/pair"
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/lisperrors"
)

// Closure is a user-defined procedure: arguments are evaluated before the
// body runs.
type Closure struct {
	payload cell.T
}

// Macro is shaped exactly like Closure but the evaluator never evaluates
// its arguments, and re-evaluates whatever the body returns.
type Macro struct {
	payload cell.T
}

const (
	closureName = "closure"
	macroName   = "macro"
)

// NewClosure builds a Closure capturing env, with the given params and
// body (a list of body expressions).
func NewClosure(env, params, body cell.T) cell.T {
	return &Closure{payload: pair.Cons(env, pair.Cons(params, body))}
}

// NewMacro builds a Macro exactly the way NewClosure builds a Closure.
func NewMacro(env, params, body cell.T) cell.T {
	return &Macro{payload: pair.Cons(env, pair.Cons(params, body))}
}

// Env returns the captured environment.
func (c *Closure) Env() cell.T { return pair.Car(c.payload) }

// Params returns the closure's formal parameter list.
func (c *Closure) Params() cell.T { return pair.Car(pair.Cdr(c.payload)) }

// Body returns the closure's body expressions.
func (c *Closure) Body() cell.T { return pair.Cdr(pair.Cdr(c.payload)) }

// Env returns the captured environment.
func (m *Macro) Env() cell.T { return pair.Car(m.payload) }

// Params returns the macro's formal parameter list.
func (m *Macro) Params() cell.T { return pair.Car(pair.Cdr(m.payload)) }

// Body returns the macro's body expressions.
func (m *Macro) Body() cell.T { return pair.Cdr(pair.Cdr(m.payload)) }

// The closure type is a cell.

// Equal returns true only if c is the identical closure (closures are
// never structurally compared).
func (c *Closure) Equal(v cell.T) bool {
	o, ok := v.(*Closure)
	return ok && o == c
}

// Name returns the type name for a closure.
func (c *Closure) Name() string { return closureName }

// Literal prints a closure's (params . body) portion; the captured
// environment is not part of the printed form.
func (c *Closure) Literal() string {
	return pair.Cons(c.Params(), c.Body()).(*pair.T).Literal()
}

// Bool always returns true.
func (c *Closure) Bool() bool { return true }

// The macro type is a cell.

// Equal returns true only if v is the identical macro.
func (m *Macro) Equal(v cell.T) bool {
	o, ok := v.(*Macro)
	return ok && o == m
}

// Name returns the type name for a macro.
func (m *Macro) Name() string { return macroName }

// Literal prints a macro's (params . body) portion.
func (m *Macro) Literal() string {
	return pair.Cons(m.Params(), m.Body()).(*pair.T).Literal()
}

// Bool always returns true.
func (m *Macro) Bool() bool { return true }

// IsClosure returns true if c is a *Closure.
func IsClosure(c cell.T) bool {
	_, ok := c.(*Closure)
	return ok
}

// IsMacro returns true if c is a *Macro.
func IsMacro(c cell.T) bool {
	_, ok := c.(*Macro)
	return ok
}

// ToClosure returns c as a *Closure, or raises a Type error.
func ToClosure(c cell.T) *Closure {
	if t, ok := c.(*Closure); ok {
		return t
	}

	lisperrors.Raise(lisperrors.Type, c.Name()+" is not a "+closureName)
	panic("unreachable")
}

// ToMacro returns c as a *Macro, or raises a Type error.
func ToMacro(c cell.T) *Macro {
	if t, ok := c.(*Macro); ok {
		return t
	}

	lisperrors.Raise(lisperrors.Type, c.Name()+" is not a "+macroName)
	panic("unreachable")
}

// MarkChildren marks the heap cells reachable from a closure's payload,
// satisfying pair.Markable.
func (c *Closure) MarkChildren() {
	pair.Mark(c.payload)
}

// MarkChildren marks the heap cells reachable from a macro's payload.
func (m *Macro) MarkChildren() {
	pair.Mark(m.payload)
}
