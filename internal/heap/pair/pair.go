// Released under an MIT license. See LICENSE.

// Package pair provides tlisp's cons cell heap: the sole compound
// primitive and the tracing mark-and-sweep collector that reclaims
// unreachable cells.
package pair

import (
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/interface/literal"
	"github.com/tlisp/tlisp/internal/lisperrors"
	"github.com/tlisp/tlisp/internal/value/nilv"
)

const name = "pair"

// Null is the empty list and the list terminator. It is exactly nilv.Nil,
// not a separate sentinel: every list the reader produces is nilv.Nil
// terminated, so the heap's own idea of "end of chain" has to be the
// same value or every chain walk here would disagree with the language's
// own Nil.
var Null = nilv.Nil //nolint:gochecknoglobals

// T (pair) is a cons cell: two fields, car and cdr, plus the bookkeeping
// the collector needs to find it again during a sweep.
type T struct {
	car, cdr cell.T

	marked bool
	next   *T // Intrusive link in the allocation list.
}

//nolint:gochecknoglobals
var (
	allocated *T // Head of the allocation list; every live *T not Null hangs off this.
	allocs    int
)

// Cons allocates a new pair cell with the given car and cdr and links it
// into the allocation list so the collector can find it.
func Cons(h, t cell.T) cell.T {
	p := &T{car: h, cdr: t, next: allocated}
	allocated = p
	allocs++

	return p
}

// Allocations reports how many allocated cells are currently on the
// allocation list.
func Allocations() int {
	return allocs
}

// The pair type is a cell.

// Equal returns true if c is a pair whose car and cdr are structurally
// equal to p's. This is deliberately NOT what eq? uses; eq? compares
// handle identity (see Same below), not structural equality. A *T
// receiver is never Null (Null is nilv.Nil, a different Go type), so
// there is no special case to handle here.
func (p *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	if !ok {
		return false
	}

	return p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
}

// Name returns the type name for a pair.
func (p *T) Name() string {
	return name
}

// The pair type has a literal representation.

// Literal prints p as "(a b c)" or, for an improper tail, "(a b . c)".
func (p *T) Literal() string {
	s := "("

	first := true

	c := cell.T(p)
	for Is(c) && c != Null {
		if !first {
			s += " "
		}

		first = false

		s += literal.String(Car(c))
		c = Cdr(c)
	}

	if c != Null {
		s += " . " + literal.String(c)
	}

	return s + ")"
}

// The pair type is a boolean.

// Bool always returns true: an empty list is Null, and Null is the Nil
// value's job to report false, not a pair's (pairs are never Null and
// still pairs — the pair variant itself is always truthy).
func (p *T) Bool() bool {
	return true
}

// Functions specific to pair.

// Car returns the car of the pair c. car(Nil) is not legal here; callers
// that want the §4.4.6 `car(Nil) = Nil` builtin behavior implement that in
// the built-in itself, not in this primitive accessor.
func Car(c cell.T) cell.T {
	return to(c).car
}

// Cdr returns the cdr of the pair c.
func Cdr(c cell.T) cell.T {
	return to(c).cdr
}

// Cadr returns the car of the cdr of c.
func Cadr(c cell.T) cell.T {
	return Car(Cdr(c))
}

// Caddr returns the car of the cdr of the cdr of c.
func Caddr(c cell.T) cell.T {
	return Car(Cdr(Cdr(c)))
}

// SetCar mutates the car of the pair c.
func SetCar(c, v cell.T) {
	to(c).car = v
}

// SetCdr mutates the cdr of the pair c.
func SetCdr(c, v cell.T) {
	to(c).cdr = v
}

// Is returns true if c is a pair. Null is nilv.Nil, a different Go type,
// so Is(Null) is false; callers that mean "pair or end-of-list" check
// c == Null explicitly alongside Is, as IsProperList does.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// Length returns the number of cells in the proper-list portion of c.
func Length(c cell.T) int {
	n := 0

	for Is(c) && c != Null {
		n++
		c = Cdr(c)
	}

	return n
}

// IsProperList returns true if c is Null or a chain of pairs ending in
// Null.
func IsProperList(c cell.T) bool {
	for Is(c) && c != Null {
		c = Cdr(c)
	}

	return c == Null
}

// Same reports handle identity: the eq? relation for pairs. Two
// structurally-equal but separately-allocated lists are not Same.
func Same(a, b cell.T) bool {
	pa, oka := a.(*T)
	pb, okb := b.(*T)

	return oka && okb && pa == pb
}

// To returns c's pair struct, or raises a Type error if c is not a pair.
func To(c cell.T) *T {
	return to(c)
}

func to(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	lisperrors.Raise(lisperrors.Type, c.Name()+" is not a "+name)
	panic("unreachable")
}

// Markable is implemented by heap-backed values that are not themselves
// a *T but hold a reference into the pair heap — closures and macros.
// Mark dispatches to it so the collector doesn't need to know about
// every such type.
type Markable interface {
	MarkChildren()
}

// Mark walks c and every cell reachable from it, setting the mark bit.
// Marking stops at an already-marked cell, which is what makes it safe
// on cyclic graphs (user code can build a cycle by mutating cdr via
// SetCdr).
func Mark(c cell.T) {
	// Recurse on car, iterate on cdr: list spines can be arbitrarily
	// long and must not grow the host stack in proportion.
	for {
		if c == nil {
			return
		}

		if p, ok := c.(*T); ok {
			// A *T receiver is never Null (Null is nilv.Nil).
			if p.marked {
				return
			}

			p.marked = true

			Mark(p.car)

			c = p.cdr

			continue
		}

		if m, ok := c.(Markable); ok {
			m.MarkChildren()
		}

		return
	}
}

// Sweep unlinks and frees every unmarked cell from the allocation list,
// then clears the mark bit on every surviving cell so the next collection
// starts clean. Null is never swept — it isn't on the allocation list.
func Sweep() int {
	freed := 0

	var kept *T

	for p := allocated; p != nil; {
		next := p.next

		if p.marked {
			p.marked = false
			p.next = kept
			kept = p
		} else {
			// Help the Go collector by dropping references eagerly.
			p.car, p.cdr, p.next = nil, nil, nil
			freed++
		}

		p = next
	}

	allocated = kept
	allocs -= freed

	return freed
}
