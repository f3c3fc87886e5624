// Released under an MIT license. See LICENSE.

// Package integer provides tlisp's Integer type: a signed, machine-width
// number. tlisp has no floating point and no numeric tower; overflow
// behavior is whatever Go's int64 does.
package integer

import (
	"strconv"

	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/lisperrors"
)

const name = "integer"

// T (integer) wraps Go's int64 type.
type T int64

// New creates an Integer cell from v.
func New(v int64) cell.T {
	t := T(v)
	return &t
}

// Parse attempts to read s as a signed decimal integer. It reports
// ok=false if any byte of s is not part of the number: a token is an
// integer only when the scan consumes all of it.
func Parse(s string) (cell.T, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, false
	}

	return New(v), true
}

// Value returns the underlying int64.
func (n *T) Value() int64 {
	return int64(*n)
}

// The integer type is a cell.

// Equal returns true if c is an Integer with the same value.
func (n *T) Equal(c cell.T) bool {
	return Is(c) && n.Value() == To(c).Value()
}

// Name returns the type name for the integer n.
func (n *T) Name() string {
	return name
}

// The integer type has a literal representation.

// Literal returns the decimal representation of n.
func (n *T) Literal() string {
	return strconv.FormatInt(n.Value(), 10)
}

// The integer type is a stringer.

// String returns the text of the integer n.
func (n *T) String() string {
	return n.Literal()
}

// The integer type is a boolean.

// Bool always returns true: in tlisp only Nil is false, not zero.
func (n *T) Bool() bool {
	return true
}

// Is returns true if c is an *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; otherwise it raises a Type error.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	lisperrors.Raise(lisperrors.Type, c.Name()+" is not an "+name)
	panic("unreachable")
}
