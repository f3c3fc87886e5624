// Released under an MIT license. See LICENSE.

// Package nilv provides tlisp's Nil sentinel: the unique false value and
// the empty-list terminator.
package nilv

import (
	"github.com/tlisp/tlisp/internal/interface/cell"
)

const name = "nil"

// T (nil) has exactly one instance: Nil.
type T struct{}

// Nil is the unique Nil value. There is never a second instance; identity
// comparison against Nil is just a pointer comparison.
var Nil cell.T = &T{} //nolint:gochecknoglobals

// The nil type is a cell.

// Equal returns true if c is also Nil.
func (n *T) Equal(c cell.T) bool {
	return c == Nil
}

// Name returns the type name for Nil.
func (n *T) Name() string {
	return name
}

// The nil type has a literal representation.

// Literal returns the literal representation of Nil.
func (n *T) Literal() string {
	return name
}

// The nil type is a boolean.

// Bool returns false: Nil is the only false value in tlisp.
func (n *T) Bool() bool {
	return false
}

// Is returns true if c is Nil.
func Is(c cell.T) bool {
	return c == Nil
}
