// Released under an MIT license. See LICENSE.

// Package boolean defines the interface for tlisp's truthiness rule: every
// value except Nil is true.
package boolean

import (
	"github.com/tlisp/tlisp/internal/interface/cell"
)

// T (boolean) is anything that can be tested for truthiness.
type T interface {
	Bool() bool
}

// Value returns the truthiness of the cell c.
func Value(c cell.T) bool {
	b, ok := c.(T)
	if !ok {
		panic(c.Name() + " cannot be used in a boolean expression")
	}

	return b.Bool()
}
