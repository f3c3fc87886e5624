// Released under an MIT license. See LICENSE.

// Package cell defines the interface for every tlisp value.
package cell

// T (cell) is the basic unit of storage in tlisp. Nil, Integer, Symbol,
// Pair, Builtin, Closure, and Macro all implement it.
type T interface {
	Equal(c T) bool
	Name() string
}
