// Released under an MIT license. See LICENSE.

package builtin

import (
	"github.com/tlisp/tlisp/internal/closurev"
	"github.com/tlisp/tlisp/internal/heap/pair"
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/validate"
	"github.com/tlisp/tlisp/internal/value/builtinv"
	"github.com/tlisp/tlisp/internal/value/integer"
	"github.com/tlisp/tlisp/internal/value/nilv"
	"github.com/tlisp/tlisp/internal/value/symbol"
)

func eqp(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return truth(same(v[0], v[1]))
}

// same is the eq? relation: the two values are the same variant and the
// same identity. Integers compare by value; everything else by the
// identity of its slot, handle, or host pointer.
func same(a, b cell.T) bool {
	switch x := a.(type) {
	case *nilv.T:
		return nilv.Is(b)
	case *integer.T:
		y, ok := b.(*integer.T)

		return ok && x.Value() == y.Value()
	case *symbol.T, *builtinv.T, *closurev.Closure, *closurev.Macro:
		return a == b
	case *pair.T:
		return pair.Same(a, b)
	}

	return false
}

func pairp(args cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return truth(pair.Is(v[0]))
}

func nullp(args cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return truth(nilv.Is(v[0]))
}

func atomp(args cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return truth(!pair.Is(v[0]))
}

func symbolp(args cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return truth(symbol.Is(v[0]))
}

func integerp(args cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return truth(integer.Is(v[0]))
}

func not(args cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	return truth(nilv.Is(v[0]))
}
