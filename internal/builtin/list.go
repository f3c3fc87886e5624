// Released under an MIT license. See LICENSE.

package builtin

import (
	"github.com/tlisp/tlisp/internal/heap/pair"
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/lisperrors"
	"github.com/tlisp/tlisp/internal/validate"
	"github.com/tlisp/tlisp/internal/value/integer"
	"github.com/tlisp/tlisp/internal/value/nilv"
)

func car(args cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	if nilv.Is(v[0]) {
		return nilv.Nil
	}

	return pair.Car(v[0])
}

func cdr(args cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	if nilv.Is(v[0]) {
		return nilv.Nil
	}

	return pair.Cdr(v[0])
}

func consb(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return pair.Cons(v[0], v[1])
}

// list returns its evaluated arguments as a proper list. The argument
// list handed to a built-in already is one.
func list(args cell.T) cell.T {
	return args
}

func length(args cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	n := 0

	c := v[0]
	for pair.Is(c) {
		n++
		c = pair.Cdr(c)
	}

	if !nilv.Is(c) {
		lisperrors.Raise(lisperrors.Type, "length needs a proper list")
	}

	return integer.New(int64(n))
}

func setCar(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	pair.SetCar(v[0], v[1])

	return v[0]
}

func setCdr(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	pair.SetCdr(v[0], v[1])

	return v[0]
}
