// Released under an MIT license. See LICENSE.

package builtin

import (
	"github.com/tlisp/tlisp/internal/eval"
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/interface/literal"
	"github.com/tlisp/tlisp/internal/validate"
	"github.com/tlisp/tlisp/internal/value/nilv"
	"github.com/tlisp/tlisp/internal/value/symbol"
)

// apply as a value. In operator position apply is a special form and
// never reaches this; the builtin exists so apply can be passed around
// and applied like any other procedure.
func apply(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return eval.Apply(v[0], v[1])
}

func gensym(args cell.T) cell.T {
	validate.Fixed(args, 0, 0)

	return symbol.Gensym()
}

func collectGarbage(args cell.T) cell.T {
	validate.Fixed(args, 0, 0)

	eval.Collect()

	return nilv.Nil
}

func debug(args cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	println("debug:", literal.String(v[0]))

	return v[0]
}
