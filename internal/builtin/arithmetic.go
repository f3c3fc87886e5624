// Released under an MIT license. See LICENSE.

package builtin

import (
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/validate"
	"github.com/tlisp/tlisp/internal/value/integer"
)

func add(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return integer.New(integer.To(v[0]).Value() + integer.To(v[1]).Value())
}

func sub(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return integer.New(integer.To(v[0]).Value() - integer.To(v[1]).Value())
}

func mul(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return integer.New(integer.To(v[0]).Value() * integer.To(v[1]).Value())
}

// div truncates toward zero. Division by zero is not trapped; Go's
// runtime panic propagates.
func div(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return integer.New(integer.To(v[0]).Value() / integer.To(v[1]).Value())
}
