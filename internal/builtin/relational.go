// Released under an MIT license. See LICENSE.

package builtin

import (
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/validate"
	"github.com/tlisp/tlisp/internal/value/integer"
)

func numeq(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return truth(integer.To(v[0]).Value() == integer.To(v[1]).Value())
}

func less(args cell.T) cell.T {
	v := validate.Fixed(args, 2, 2)

	return truth(integer.To(v[0]).Value() < integer.To(v[1]).Value())
}
