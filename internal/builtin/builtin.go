// Released under an MIT license. See LICENSE.

// Package builtin provides tlisp's built-in procedures and the root
// environment they populate.
package builtin

import (
	"github.com/tlisp/tlisp/internal/env"
	"github.com/tlisp/tlisp/internal/eval"
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/value/builtinv"
	"github.com/tlisp/tlisp/internal/value/nilv"
	"github.com/tlisp/tlisp/internal/value/symbol"
)

// The canonical true value. Any non-nil value is truthy; t is what
// predicates return.
//nolint:gochecknoglobals
var symT = symbol.New("t")

// Functions returns the table of built-in procedures by name.
func Functions() map[string]builtinv.Func {
	return map[string]builtinv.Func{
		"*":               mul,
		"+":               add,
		"-":               sub,
		"/":               div,
		"<":               less,
		"=":               numeq,
		"apply":           apply,
		"atom?":           atomp,
		"car":             car,
		"cdr":             cdr,
		"collect-garbage": collectGarbage,
		"cons":            consb,
		"debug":           debug,
		"eq?":             eqp,
		"gensym":          gensym,
		"integer?":        integerp,
		"length":          length,
		"list":            list,
		"not":             not,
		"null?":           nullp,
		"pair?":           pairp,
		"set-car!":        setCar,
		"set-cdr!":        setCdr,
		"symbol?":         symbolp,
	}
}

// Env creates a fresh root environment: parent nil, t bound to itself,
// and every built-in bound under its table name. The environment is
// registered as a permanent reclamation root.
func Env() cell.T {
	e := env.New(nilv.Nil)

	env.Set(e, symT, symT)

	for name, fn := range Functions() {
		env.Set(e, symbol.New(name), builtinv.New(name, fn))
	}

	eval.AddRoot(e)

	return e
}

func truth(v bool) cell.T {
	if v {
		return symT
	}

	return nilv.Nil
}
