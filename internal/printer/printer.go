// Released under an MIT license. See LICENSE.

// Package printer implements tlisp's printed representation. Every
// value type already carries its own Literal() method (the
// literal.T interface in internal/interface/literal); this package is the
// single place callers — the REPL, the loader, tests — go to print a
// value, so that representation decisions stay in one file even though the
// logic is mostly delegation.
package printer

import (
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/interface/literal"
)

// Print returns c's printed representation.
func Print(c cell.T) string {
	return literal.String(c)
}
