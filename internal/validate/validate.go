// Released under an MIT license. See LICENSE.

// Package validate provides the arity checks shared by every built-in
// procedure.
package validate

import (
	"fmt"

	"github.com/tlisp/tlisp/internal/heap/pair"
	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/lisperrors"
)

// Variadic consumes between min and max leading arguments from actual,
// returning them along with whatever remains.
func Variadic(actual cell.T, min, max int) ([]cell.T, cell.T) {
	expected := make([]cell.T, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				s := Count(min, "argument", "s")
				lisperrors.Raise(lisperrors.Args, fmt.Sprintf("expected %s, passed %d", s, i))
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual
}

// Fixed consumes exactly min to max arguments from actual, raising an
// Args error if any remain.
func Fixed(actual cell.T, min, max int) []cell.T {
	expected, rest := Variadic(actual, min, max)
	if rest != pair.Null {
		s := Count(max, "argument", "s")
		n := pair.Length(actual)

		lisperrors.Raise(lisperrors.Args, fmt.Sprintf("expected %s, passed %d", s, n))
	}

	return expected
}

// Count formats n with a pluralizable label.
func Count(n int, label, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
