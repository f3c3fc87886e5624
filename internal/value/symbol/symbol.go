// Released under an MIT license. See LICENSE.

// Package symbol provides tlisp's interned Symbol type. Equality is slot
// identity, not string comparison.
package symbol

import (
	"fmt"
	"sync"

	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/lisperrors"
)

const name = "symbol"

// T (symbol) wraps Go's string type. The process-wide table guarantees one
// *T per distinct printed name.
type T string

//nolint:gochecknoglobals
var (
	table = map[string]cell.T{}
	lock  sync.RWMutex
	seq   int
)

// New interns v, returning the single Symbol cell for that text. Two calls
// with the same text always return the identical pointer.
func New(v string) cell.T {
	lock.RLock()
	p, ok := table[v]
	lock.RUnlock()

	if ok {
		return p
	}

	lock.Lock()
	defer lock.Unlock()

	if p, ok = table[v]; ok {
		return p
	}

	s := T(v)
	p = &s
	table[v] = p

	return p
}

// Gensym interns and returns a symbol guaranteed distinct from every
// symbol interned so far, for user macros that need to avoid variable
// capture. Counter-suffixed names already taken (a user can intern
// anything) are skipped.
func Gensym() cell.T {
	lock.Lock()
	defer lock.Unlock()

	for {
		seq++

		n := fmt.Sprintf("%%gensym-%d", seq)
		if _, ok := table[n]; ok {
			continue
		}

		s := T(n)
		p := cell.T(&s)
		table[n] = p

		return p
	}
}

// The symbol type is a cell.

// Equal returns true if c is the same interned symbol as s.
func (s *T) Equal(c cell.T) bool {
	return Is(c) && s == To(c)
}

// Name returns the type name for the symbol s.
func (s *T) Name() string {
	return name
}

// The symbol type has a literal representation.

// Literal returns the interned name of s, verbatim.
func (s *T) Literal() string {
	return string(*s)
}

// The symbol type is a stringer.

// String returns the text of the symbol s.
func (s *T) String() string {
	return s.Literal()
}

// The symbol type is a boolean.

// Bool always returns true: symbols are never the false value.
func (s *T) Bool() bool {
	return true
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; otherwise it raises a Type error.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	lisperrors.Raise(lisperrors.Type, c.Name()+" is not a "+name)
	panic("unreachable")
}
