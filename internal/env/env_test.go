package env_test

import (
	"testing"

	"github.com/tlisp/tlisp/internal/env"
	"github.com/tlisp/tlisp/internal/heap/pair"
	"github.com/tlisp/tlisp/internal/value/integer"
	"github.com/tlisp/tlisp/internal/value/nilv"
	"github.com/tlisp/tlisp/internal/value/symbol"
)

func TestRootParentIsNil(t *testing.T) {
	e := env.New(nilv.Nil)

	if !nilv.Is(env.Parent(e)) {
		t.Fatal("root environment's parent is nil")
	}

	if env.Bindings(e) != pair.Null {
		t.Fatal("a fresh frame has no bindings")
	}
}

func TestSetAndGet(t *testing.T) {
	e := env.New(nilv.Nil)
	x := symbol.New("x")

	if _, ok := env.Get(e, x); ok {
		t.Fatal("unbound symbol reported bound")
	}

	env.Set(e, x, integer.New(1))

	v, ok := env.Get(e, x)
	if !ok || integer.To(v).Value() != 1 {
		t.Fatalf("expected 1, got %v", v)
	}
}

func TestSetRebindsInPlace(t *testing.T) {
	e := env.New(nilv.Nil)
	x := symbol.New("x")

	env.Set(e, x, integer.New(1))
	env.Set(e, x, integer.New(2))

	v, _ := env.Get(e, x)
	if integer.To(v).Value() != 2 {
		t.Fatalf("expected 2, got %v", v)
	}

	if pair.Length(env.Bindings(e)) != 1 {
		t.Fatal("rebinding grew the frame")
	}
}

func TestLookupAscendsParents(t *testing.T) {
	root := env.New(nilv.Nil)
	child := env.New(root)
	x := symbol.New("x")

	env.Set(root, x, integer.New(1))

	v, ok := env.Get(child, x)
	if !ok || integer.To(v).Value() != 1 {
		t.Fatalf("expected 1 from the parent frame, got %v", v)
	}
}

func TestInnermostBindingWins(t *testing.T) {
	root := env.New(nilv.Nil)
	child := env.New(root)
	x := symbol.New("x")

	env.Set(root, x, integer.New(1))
	env.Set(child, x, integer.New(2))

	v, _ := env.Get(child, x)
	if integer.To(v).Value() != 2 {
		t.Fatal("child binding should shadow the parent")
	}

	v, _ = env.Get(root, x)
	if integer.To(v).Value() != 1 {
		t.Fatal("setting in the child must not touch the parent")
	}
}

func TestSymbolsCompareByIdentity(t *testing.T) {
	e := env.New(nilv.Nil)

	env.Set(e, symbol.New("foo"), integer.New(1))

	if _, ok := env.Get(e, symbol.New("foo")); !ok {
		t.Fatal("re-interned symbol should hit the same binding")
	}

	if _, ok := env.Get(e, symbol.New("Foo")); ok {
		t.Fatal("lookup is case-sensitive")
	}
}
