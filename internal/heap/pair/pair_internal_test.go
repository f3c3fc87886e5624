package pair

import (
	"testing"

	"github.com/tlisp/tlisp/internal/interface/cell"
	"github.com/tlisp/tlisp/internal/value/integer"
	"github.com/tlisp/tlisp/internal/value/nilv"
)

func list(vs ...int64) cell.T {
	l := Null
	for i := len(vs) - 1; i >= 0; i-- {
		l = Cons(integer.New(vs[i]), l)
	}

	return l
}

func TestConsCarCdr(t *testing.T) {
	c := Cons(integer.New(1), integer.New(2))

	if !Is(c) {
		t.Fatal("cons did not produce a pair")
	}

	if Is(nilv.Nil) {
		t.Fatal("nil is not a pair")
	}

	if integer.To(Car(c)).Value() != 1 || integer.To(Cdr(c)).Value() != 2 {
		t.Fatalf("fields did not round-trip: got %s", To(c).Literal())
	}
}

func TestSetCarSetCdr(t *testing.T) {
	c := Cons(integer.New(1), integer.New(2))

	SetCar(c, integer.New(9))
	SetCdr(c, Null)

	if integer.To(Car(c)).Value() != 9 || Cdr(c) != Null {
		t.Fatalf("mutation did not take: got %s", To(c).Literal())
	}
}

func TestLiteral(t *testing.T) {
	cases := []struct {
		v    cell.T
		want string
	}{
		{list(1, 2, 3), "(1 2 3)"},
		{Cons(integer.New(1), integer.New(2)), "(1 . 2)"},
		{Cons(list(1), Cons(integer.New(2), Null)), "((1) 2)"},
		{Cons(Null, Null), "(nil)"},
	}

	for _, c := range cases {
		if got := To(c.v).Literal(); got != c.want {
			t.Fatalf("expected %s, got %s", c.want, got)
		}
	}
}

func TestProperList(t *testing.T) {
	if !IsProperList(Null) {
		t.Fatal("nil is a proper list")
	}

	if !IsProperList(list(1, 2)) {
		t.Fatal("(1 2) is a proper list")
	}

	if IsProperList(Cons(integer.New(1), integer.New(2))) {
		t.Fatal("(1 . 2) is not a proper list")
	}

	if Length(list(1, 2, 3)) != 3 || Length(Null) != 0 {
		t.Fatal("length miscounted")
	}
}

func TestSameVsEqual(t *testing.T) {
	a := list(1, 2)
	b := list(1, 2)

	if !a.Equal(b) {
		t.Fatal("structurally equal lists compare Equal")
	}

	if Same(a, b) {
		t.Fatal("separately allocated lists are not Same")
	}

	if !Same(a, a) {
		t.Fatal("a pair is Same as itself")
	}
}

func TestSweepFreesOnlyUnreachable(t *testing.T) {
	live := list(1, 2, 3)

	Cons(integer.New(9), Null) // Garbage.

	before := Allocations()

	Mark(live)

	freed := Sweep()
	if freed < 1 {
		t.Fatalf("expected at least the garbage cell freed, freed %d", freed)
	}

	if Allocations() != before-freed {
		t.Fatalf("allocation count out of sync: %d != %d - %d", Allocations(), before, freed)
	}

	// The live list survives intact, marks cleared.
	if got := To(live).Literal(); got != "(1 2 3)" {
		t.Fatalf("live list damaged by sweep: %s", got)
	}

	Mark(live)
	Sweep()

	if got := To(live).Literal(); got != "(1 2 3)" {
		t.Fatalf("live list damaged by second sweep: %s", got)
	}
}

func TestMarkToleratesCycles(t *testing.T) {
	a := Cons(integer.New(1), Null)
	SetCdr(a, a)

	// Must terminate.
	Mark(a)

	Sweep()

	if integer.To(Car(a)).Value() != 1 {
		t.Fatal("marked cycle was freed")
	}

	// Unreferenced next time around: the cycle is collectable.
	if freed := Sweep(); freed < 1 {
		t.Fatalf("expected the cycle freed, freed %d", freed)
	}
}
