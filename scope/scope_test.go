package scope

import (
	"testing"

	"github.com/reedcode/corelang/value"
)

func TestLookupInnermostFirst(t *testing.T) {
	outer := New(KindFunc, "outer")
	outer.Declare(NewVarSymbol(value.NewVariable("x", value.NewInt(1))))

	inner := New(KindFunc, "inner")
	outer.Push(inner)
	inner.Declare(NewVarSymbol(value.NewVariable("x", value.NewInt(2))))

	sym := inner.Lookup("x", false)
	if sym == nil || sym.Var.Value().I != 2 {
		t.Fatalf("Lookup(x) found the outer binding, want the shadowing inner one")
	}
}

func TestLookupFallsThroughToOuter(t *testing.T) {
	outer := New(KindFunc, "outer")
	outer.Declare(NewVarSymbol(value.NewVariable("y", value.NewInt(7))))

	inner := New(KindFunc, "inner")
	outer.Push(inner)

	sym := inner.Lookup("y", false)
	if sym == nil || sym.Var.Value().I != 7 {
		t.Fatalf("Lookup(y) failed to fall through to the outer scope")
	}
}

func TestLocalLookupDoesNotEscapeScope(t *testing.T) {
	outer := New(KindFunc, "outer")
	outer.Declare(NewVarSymbol(value.NewVariable("z", value.NewInt(9))))

	inner := New(KindFunc, "inner")
	outer.Push(inner)

	if sym := inner.Lookup("z", true); sym != nil {
		t.Fatalf("local Lookup(z) escaped to the outer scope, want nil")
	}
}

func TestSetAndLabelShareNamespaceWithVar(t *testing.T) {
	s := New(KindSet, "")
	s.Declare(NewVarSymbol(value.NewVariable("a", value.NewInt(1))))
	s.Declare(NewSetSymbol(value.NewSetDetail("b")))
	s.Declare(NewLabelSymbol(&Label{Name: "c"}))

	if got := s.Local("a").Kind; got != SymVar {
		t.Errorf("symbol a kind = %v, want SymVar", got)
	}
	if got := s.Local("b").Kind; got != SymSet {
		t.Errorf("symbol b kind = %v, want SymSet", got)
	}
	if got := s.Local("c").Kind; got != SymLabel {
		t.Errorf("symbol c kind = %v, want SymLabel", got)
	}
}

func TestPopUnlinksChain(t *testing.T) {
	outer := New(KindFunc, "outer")
	inner := New(KindFunc, "inner")
	outer.Push(inner)

	back := inner.Pop()
	if back != outer {
		t.Fatalf("Pop() returned %v, want the outer scope", back)
	}
	if outer.Next != nil {
		t.Fatalf("outer.Next still references the popped scope")
	}
}
