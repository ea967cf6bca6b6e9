package environment

import (
	"testing"

	"github.com/cwbudde/vaina/internal/value"
)

func TestDefineAndGetInSameFrame(t *testing.T) {
	env := New()
	env.Define("x", value.Number(1))
	v, ok := env.Get("x")
	if !ok || v != value.Number(1) {
		t.Fatalf("expected x=1, got %v ok=%v", v, ok)
	}
}

func TestGetMissingReturnsFalse(t *testing.T) {
	env := New()
	if _, ok := env.Get("missing"); ok {
		t.Fatalf("expected undefined lookup to report false")
	}
}

func TestEnclosedWalksOuterChain(t *testing.T) {
	outer := New()
	outer.Define("x", value.Number(1))
	inner := NewEnclosed(outer)

	v, ok := inner.Get("x")
	if !ok || v != value.Number(1) {
		t.Fatalf("expected inner scope to see outer binding, got %v ok=%v", v, ok)
	}
}

func TestDefineShadowsOuterWithoutMutatingIt(t *testing.T) {
	outer := New()
	outer.Define("x", value.Number(1))
	inner := NewEnclosed(outer)
	inner.Define("x", value.Number(2))

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	if innerVal != value.Number(2) {
		t.Fatalf("expected shadowed x=2 in inner scope, got %v", innerVal)
	}
	if outerVal != value.Number(1) {
		t.Fatalf("expected outer x to remain 1, got %v", outerVal)
	}
}

func TestOuterReturnsParentOrNil(t *testing.T) {
	outer := New()
	inner := NewEnclosed(outer)
	if inner.Outer() != outer {
		t.Fatalf("expected Outer() to return the parent frame")
	}
	if outer.Outer() != nil {
		t.Fatalf("expected root frame's Outer() to be nil")
	}
}
