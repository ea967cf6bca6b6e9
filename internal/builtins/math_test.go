package builtins

import (
	"testing"

	"github.com/cwbudde/vaina/internal/value"
)

func TestBiAbs(t *testing.T) {
	ctx := newTestContext("")
	if got := biAbs(ctx, []value.Value{value.Number(-5)}); got != value.Number(5) {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestBiSqrtRejectsNegative(t *testing.T) {
	ctx := newTestContext("")
	if got := biSqrt(ctx, []value.Value{value.Number(9)}); got != value.Number(3) {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := biSqrt(ctx, []value.Value{value.Number(-1)}); !isErr(got) {
		t.Fatalf("expected an error for sqrt of a negative number, got %v", got)
	}
}

func TestBiPow(t *testing.T) {
	ctx := newTestContext("")
	if got := biPow(ctx, []value.Value{value.Number(2), value.Number(10)}); got != value.Number(1024) {
		t.Fatalf("expected 1024, got %v", got)
	}
}

func TestBiRandomIsWithinUnitRange(t *testing.T) {
	ctx := newTestContext("")
	got := biRandom(ctx, nil)
	n, ok := got.(value.Number)
	if !ok {
		t.Fatalf("expected a Number, got %v", got)
	}
	if n < 0 || n >= 1 {
		t.Fatalf("expected a value in [0, 1), got %v", n)
	}
}
