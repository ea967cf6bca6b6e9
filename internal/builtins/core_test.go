package builtins

import (
	"strings"
	"testing"

	"github.com/cwbudde/vaina/internal/value"
)

func TestBiPrintWritesSpaceJoinedLine(t *testing.T) {
	ctx := newTestContext("")
	got := biPrint(ctx, []value.Value{value.String("hola"), value.Number(1)})
	if got != value.String("hola 1") {
		t.Fatalf("expected \"hola 1\", got %v", got)
	}
	if !strings.Contains(ctx.outBuf.String(), "hola 1\n") {
		t.Fatalf("expected stdout to contain the printed line, got %q", ctx.outBuf.String())
	}
}

func TestBiTypeReturnsTypeName(t *testing.T) {
	ctx := newTestContext("")
	got := biType(ctx, []value.Value{value.Number(1)})
	if got != value.String("numero") {
		t.Fatalf("expected numero, got %v", got)
	}
}

func TestBiLenVariants(t *testing.T) {
	ctx := newTestContext("")
	if got := biLen(ctx, []value.Value{value.String("hola")}); got != value.Number(4) {
		t.Fatalf("expected 4, got %v", got)
	}
	if got := biLen(ctx, []value.Value{value.NewList([]value.Value{value.Number(1), value.Number(2)})}); got != value.Number(2) {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := biLen(ctx, []value.Value{value.Boolean(true)}); !isErr(got) {
		t.Fatalf("expected TypeError for a boolean, got %v", got)
	}
}
