package builtins

import (
	"testing"

	"github.com/cwbudde/vaina/internal/value"
)

func TestBiParseJSONObjectAndArray(t *testing.T) {
	ctx := newTestContext("")
	got := biParseJSON(ctx, []value.Value{value.String(`{"nombre": "ana", "edades": [1, 2, 3]}`)})
	d, ok := got.(*value.Dict)
	if !ok {
		t.Fatalf("expected *value.Dict, got %T", got)
	}
	nombre, _ := d.Get("nombre")
	if nombre != value.String("ana") {
		t.Fatalf("expected ana, got %v", nombre)
	}
	edades, _ := d.Get("edades")
	list, ok := edades.(*value.List)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("expected a 3-element list, got %v", edades)
	}
}

func TestBiParseJSONInvalidIsError(t *testing.T) {
	ctx := newTestContext("")
	if got := biParseJSON(ctx, []value.Value{value.String("{not json")}); !isErr(got) {
		t.Fatalf("expected an error for invalid JSON, got %v", got)
	}
}

func TestBiToJSONRoundTripsThroughParseJSON(t *testing.T) {
	ctx := newTestContext("")
	d := value.NewDict()
	d.Set("activo", value.Boolean(true))
	d.Set("total", value.Number(3))

	encoded := biToJSON(ctx, []value.Value{d})
	s, ok := encoded.(value.String)
	if !ok {
		t.Fatalf("expected a String, got %T", encoded)
	}

	decoded := biParseJSON(ctx, []value.Value{s}).(*value.Dict)
	total, _ := decoded.Get("total")
	if total != value.Number(3) {
		t.Fatalf("expected total=3 after round trip, got %v", total)
	}
}

func TestBiToJSONRejectsFunctionValues(t *testing.T) {
	ctx := newTestContext("")
	fn := &value.Function{Name: "f"}
	if got := biToJSON(ctx, []value.Value{fn}); !isErr(got) {
		t.Fatalf("expected TypeError serializing a function, got %v", got)
	}
}

func TestBiJSONSetMutatesPath(t *testing.T) {
	ctx := newTestContext("")
	got := biJSONSet(ctx, []value.Value{value.String(`{"a": 1}`), value.String("b"), value.Number(2)})
	s, ok := got.(value.String)
	if !ok {
		t.Fatalf("expected a String, got %T", got)
	}

	decoded := biParseJSON(ctx, []value.Value{s}).(*value.Dict)
	b, _ := decoded.Get("b")
	if b != value.Number(2) {
		t.Fatalf("expected b=2, got %v", b)
	}
}
