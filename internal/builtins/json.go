package builtins

import (
	"strconv"
	"strings"

	"github.com/cwbudde/vaina/internal/value"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func registerJSON(r *Registry) {
	r.Register(biParseJSON, "parse_json", "json_analizar")
	r.Register(biToJSON, "to_json", "json_a_texto")
	r.Register(biJSONSet, "json_set", "json_asignar")
}

// biParseJSON decodes a JSON document into the language's dynamic value
// tree, querying it with gjson rather than encoding/json — a direct fit
// for gjson's read-oriented API (SPEC_FULL.md §4.8).
func biParseJSON(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("parse_json/json_analizar", 1, len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return value.NewError(value.KindTypeError, "parse_json/json_analizar expects a string, got %s", args[0].Type())
	}
	if !gjson.Valid(string(s)) {
		return value.NewError(value.KindBuiltinError, "parse_json/json_analizar: invalid JSON")
	}
	return gjsonToValue(gjson.Parse(string(s)))
}

func gjsonToValue(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.Null:
		return value.Null
	case gjson.False:
		return value.Boolean(false)
	case gjson.True:
		return value.Boolean(true)
	case gjson.Number:
		return value.Number(r.Float())
	case gjson.String:
		return value.String(r.String())
	case gjson.JSON:
		if r.IsArray() {
			var elements []value.Value
			r.ForEach(func(_, v gjson.Result) bool {
				elements = append(elements, gjsonToValue(v))
				return true
			})
			return value.NewList(elements)
		}
		d := value.NewDict()
		r.ForEach(func(k, v gjson.Result) bool {
			d.Set(k.String(), gjsonToValue(v))
			return true
		})
		return d
	default:
		return value.Null
	}
}

// biToJSON serializes a dynamic value to compact JSON text. It is written
// by hand rather than through gjson/sjson (neither offers a whole-document
// marshal from an arbitrary root type) — see DESIGN.md.
func biToJSON(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("to_json/json_a_texto", 1, len(args))
	}
	var b strings.Builder
	if err := writeJSON(&b, args[0]); err != nil {
		return err
	}
	return value.String(b.String())
}

func writeJSON(b *strings.Builder, v value.Value) value.Value {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case value.Boolean:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.Number:
		b.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 64))
	case value.String:
		b.WriteString(strconv.Quote(string(t)))
	case *value.List:
		b.WriteByte('[')
		for i, el := range t.Elements {
			if i > 0 {
				b.WriteByte(',')
			}
			if errv := writeJSON(b, el); errv != nil {
				return errv
			}
		}
		b.WriteByte(']')
	case *value.Dict:
		b.WriteByte('{')
		for i, k := range t.Keys() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			val, _ := t.Get(k)
			if errv := writeJSON(b, val); errv != nil {
				return errv
			}
		}
		b.WriteByte('}')
	default:
		if v == value.Null {
			b.WriteString("null")
		} else {
			return value.NewError(value.KindTypeError, "to_json/json_a_texto cannot serialize %s", v.Type())
		}
	}
	return nil
}

// biJSONSet mutates a JSON document at a dotted path, the operation
// tidwall/sjson is actually designed for (SPEC_FULL.md §4.8).
func biJSONSet(ctx Context, args []value.Value) value.Value {
	if len(args) != 3 {
		return argError("json_set/json_asignar", 3, len(args))
	}
	doc, ok := args[0].(value.String)
	if !ok {
		return value.NewError(value.KindTypeError, "json_set/json_asignar expects a JSON string, got %s", args[0].Type())
	}
	path, ok := args[1].(value.String)
	if !ok {
		return value.NewError(value.KindTypeError, "json_set/json_asignar expects a string path, got %s", args[1].Type())
	}

	out, err := sjson.Set(string(doc), string(path), valueToNative(args[2]))
	if err != nil {
		return value.NewError(value.KindBuiltinError, "json_set/json_asignar: %s", err)
	}
	return value.String(out)
}

// valueToNative converts a dynamic value to the plain Go types sjson knows
// how to marshal (string/float64/bool/nil/[]interface{}/map[string]interface{}).
func valueToNative(v value.Value) interface{} {
	switch t := v.(type) {
	case value.Boolean:
		return bool(t)
	case value.Number:
		return float64(t)
	case value.String:
		return string(t)
	case *value.List:
		out := make([]interface{}, len(t.Elements))
		for i, el := range t.Elements {
			out[i] = valueToNative(el)
		}
		return out
	case *value.Dict:
		out := make(map[string]interface{}, t.Len())
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			out[k] = valueToNative(val)
		}
		return out
	default:
		return nil
	}
}
