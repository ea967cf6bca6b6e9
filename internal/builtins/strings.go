package builtins

import (
	"strings"

	"github.com/cwbudde/vaina/internal/value"
)

func registerStrings(r *Registry) {
	r.Register(biUpper, "upper", "mayusculas")
	r.Register(biLower, "lower", "minusculas")
	r.Register(biSplit, "split")
	r.Register(biJoin, "join") // SPEC_FULL.md §4.9 supplement
}

func biUpper(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("upper/mayusculas", 1, len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return value.NewError(value.KindTypeError, "upper/mayusculas expects a string, got %s", args[0].Type())
	}
	return value.String(strings.ToUpper(string(s)))
}

func biLower(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("lower/minusculas", 1, len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return value.NewError(value.KindTypeError, "lower/minusculas expects a string, got %s", args[0].Type())
	}
	return value.String(strings.ToLower(string(s)))
}

// biSplit implements `split(text[, sep])`; the default separator is a
// single space, per spec.md §4.5.
func biSplit(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 && len(args) != 2 {
		return value.NewError(value.KindWrongArgCount, "split expects 1 or 2 arguments, got %d", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return value.NewError(value.KindTypeError, "split expects a string as its first argument, got %s", args[0].Type())
	}
	sep := " "
	if len(args) == 2 {
		sepVal, ok := args[1].(value.String)
		if !ok {
			return value.NewError(value.KindTypeError, "split's separator must be a string, got %s", args[1].Type())
		}
		sep = string(sepVal)
	}

	parts := strings.Split(string(s), sep)
	elements := make([]value.Value, len(parts))
	for i, p := range parts {
		elements[i] = value.String(p)
	}
	return value.NewList(elements)
}

// biJoin implements `join(list[, sep])`, the counterpart to split that
// spec.md's original distillation omitted (SPEC_FULL.md §4.9).
func biJoin(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 && len(args) != 2 {
		return value.NewError(value.KindWrongArgCount, "join expects 1 or 2 arguments, got %d", len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return value.NewError(value.KindTypeError, "join expects a list as its first argument, got %s", args[0].Type())
	}
	sep := ""
	if len(args) == 2 {
		sepVal, ok := args[1].(value.String)
		if !ok {
			return value.NewError(value.KindTypeError, "join's separator must be a string, got %s", args[1].Type())
		}
		sep = string(sepVal)
	}

	parts := make([]string, len(list.Elements))
	for i, el := range list.Elements {
		s, ok := el.(value.String)
		if !ok {
			return value.NewError(value.KindTypeError, "join expects every element to be a string, got %s", el.Type())
		}
		parts[i] = string(s)
	}
	return value.String(strings.Join(parts, sep))
}
