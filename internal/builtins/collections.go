package builtins

import (
	"sort"

	"github.com/cwbudde/vaina/internal/value"
	"github.com/maruel/natural"
)

func registerCollections(r *Registry) {
	r.Register(biPush, "push")
	r.Register(biPop, "pop")
	r.Register(biReverse, "reverse")
	r.Register(biKeys, "keys", "claves")       // SPEC_FULL.md §4.9 supplement
	r.Register(biValues, "values", "valores")   // SPEC_FULL.md §4.9 supplement
	r.Register(biRange, "range", "rango")       // SPEC_FULL.md §4.9 supplement
	r.Register(biSort, "sort", "ordenar")       // SPEC_FULL.md §4.8 domain-stack wiring
}

// biPush returns a new list with value appended; per spec.md §4.5 this is
// value semantics — the caller rebinds the result, the argument list is not
// mutated in place.
func biPush(ctx Context, args []value.Value) value.Value {
	if len(args) != 2 {
		return argError("push", 2, len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return value.NewError(value.KindTypeError, "push expects a list as its first argument, got %s", args[0].Type())
	}
	out := make([]value.Value, len(list.Elements)+1)
	copy(out, list.Elements)
	out[len(list.Elements)] = args[1]
	return value.NewList(out)
}

// biPop returns the removed last element; per spec.md §4.5 the shortened
// list is discarded (the caller never sees it — pop's sole result is the
// removed value), and popping an empty list is an error.
func biPop(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("pop", 1, len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return value.NewError(value.KindTypeError, "pop expects a list, got %s", args[0].Type())
	}
	if len(list.Elements) == 0 {
		return value.NewError(value.KindIndexOutOfRange, "pop on an empty list")
	}
	return list.Elements[len(list.Elements)-1]
}

func biReverse(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("reverse", 1, len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return value.NewError(value.KindTypeError, "reverse expects a list, got %s", args[0].Type())
	}
	out := make([]value.Value, len(list.Elements))
	for i, el := range list.Elements {
		out[len(out)-1-i] = el
	}
	return value.NewList(out)
}

func biKeys(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("keys/claves", 1, len(args))
	}
	d, ok := args[0].(*value.Dict)
	if !ok {
		return value.NewError(value.KindTypeError, "keys/claves expects a dict, got %s", args[0].Type())
	}
	keys := d.Keys()
	out := make([]value.Value, len(keys))
	for i, k := range keys {
		out[i] = value.String(k)
	}
	return value.NewList(out)
}

func biValues(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("values/valores", 1, len(args))
	}
	d, ok := args[0].(*value.Dict)
	if !ok {
		return value.NewError(value.KindTypeError, "values/valores expects a dict, got %s", args[0].Type())
	}
	keys := d.Keys()
	out := make([]value.Value, len(keys))
	for i, k := range keys {
		v, _ := d.Get(k)
		out[i] = v
	}
	return value.NewList(out)
}

// biRange implements `range(end)`, `range(start, end)` and
// `range(start, end, step)`, filling the gap between spec.md §4.1's Range
// value and its §4.3 grammar, which has no range literal syntax
// (SPEC_FULL.md §4.9).
func biRange(ctx Context, args []value.Value) value.Value {
	var start, end, step int64 = 0, 0, 1

	toInt := func(v value.Value) (int64, bool) {
		n, ok := v.(value.Number)
		return int64(n), ok
	}

	switch len(args) {
	case 1:
		e, ok := toInt(args[0])
		if !ok {
			return value.NewError(value.KindTypeError, "range expects numeric arguments")
		}
		end = e
	case 2:
		s, ok1 := toInt(args[0])
		e, ok2 := toInt(args[1])
		if !ok1 || !ok2 {
			return value.NewError(value.KindTypeError, "range expects numeric arguments")
		}
		start, end = s, e
	case 3:
		s, ok1 := toInt(args[0])
		e, ok2 := toInt(args[1])
		st, ok3 := toInt(args[2])
		if !ok1 || !ok2 || !ok3 {
			return value.NewError(value.KindTypeError, "range expects numeric arguments")
		}
		start, end, step = s, e, st
	default:
		return value.NewError(value.KindWrongArgCount, "range expects 1 to 3 arguments, got %d", len(args))
	}

	r, err := value.NewRange(start, end, step)
	if err != nil {
		return value.NewError(value.KindBuiltinError, "%s", err)
	}
	return r
}

// biSort sorts a list of strings using natural (human) ordering instead of
// plain lexicographic comparison, wiring github.com/maruel/natural per
// SPEC_FULL.md §4.8.
func biSort(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("sort/ordenar", 1, len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return value.NewError(value.KindTypeError, "sort/ordenar expects a list, got %s", args[0].Type())
	}

	strs := make([]string, len(list.Elements))
	for i, el := range list.Elements {
		s, ok := el.(value.String)
		if !ok {
			return value.NewError(value.KindTypeError, "sort/ordenar expects a list of strings, got %s", el.Type())
		}
		strs[i] = string(s)
	}

	sort.Sort(natural.StringSlice(strs))

	out := make([]value.Value, len(strs))
	for i, s := range strs {
		out[i] = value.String(s)
	}
	return value.NewList(out)
}
