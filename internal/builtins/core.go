package builtins

import (
	"fmt"
	"strings"

	"github.com/cwbudde/vaina/internal/value"
)

func registerCore(r *Registry) {
	r.Register(biPrint, "print", "decir")
	r.Register(biType, "type", "tipo")
	r.Register(biLen, "len", "longitud")
}

// biPrint concatenates stringified arguments with single spaces, writes
// them to stdout with a trailing newline, and returns the concatenation
// (spec.md §4.5).
func biPrint(ctx Context, args []value.Value) value.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	joined := strings.Join(parts, " ")
	fmt.Fprintln(ctx.Stdout(), joined)
	return value.String(joined)
}

func biType(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("type/tipo", 1, len(args))
	}
	return value.String(args[0].Type())
}

func biLen(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("len/longitud", 1, len(args))
	}
	switch v := args[0].(type) {
	case value.String:
		return value.Number(len([]rune(string(v))))
	case *value.List:
		return value.Number(len(v.Elements))
	case *value.Dict:
		return value.Number(v.Len())
	case *value.Object:
		return value.Number(len(v.Fields))
	default:
		return value.NewError(value.KindTypeError, "len/longitud does not support %s", args[0].Type())
	}
}
