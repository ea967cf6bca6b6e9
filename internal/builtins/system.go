package builtins

import (
	"time"

	"github.com/cwbudde/vaina/internal/value"
)

func registerSystem(r *Registry) {
	r.Register(biTime, "time")
	r.Register(biExit, "exit", "salir")
}

func biTime(ctx Context, args []value.Value) value.Value {
	if len(args) != 0 {
		return argError("time", 0, len(args))
	}
	return value.Number(float64(time.Now().UnixNano()) / 1e9)
}

// biExit terminates the process through ctx.Exit, per spec.md §4.5 and §5.
// With the default StdContext it never returns to the evaluator; a wrong
// argument count or a non-numeric status is returned as an error instead of
// exiting, and a Context whose Exit returns makes biExit return Null.
func biExit(ctx Context, args []value.Value) value.Value {
	if len(args) > 1 {
		return value.NewError(value.KindWrongArgCount, "exit/salir expects 0 or 1 arguments, got %d", len(args))
	}
	code := 0
	if len(args) == 1 {
		n, ok := args[0].(value.Number)
		if !ok {
			return value.NewError(value.KindTypeError, "exit/salir expects a numeric status, got %s", args[0].Type())
		}
		code = int(n)
	}
	ctx.Exit(code)
	return value.Null
}
