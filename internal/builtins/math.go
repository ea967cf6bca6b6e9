package builtins

import (
	"math"

	"github.com/cwbudde/vaina/internal/value"
)

func registerMath(r *Registry) {
	r.Register(biAbs, "abs")
	r.Register(biSqrt, "sqrt")
	r.Register(biPow, "pow")
	r.Register(biRandom, "random")
}

func biAbs(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("abs", 1, len(args))
	}
	n, ok := args[0].(value.Number)
	if !ok {
		return value.NewError(value.KindTypeError, "abs expects a number, got %s", args[0].Type())
	}
	return value.Number(math.Abs(float64(n)))
}

func biSqrt(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("sqrt", 1, len(args))
	}
	n, ok := args[0].(value.Number)
	if !ok {
		return value.NewError(value.KindTypeError, "sqrt expects a number, got %s", args[0].Type())
	}
	if n < 0 {
		return value.NewError(value.KindTypeError, "sqrt of a negative number (%s)", n.String())
	}
	return value.Number(math.Sqrt(float64(n)))
}

func biPow(ctx Context, args []value.Value) value.Value {
	if len(args) != 2 {
		return argError("pow", 2, len(args))
	}
	base, ok1 := args[0].(value.Number)
	exp, ok2 := args[1].(value.Number)
	if !ok1 || !ok2 {
		return value.NewError(value.KindTypeError, "pow expects two numbers")
	}
	return value.Number(math.Pow(float64(base), float64(exp)))
}

func biRandom(ctx Context, args []value.Value) value.Value {
	if len(args) != 0 {
		return argError("random", 0, len(args))
	}
	return value.Number(ctx.Rand().Float64())
}
