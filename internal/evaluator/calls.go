package evaluator

import (
	"github.com/cwbudde/vaina/internal/ast"
	"github.com/cwbudde/vaina/internal/builtins"
	"github.com/cwbudde/vaina/internal/environment"
	"github.com/cwbudde/vaina/internal/value"
)

// evalFunctionCall implements spec.md §4.6's FunctionCall semantics:
// builtin table first, then a user-function call through the live
// environment chain.
func (e *Evaluator) evalFunctionCall(node *ast.FunctionCall, env *environment.Environment) value.Value {
	args := make([]value.Value, 0, len(node.Arguments))
	for _, argExpr := range node.Arguments {
		v := e.Eval(argExpr, env)
		if value.IsError(v) {
			return v
		}
		args = append(args, v)
	}

	if fn, ok := e.Builtins.Lookup(node.Name); ok {
		e.trace("call builtin %s(%v)", node.Name, args)
		return fn(e.ctx(), args)
	}

	bound, ok := env.Get(node.Name)
	if !ok {
		return value.NewError(value.KindUndefinedFunction, "undefined function %q", node.Name)
	}
	userFn, ok := bound.(*value.Function)
	if !ok {
		return value.NewError(value.KindTypeError, "%q is not callable", node.Name)
	}

	return e.callUserFunction(userFn, args, env)
}

// callUserFunction implements the six-step call procedure of spec.md §4.6:
// capture the caller's frame, create a child frame, bind parameters,
// execute the body, consume any pending return, and restore the caller's
// frame by simply discarding the child (Go's stack unwind does this for
// free since the child frame isn't referenced after return).
func (e *Evaluator) callUserFunction(fn *value.Function, args []value.Value, caller *environment.Environment) value.Value {
	if len(args) != len(fn.Params) {
		return value.NewError(value.KindWrongArgCount, "%q expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	e.callDepth++
	if e.callDepth > e.maxCallDepth {
		e.callDepth--
		return value.NewError(value.KindUnsupportedOp, "maximum call depth exceeded")
	}
	defer func() { e.callDepth-- }()

	frame := environment.NewEnclosed(caller)
	for i, param := range fn.Params {
		frame.Define(param, args[i])
	}

	result, err := e.evalStatements(fn.Body, frame)
	if err != nil {
		return err
	}

	if e.returning {
		e.returning = false
		result = e.returnValue
		e.returnValue = nil
	}

	return result
}

// ctx lazily builds the I/O context builtins need, defaulting to the real
// process streams; SetContext overrides it (for tests and CLI wiring).
func (e *Evaluator) ctx() builtins.Context {
	if e.hostCtx == nil {
		e.hostCtx = builtins.NewStdContext(nil, nil)
	}
	return e.hostCtx
}

// SetContext installs the Context builtins use for I/O, randomness, and
// process exit (default: the real process streams).
func (e *Evaluator) SetContext(ctx builtins.Context) {
	e.hostCtx = ctx
}
