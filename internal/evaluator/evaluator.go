// Package evaluator implements the tree-walking evaluator described in
// spec.md §4.6: it walks the *ast.Program produced by the parser, threading
// a live environment chain and a builtin registry, and reports runtime
// diagnostics as *value.Error sentinels rather than panics.
package evaluator

import (
	"github.com/cwbudde/vaina/internal/ast"
	"github.com/cwbudde/vaina/internal/builtins"
	"github.com/cwbudde/vaina/internal/environment"
	"github.com/cwbudde/vaina/internal/value"
)

// Evaluator walks a program's AST against a live environment chain.
//
// Return propagation does not use panic/recover: a pending return is
// recorded on returning and returnValue, mirroring the boolean-signal fields the
// teacher interpreter clears at each loop/function boundary (breakSignal,
// continueSignal) rather than unwinding the Go call stack.
type Evaluator struct {
	Globals   *environment.Environment
	Builtins  *builtins.Registry
	Trace     bool
	traceSink func(format string, args ...interface{})

	returning    bool
	returnValue  value.Value
	maxCallDepth int
	callDepth    int
	hostCtx      builtins.Context
}

// New creates an Evaluator with a fresh global environment and the default
// builtin registry.
func New() *Evaluator {
	return &Evaluator{
		Globals:      environment.New(),
		Builtins:     builtins.Default(),
		maxCallDepth: 1024,
	}
}

// SetTraceSink installs a callback used to emit `--trace` diagnostics (see
// SPEC_FULL.md §4.8/§6.1); when nil, tracing is a no-op regardless of Trace.
func (e *Evaluator) SetTraceSink(sink func(format string, args ...interface{})) {
	e.traceSink = sink
}

func (e *Evaluator) trace(format string, args ...interface{}) {
	if e.Trace && e.traceSink != nil {
		e.traceSink(format, args...)
	}
}

// Run evaluates program's top-level statements in Globals, returning the
// last statement's value (or value.Null for an empty program) and any
// runtime error encountered.
func (e *Evaluator) Run(program *ast.Program) (value.Value, *value.Error) {
	result, err := e.evalStatements(program.Statements, e.Globals)
	if err != nil {
		return value.Null, err
	}
	return result, nil
}

// evalStatements runs stmts in order, short-circuiting on the first runtime
// error or pending return.
func (e *Evaluator) evalStatements(stmts []ast.Statement, env *environment.Environment) (value.Value, *value.Error) {
	var result value.Value = value.Null

	for _, stmt := range stmts {
		v := e.evalStatement(stmt, env)
		if errv, ok := v.(*value.Error); ok {
			return value.Null, errv
		}
		result = v
		if e.returning {
			return result, nil
		}
	}

	return result, nil
}

func (e *Evaluator) evalStatement(stmt ast.Statement, env *environment.Environment) value.Value {
	switch node := stmt.(type) {
	case *ast.If:
		return e.evalIf(node, env)
	case *ast.While:
		return e.evalWhile(node, env)
	case *ast.For:
		return e.evalFor(node, env)
	case *ast.FunctionDef:
		return e.evalFunctionDef(node, env)
	case *ast.Return:
		return e.evalReturn(node, env)
	case *ast.Assignment:
		return e.evalAssignment(node, env)
	case *ast.FunctionCall:
		return e.evalFunctionCall(node, env)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case *ast.Block:
		v, err := e.evalStatements(node.Statements, env)
		if err != nil {
			return err
		}
		return v
	default:
		return value.NewError(value.KindUnsupportedOp, "unsupported statement node %T", stmt)
	}
}

// Eval evaluates a single expression node.
func (e *Evaluator) Eval(expr ast.Expression, env *environment.Environment) value.Value {
	switch node := expr.(type) {
	case *ast.Literal:
		return literalValue(node)
	case *ast.Variable:
		return e.evalVariable(node, env)
	case *ast.BinaryOp:
		return e.evalBinaryOp(node, env)
	case *ast.UnaryOp:
		return e.evalUnaryOp(node, env)
	case *ast.Assignment:
		return e.evalAssignment(node, env)
	case *ast.FunctionCall:
		return e.evalFunctionCall(node, env)
	case *ast.List:
		return e.evalList(node, env)
	case *ast.Dict:
		return e.evalDict(node, env)
	case *ast.Index:
		return e.evalIndex(node, env)
	case *ast.MemberAccess:
		return e.evalMemberAccess(node, env)
	default:
		return value.NewError(value.KindUnsupportedOp, "unsupported expression node %T", expr)
	}
}

func literalValue(lit *ast.Literal) value.Value {
	switch v := lit.Value.(type) {
	case float64:
		return value.Number(v)
	case string:
		return value.String(v)
	case bool:
		return value.Boolean(v)
	case nil:
		return value.Null
	default:
		return value.NewError(value.KindTypeError, "unrecognized literal value %v", v)
	}
}

func (e *Evaluator) evalVariable(node *ast.Variable, env *environment.Environment) value.Value {
	if v, ok := env.Get(node.Name); ok {
		return v
	}
	return value.NewError(value.KindUndefinedVariable, "undefined variable %q", node.Name)
}

func (e *Evaluator) evalAssignment(node *ast.Assignment, env *environment.Environment) value.Value {
	v := e.Eval(node.Value, env)
	if value.IsError(v) {
		return v
	}
	env.Define(node.Name, v)
	return v
}

func (e *Evaluator) evalList(node *ast.List, env *environment.Environment) value.Value {
	elements := make([]value.Value, 0, len(node.Elements))
	for _, elExpr := range node.Elements {
		v := e.Eval(elExpr, env)
		if value.IsError(v) {
			return v
		}
		elements = append(elements, v)
	}
	return value.NewList(elements)
}

func (e *Evaluator) evalDict(node *ast.Dict, env *environment.Environment) value.Value {
	d := value.NewDict()
	for _, pair := range node.Pairs {
		k := e.Eval(pair.Key, env)
		if value.IsError(k) {
			return k
		}
		v := e.Eval(pair.Value, env)
		if value.IsError(v) {
			return v
		}
		key, ok := k.(value.String)
		if !ok {
			return value.NewError(value.KindTypeError, "dict keys must be strings, got %s", k.Type())
		}
		d.Set(string(key), v)
	}
	return d
}

func (e *Evaluator) evalIndex(node *ast.Index, env *environment.Environment) value.Value {
	obj := e.Eval(node.Object, env)
	if value.IsError(obj) {
		return obj
	}
	idx := e.Eval(node.Idx, env)
	if value.IsError(idx) {
		return idx
	}
	return value.Index(obj, idx)
}

func (e *Evaluator) evalMemberAccess(node *ast.MemberAccess, env *environment.Environment) value.Value {
	obj := e.Eval(node.Object, env)
	if value.IsError(obj) {
		return obj
	}
	return value.Member(obj, node.Name)
}
