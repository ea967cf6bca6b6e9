package evaluator

import (
	"github.com/cwbudde/vaina/internal/ast"
	"github.com/cwbudde/vaina/internal/environment"
	"github.com/cwbudde/vaina/internal/value"
)

func (e *Evaluator) evalIf(node *ast.If, env *environment.Environment) value.Value {
	cond := e.Eval(node.Condition, env)
	if value.IsError(cond) {
		return cond
	}

	if value.IsTruthy(cond) {
		v, err := e.evalStatements(node.Then, env)
		if err != nil {
			return err
		}
		return v
	}
	if node.Else != nil {
		v, err := e.evalStatements(node.Else, env)
		if err != nil {
			return err
		}
		return v
	}
	return value.Null
}

func (e *Evaluator) evalWhile(node *ast.While, env *environment.Environment) value.Value {
	var result value.Value = value.Null

	for {
		cond := e.Eval(node.Condition, env)
		if value.IsError(cond) {
			return cond
		}
		if !value.IsTruthy(cond) {
			break
		}

		v, err := e.evalStatements(node.Body, env)
		if err != nil {
			return err
		}
		result = v
		if e.returning {
			return result
		}
	}

	return result
}

func (e *Evaluator) evalFor(node *ast.For, env *environment.Environment) value.Value {
	iterable := e.Eval(node.Iterable, env)
	if value.IsError(iterable) {
		return iterable
	}

	elements, iterErr := value.Iter(iterable)
	if iterErr != nil {
		return iterErr
	}

	var result value.Value = value.Null
	for _, el := range elements {
		env.Define(node.Var, el)
		v, err := e.evalStatements(node.Body, env)
		if err != nil {
			return err
		}
		result = v
		if e.returning {
			return result
		}
	}

	return result
}

func (e *Evaluator) evalFunctionDef(node *ast.FunctionDef, env *environment.Environment) value.Value {
	fn := &value.Function{Name: node.Name, Params: node.Params, Body: node.Body}
	env.Define(node.Name, fn)
	return fn
}

func (e *Evaluator) evalReturn(node *ast.Return, env *environment.Environment) value.Value {
	var v value.Value = value.Null
	if node.Value != nil {
		v = e.Eval(node.Value, env)
		if value.IsError(v) {
			return v
		}
	}
	e.returning = true
	e.returnValue = v
	return v
}
