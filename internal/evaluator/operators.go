package evaluator

import (
	"github.com/cwbudde/vaina/internal/ast"
	"github.com/cwbudde/vaina/internal/environment"
	"github.com/cwbudde/vaina/internal/token"
	"github.com/cwbudde/vaina/internal/value"
)

// evalBinaryOp dispatches on the operator token's type rather than its
// literal spelling, since `y`/`o`/`and`/`or` all lex to the same AND/OR
// token types regardless of which spelling was written (spec.md §4.2).
func (e *Evaluator) evalBinaryOp(node *ast.BinaryOp, env *environment.Environment) value.Value {
	switch node.Token.Type {
	case token.AND:
		return e.evalAnd(node, env)
	case token.OR:
		return e.evalOr(node, env)
	}

	left := e.Eval(node.Left, env)
	if value.IsError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if value.IsError(right) {
		return right
	}

	switch node.Token.Type {
	case token.PLUS:
		return value.Add(left, right)
	case token.MINUS:
		return value.Subtract(left, right)
	case token.STAR:
		return value.Multiply(left, right)
	case token.SLASH:
		return value.Divide(left, right)
	case token.PERCENT:
		return value.Modulo(left, right)
	case token.CARET:
		return value.Power(left, right)
	case token.EQ:
		return value.Equals(left, right)
	case token.NEQ:
		return !value.Equals(left, right)
	case token.LT:
		return compareOp(left, right, func(c int) bool { return c < 0 })
	case token.LTE:
		return compareOp(left, right, func(c int) bool { return c <= 0 })
	case token.GT:
		return compareOp(left, right, func(c int) bool { return c > 0 })
	case token.GTE:
		return compareOp(left, right, func(c int) bool { return c >= 0 })
	default:
		return value.NewError(value.KindUnsupportedOp, "unsupported operator %q", node.Op)
	}
}

func compareOp(left, right value.Value, pred func(int) bool) value.Value {
	c, ok := value.Compare(left, right)
	if !ok {
		return value.NewError(value.KindTypeError, "cannot compare %s and %s", left.Type(), right.Type())
	}
	return value.Boolean(pred(c))
}

// evalAnd/evalOr short-circuit per spec.md §4.1: the right operand is only
// evaluated when its value could change the result.
func (e *Evaluator) evalAnd(node *ast.BinaryOp, env *environment.Environment) value.Value {
	left := e.Eval(node.Left, env)
	if value.IsError(left) {
		return left
	}
	if !value.IsTruthy(left) {
		return value.Boolean(false)
	}
	right := e.Eval(node.Right, env)
	if value.IsError(right) {
		return right
	}
	return value.Boolean(value.IsTruthy(right))
}

func (e *Evaluator) evalOr(node *ast.BinaryOp, env *environment.Environment) value.Value {
	left := e.Eval(node.Left, env)
	if value.IsError(left) {
		return left
	}
	if value.IsTruthy(left) {
		return value.Boolean(true)
	}
	right := e.Eval(node.Right, env)
	if value.IsError(right) {
		return right
	}
	return value.Boolean(value.IsTruthy(right))
}

func (e *Evaluator) evalUnaryOp(node *ast.UnaryOp, env *environment.Environment) value.Value {
	operand := e.Eval(node.Operand, env)
	if value.IsError(operand) {
		return operand
	}

	if node.Token.Type == token.NOT {
		return value.Boolean(!value.IsTruthy(operand))
	}
	return value.Negate(operand)
}
