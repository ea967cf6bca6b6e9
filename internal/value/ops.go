package value

import (
	"math"
	"strings"
)

// Kind names for runtime diagnostics (spec.md §7 Runtime kinds).
const (
	KindTypeError         = "TypeError"
	KindDivisionByZero    = "DivisionByZero"
	KindIndexOutOfRange   = "IndexOutOfRange"
	KindKeyError          = "KeyError"
	KindMemberNotFound    = "MemberNotFound"
	KindUnsupportedOp     = "UnsupportedOperation"
	KindUndefinedVariable = "UndefinedVariable"
	KindUndefinedFunction = "UndefinedFunction"
	KindWrongArgCount     = "WrongArgumentCount"
	KindBuiltinError      = "BuiltinError"
)

const epsilon = 2.220446049250313e-16 // f64::EPSILON, per spec.md §4.1 `equals`

// Add implements the `add` operation's accepted combinations (spec.md
// §4.1): number+number, string+string, string+any (stringify right),
// list+list (concatenate).
func Add(left, right Value) Value {
	switch l := left.(type) {
	case Number:
		if r, ok := right.(Number); ok {
			return l + r
		}
		return NewError(KindTypeError, "cannot add %s and %s", left.Type(), right.Type())
	case String:
		if r, ok := right.(String); ok {
			return l + r
		}
		return String(normalize(string(l)) + right.String())
	case *List:
		if r, ok := right.(*List); ok {
			out := make([]Value, 0, len(l.Elements)+len(r.Elements))
			out = append(out, l.Elements...)
			out = append(out, r.Elements...)
			return NewList(out)
		}
		return NewError(KindTypeError, "cannot add lista and %s", right.Type())
	default:
		return NewError(KindTypeError, "cannot add %s and %s", left.Type(), right.Type())
	}
}

func asNumbers(left, right Value) (Number, Number, bool) {
	l, ok1 := left.(Number)
	r, ok2 := right.(Number)
	return l, r, ok1 && ok2
}

// Subtract implements number-number subtraction.
func Subtract(left, right Value) Value {
	l, r, ok := asNumbers(left, right)
	if !ok {
		return NewError(KindTypeError, "cannot subtract %s and %s", left.Type(), right.Type())
	}
	return l - r
}

// Multiply implements number*number and, per spec.md §4.1, string times a
// non-negative integer (string repetition).
func Multiply(left, right Value) Value {
	if l, r, ok := asNumbers(left, right); ok {
		return l * r
	}
	if s, ok := left.(String); ok {
		if n, ok := right.(Number); ok {
			return repeatString(s, n)
		}
	}
	if n, ok := left.(Number); ok {
		if s, ok := right.(String); ok {
			return repeatString(s, n)
		}
	}
	return NewError(KindTypeError, "cannot multiply %s and %s", left.Type(), right.Type())
}

func repeatString(s String, n Number) Value {
	if n != Number(math.Trunc(float64(n))) || n < 0 {
		return NewError(KindTypeError, "string repetition count must be a non-negative integer")
	}
	return String(strings.Repeat(string(s), int(n)))
}

// Divide implements number/number, erroring on division by zero.
func Divide(left, right Value) Value {
	l, r, ok := asNumbers(left, right)
	if !ok {
		return NewError(KindTypeError, "cannot divide %s and %s", left.Type(), right.Type())
	}
	if r == 0 {
		return NewError(KindDivisionByZero, "division by zero")
	}
	return l / r
}

// Modulo implements number%number, erroring on modulo by zero.
func Modulo(left, right Value) Value {
	l, r, ok := asNumbers(left, right)
	if !ok {
		return NewError(KindTypeError, "cannot compute modulo of %s and %s", left.Type(), right.Type())
	}
	if r == 0 {
		return NewError(KindDivisionByZero, "modulo by zero")
	}
	return Number(math.Mod(float64(l), float64(r)))
}

// Power implements number**number.
func Power(left, right Value) Value {
	l, r, ok := asNumbers(left, right)
	if !ok {
		return NewError(KindTypeError, "cannot exponentiate %s and %s", left.Type(), right.Type())
	}
	return Number(math.Pow(float64(l), float64(r)))
}

// Equals implements cross-type-safe equality: numbers compare within
// epsilon, cross-type values are never equal (spec.md §4.1).
func Equals(left, right Value) Boolean {
	switch l := left.(type) {
	case Number:
		r, ok := right.(Number)
		return Boolean(ok && math.Abs(float64(l-r)) <= epsilon)
	case String:
		r, ok := right.(String)
		return Boolean(ok && normalize(string(l)) == normalize(string(r)))
	case Boolean:
		r, ok := right.(Boolean)
		return Boolean(ok && l == r)
	case nullType:
		_, ok := right.(nullType)
		return Boolean(ok)
	default:
		return left == right
	}
}

// Compare implements `less`/`less_equal`/`greater`/`greater_equal`'s shared
// ordering: number<->number, string<->string (lexicographic). Returns
// (cmp, true) on success, (0, false) when the types are not orderable.
func Compare(left, right Value) (int, bool) {
	if l, r, ok := asNumbers(left, right); ok {
		switch {
		case l < r:
			return -1, true
		case l > r:
			return 1, true
		default:
			return 0, true
		}
	}
	if l, ok := left.(String); ok {
		if r, ok := right.(String); ok {
			ln, rn := normalize(string(l)), normalize(string(r))
			return strings.Compare(ln, rn), true
		}
	}
	return 0, false
}

// Negate implements unary `-` (number) and logical `not`/`no` folded onto a
// boolean operand for the `-` spelling reused by booleans per spec.md §4.1.
func Negate(v Value) Value {
	switch n := v.(type) {
	case Number:
		return -n
	case Boolean:
		return !n
	default:
		return NewError(KindTypeError, "cannot negate %s", v.Type())
	}
}

// IsTruthy implements the is_truthy predicate (spec.md §4.1).
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case Boolean:
		return bool(t)
	case nullType:
		return false
	case Number:
		return t != 0
	case String:
		return len(t) > 0
	case *List:
		return len(t.Elements) > 0
	case *Dict:
		return t.Len() > 0
	default:
		return true // function/object/range are always truthy
	}
}

// Index implements list/string/dict indexing (spec.md §4.1): list+integer
// (0-based), string+integer (0-based Unicode scalar), dict+string.
func Index(obj, idx Value) Value {
	switch o := obj.(type) {
	case *List:
		n, ok := idx.(Number)
		if !ok {
			return NewError(KindTypeError, "list index must be a number, got %s", idx.Type())
		}
		i := int(n)
		if i < 0 || i >= len(o.Elements) {
			return NewError(KindIndexOutOfRange, "list index %d out of range", i)
		}
		return o.Elements[i]
	case String:
		n, ok := idx.(Number)
		if !ok {
			return NewError(KindTypeError, "string index must be a number, got %s", idx.Type())
		}
		runes := []rune(string(o))
		i := int(n)
		if i < 0 || i >= len(runes) {
			return NewError(KindIndexOutOfRange, "string index %d out of range", i)
		}
		return String(string(runes[i]))
	case *Dict:
		key, ok := idx.(String)
		if !ok {
			return NewError(KindTypeError, "dict key must be a string, got %s", idx.Type())
		}
		v, found := o.Get(string(key))
		if !found {
			return NewError(KindKeyError, "key %q not found", string(key))
		}
		return v
	default:
		return NewError(KindTypeError, "%s is not indexable", obj.Type())
	}
}

// SetIndex implements in-place mutation for list/dict elements. The parser
// has no index-assignment statement (`lista[0] = x` is not accepted), so the
// evaluator does not call it.
func SetIndex(obj, idx, v Value) Value {
	switch o := obj.(type) {
	case *List:
		n, ok := idx.(Number)
		if !ok {
			return NewError(KindTypeError, "list index must be a number, got %s", idx.Type())
		}
		i := int(n)
		if i < 0 || i >= len(o.Elements) {
			return NewError(KindIndexOutOfRange, "list index %d out of range", i)
		}
		o.Elements[i] = v
		return v
	case *Dict:
		key, ok := idx.(String)
		if !ok {
			return NewError(KindTypeError, "dict key must be a string, got %s", idx.Type())
		}
		o.Set(string(key), v)
		return v
	default:
		return NewError(KindTypeError, "%s does not support index assignment", obj.Type())
	}
}

// Member implements object field access and the list/string pseudo-field
// `longitud`/`length` (spec.md §4.1).
func Member(obj Value, name string) Value {
	switch o := obj.(type) {
	case *Object:
		if v, ok := o.Fields[name]; ok {
			return v
		}
		return NewError(KindMemberNotFound, "member %q not found on %s", name, o.ClassName)
	case *List:
		if name == "longitud" || name == "length" {
			return Number(len(o.Elements))
		}
	case String:
		if name == "longitud" || name == "length" {
			return Number(len([]rune(string(o))))
		}
	}
	return NewError(KindMemberNotFound, "member %q not found on %s", name, obj.Type())
}

// Iter implements the iteration protocol (spec.md §4.1): list elements,
// string characters, dict keys, range values.
func Iter(v Value) ([]Value, Value) {
	switch t := v.(type) {
	case *List:
		return t.Elements, nil
	case String:
		runes := []rune(string(t))
		out := make([]Value, len(runes))
		for i, r := range runes {
			out[i] = String(string(r))
		}
		return out, nil
	case *Dict:
		keys := t.Keys()
		out := make([]Value, len(keys))
		for i, k := range keys {
			out[i] = String(k)
		}
		return out, nil
	case *Range:
		return t.Values(), nil
	default:
		return nil, NewError(KindTypeError, "%s is not iterable", v.Type())
	}
}
