// Package value implements the dynamic value system (spec.md §4.1): tagged
// runtime values plus their arithmetic, comparison, iteration, indexing, and
// member protocols.
package value

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/vaina/internal/ast"
	"golang.org/x/text/unicode/norm"
)

// Value is the dynamic runtime value every expression evaluates to.
type Value interface {
	Type() string
	String() string
}

// Number is the language's sole numeric type (IEEE-754 double).
type Number float64

func (Number) Type() string { return "numero" }

func (n Number) String() string {
	f := float64(n)
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is a text value.
type String string

func (String) Type() string    { return "texto" }
func (s String) String() string { return string(s) }

// normalize returns the NFC-normalized form of a string value, used before
// equality/ordering comparisons so that bilingual/accented text compares
// consistently regardless of how it was composed (spec.md §4.1 `equals`,
// `less`/`less_equal`; see SPEC_FULL.md §4.8 for why x/text is wired here).
func normalize(s string) string {
	return norm.NFC.String(s)
}

// Boolean is a truth value.
type Boolean bool

func (Boolean) Type() string { return "booleano" }
func (b Boolean) String() string {
	if b {
		return "verdadero"
	}
	return "falso"
}

// nullType is the singleton Null value's concrete type.
type nullType struct{}

func (nullType) Type() string   { return "nulo" }
func (nullType) String() string { return "nulo" }

// Null is the language's single null value.
var Null Value = nullType{}

// List is an ordered, mutable sequence of values.
type List struct {
	Elements []Value
}

func NewList(elements []Value) *List { return &List{Elements: elements} }

func (*List) Type() string { return "lista" }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Dict is a string-keyed mapping. Insertion order is tracked for stable
// `keys`/`values`/String() output, though spec.md §3 does not require it be
// observable in iteration order.
type Dict struct {
	keys   []string
	values map[string]Value
}

func NewDict() *Dict {
	return &Dict{values: make(map[string]Value)}
}

func (*Dict) Type() string { return "diccionario" }

func (d *Dict) Set(key string, v Value) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.values[key]
	return v, ok
}

func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

func (d *Dict) Len() int { return len(d.keys) }

func (d *Dict) String() string {
	parts := make([]string, 0, len(d.keys))
	for _, k := range d.keys {
		parts = append(parts, k+": "+d.values[k].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Function is a user-defined function value. Per spec.md §3/§9, it never
// captures its defining environment: the evaluator re-resolves names through
// its own live frame chain at call time (the "live-chain" closure model).
type Function struct {
	Name   string
	Params []string
	Body   []ast.Statement
}

func (*Function) Type() string { return "funcion" }
func (f *Function) String() string {
	return "funcion " + f.Name + "(" + strings.Join(f.Params, ", ") + ")"
}

// Object is a class-tagged field map. The language has no class-declaration
// syntax exposed by spec.md's grammar; Object exists so host code can hand
// scripts structured values beyond List/Dict. No builtin constructs one
// (parsed JSON/YAML objects become Dict values); member access, `len` and
// `type` accept it.
type Object struct {
	ClassName string
	Fields    map[string]Value
}

func NewObject(className string) *Object {
	return &Object{ClassName: className, Fields: make(map[string]Value)}
}

func (*Object) Type() string { return "objeto" }
func (o *Object) String() string {
	keys := make([]string, 0, len(o.Fields))
	for k := range o.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + o.Fields[k].String()
	}
	return o.ClassName + "{" + strings.Join(parts, ", ") + "}"
}

// Range is a lazy arithmetic sequence (start, end, step) with a half-open
// end, per spec.md §3/§4.1. Step is never zero (enforced at construction).
type Range struct {
	Start, End, Step int64
}

func NewRange(start, end, step int64) (*Range, error) {
	if step == 0 {
		return nil, fmt.Errorf("range step must not be zero")
	}
	return &Range{Start: start, End: end, Step: step}, nil
}

func (*Range) Type() string { return "rango" }
func (r *Range) String() string {
	return fmt.Sprintf("rango(%d, %d, %d)", r.Start, r.End, r.Step)
}

// Values materializes the range's elements, per spec.md §4.1: emits
// start, start+step, ... while current < end (positive step) or
// current > end (negative step); end itself is never emitted, and the
// result is empty if step's sign disagrees with the direction to end.
func (r *Range) Values() []Value {
	var out []Value
	if r.Step > 0 {
		for v := r.Start; v < r.End; v += r.Step {
			out = append(out, Number(v))
		}
	} else {
		for v := r.Start; v > r.End; v += r.Step {
			out = append(out, Number(v))
		}
	}
	return out
}

// Error is an internal sentinel carrying a runtime diagnostic kind and
// message. The evaluator surfaces it to the outermost entry point rather
// than recovering from it (spec.md §7).
type Error struct {
	Kind    string
	Message string
}

func NewError(kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (*Error) Type() string     { return "error" }
func (e *Error) String() string { return e.Kind + ": " + e.Message }
func (e *Error) Error() string  { return e.String() }

// IsError reports whether v is an *Error, the evaluator's short-circuit
// signal for runtime diagnostics.
func IsError(v Value) bool {
	_, ok := v.(*Error)
	return ok
}
