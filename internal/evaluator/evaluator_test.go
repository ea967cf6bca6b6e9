package evaluator

import (
	"strings"
	"testing"

	"github.com/cwbudde/vaina/internal/builtins"
	"github.com/cwbudde/vaina/internal/lexer"
	"github.com/cwbudde/vaina/internal/parser"
	"github.com/cwbudde/vaina/internal/value"
)

func runSource(t *testing.T, src string) (value.Value, *value.Error) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parser errors for %q: %+v", src, p.Errors())
	}
	eval := New()
	return eval.Run(program)
}

func TestEvalArithmeticAndAssignment(t *testing.T) {
	v, err := runSource(t, "x = 2 + 3 * 4\nx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != value.Number(14) {
		t.Fatalf("expected 14, got %v", v)
	}
}

func TestEvalIfElse(t *testing.T) {
	v, err := runSource(t, `
si 1 > 2:
  resultado = "a"
sino:
  resultado = "b"
fin
resultado
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != value.String("b") {
		t.Fatalf("expected b, got %v", v)
	}
}

func TestEvalWhileLoop(t *testing.T) {
	v, err := runSource(t, `
suma = 0
i = 0
mientras i < 5:
  suma = suma + i
  i = i + 1
fin
suma
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != value.Number(10) {
		t.Fatalf("expected 10, got %v", v)
	}
}

func TestEvalForOverList(t *testing.T) {
	v, err := runSource(t, `
total = 0
para n en [1, 2, 3]:
  total = total + n
total
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != value.Number(6) {
		t.Fatalf("expected 6, got %v", v)
	}
}

func TestEvalFunctionDefWithoutExplicitTerminatorThenCall(t *testing.T) {
	// spec.md §8 concrete scenario 4, verbatim: a function body with no
	// `fin` followed immediately by a call statement. The call must
	// terminate the block rather than being absorbed into the body.
	v, err := runSource(t, `
funcion suma(a, b):
  retornar a + b
suma(5, 7)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != value.Number(12) {
		t.Fatalf("expected 12, got %v", v)
	}
}

func TestEvalRecursiveFunction(t *testing.T) {
	v, err := runSource(t, `
funcion factorial(n):
  si n <= 1:
    retornar 1
  fin
  retornar n * factorial(n - 1)
fin
factorial(5)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != value.Number(120) {
		t.Fatalf("expected 120, got %v", v)
	}
}

func TestEvalReturnEscapesNestedBlocks(t *testing.T) {
	v, err := runSource(t, `
funcion primero_positivo(xs):
  para x en xs:
    si x > 0:
      retornar x
    fin
  retornar 0
fin
primero_positivo([-2, -1, 0, 3, 4])
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != value.Number(3) {
		t.Fatalf("expected 3, got %v", v)
	}
}

func TestBuiltinPrecedesUserBinding(t *testing.T) {
	// spec.md §4.5/§8: a user binding named after a builtin must never
	// shadow the builtin at a call site.
	v, err := runSource(t, `
len = 99
len("hola")
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != value.Number(4) {
		t.Fatalf("expected the builtin len to win over the user binding, got %v", v)
	}
}

func TestEvalAndOrShortCircuit(t *testing.T) {
	v, err := runSource(t, `(verdadero) o explota()`)
	if err != nil {
		t.Fatalf("expected short-circuit to skip evaluating the right operand, got error: %v", err)
	}
	if v != value.Boolean(true) {
		t.Fatalf("expected true, got %v", v)
	}

	v, err = runSource(t, `(falso) y explota()`)
	if err != nil {
		t.Fatalf("expected short-circuit to skip evaluating the right operand, got error: %v", err)
	}
	if v != value.Boolean(false) {
		t.Fatalf("expected false, got %v", v)
	}
}

func TestEvalUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := runSource(t, "no_existe")
	if err == nil {
		t.Fatalf("expected a runtime error for an undefined variable")
	}
	if err.Kind != value.KindUndefinedVariable {
		t.Fatalf("expected KindUndefinedVariable, got %s", err.Kind)
	}
}

func TestEvalDictAndIndex(t *testing.T) {
	v, err := runSource(t, `
persona = {"nombre": "ana", "edad": 30}
persona["nombre"]
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != value.String("ana") {
		t.Fatalf("expected ana, got %v", v)
	}
}

func TestFunctionArityMismatchIsError(t *testing.T) {
	_, err := runSource(t, `
funcion sumar(a, b):
  retornar a + b
fin
sumar(1)
`)
	if err == nil {
		t.Fatalf("expected an arity-mismatch runtime error")
	}
	if err.Kind != value.KindWrongArgCount {
		t.Fatalf("expected KindWrongArgCount, got %s", err.Kind)
	}
}

func TestCallUndefinedFunctionIsError(t *testing.T) {
	_, err := runSource(t, "no_existe(1, 2)")
	if err == nil {
		t.Fatalf("expected an undefined-function runtime error")
	}
	if err.Kind != value.KindUndefinedFunction {
		t.Fatalf("expected KindUndefinedFunction, got %s", err.Kind)
	}
}

func TestSetContextIsHonoredByBuiltins(t *testing.T) {
	l := lexer.New(`decir("hola")`)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parser errors: %+v", p.Errors())
	}

	eval := New()
	var out strings.Builder
	ctx := builtins.NewStdContext(&out, strings.NewReader(""))
	eval.SetContext(ctx)

	if _, err := eval.Run(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "hola\n" {
		t.Fatalf("expected decir to write to the installed context, got %q", out.String())
	}
}
