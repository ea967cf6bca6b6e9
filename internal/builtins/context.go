// Package builtins implements the standard library table described in
// spec.md §4.5: a process-wide, name-indexed table of host functions
// populated once at interpreter construction and consulted with builtin-first
// precedence at every FunctionCall site.
//
// Built-ins are plain functions of a Context plus an argument vector, rather
// than methods on the evaluator, so the same table can be exercised directly
// from tests without constructing a full evaluator (mirrors the Context
// pattern the teacher interpreter uses to decouple built-ins from the
// interpreter/evaluator split).
package builtins

import (
	"bufio"
	"io"
	"math/rand"
	"os"

	"github.com/cwbudde/vaina/internal/value"
)

// Context supplies the host-facing side effects (I/O, randomness, process
// exit) that built-ins need but must not hardcode, so tests can substitute
// buffers for stdin/stdout/exit.
type Context interface {
	Stdout() io.Writer
	Stdin() *bufio.Reader
	Rand() *rand.Rand
	Exit(code int)
}

// StdContext is the default Context, wired to the real process.
type StdContext struct {
	out io.Writer
	in  *bufio.Reader
	rnd *rand.Rand
}

// NewStdContext builds a Context over out/in, using a random source seeded
// from the global math/rand generator. Passing nil for either stream
// defaults to os.Stdout/os.Stdin.
func NewStdContext(out io.Writer, in io.Reader) *StdContext {
	if out == nil {
		out = os.Stdout
	}
	if in == nil {
		in = os.Stdin
	}
	return &StdContext{
		out: out,
		in:  bufio.NewReader(in),
		rnd: rand.New(rand.NewSource(rand.Int63())),
	}
}

func (c *StdContext) Stdout() io.Writer      { return c.out }
func (c *StdContext) Stdin() *bufio.Reader   { return c.in }
func (c *StdContext) Rand() *rand.Rand       { return c.rnd }
func (c *StdContext) Exit(code int)          { os.Exit(code) }

// Func is a single built-in's implementation.
type Func func(ctx Context, args []value.Value) value.Value

func argError(name string, want, got int) value.Value {
	return value.NewError(value.KindWrongArgCount, "%s expects %d argument(s), got %d", name, want, got)
}
