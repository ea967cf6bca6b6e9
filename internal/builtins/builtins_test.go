package builtins

import (
	"bufio"
	"io"
	"math/rand"
	"strings"

	"github.com/cwbudde/vaina/internal/value"
)

// testContext is a deterministic Context for tests: it buffers stdout,
// reads from a fixed stdin, seeds rand predictably, and records the last
// exit code instead of terminating the process.
type testContext struct {
	outBuf   strings.Builder
	in       *bufio.Reader
	rnd      *rand.Rand
	exitCode int
	exited   bool
}

func newTestContext(stdin string) *testContext {
	return &testContext{
		in:  bufio.NewReader(strings.NewReader(stdin)),
		rnd: rand.New(rand.NewSource(1)),
	}
}

func (c *testContext) Stdout() io.Writer { return &c.outBuf }

func (c *testContext) Stdin() *bufio.Reader { return c.in }
func (c *testContext) Rand() *rand.Rand     { return c.rnd }
func (c *testContext) Exit(code int)        { c.exited = true; c.exitCode = code }

var _ Context = (*testContext)(nil)

func isErr(v value.Value) bool { return value.IsError(v) }
