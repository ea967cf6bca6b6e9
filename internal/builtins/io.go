package builtins

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/vaina/internal/value"
)

func registerIO(r *Registry) {
	r.Register(biInput, "input", "leer")
	r.Register(biReadFile, "read_file", "leer_archivo")
	r.Register(biWriteFile, "write_file", "escribir_archivo")
}

// biInput prints an optional prompt without a trailing newline, reads one
// line from stdin, and returns it with the trailing newline stripped
// (spec.md §4.5).
func biInput(ctx Context, args []value.Value) value.Value {
	if len(args) > 1 {
		return value.NewError(value.KindWrongArgCount, "input/leer expects 0 or 1 arguments, got %d", len(args))
	}
	if len(args) == 1 {
		fmt.Fprint(ctx.Stdout(), args[0].String())
	}

	line, err := ctx.Stdin().ReadString('\n')
	if err != nil && line == "" {
		return value.NewError(value.KindBuiltinError, "input/leer: %s", err)
	}
	return value.String(strings.TrimRight(line, "\r\n"))
}

func biReadFile(ctx Context, args []value.Value) value.Value {
	if len(args) != 1 {
		return argError("read_file/leer_archivo", 1, len(args))
	}
	path, ok := args[0].(value.String)
	if !ok {
		return value.NewError(value.KindTypeError, "read_file/leer_archivo expects a string path, got %s", args[0].Type())
	}
	data, err := os.ReadFile(string(path))
	if err != nil {
		return value.NewError(value.KindBuiltinError, "read_file/leer_archivo: %s", err)
	}
	return value.String(string(data))
}

func biWriteFile(ctx Context, args []value.Value) value.Value {
	if len(args) != 2 {
		return argError("write_file/escribir_archivo", 2, len(args))
	}
	path, ok := args[0].(value.String)
	if !ok {
		return value.NewError(value.KindTypeError, "write_file/escribir_archivo expects a string path, got %s", args[0].Type())
	}
	contents, ok := args[1].(value.String)
	if !ok {
		return value.NewError(value.KindTypeError, "write_file/escribir_archivo expects string contents, got %s", args[1].Type())
	}
	if err := os.WriteFile(string(path), []byte(contents), 0o644); err != nil {
		return value.NewError(value.KindBuiltinError, "write_file/escribir_archivo: %s", err)
	}
	return value.Boolean(true)
}
