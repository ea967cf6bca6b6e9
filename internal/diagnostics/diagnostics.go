// Package diagnostics formats lexer/parser/runtime diagnostics with source
// context and a caret indicator, adapted from the teacher's
// internal/errors.CompilerError into the closed Kind taxonomy spec.md §7
// requires (Lex/Parse/Runtime) rather than free-text error strings.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/cwbudde/vaina/internal/token"
)

// Kind is the closed taxonomy of diagnostic categories spec.md §7 names.
type Kind int

const (
	Lex Kind = iota
	Parse
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Lex:
		return "lex error"
	case Parse:
		return "parse error"
	case Runtime:
		return "runtime error"
	default:
		return "error"
	}
}

// Diagnostic is a single reported problem, carrying enough to render a
// source-line-plus-caret view.
type Diagnostic struct {
	Kind    Kind
	Message string
	Pos     token.Position
	File    string
	Source  string
}

// New builds a Diagnostic. Source/File may be left empty and filled in via
// WithSource before Format is called.
func New(kind Kind, pos token.Position, format string, args ...interface{}) Diagnostic {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return Diagnostic{Kind: kind, Message: msg, Pos: pos}
}

// WithSource attaches the original source and file name, enabling
// source-context rendering.
func (d Diagnostic) WithSource(file, source string) Diagnostic {
	d.File = file
	d.Source = source
	return d
}

func (d Diagnostic) Error() string { return d.Format(false) }

// Format renders the diagnostic as a header line, the offending source
// line (if available), and a caret pointing at the column.
func (d Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d: %s\n", d.Kind, d.File, d.Pos.Line, d.Pos.Column, d.Message)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d: %s\n", d.Kind, d.Pos.Line, d.Pos.Column, d.Message)
	}

	line := d.sourceLine(d.Pos.Line)
	if line == "" {
		return strings.TrimRight(sb.String(), "\n")
	}

	prefix := fmt.Sprintf("%4d | ", d.Pos.Line)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteString("\n")

	col := d.Pos.Column
	if col < 1 {
		col = 1
	}
	sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (d Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders multiple diagnostics, each separated by a blank line.
func FormatAll(diags []Diagnostic, color bool) string {
	parts := make([]string, len(diags))
	for i, d := range diags {
		parts[i] = d.Format(color)
	}
	return strings.Join(parts, "\n\n")
}
