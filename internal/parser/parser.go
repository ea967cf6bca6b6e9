// Package parser implements the recursive-descent, precedence-climbing
// parser described in spec.md §4.3: token stream in, *ast.Program out.
package parser

import (
	"fmt"

	"github.com/cwbudde/vaina/internal/ast"
	"github.com/cwbudde/vaina/internal/lexer"
	"github.com/cwbudde/vaina/internal/token"
)

// Parse diagnostic kinds, per spec.md §7's closed Parse taxonomy.
const (
	KindUnexpectedToken = "UnexpectedToken"
	KindUnexpectedEOF   = "UnexpectedEof"
)

// ParseError is a single parse diagnostic, carrying the offending token's
// position for the caller to render with source context.
type ParseError struct {
	Kind    string
	Message string
	Pos     token.Position
}

// Parser walks a lexer's token stream (with one token of lookahead)
// producing an *ast.Program.
type Parser struct {
	l      *lexer.Lexer
	errors []ParseError

	cur  token.Token
	peek token.Token
}

// New creates a Parser over l, priming the current/peek token pair.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

// Errors returns every parse diagnostic accumulated so far.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// errorf records a parse diagnostic at the current token. The token in
// hand at the point of failure is always either EOF (the source ran out
// mid-construct) or some other unexpected token, so the Kind is derived
// from p.cur rather than threaded through every call site.
func (p *Parser) errorf(format string, args ...interface{}) {
	kind := KindUnexpectedToken
	if p.cur.Type == token.EOF {
		kind = KindUnexpectedEOF
	}
	p.errors = append(p.errors, ParseError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: p.cur.Pos})
}

// skipNewlines consumes zero or more NEWLINE tokens (statements are
// separated freely by newlines, per spec.md §4.3).
func (p *Parser) skipNewlines() {
	for p.cur.Type == token.NEWLINE || p.cur.Type == token.COMMENT {
		p.next()
	}
}

// curIsKeyword reports whether the current token is KEYWORD and its
// canonical spelling matches name (e.g. "if", "else", "end", "function").
func (p *Parser) curIsKeyword(name string) bool {
	return p.cur.Type == token.KEYWORD && token.Canonical[p.cur.Literal] == name
}

// consumeOptionalColon consumes a trailing ':' if present, per the `[":"]`
// optional marker in spec.md §4.3's statement grammar.
func (p *Parser) consumeOptionalColon() {
	if p.cur.Type == token.COLON {
		p.next()
	}
}

// ParseProgram parses the full token stream into a Program, consuming
// newlines freely between top-level statements.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	p.skipNewlines()
	for p.cur.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.skipNewlines()
	}

	return program
}
