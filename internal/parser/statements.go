package parser

import (
	"github.com/cwbudde/vaina/internal/ast"
	"github.com/cwbudde/vaina/internal/token"
)

// parseStatement dispatches on the first non-newline token, per spec.md
// §4.3's statement grammar.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curIsKeyword("print"):
		return p.parsePrintStatement()
	case p.curIsKeyword("if"):
		return p.parseIfStatement()
	case p.curIsKeyword("while"):
		return p.parseWhileStatement()
	case p.curIsKeyword("for"):
		return p.parseForStatement()
	case p.curIsKeyword("function"):
		return p.parseFunctionDef()
	case p.curIsKeyword("return"):
		return p.parseReturnStatement()
	case p.cur.Type == token.IDENT && p.peek.Type == token.ASSIGN:
		return p.parseAssignment()
	default:
		return p.parseExpressionStatement()
	}
}

// blockTerminated reports whether the block parser should stop before
// consuming the current token, implementing spec.md §4.3's block
// termination rule: EOF, a closing keyword (else/end/function), or — once
// at least one statement has been parsed — an identifier statement that
// isn't continuing this block (an assignment is the only IDENT-led
// statement that keeps extending the current block; a bare identifier or a
// call like `suma(5, 7)` reads as the first statement of the *enclosing*
// scope rather than this block's — spec.md §8 concrete scenario 4).
func (p *Parser) blockTerminated(parsedAny bool) bool {
	if p.cur.Type == token.EOF {
		return true
	}
	if p.curIsKeyword("else") || p.curIsKeyword("end") || p.curIsKeyword("function") {
		return true
	}
	if parsedAny && p.cur.Type == token.IDENT && p.peek.Type != token.ASSIGN {
		return true
	}
	return false
}

// parseBlock parses a greedy sequence of statements, stopping per
// blockTerminated. It never consumes the terminating token itself.
func (p *Parser) parseBlock() []ast.Statement {
	var stmts []ast.Statement

	p.skipNewlines()
	for !p.blockTerminated(len(stmts) > 0) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipNewlines()
	}

	return stmts
}

func (p *Parser) parsePrintStatement() ast.Statement {
	tok := p.cur
	name := tok.Literal // preserves the spelling actually written (decir/print)
	p.next()

	expr := p.parseExpression(LOWEST)

	return &ast.FunctionCall{Token: tok, Name: name, Arguments: []ast.Expression{expr}}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.cur
	p.next()

	cond := p.parseExpression(LOWEST)
	p.consumeOptionalColon()

	thenBody := p.parseBlock()

	var elseBody []ast.Statement
	if p.curIsKeyword("else") {
		p.next()
		p.consumeOptionalColon()
		elseBody = p.parseBlock()
	}

	if p.curIsKeyword("end") {
		p.next()
	}

	return &ast.If{Token: tok, Condition: cond, Then: thenBody, Else: elseBody}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.cur
	p.next()

	cond := p.parseExpression(LOWEST)
	p.consumeOptionalColon()

	body := p.parseBlock()
	if p.curIsKeyword("end") {
		p.next()
	}

	return &ast.While{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.cur
	p.next()

	if p.cur.Type != token.IDENT {
		p.errorf("expected identifier after 'for', got %s", p.cur.Type)
		return nil
	}
	varName := p.cur.Literal
	p.next()

	if !(p.curIsKeyword("in")) {
		p.errorf("expected 'en'/'in' in for statement, got %q", p.cur.Literal)
	} else {
		p.next()
	}

	iterable := p.parseExpression(LOWEST)
	p.consumeOptionalColon()

	// spec.md §4.3: the body of `for` is a single STATEMENT, not a block.
	p.skipNewlines()
	var body []ast.Statement
	if stmt := p.parseStatement(); stmt != nil {
		body = []ast.Statement{stmt}
	}

	return &ast.For{Token: tok, Var: varName, Iterable: iterable, Body: body}
}

func (p *Parser) parseFunctionDef() ast.Statement {
	tok := p.cur
	p.next()

	if p.cur.Type != token.IDENT {
		p.errorf("expected function name, got %s", p.cur.Type)
		return nil
	}
	name := p.cur.Literal
	p.next()

	if p.cur.Type != token.LPAREN {
		p.errorf("expected '(' after function name, got %s", p.cur.Type)
		return nil
	}
	p.next()

	var params []string
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		if p.cur.Type == token.IDENT {
			params = append(params, p.cur.Literal)
			p.next()
		}
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	if p.cur.Type == token.RPAREN {
		p.next()
	}
	p.consumeOptionalColon()

	body := p.parseBlock()
	if p.curIsKeyword("end") {
		p.next()
	}

	return &ast.FunctionDef{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.cur
	p.next()

	if p.cur.Type == token.NEWLINE || p.cur.Type == token.EOF || p.curIsKeyword("end") {
		return &ast.Return{Token: tok, Value: nil}
	}

	val := p.parseExpression(LOWEST)
	return &ast.Return{Token: tok, Value: val}
}

func (p *Parser) parseAssignment() ast.Statement {
	tok := p.cur
	name := p.cur.Literal
	p.next() // consume IDENT
	p.next() // consume '='

	val := p.parseExpression(LOWEST)
	return &ast.Assignment{Token: tok, Name: name, Value: val}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if call, ok := expr.(*ast.FunctionCall); ok {
		return call
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}
