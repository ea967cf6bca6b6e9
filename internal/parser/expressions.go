package parser

import (
	"strconv"

	"github.com/cwbudde/vaina/internal/ast"
	"github.com/cwbudde/vaina/internal/token"
)

// Precedence levels, lowest to highest, per spec.md §4.3.
const (
	LOWEST = iota
	OR
	AND
	EQUALITY
	RELATIONAL
	ADDITIVE
	MULTIPLICATIVE
	UNARY
	CALL
)

var precedences = map[token.Type]int{
	token.OR:      OR,
	token.AND:     AND,
	token.EQ:      EQUALITY,
	token.NEQ:     EQUALITY,
	token.LT:      RELATIONAL,
	token.LTE:     RELATIONAL,
	token.GT:      RELATIONAL,
	token.GTE:     RELATIONAL,
	token.PLUS:    ADDITIVE,
	token.MINUS:   ADDITIVE,
	token.STAR:    MULTIPLICATIVE,
	token.SLASH:   MULTIPLICATIVE,
	token.PERCENT: MULTIPLICATIVE,
	token.CARET:   MULTIPLICATIVE,
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return LOWEST
}

// parseExpression is the precedence-climbing entry point. Prefix parsers
// leave p.cur on the first token after the primary, so the operator to
// consider next is p.cur.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for p.cur.Type != token.NEWLINE && p.cur.Type != token.EOF && precedence < p.curPrecedence() {
		left = p.parseInfix(left)
	}

	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur.Type {
	case token.NUMBER:
		return p.parseNumberLiteral()
	case token.STRING:
		tok := p.cur
		p.next()
		return p.parseSuffixes(&ast.Literal{Token: tok, Value: tok.Literal})
	case token.TRUE:
		tok := p.cur
		p.next()
		return &ast.Literal{Token: tok, Value: true}
	case token.FALSE:
		tok := p.cur
		p.next()
		return &ast.Literal{Token: tok, Value: false}
	case token.NULL:
		tok := p.cur
		p.next()
		return &ast.Literal{Token: tok, Value: nil}
	case token.NOT:
		return p.parseUnary()
	case token.MINUS:
		return p.parseUnary()
	case token.LPAREN:
		return p.parseGroupedExpression()
	case token.LBRACKET:
		return p.parseListLiteral()
	case token.LBRACE:
		return p.parseDictLiteral()
	case token.IDENT:
		return p.parseIdentifierOrCall()
	default:
		p.errorf("unexpected token %s (%q)", p.cur.Type, p.cur.Literal)
		p.next() // skip the offending token so parsing keeps making progress
		return nil
	}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf("invalid number literal %q", tok.Literal)
	}
	p.next()
	return p.parseSuffixes(&ast.Literal{Token: tok, Value: v})
}

func (p *Parser) parseUnary() ast.Expression {
	tok := p.cur
	op := tok.Literal
	p.next()
	operand := p.parseExpression(UNARY)
	return &ast.UnaryOp{Token: tok, Op: op, Operand: operand}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.next() // consume '('
	expr := p.parseExpression(LOWEST)
	if p.cur.Type != token.RPAREN {
		p.errorf("expected ')', got %s", p.cur.Type)
	} else {
		p.next()
	}
	return p.parseSuffixes(expr)
}

func (p *Parser) parseListLiteral() ast.Expression {
	tok := p.cur
	p.next() // consume '['

	var elements []ast.Expression
	for p.cur.Type != token.RBRACKET && p.cur.Type != token.EOF {
		elements = append(elements, p.parseExpression(LOWEST))
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	if p.cur.Type == token.RBRACKET {
		p.next()
	}

	return p.parseSuffixes(&ast.List{Token: tok, Elements: elements})
}

func (p *Parser) parseDictLiteral() ast.Expression {
	tok := p.cur
	p.next() // consume '{'

	var pairs []ast.DictPair
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		key := p.parseExpression(LOWEST)
		if p.cur.Type != token.COLON {
			p.errorf("expected ':' in dict literal, got %s", p.cur.Type)
		} else {
			p.next()
		}
		val := p.parseExpression(LOWEST)
		pairs = append(pairs, ast.DictPair{Key: key, Value: val})
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	if p.cur.Type == token.RBRACE {
		p.next()
	}

	return p.parseSuffixes(&ast.Dict{Token: tok, Pairs: pairs})
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	tok := p.cur
	name := tok.Literal
	p.next()

	if p.cur.Type == token.LPAREN {
		args := p.parseCallArguments()
		return p.parseSuffixes(&ast.FunctionCall{Token: tok, Name: name, Arguments: args})
	}

	return p.parseSuffixes(&ast.Variable{Token: tok, Name: name})
}

func (p *Parser) parseCallArguments() []ast.Expression {
	p.next() // consume '('

	var args []ast.Expression
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		args = append(args, p.parseExpression(LOWEST))
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	if p.cur.Type == token.RPAREN {
		p.next()
	}

	return args
}

// parseSuffixes propagates member/index suffixes onto an already-parsed
// primary expression, per spec.md §4.3 ("Primary ... propagates
// member/index suffixes when present").
func (p *Parser) parseSuffixes(expr ast.Expression) ast.Expression {
	for {
		switch p.cur.Type {
		case token.LBRACKET:
			tok := p.cur
			p.next()
			idx := p.parseExpression(LOWEST)
			if p.cur.Type != token.RBRACKET {
				p.errorf("expected ']', got %s", p.cur.Type)
			} else {
				p.next()
			}
			expr = &ast.Index{Token: tok, Object: expr, Idx: idx}
		case token.DOT:
			tok := p.cur
			p.next()
			if p.cur.Type != token.IDENT {
				p.errorf("expected member name after '.', got %s", p.cur.Type)
				return expr
			}
			name := p.cur.Literal
			p.next()
			expr = &ast.MemberAccess{Token: tok, Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	tok := p.cur
	op := tok.Literal

	prec := LOWEST
	if pr, ok := precedences[tok.Type]; ok {
		prec = pr
	}

	p.next()
	right := p.parseExpression(prec)

	return &ast.BinaryOp{Token: tok, Left: left, Op: op, Right: right}
}
