package lexer

import (
	"testing"

	"github.com/cwbudde/vaina/internal/token"
)

func TestNextTokenBasic(t *testing.T) {
	input := `x = 5 + 10 * 2`

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"5", token.NUMBER},
		{"+", token.PLUS},
		{"10", token.NUMBER},
		{"*", token.STAR},
		{"2", token.NUMBER},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywordsBilingual(t *testing.T) {
	input := "si sino mientras para en funcion clase retornar decir fin if else while for in function class return print end"

	l := New(input)
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if tok.Type != token.KEYWORD {
			t.Fatalf("expected %q to lex as KEYWORD, got %s", tok.Literal, tok.Type)
		}
	}
}

func TestPowerOperator(t *testing.T) {
	l := New("2 ** 3")
	_ = l.NextToken() // "2"
	tok := l.NextToken()
	if tok.Type != token.CARET {
		t.Fatalf("expected CARET, got %s", tok.Type)
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"hola\nmundo"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Literal != "hola\nmundo" {
		t.Fatalf("expected escaped newline, got %q", tok.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"hola`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(l.Errors()))
	}
	if l.Errors()[0].Kind != "UnterminatedString" {
		t.Fatalf("expected UnterminatedString, got %s", l.Errors()[0].Kind)
	}
}

func TestInvalidNumber(t *testing.T) {
	l := New("12abc")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 || l.Errors()[0].Kind != "InvalidNumber" {
		t.Fatalf("expected InvalidNumber error, got %+v", l.Errors())
	}
}

// TestContextualYO exercises the 5-rule disambiguation of the bare words
// "y"/"o" between logical connectives and one-letter identifiers.
func TestContextualYO(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  token.Type // type of the "y"/"o" token
	}{
		{"assignment target is identifier", "y = 5", token.IDENT},
		{"preceded by close paren is logical", "(a) y b", token.AND},
		{"followed by open paren is logical", "a y (b)", token.AND},
		{"left window has paren is logical", "(a) y (b)", token.AND},
		{"bare default is identifier", "a y b", token.IDENT},
		{"o as logical between parens", "(a) o (b)", token.OR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			var found *token.Token
			for {
				tok := l.NextToken()
				if tok.Type == token.EOF {
					break
				}
				if tok.Literal == "y" || tok.Literal == "o" {
					found = &tok
					break
				}
			}
			if found == nil {
				t.Fatalf("no y/o token found in %q", tt.input)
			}
			if found.Type != tt.want {
				t.Fatalf("%q: expected %s, got %s", tt.input, tt.want, found.Type)
			}
		})
	}
}

func TestBOMStripped(t *testing.T) {
	l := New("\xEF\xBB\xBFx = 1")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "x" {
		t.Fatalf("expected leading BOM stripped, got %s %q", tok.Type, tok.Literal)
	}
}
