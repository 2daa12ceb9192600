package lexer

import (
	"testing"

	"github.com/questlang/quest/internal/token"
)

func TestNextToken_Basics(t *testing.T) {
	input := `let x = 1 + 2 * (3 - 4) / 5 end`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LET, "let"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.INT, "1"},
		{token.PLUS, "+"},
		{token.INT, "2"},
		{token.STAR, "*"},
		{token.LPAREN, "("},
		{token.INT, "3"},
		{token.MINUS, "-"},
		{token.INT, "4"},
		{token.RPAREN, ")"},
		{token.SLASH, "/"},
		{token.INT, "5"},
		{token.END, "end"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("test %d: expected type %s, got %s (%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("test %d: expected literal %q, got %q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_StringEscapes(t *testing.T) {
	input := `"a\nb\tc\\d\"e"`
	l := New(input)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	expected := "a\nb\tc\\d\"e"
	if tok.Literal != expected {
		t.Fatalf("expected %q, got %q", expected, tok.Literal)
	}
}

func TestNextToken_NumericPrefixes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0x1F", "0x1F"},
		{"0b1010", "0b1010"},
		{"0o17", "0o17"},
		{"1_000_000", "1_000_000"},
		{"1.5e10", "1.5e10"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Literal != tt.expected {
			t.Errorf("input %q: expected literal %q, got %q", tt.input, tt.expected, tok.Literal)
		}
	}
}

func TestNextToken_LineComment(t *testing.T) {
	input := "let x = 1 // this is ignored\nlet y = 2"
	l := New(input)
	var types []token.Type
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		types = append(types, tok.Type)
	}
	expected := []token.Type{token.LET, token.IDENT, token.ASSIGN, token.INT, token.LET, token.IDENT, token.ASSIGN, token.INT}
	if len(types) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(types))
	}
	for i, typ := range expected {
		if types[i] != typ {
			t.Errorf("token %d: expected %s, got %s", i, typ, types[i])
		}
	}
}

func TestPeek_DoesNotConsume(t *testing.T) {
	l := New("a b c")
	first := l.Peek(0)
	if first.Literal != "a" {
		t.Fatalf("expected peek(0) = a, got %q", first.Literal)
	}
	second := l.Peek(1)
	if second.Literal != "b" {
		t.Fatalf("expected peek(1) = b, got %q", second.Literal)
	}
	tok := l.NextToken()
	if tok.Literal != "a" {
		t.Fatalf("expected next token a, got %q", tok.Literal)
	}
}

func TestSaveRestoreState(t *testing.T) {
	l := New("a b c")
	l.NextToken() // a
	state := l.SaveState()
	l.NextToken() // b
	l.RestoreState(state)
	tok := l.NextToken()
	if tok.Literal != "b" {
		t.Fatalf("expected restored token b, got %q", tok.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatal("expected an unterminated string error")
	}
}

func TestLineColumnTracking(t *testing.T) {
	l := New("let\nx = 1")
	l.NextToken() // let
	tok := l.NextToken() // x, should be on line 2
	if tok.Pos.Line != 2 {
		t.Fatalf("expected line 2, got %d", tok.Pos.Line)
	}
}
