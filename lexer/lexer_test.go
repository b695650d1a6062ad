package lexer

import (
	"testing"

	"github.com/gochef/chef/token"
)

func TestNextToken(t *testing.T) {
	input := "Put the mixing bowl. 72.5, done\n"

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.IDENT, "Put"},
		{token.WHITESPACE, " "},
		{token.IDENT, "the"},
		{token.WHITESPACE, " "},
		{token.IDENT, "mixing"},
		{token.WHITESPACE, " "},
		{token.IDENT, "bowl"},
		{token.PERIOD, "."},
		{token.WHITESPACE, " "},
		{token.NUMBER, "72.5"},
		{token.COMMA, ","},
		{token.WHITESPACE, " "},
		{token.IDENT, "done"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("token[%d]: expected type %q, got %q (literal %q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("token[%d]: expected literal %q, got %q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOrdinalsAreIdentifiers(t *testing.T) {
	l := New("2nd mixing bowl")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "2nd" {
		t.Fatalf("expected IDENT \"2nd\", got %q %q", tok.Type, tok.Literal)
	}
}

func TestPutBackToken(t *testing.T) {
	l := New("flour sugar")
	first := l.NextToken()
	l.PutBackToken(first)
	again := l.NextToken()
	if again.Literal != first.Literal {
		t.Fatalf("expected put-back token %q, got %q", first.Literal, again.Literal)
	}
	l.NextToken() // whitespace
	second := l.NextToken()
	if second.Literal != "sugar" {
		t.Fatalf("expected \"sugar\" after put-back, got %q", second.Literal)
	}
}

func TestPeekTokenDoesNotConsume(t *testing.T) {
	l := New("flour")
	peeked := l.PeekToken()
	actual := l.NextToken()
	if peeked.Literal != actual.Literal {
		t.Fatalf("PeekToken() %q did not match subsequent NextToken() %q", peeked.Literal, actual.Literal)
	}
	if l.NextToken().Type != token.EOF {
		t.Fatalf("expected EOF after the single token was consumed once")
	}
}

func TestWhitespaceIsItsOwnToken(t *testing.T) {
	l := New("a  b")
	if tok := l.NextToken(); tok.Literal != "a" {
		t.Fatalf("expected \"a\", got %q", tok.Literal)
	}
	if tok := l.NextToken(); tok.Type != token.WHITESPACE || tok.Literal != "  " {
		t.Fatalf("expected two-space WHITESPACE, got %q %q", tok.Type, tok.Literal)
	}
}

func TestNewlineVariants(t *testing.T) {
	// Chef source is expected to be pre-normalized the way the host reads
	// files; the lexer itself only special-cases "\n".
	l := New("a\nb")
	types := []token.Type{token.IDENT, token.NEWLINE, token.IDENT, token.EOF}
	for i, want := range types {
		if got := l.NextToken().Type; got != want {
			t.Errorf("token[%d]: expected %s, got %s", i, want, got)
		}
	}
}

func TestDecimalVsSentencePeriod(t *testing.T) {
	l := New("3.5 cups.")
	if tok := l.NextToken(); tok.Type != token.NUMBER || tok.Literal != "3.5" {
		t.Fatalf("expected NUMBER 3.5, got %q %q", tok.Type, tok.Literal)
	}
	l.NextToken() // whitespace
	if tok := l.NextToken(); tok.Type != token.IDENT || tok.Literal != "cups" {
		t.Fatalf("expected IDENT cups, got %q %q", tok.Type, tok.Literal)
	}
	if tok := l.NextToken(); tok.Type != token.PERIOD {
		t.Fatalf("expected trailing PERIOD, got %q", tok.Type)
	}
}

func TestApostropheAndHyphenInIdentifier(t *testing.T) {
	l := New("can't well-done")
	if tok := l.NextToken(); tok.Literal != "can't" {
		t.Fatalf("expected \"can't\", got %q", tok.Literal)
	}
	l.NextToken() // whitespace
	if tok := l.NextToken(); tok.Literal != "well-done" {
		t.Fatalf("expected \"well-done\", got %q", tok.Literal)
	}
}
