package token

import "testing"

func TestTypeUniqueness(t *testing.T) {
	types := []Type{ILLEGAL, EOF, NEWLINE, WHITESPACE, IDENT, NUMBER, PERIOD, COMMA}

	seen := make(map[Type]bool)
	for _, tt := range types {
		if tt == "" {
			t.Errorf("found empty token type")
		}
		if seen[tt] {
			t.Errorf("duplicate token type: %v", tt)
		}
		seen[tt] = true
	}
}

func TestToken(t *testing.T) {
	tok := Token{Type: IDENT, Literal: "flour", Line: 3, Column: 5}

	if tok.Type != IDENT {
		t.Errorf("Token.Type = %v, want %v", tok.Type, IDENT)
	}
	if tok.Literal != "flour" {
		t.Errorf("Token.Literal = %v, want %v", tok.Literal, "flour")
	}
	if tok.Line != 3 || tok.Column != 5 {
		t.Errorf("Token position = %d:%d, want 3:5", tok.Line, tok.Column)
	}
}
