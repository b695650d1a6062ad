// Package lexer tokenizes Chef recipe source text.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/gochef/chef/token"
)

// Lexer scans Chef source text into a stream of tokens. It supports a
// one-token putback buffer so the parser can implement small amounts of
// lookahead without a separate peek-and-rewind protocol for every case.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune

	line, col int

	tokenBuffer []token.Token
}

// New creates a Lexer over input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, col: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	if r == utf8.RuneError {
		r = 0
	}
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	if r == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// NextToken returns the next token in the stream, consuming it.
func (l *Lexer) NextToken() token.Token {
	if len(l.tokenBuffer) > 0 {
		tok := l.tokenBuffer[0]
		l.tokenBuffer = l.tokenBuffer[1:]
		return tok
	}

	if l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		return l.readWhitespace()
	}

	line, col := l.line, l.col

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Line: line, Column: col}
	case l.ch == '\n':
		l.readChar()
		return token.Token{Type: token.NEWLINE, Literal: "\n", Line: line, Column: col}
	case l.ch == '.':
		l.readChar()
		return token.Token{Type: token.PERIOD, Literal: ".", Line: line, Column: col}
	case l.ch == ',':
		l.readChar()
		return token.Token{Type: token.COMMA, Literal: ",", Line: line, Column: col}
	case isDigit(l.ch):
		return l.readNumberOrOrdinal(line, col)
	case isLetter(l.ch):
		return l.readIdentifier(line, col)
	default:
		lit := string(l.ch)
		l.readChar()
		return token.Token{Type: token.ILLEGAL, Literal: lit, Line: line, Column: col}
	}
}

// PeekToken returns the next token without consuming it.
func (l *Lexer) PeekToken() token.Token {
	tok := l.NextToken()
	l.PutBackToken(tok)
	return tok
}

// PutBackToken pushes tok back so the next NextToken call returns it.
func (l *Lexer) PutBackToken(tok token.Token) {
	l.tokenBuffer = append([]token.Token{tok}, l.tokenBuffer...)
}

func (l *Lexer) readWhitespace() token.Token {
	line, col := l.line, l.col
	start := l.position
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
	return token.Token{Type: token.WHITESPACE, Literal: l.input[start:l.position], Line: line, Column: col}
}

func (l *Lexer) readIdentifier(line, col int) token.Token {
	start := l.position
	for isIdentifierChar(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.IDENT, Literal: l.input[start:l.position], Line: line, Column: col}
}

// readNumberOrOrdinal reads a run of digits. If immediately followed by a
// letter (as in the ordinal "2nd"), the whole run including the trailing
// letters is an IDENT; if followed by "." and more digits, it is a decimal
// NUMBER; otherwise it is an integer NUMBER.
func (l *Lexer) readNumberOrOrdinal(line, col int) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
		return token.Token{Type: token.NUMBER, Literal: l.input[start:l.position], Line: line, Column: col}
	}
	if isLetter(l.ch) {
		for isIdentifierChar(l.ch) {
			l.readChar()
		}
		return token.Token{Type: token.IDENT, Literal: l.input[start:l.position], Line: line, Column: col}
	}
	return token.Token{Type: token.NUMBER, Literal: l.input[start:l.position], Line: line, Column: col}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

// isIdentifierChar reports whether ch may continue (not necessarily start)
// a Chef word: letters, digits, and the apostrophes/hyphens that show up in
// ingredient names like "can't" or "well-done".
func isIdentifierChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '\'' || ch == '-'
}
