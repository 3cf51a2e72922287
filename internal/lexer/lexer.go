// Package lexer tokenizes the TypeScript declaration subset this compiler
// accepts. The teacher codebase reads its input through go/ast and go/types
// (tygorgen/provider/source_provider.go), so it has no hand-written
// character scanner of its own to adapt; this stage is instead grounded on
// the pack's other source-to-source compiler, cuelang.org/go's
// cue/scanner.Scanner (ch/offset/rdOffset/lineOffset fields, a next()-style
// character reader feeding a Scan()-style token producer), generalized from
// CUE's token set to TypeScript declaration punctuation.
package lexer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thelicato/ts2py-go/internal/token"
)

// CommentPattern matches `//` line comments and `/* */` block comments.
// internal/preprocessor uses it to mask comments before looking for
// include directives. The lexer's own whitespace skipper scans comments
// by hand and does not use this pattern.
var CommentPattern = regexp.MustCompile(`(?://[^\n]*)|(?:/\*[\s\S]*?\*/)`)

// Lexer turns source text into a stream of tokens.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

// New creates a Lexer over the given (already preprocessed) source text.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) peekAt(offset int) rune {
	pos := l.readPosition
	for i := 0; i < offset-1 && pos < len(l.input); i++ {
		_, w := utf8.DecodeRuneInString(l.input[pos:])
		pos += w
	}
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for unicode.IsSpace(l.ch) {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for !(l.ch == '*' && l.peekChar() == '/') && l.ch != 0 {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar()
				l.readChar()
			}
			continue
		}
		break
	}
}

func (l *Lexer) pos() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

// NextToken returns the next token in the stream, advancing past it.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	pos := l.pos()

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Pos: pos}
	case l.ch == '{':
		l.readChar()
		return token.Token{Type: token.LBRACE, Literal: "{", Pos: pos}
	case l.ch == '}':
		l.readChar()
		return token.Token{Type: token.RBRACE, Literal: "}", Pos: pos}
	case l.ch == '(':
		l.readChar()
		return token.Token{Type: token.LPAREN, Literal: "(", Pos: pos}
	case l.ch == ')':
		l.readChar()
		return token.Token{Type: token.RPAREN, Literal: ")", Pos: pos}
	case l.ch == '[':
		l.readChar()
		if l.ch == ']' {
			l.readChar()
			return token.Token{Type: token.DOTDOT, Literal: "[]", Pos: pos}
		}
		return token.Token{Type: token.LBRACKET, Literal: "[", Pos: pos}
	case l.ch == ']':
		l.readChar()
		return token.Token{Type: token.RBRACKET, Literal: "]", Pos: pos}
	case l.ch == '<':
		l.readChar()
		return token.Token{Type: token.LT, Literal: "<", Pos: pos}
	case l.ch == '>':
		l.readChar()
		return token.Token{Type: token.GT, Literal: ">", Pos: pos}
	case l.ch == ',':
		l.readChar()
		return token.Token{Type: token.COMMA, Literal: ",", Pos: pos}
	case l.ch == ';':
		l.readChar()
		return token.Token{Type: token.SEMI, Literal: ";", Pos: pos}
	case l.ch == ':':
		l.readChar()
		return token.Token{Type: token.COLON, Literal: ":", Pos: pos}
	case l.ch == '?':
		l.readChar()
		return token.Token{Type: token.QUESTION, Literal: "?", Pos: pos}
	case l.ch == '|':
		l.readChar()
		return token.Token{Type: token.PIPE, Literal: "|", Pos: pos}
	case l.ch == '&':
		l.readChar()
		return token.Token{Type: token.AMP, Literal: "&", Pos: pos}
	case l.ch == '=':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.ARROW, Literal: "=>", Pos: pos}
		}
		l.readChar()
		return token.Token{Type: token.ASSIGN, Literal: "=", Pos: pos}
	case l.ch == '.':
		if l.peekChar() == '.' && l.peekAt(2) == '.' {
			l.readChar()
			l.readChar()
			l.readChar()
			return token.Token{Type: token.ELLIPSIS, Literal: "...", Pos: pos}
		}
		l.readChar()
		return token.Token{Type: token.DOT, Literal: ".", Pos: pos}
	case l.ch == '"' || l.ch == '\'':
		return l.readString(pos)
	case unicode.IsDigit(l.ch) || (l.ch == '-' && unicode.IsDigit(l.peekChar())):
		return l.readNumber(pos)
	case isIdentStart(l.ch):
		return l.readIdentOrKeyword(pos)
	default:
		ch := l.ch
		l.readChar()
		return token.Token{Type: token.ILLEGAL, Literal: string(ch), Pos: pos}
	}
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || ch == '$'
}

func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '$'
}

func (l *Lexer) readIdentOrKeyword(pos token.Position) token.Token {
	var b strings.Builder
	for isIdentPart(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	lit := b.String()
	return token.Token{Type: token.LookupIdent(lit), Literal: lit, Pos: pos}
}

func (l *Lexer) readNumber(pos token.Position) token.Token {
	var b strings.Builder
	if l.ch == '-' {
		b.WriteRune(l.ch)
		l.readChar()
	}
	for unicode.IsDigit(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	typ := token.INT
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		typ = token.FLOAT
		b.WriteRune(l.ch)
		l.readChar()
		for unicode.IsDigit(l.ch) {
			b.WriteRune(l.ch)
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		typ = token.FLOAT
		b.WriteRune(l.ch)
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			b.WriteRune(l.ch)
			l.readChar()
		}
		for unicode.IsDigit(l.ch) {
			b.WriteRune(l.ch)
			l.readChar()
		}
	}
	return token.Token{Type: typ, Literal: b.String(), Pos: pos}
}

func (l *Lexer) readString(pos token.Position) token.Token {
	quote := l.ch
	var b strings.Builder
	b.WriteRune(quote)
	l.readChar()
	for l.ch != quote && l.ch != '\n' && l.ch != 0 {
		b.WriteRune(l.ch)
		l.readChar()
	}
	if l.ch == quote {
		b.WriteRune(l.ch)
		l.readChar()
	}
	return token.Token{Type: token.STRING, Literal: b.String(), Pos: pos}
}
