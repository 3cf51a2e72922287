package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thelicato/ts2py-go/internal/lexer"
	"github.com/thelicato/ts2py-go/internal/token"
)

func TestNextToken_Punctuation(t *testing.T) {
	input := `interface Foo<T> { a?: string[]; b: (x: number) => void; }`
	want := []token.Type{
		token.INTERFACE, token.IDENT, token.LT, token.IDENT, token.GT,
		token.LBRACE,
		token.IDENT, token.QUESTION, token.COLON, token.IDENT, token.DOTDOT, token.SEMI,
		token.IDENT, token.COLON, token.LPAREN, token.IDENT, token.COLON, token.IDENT, token.RPAREN,
		token.ARROW, token.IDENT, token.SEMI,
		token.RBRACE,
		token.EOF,
	}
	l := lexer.New(input)
	for i, wantType := range want {
		tok := l.NextToken()
		assert.Equalf(t, wantType, tok.Type, "token %d (%q)", i, tok.Literal)
	}
}

func TestNextToken_Comments(t *testing.T) {
	input := "// line comment\nfoo /* block\ncomment */ bar"
	l := lexer.New(input)
	first := l.NextToken()
	assert.Equal(t, token.IDENT, first.Type)
	assert.Equal(t, "foo", first.Literal)
	assert.Equal(t, 2, first.Pos.Line)

	second := l.NextToken()
	assert.Equal(t, "bar", second.Literal)
}

func TestNextToken_Numbers(t *testing.T) {
	l := lexer.New("42 3.14 1e10 -7")
	intTok := l.NextToken()
	assert.Equal(t, token.INT, intTok.Type)
	assert.Equal(t, "42", intTok.Literal)

	floatTok := l.NextToken()
	assert.Equal(t, token.FLOAT, floatTok.Type)
	assert.Equal(t, "3.14", floatTok.Literal)

	expTok := l.NextToken()
	assert.Equal(t, token.FLOAT, expTok.Type)
	assert.Equal(t, "1e10", expTok.Literal)

	negTok := l.NextToken()
	assert.Equal(t, token.INT, negTok.Type)
	assert.Equal(t, "-7", negTok.Literal)
}

func TestNextToken_Strings(t *testing.T) {
	l := lexer.New(`"double" 'single'`)
	a := l.NextToken()
	assert.Equal(t, token.STRING, a.Type)
	assert.Equal(t, `"double"`, a.Literal)

	b := l.NextToken()
	assert.Equal(t, token.STRING, b.Type)
	assert.Equal(t, `'single'`, b.Literal)
}

func TestNextToken_Ellipsis(t *testing.T) {
	l := lexer.New("...rest")
	ell := l.NextToken()
	assert.Equal(t, token.ELLIPSIS, ell.Type)
	rest := l.NextToken()
	assert.Equal(t, token.IDENT, rest.Type)
	assert.Equal(t, "rest", rest.Literal)
}
