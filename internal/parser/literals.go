package parser

import (
	"strings"

	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/token"
)

// parseIdentifier matches `identifier := _part ("." _part)*`. Dotted
// identifiers (qualified names like `a.b.c`, per the original's Namespace
// handling) are joined with "." in Content; the compiler splits on demand.
func (p *Parser) parseIdentifier() (*ast.Node, bool) {
	if !p.at(token.IDENT) {
		return nil, false
	}
	pos := p.tok().Pos
	first := p.advance()
	var b strings.Builder
	b.WriteString(first.Literal)
	for p.at(token.DOT) && p.peek(1).Type == token.IDENT {
		p.advance()
		part := p.advance()
		b.WriteByte('.')
		b.WriteString(part.Literal)
	}
	return ast.NewLeaf(ast.Identifier, b.String(), pos), true
}

// parseQuotedIdentifier matches `quoted_identifier := identifier | '"' ... '"'`,
// used for enum member names that may be quoted.
func (p *Parser) parseQuotedIdentifier() (*ast.Node, bool) {
	if p.at(token.STRING) {
		tok := p.advance()
		return ast.NewLeaf(ast.Identifier, unquote(tok.Literal), tok.Pos), true
	}
	return p.parseIdentifier()
}

func unquote(lit string) string {
	if len(lit) >= 2 {
		return lit[1 : len(lit)-1]
	}
	return lit
}

// parseLiteral matches `literal := integer | number | string | boolean |
// array | object`, the grammar's value-literal production used on the
// right-hand side of const declarations and enum items.
func (p *Parser) parseLiteral() (*ast.Node, bool) {
	pos := p.tok().Pos
	switch p.tok().Type {
	case token.INT:
		tok := p.advance()
		return ast.NewLeaf(ast.Integer, tok.Literal, pos), true
	case token.FLOAT:
		tok := p.advance()
		return ast.NewLeaf(ast.Number, tok.Literal, pos), true
	case token.STRING:
		tok := p.advance()
		return ast.NewLeaf(ast.String, tok.Literal, pos), true
	case token.TRUE, token.FALSE:
		tok := p.advance()
		return ast.NewLeaf(ast.Boolean, tok.Literal, pos), true
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	}
	return nil, false
}

// parseArrayLiteral matches `array := "[" [literal {"," literal}] "]"`.
func (p *Parser) parseArrayLiteral() (*ast.Node, bool) {
	if !p.at(token.LBRACKET) {
		return nil, false
	}
	pos := p.advance().Pos
	arr := ast.NewNode(ast.Array, pos)
	if !p.at(token.RBRACKET) {
		for {
			el, ok := p.parseLiteral()
			if !ok {
				p.errorf(diagnostics.ErrP001, "expected array element literal")
				break
			}
			arr.Children = append(arr.Children, el)
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
		}
	}
	p.expect(token.RBRACKET, diagnostics.ErrP002, "expected ']' to close array literal")
	return arr, true
}

// parseObjectLiteral matches `object := "{" [association {"," association}] "}"`.
func (p *Parser) parseObjectLiteral() (*ast.Node, bool) {
	if !p.at(token.LBRACE) {
		return nil, false
	}
	pos := p.advance().Pos
	obj := ast.NewNode(ast.Object, pos)
	if !p.at(token.RBRACE) {
		for {
			assoc, ok := p.parseAssociation()
			if !ok {
				p.errorf(diagnostics.ErrP001, "expected object property")
				break
			}
			obj.Children = append(obj.Children, assoc)
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
		}
	}
	p.expect(token.RBRACE, diagnostics.ErrP002, "expected '}' to close object literal")
	return obj, true
}

// parseAssociation matches `association := (identifier | string) ":" literal`.
func (p *Parser) parseAssociation() (*ast.Node, bool) {
	var name *ast.Node
	pos := p.tok().Pos
	switch {
	case p.at(token.STRING):
		tok := p.advance()
		name = ast.NewLeaf(ast.Name, unquote(tok.Literal), tok.Pos)
	case p.at(token.IDENT):
		n, _ := p.parseIdentifier()
		name = &ast.Node{Name: ast.Name, Content: n.Content, Pos: n.Pos}
	default:
		return nil, false
	}
	if _, ok := p.expect(token.COLON, diagnostics.ErrP002, "expected ':' in object property"); !ok {
		return nil, false
	}
	val, ok := p.parseLiteral()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected value literal")
		return nil, false
	}
	return ast.NewNode(ast.Association, pos, name, val), true
}

// parseTopLevelAssignment matches a bare `identifier "=" literal ";"`
// statement (a top-level value export with no explicit type annotation).
func (p *Parser) parseTopLevelAssignment() (*ast.Node, bool) {
	ident, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	if _, ok := p.accept(token.ASSIGN); !ok {
		return nil, false
	}
	val, ok := p.parseLiteral()
	if !ok {
		return nil, false
	}
	p.expect(token.SEMI, diagnostics.ErrP002, "expected ';' after assignment")
	pos := ident.Pos
	return ast.NewNode(ast.Assignment, pos, ident, val), true
}

// parseTopLevelLiteral matches a bare `literal ";"`, a degenerate top-level
// statement the grammar still permits (e.g. stray string constants emitted
// by some .d.ts generators).
func (p *Parser) parseTopLevelLiteral() (*ast.Node, bool) {
	m := p.mark()
	lit, ok := p.parseLiteral()
	if !ok {
		p.reset(m)
		return nil, false
	}
	if !p.at(token.SEMI) {
		p.reset(m)
		return nil, false
	}
	p.advance()
	return lit, true
}
