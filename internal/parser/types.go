package parser

import (
	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/token"
)

// parseTypes matches `types := type {"|" type}`, the union production. A
// single term is returned unwrapped; two or more are wrapped in a Types
// node so the compiler can tell "T" from "T | U" without re-counting
// children.
func (p *Parser) parseTypes() (*ast.Node, bool) {
	pos := p.tok().Pos
	first, ok := p.parseIntersection()
	if !ok {
		return nil, false
	}
	if !p.at(token.PIPE) {
		return first, true
	}
	union := ast.NewNode(ast.Types, pos, first)
	for {
		if _, ok := p.accept(token.PIPE); !ok {
			break
		}
		next, ok := p.parseIntersection()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected type after '|'")
			break
		}
		union.Children = append(union.Children, next)
	}
	return union, true
}

// parseIntersection matches `intersection := type {"&" type}`.
func (p *Parser) parseIntersection() (*ast.Node, bool) {
	pos := p.tok().Pos
	first, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if !p.at(token.AMP) {
		return first, true
	}
	p.warnf(diagnostics.ErrP004, "intersection types are approximated as the first operand")
	inter := ast.NewNode(ast.Intersection, pos, first)
	for {
		if _, ok := p.accept(token.AMP); !ok {
			break
		}
		next, ok := p.parseType()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected type after '&'")
			break
		}
		inter.Children = append(inter.Children, next)
	}
	return inter, true
}

// parseType matches one type term, then applies any trailing `[]` array
// suffixes (array_of), matching the grammar's postfix-array production.
func (p *Parser) parseType() (*ast.Node, bool) {
	pos := p.tok().Pos
	base, ok := p.parseTypeAtom()
	if !ok {
		return nil, false
	}
	node := ast.NewNode(ast.TypeNode, pos, base)
	for {
		if _, ok := p.accept(token.DOTDOT); ok {
			node = ast.NewNode(ast.ArrayOf, pos, node)
			continue
		}
		break
	}
	return node, true
}

func (p *Parser) parseTypeAtom() (*ast.Node, bool) {
	switch p.tok().Type {
	case token.LPAREN:
		if n, ok := p.tryFuncType(); ok {
			return n, true
		}
		return p.parseParenthesizedTypes()
	case token.LBRACKET:
		return p.parseTypeTuple()
	case token.LBRACE:
		return p.parseMappedType()
	case token.KEYOF:
		return p.parseKeyofType()
	case token.IDENT:
		return p.parseTypeNameOrGeneric()
	case token.STRING:
		tok := p.advance()
		return ast.NewLeaf(ast.String, tok.Literal, tok.Pos), true
	case token.INT:
		tok := p.advance()
		return ast.NewLeaf(ast.Integer, tok.Literal, tok.Pos), true
	case token.TRUE, token.FALSE:
		tok := p.advance()
		return ast.NewLeaf(ast.Boolean, tok.Literal, tok.Pos), true
	}
	return nil, false
}

func (p *Parser) parseKeyofType() (*ast.Node, bool) {
	pos := p.advance().Pos // consume `keyof`
	operand, ok := p.parseType()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected type after 'keyof'")
		return nil, false
	}
	n := ast.NewNode(ast.BasicType, pos, operand)
	n.Content = "keyof"
	return n, true
}

// parseParenthesizedTypes matches `"(" types ")"`.
func (p *Parser) parseParenthesizedTypes() (*ast.Node, bool) {
	if !p.at(token.LPAREN) {
		return nil, false
	}
	p.advance()
	inner, ok := p.parseTypes()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected type inside parentheses")
		return nil, false
	}
	p.expect(token.RPAREN, diagnostics.ErrP002, "expected ')' to close parenthesized type")
	return inner, true
}

// tryFuncType speculatively parses `func_type := arg_list "=>" types`,
// backtracking if the arrow is absent (so "(x: number)" alone still falls
// through to the parenthesized-types alternative).
func (p *Parser) tryFuncType() (*ast.Node, bool) {
	m := p.mark()
	pos := p.tok().Pos
	args, ok := p.parseArgList()
	if !ok || !p.at(token.ARROW) {
		p.reset(m)
		return nil, false
	}
	p.advance()
	ret, ok := p.parseTypes()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected return type after '=>'")
		p.reset(m)
		return nil, false
	}
	return ast.NewNode(ast.FuncType, pos, args, ret), true
}

// parseTypeNameOrGeneric matches `type_name ["<" types {"," types} ">"]`.
// Bare lowercase names from the basic-type substitution table (object,
// string, number, ...) are tagged BasicType so the compiler's lookup is a
// single switch instead of a second identifier comparison.
func (p *Parser) parseTypeNameOrGeneric() (*ast.Node, bool) {
	ident, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	nameNode := ast.NewLeaf(ast.TypeName, ident.Content, ident.Pos)
	if !p.at(token.LT) {
		if isBasicTypeName(ident.Content) {
			return ast.NewLeaf(ast.BasicType, ident.Content, ident.Pos), true
		}
		return nameNode, true
	}
	p.advance()
	params := ast.NewNode(ast.TypeParameters, ident.Pos)
	if !p.at(token.GT) {
		for {
			t, ok := p.parseTypes()
			if !ok {
				p.errorf(diagnostics.ErrP001, "expected type argument")
				break
			}
			params.Children = append(params.Children, t)
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
		}
	}
	p.expect(token.GT, diagnostics.ErrP002, "expected '>' to close type arguments")
	return ast.NewNode(ast.GenericType, ident.Pos, nameNode, params), true
}

var basicTypeNames = map[string]bool{
	"object": true, "array": true, "string": true, "number": true,
	"decimal": true, "integer": true, "uinteger": true, "boolean": true,
	"null": true, "undefined": true, "void": true, "unknown": true,
	"any": true, "Thenable": true, "Array": true, "ReadonlyArray": true,
	"Uint32Array": true, "Error": true, "RegExp": true, "never": true,
}

func isBasicTypeName(name string) bool { return basicTypeNames[name] }

// parseTypeTuple matches `type_tuple := "[" [types {"," types}] "]"`.
func (p *Parser) parseTypeTuple() (*ast.Node, bool) {
	if !p.at(token.LBRACKET) {
		return nil, false
	}
	pos := p.advance().Pos
	tup := ast.NewNode(ast.TypeTuple, pos)
	if !p.at(token.RBRACKET) {
		for {
			t, ok := p.parseTypes()
			if !ok {
				p.errorf(diagnostics.ErrP001, "expected type in tuple")
				break
			}
			tup.Children = append(tup.Children, t)
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
		}
	}
	p.expect(token.RBRACKET, diagnostics.ErrP002, "expected ']' to close tuple type")
	return tup, true
}

// parseMappedType matches `mapped_type := "{" (map_signature | index_signature) "}"`,
// covering both `{ [K in keyof T]: V }` and `{ [key: string]: V }` forms.
func (p *Parser) parseMappedType() (*ast.Node, bool) {
	if !p.at(token.LBRACE) {
		return nil, false
	}
	pos := p.advance().Pos
	if sig, ok := p.parseMapOrIndexSignature(); ok {
		p.expect(token.RBRACE, diagnostics.ErrP002, "expected '}' to close mapped type")
		return ast.NewNode(ast.MappedType, pos, sig), true
	}
	p.errorf(diagnostics.ErrP001, "expected mapped- or index-signature inside '{'")
	return nil, false
}

func (p *Parser) parseMapOrIndexSignature() (*ast.Node, bool) {
	if !p.at(token.LBRACKET) {
		return nil, false
	}
	pos := p.advance().Pos
	key, ok := p.parseIdentifier()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected key identifier in signature")
		return nil, false
	}
	switch p.tok().Type {
	case token.IN:
		p.advance()
		domain, ok := p.parseTypes()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected type after 'in'")
			return nil, false
		}
		p.expect(token.RBRACKET, diagnostics.ErrP002, "expected ']' to close map signature")
		var value *ast.Node
		if _, ok := p.accept(token.COLON); ok {
			value, _ = p.parseTypes()
		}
		return ast.NewNode(ast.MapSignature, pos, key, domain, value), true
	case token.COLON:
		p.advance()
		keyType, ok := p.parseTypes()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected key type in index signature")
			return nil, false
		}
		p.expect(token.RBRACKET, diagnostics.ErrP002, "expected ']' to close index signature")
		p.expect(token.COLON, diagnostics.ErrP002, "expected ':' after index signature")
		valueType, ok := p.parseTypes()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected value type in index signature")
			return nil, false
		}
		return ast.NewNode(ast.IndexSignature, pos, key, keyType, valueType), true
	}
	p.errorf(diagnostics.ErrP001, "expected 'in' or ':' in bracketed signature")
	return nil, false
}
