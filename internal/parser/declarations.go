package parser

import (
	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/token"
)

// parseTypeParamDecl matches `type_parameters := "<" parameter_type
// {"," parameter_type} ">"` at a declaration site (interface/type_alias/
// function), where each parameter may itself carry `extends` and `=`
// clauses — distinct from the type-argument list parsed at a use site
// (types.go's parseTypeNameOrGeneric).
func (p *Parser) parseTypeParamDecl() (*ast.Node, bool) {
	if !p.at(token.LT) {
		return nil, false
	}
	pos := p.advance().Pos
	params := ast.NewNode(ast.TypeParameters, pos)
	for {
		pt, ok := p.parseParameterType()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected type parameter")
			break
		}
		params.Children = append(params.Children, pt)
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
	}
	p.expect(token.GT, diagnostics.ErrP002, "expected '>' to close type parameter list")
	return params, true
}

// parseParameterType matches `parameter_type := identifier [extends_type] ["=" types]`.
// A restricted generic (one with a bound or default) gets flagged: the
// compiler cannot losslessly translate `extends`/`=` clauses into a Python
// TypeVar, so it downgrades to an unbounded TypeVar and records C002.
func (p *Parser) parseParameterType() (*ast.Node, bool) {
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	pos := name.Pos
	node := ast.NewNode(ast.ParameterType, pos, name)
	if _, ok := p.accept(token.EXTENDS); ok {
		bound, ok := p.parseTypes()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected bound after 'extends'")
		} else {
			node.Children = append(node.Children, ast.NewNode(ast.ExtendsType, pos, bound))
			node.SetAttr("restricted", "true")
		}
	}
	if _, ok := p.accept(token.ASSIGN); ok {
		def, ok := p.parseTypes()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected default after '='")
		} else {
			node.Children = append(node.Children, ast.NewNode(ast.EqualsType, pos, def))
			node.SetAttr("restricted", "true")
		}
	}
	return node, true
}

// parseExtends matches `extends := "extends" extends_type {"," extends_type}`.
func (p *Parser) parseExtends() (*ast.Node, bool) {
	if !p.at(token.EXTENDS) {
		return nil, false
	}
	pos := p.advance().Pos
	ext := ast.NewNode(ast.Extends, pos)
	for {
		base, ok := p.parseExtendsType()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected base type after 'extends'")
			break
		}
		ext.Children = append(ext.Children, base)
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
	}
	return ext, true
}

// parseExtendsType matches `extends_type := type_name [type_parameters]`,
// reusing the use-site generic-instantiation parser.
func (p *Parser) parseExtendsType() (*ast.Node, bool) {
	n, ok := p.parseTypeNameOrGeneric()
	if !ok {
		return nil, false
	}
	return ast.NewNode(ast.ExtendsType, n.Pos, n), true
}

// parseQualifiers matches `qualifiers := {"readonly" | "static"}`.
func (p *Parser) parseQualifiers() *ast.Node {
	pos := p.tok().Pos
	q := ast.NewNode(ast.Qualifiers, pos)
	for {
		switch p.tok().Type {
		case token.READONLY:
			tok := p.advance()
			q.Children = append(q.Children, ast.NewLeaf(ast.Readonly, tok.Literal, tok.Pos))
			continue
		case token.STATIC:
			tok := p.advance()
			q.Children = append(q.Children, ast.NewLeaf(ast.Static, tok.Literal, tok.Pos))
			continue
		}
		break
	}
	return q
}

// parseOptional matches `optional := ["?"]`.
func (p *Parser) parseOptional() bool {
	_, ok := p.accept(token.QUESTION)
	return ok
}

// parseArgument matches `argument := identifier optional [":" types]`.
func (p *Parser) parseArgument() (*ast.Node, bool) {
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	pos := name.Pos
	arg := ast.NewNode(ast.Argument, pos, name)
	if p.parseOptional() {
		arg.SetAttr("optional", "true")
	}
	if _, ok := p.accept(token.COLON); ok {
		t, ok := p.parseTypes()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected type after ':' in argument")
		} else {
			arg.Children = append(arg.Children, t)
		}
	}
	return arg, true
}

// parseArgList matches `arg_list := "(" [argument {"," argument}
// ["," "..." argument]] ")"`, the ellipsis marking a rest parameter.
func (p *Parser) parseArgList() (*ast.Node, bool) {
	if !p.at(token.LPAREN) {
		return nil, false
	}
	pos := p.advance().Pos
	list := ast.NewNode(ast.ArgList, pos)
	if !p.at(token.RPAREN) {
		for {
			if _, ok := p.accept(token.ELLIPSIS); ok {
				arg, ok := p.parseArgument()
				if !ok {
					p.errorf(diagnostics.ErrP001, "expected argument after '...'")
					break
				}
				rest := ast.NewNode(ast.ArgTail, arg.Pos, arg)
				list.Children = append(list.Children, rest)
				break
			}
			arg, ok := p.parseArgument()
			if !ok {
				p.errorf(diagnostics.ErrP001, "expected argument")
				break
			}
			list.Children = append(list.Children, arg)
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
		}
	}
	p.expect(token.RPAREN, diagnostics.ErrP002, "expected ')' to close argument list")
	return list, true
}

// parseDeclaration matches `declaration := qualifiers identifier optional
// (":" types | arg_list [":" types])`, covering both plain property and
// method-shorthand members of an interface or declarations_block.
func (p *Parser) parseDeclaration() (*ast.Node, bool) {
	m := p.mark()
	quals := p.parseQualifiers()
	name, ok := p.parseIdentifier()
	if !ok {
		p.reset(m)
		return nil, false
	}
	pos := name.Pos
	opt := p.parseOptional()
	decl := ast.NewNode(ast.Declaration, pos, quals, name)
	if opt {
		decl.SetAttr("optional", "true")
	}
	if p.at(token.LPAREN) {
		args, ok := p.parseArgList()
		if !ok {
			p.reset(m)
			return nil, false
		}
		decl.Children = append(decl.Children, args)
		if _, ok := p.accept(token.COLON); ok {
			ret, ok := p.parseTypes()
			if !ok {
				p.errorf(diagnostics.ErrP001, "expected return type after ':'")
			} else {
				decl.Children = append(decl.Children, ret)
			}
		}
		decl.SetAttr("kind", "method")
		return decl, true
	}
	if _, ok := p.accept(token.COLON); !ok {
		p.reset(m)
		return nil, false
	}
	t, ok := p.parseTypes()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected type after ':' in declaration")
		p.reset(m)
		return nil, false
	}
	decl.Children = append(decl.Children, t)
	decl.SetAttr("kind", "property")
	return decl, true
}

// parseDeclarationsBlock matches `declarations_block := "{" {(declaration |
// index_signature) ";"} "}"`.
func (p *Parser) parseDeclarationsBlock() (*ast.Node, bool) {
	if !p.at(token.LBRACE) {
		return nil, false
	}
	pos := p.advance().Pos
	block := ast.NewNode(ast.DeclarationsBlk, pos)
	for !p.at(token.RBRACE) && !p.atEOF() {
		before := p.mark()
		if sig, ok := p.parseMapOrIndexSignature(); ok {
			block.Children = append(block.Children, sig)
		} else if decl, ok := p.parseDeclaration(); ok {
			block.Children = append(block.Children, decl)
		} else {
			p.errorf(diagnostics.ErrP001, "expected member declaration")
			p.advance()
		}
		p.accept(token.SEMI)
		p.accept(token.COMMA)
		if p.mark() == before {
			p.advance()
		}
	}
	p.expect(token.RBRACE, diagnostics.ErrP002, "expected '}' to close declarations block")
	return block, true
}
