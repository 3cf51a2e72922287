package parser

import (
	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/token"
)

// parseInterface matches `interface := ["export"] ["declare"] "interface" identifier
// [type_parameters] [extends] declarations_block`.
func (p *Parser) parseInterface() (*ast.Node, bool) {
	m := p.mark()
	p.accept(token.EXPORT)
	p.accept(token.DECLARE)
	if !p.at(token.INTERFACE) {
		p.reset(m)
		return nil, false
	}
	pos := p.advance().Pos
	name, ok := p.parseIdentifier()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected interface name")
		p.reset(m)
		return nil, false
	}
	node := ast.NewNode(ast.Interface, pos, name)
	if tp, ok := p.parseTypeParamDecl(); ok {
		node.Children = append(node.Children, tp)
	}
	if ext, ok := p.parseExtends(); ok {
		node.Children = append(node.Children, ext)
	}
	block, ok := p.parseDeclarationsBlock()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected '{' to open interface body")
		p.reset(m)
		return nil, false
	}
	node.Children = append(node.Children, block)
	return node, true
}

// parseTypeAlias matches `type_alias := ["export"] ["declare"] "type" identifier
// [type_parameters] "=" types ";"`.
func (p *Parser) parseTypeAlias() (*ast.Node, bool) {
	m := p.mark()
	p.accept(token.EXPORT)
	p.accept(token.DECLARE)
	if !p.at(token.TYPE) {
		p.reset(m)
		return nil, false
	}
	pos := p.advance().Pos
	name, ok := p.parseIdentifier()
	if !ok {
		p.reset(m)
		return nil, false
	}
	node := ast.NewNode(ast.TypeAlias, pos, name)
	if tp, ok := p.parseTypeParamDecl(); ok {
		node.Children = append(node.Children, tp)
	}
	if _, ok := p.accept(token.ASSIGN); !ok {
		p.reset(m)
		return nil, false
	}
	val, ok := p.parseTypes()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected type after '=' in type alias")
		p.reset(m)
		return nil, false
	}
	node.Children = append(node.Children, val)
	p.expect(token.SEMI, diagnostics.ErrP002, "expected ';' after type alias")
	return node, true
}

// parseEnum matches `enum := ["export"] ["declare"] ["const"] "enum" identifier "{"
// [item {"," item} [","]] "}"`.
func (p *Parser) parseEnum() (*ast.Node, bool) {
	m := p.mark()
	p.accept(token.EXPORT)
	p.accept(token.DECLARE)
	isConst := false
	if _, ok := p.accept(token.CONST); ok {
		isConst = true
	}
	if !p.at(token.ENUM) {
		p.reset(m)
		return nil, false
	}
	pos := p.advance().Pos
	name, ok := p.parseIdentifier()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected enum name")
		p.reset(m)
		return nil, false
	}
	node := ast.NewNode(ast.Enum, pos, name)
	if isConst {
		node.SetAttr("const", "true")
	}
	if _, ok := p.expect(token.LBRACE, diagnostics.ErrP002, "expected '{' to open enum body"); !ok {
		p.reset(m)
		return nil, false
	}
	for !p.at(token.RBRACE) && !p.atEOF() {
		item, ok := p.parseEnumItem()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected enum member")
			break
		}
		node.Children = append(node.Children, item)
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
	}
	p.expect(token.RBRACE, diagnostics.ErrP002, "expected '}' to close enum body")
	return node, true
}

// parseEnumItem matches `item := quoted_identifier ["=" literal]`.
func (p *Parser) parseEnumItem() (*ast.Node, bool) {
	name, ok := p.parseQuotedIdentifier()
	if !ok {
		return nil, false
	}
	node := ast.NewNode(ast.Item, name.Pos, name)
	if _, ok := p.accept(token.ASSIGN); ok {
		val, ok := p.parseLiteral()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected literal after '=' in enum member")
		} else {
			node.Children = append(node.Children, val)
		}
	}
	return node, true
}

// parseVirtualEnum matches the "object-literal as enum" idiom some .d.ts
// generators emit instead of a real `enum`: `["export"] ["declare"] "const"
// identifier ":" "{" item {"," item} "}" ";"`. A genuine TS enum always
// has a plain "enum" keyword, so this
// alternative only fires for the colon-then-brace shape, never the
// assignment shape parseConst also accepts.
func (p *Parser) parseVirtualEnum() (*ast.Node, bool) {
	m := p.mark()
	p.accept(token.EXPORT)
	p.accept(token.DECLARE)
	if !p.at(token.CONST) {
		p.reset(m)
		return nil, false
	}
	pos := p.advance().Pos
	name, ok := p.parseIdentifier()
	if !ok {
		p.reset(m)
		return nil, false
	}
	if _, ok := p.accept(token.COLON); !ok {
		p.reset(m)
		return nil, false
	}
	if !p.at(token.LBRACE) {
		p.reset(m)
		return nil, false
	}
	p.advance()
	node := ast.NewNode(ast.VirtualEnum, pos, name)
	for !p.at(token.RBRACE) && !p.atEOF() {
		item, ok := p.parseEnumItem()
		if !ok {
			p.reset(m)
			return nil, false
		}
		node.Children = append(node.Children, item)
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
	}
	if _, ok := p.expect(token.RBRACE, diagnostics.ErrP002, "expected '}' to close virtual enum body"); !ok {
		p.reset(m)
		return nil, false
	}
	p.expect(token.SEMI, diagnostics.ErrP002, "expected ';' after virtual enum")
	return node, true
}

// parseConst matches `const := ["export"] ["declare"] "const" identifier [":" types]
// "=" literal ";"`.
func (p *Parser) parseConst() (*ast.Node, bool) {
	m := p.mark()
	p.accept(token.EXPORT)
	p.accept(token.DECLARE)
	if !p.at(token.CONST) {
		p.reset(m)
		return nil, false
	}
	pos := p.advance().Pos
	name, ok := p.parseIdentifier()
	if !ok {
		p.reset(m)
		return nil, false
	}
	node := ast.NewNode(ast.Const, pos, name)
	if _, ok := p.accept(token.COLON); ok {
		t, ok := p.parseTypes()
		if !ok {
			p.errorf(diagnostics.ErrP001, "expected type after ':' in const")
		} else {
			node.SetAttr("hasType", "true")
			node.Children = append(node.Children, t)
		}
	}
	if _, ok := p.expect(token.ASSIGN, diagnostics.ErrP002, "expected '=' in const declaration"); !ok {
		p.reset(m)
		return nil, false
	}
	val, ok := p.parseLiteral()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected literal value for const")
		p.reset(m)
		return nil, false
	}
	node.Children = append(node.Children, val)
	p.expect(token.SEMI, diagnostics.ErrP002, "expected ';' after const declaration")
	return node, true
}

// parseNamespace matches `namespace := ["export"] ["declare"] "namespace" identifier
// "{" {document_item} "}"`, a nested scope whose members are themselves
// top-level-shaped declarations.
func (p *Parser) parseNamespace() (*ast.Node, bool) {
	m := p.mark()
	p.accept(token.EXPORT)
	p.accept(token.DECLARE)
	if !p.at(token.NAMESPACE) {
		p.reset(m)
		return nil, false
	}
	pos := p.advance().Pos
	name, ok := p.parseIdentifier()
	if !ok {
		p.reset(m)
		return nil, false
	}
	if _, ok := p.expect(token.LBRACE, diagnostics.ErrP002, "expected '{' to open namespace body"); !ok {
		p.reset(m)
		return nil, false
	}
	node := ast.NewNode(ast.Namespace, pos, name)
	p.parseNestedBody(node)
	p.expect(token.RBRACE, diagnostics.ErrP002, "expected '}' to close namespace body")
	return node, true
}

// parseModule matches `module := "declare" "module" (identifier | string)
// "{" {document_item} "}"`. Unlike namespace, "declare" is mandatory.
func (p *Parser) parseModule() (*ast.Node, bool) {
	m := p.mark()
	if !p.at(token.DECLARE) {
		return nil, false
	}
	p.advance()
	if !p.at(token.MODULE) {
		p.reset(m)
		return nil, false
	}
	pos := p.advance().Pos
	var name *ast.Node
	if p.at(token.STRING) {
		tok := p.advance()
		name = ast.NewLeaf(ast.Name, unquote(tok.Literal), tok.Pos)
	} else if n, ok := p.parseIdentifier(); ok {
		name = n
	} else {
		p.errorf(diagnostics.ErrP001, "expected module name")
		p.reset(m)
		return nil, false
	}
	if _, ok := p.expect(token.LBRACE, diagnostics.ErrP002, "expected '{' to open module body"); !ok {
		p.reset(m)
		return nil, false
	}
	node := ast.NewNode(ast.Module, pos, name)
	p.parseNestedBody(node)
	p.expect(token.RBRACE, diagnostics.ErrP002, "expected '}' to close module body")
	return node, true
}

// parseNestedBody parses the contents of a namespace/module block: a
// sequence of the same top-level alternatives the document root accepts,
// terminated by '}' instead of EOF.
func (p *Parser) parseNestedBody(parent *ast.Node) {
	for !p.at(token.RBRACE) && !p.atEOF() {
		before := p.mark()
		child, matched := p.parseTopLevelItem()
		if matched {
			if child != nil {
				parent.Children = append(parent.Children, child)
			}
			if p.mark() == before {
				p.advance()
			}
			continue
		}
		p.errorf(diagnostics.ErrP001, "unexpected token %q in nested body", p.tok().Literal)
		for !p.atEOF() && !p.at(token.EXPORT) && !p.at(token.RBRACE) {
			p.advance()
		}
		if p.mark() == before && !p.atEOF() {
			p.advance()
		}
	}
}

// parseFunction matches `function := ["declare"] "function" identifier
// [type_parameters] arg_list ":" types`.
func (p *Parser) parseFunction() (*ast.Node, bool) {
	m := p.mark()
	p.accept(token.DECLARE)
	if !p.at(token.FUNCTION) {
		p.reset(m)
		return nil, false
	}
	pos := p.advance().Pos
	name, ok := p.parseIdentifier()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected function name")
		p.reset(m)
		return nil, false
	}
	node := ast.NewNode(ast.Function, pos, name)
	if tp, ok := p.parseTypeParamDecl(); ok {
		node.Children = append(node.Children, tp)
	}
	args, ok := p.parseArgList()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected argument list in function signature")
		p.reset(m)
		return nil, false
	}
	node.Children = append(node.Children, args)
	if _, ok := p.expect(token.COLON, diagnostics.ErrP002, "expected ':' return type in function signature"); !ok {
		p.reset(m)
		return nil, false
	}
	ret, ok := p.parseTypes()
	if !ok {
		p.errorf(diagnostics.ErrP001, "expected return type")
		p.reset(m)
		return nil, false
	}
	node.Children = append(node.Children, ret)
	return node, true
}
