// Package parser implements a PEG-style, ordered-alternative recursive
// descent parser for the TypeScript declaration subset this compiler
// accepts. It is split into per-concern files (types.go, declarations.go,
// literals.go, statements.go) the way cuelang.org/go's cue/parser splits
// parser.go from resolve.go/print.go/interface.go by concern — a
// single-file parser at this grammar's size would not match the corpus's
// texture.
//
// Every rule returns (*ast.Node, bool); false means "did not match here",
// and the caller is expected to rewind the cursor via mark/reset. This is
// the Go equivalent of a PEG combinator library's backtracking, hand-rolled
// the way cue/parser hand-rolls its own recursive descent (errorExpected/
// syncExpr resync on a bad token) instead of reaching for a
// parser-combinator dependency. The teacher codebase has no comparable
// hand-written parser of its own — it reads Go source through go/ast
// (tygorgen/provider/source_provider.go) rather than parsing a bespoke
// grammar — so this stage draws on cue-lang-cue instead.
package parser

import (
	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/lexer"
	"github.com/thelicato/ts2py-go/internal/token"
)

// resumeRules lists, per top-level construct name, the rule: skip forward
// until the next `export` keyword or EOF. This is the Go translation of the
// original's `resume_rules__` regex table, applying the same
// skip-to-next-declaration recovery cue/parser's errorExpected/syncExpr
// pair uses when a field in a list can't be parsed.
var resumeRules = map[string]bool{
	"interface":   true,
	"type_alias":  true,
	"enum":        true,
	"const":       true,
	"declaration": true,
	"assignment":  true,
	"literal":     true,
	"module":      true,
}

// Parser holds the token stream and accumulated diagnostics for one parse.
type Parser struct {
	toks  []token.Token
	pos   int
	diags []*diagnostics.Diagnostic
}

// New tokenizes src and returns a Parser ready to produce a document.
func New(src string) *Parser {
	l := lexer.New(src)
	var toks []token.Token
	for {
		t := l.NextToken()
		toks = append(toks, t)
		if t.Type == token.EOF {
			break
		}
	}
	return &Parser{toks: toks}
}

// Diagnostics returns every diagnostic accumulated during the parse.
func (p *Parser) Diagnostics() []*diagnostics.Diagnostic { return p.diags }

func (p *Parser) tok() token.Token { return p.toks[p.pos] }

func (p *Parser) peek(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) at(t token.Type) bool { return p.tok().Type == t }

func (p *Parser) atEOF() bool { return p.tok().Type == token.EOF }

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) mark() int { return p.pos }

func (p *Parser) reset(m int) { p.pos = m }

// accept consumes and returns the current token if it matches t.
func (p *Parser) accept(t token.Type) (token.Token, bool) {
	if p.at(t) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect consumes the current token if it matches t, else records a
// diagnostic and leaves the cursor in place.
func (p *Parser) expect(t token.Type, code diagnostics.Code, format string, args ...any) (token.Token, bool) {
	if tok, ok := p.accept(t); ok {
		return tok, true
	}
	p.errorf(code, format, args...)
	return token.Token{}, false
}

func (p *Parser) errorf(code diagnostics.Code, format string, args ...any) {
	p.diags = append(p.diags, diagnostics.Newf(code, p.tok().Pos, format, args...))
}

func (p *Parser) warnf(code diagnostics.Code, format string, args ...any) {
	p.diags = append(p.diags, diagnostics.Warningf(code, p.tok().Pos, format, args...))
}

// recover skips forward to the next `export` keyword or EOF. It records no
// diagnostic itself (callers do that first), and neither rule nor the
// resumeRules table changes where it stops.
func (p *Parser) recover(rule string) {
	for !p.atEOF() && !p.at(token.EXPORT) {
		p.advance()
	}
}

// ParseDocument is the grammar's `document` rule / top-level entry point.
func (p *Parser) ParseDocument() *ast.Node {
	pos := p.tok().Pos
	doc := ast.NewNode(ast.Document, pos)
	for !p.atEOF() {
		before := p.mark()
		child, matched := p.parseTopLevelItem()
		if matched {
			if child != nil {
				doc.Children = append(doc.Children, child)
			}
			if p.mark() == before {
				// Safety valve: a rule matched but consumed nothing.
				p.advance()
			}
			continue
		}
		// Nothing matched at all: record an error and resume.
		p.errorf(diagnostics.ErrP001, "unexpected token %q", p.tok().Literal)
		p.recover("document")
		if p.mark() == before && !p.atEOF() {
			p.advance()
		}
	}
	return doc
}

// parseTopLevelItem tries each top-level alternative in the grammar's
// ordered-alternative sequence, left to right, rewinding between attempts.
func (p *Parser) parseTopLevelItem() (*ast.Node, bool) {
	m := p.mark()
	if n, ok := p.parseInterface(); ok {
		return n, true
	}
	p.reset(m)
	if n, ok := p.parseTypeAlias(); ok {
		return n, true
	}
	p.reset(m)
	if n, ok := p.parseVirtualEnum(); ok {
		return n, true
	}
	p.reset(m)
	if n, ok := p.parseNamespace(); ok {
		return n, true
	}
	p.reset(m)
	if n, ok := p.parseEnum(); ok {
		return n, true
	}
	p.reset(m)
	if n, ok := p.parseConst(); ok {
		return n, true
	}
	p.reset(m)
	if n, ok := p.parseModule(); ok {
		return n, true
	}
	p.reset(m)
	if n, ok := p.parseTopLevelAssignment(); ok {
		return n, true
	}
	p.reset(m)
	if n, ok := p.parseTopLevelLiteral(); ok {
		return n, true
	}
	p.reset(m)
	if n, ok := p.parseExportedDeclarationStatement(); ok {
		return n, true
	}
	p.reset(m)
	if n, ok := p.parseExportedFunctionStatement(); ok {
		return n, true
	}
	p.reset(m)
	return nil, false
}

func (p *Parser) parseExportedDeclarationStatement() (*ast.Node, bool) {
	p.accept(token.EXPORT)
	decl, ok := p.parseDeclaration()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.SEMI, diagnostics.ErrP002, "expected ';' after declaration"); !ok {
		return decl, true
	}
	return decl, true
}

func (p *Parser) parseExportedFunctionStatement() (*ast.Node, bool) {
	p.accept(token.EXPORT)
	fn, ok := p.parseFunction()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.SEMI, diagnostics.ErrP002, "expected ';' after function signature"); !ok {
		return fn, true
	}
	return fn, true
}
