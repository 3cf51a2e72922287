// Package compiler lowers the transformed AST into Python source text. It
// is a Go port of the original ts2py TS2PyCompiler: the same scoped,
// stack-based state (known types, local classes awaiting hoisting,
// optional-key tracking, overload detection) driving the same per-
// node-kind emission rules, rewritten as a single dispatch over
// internal/ast.Node instead of DHParser's on_<rule> visitor methods.
package compiler

import (
	"fmt"
	"strings"

	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/prettyprinter"
)

// Config mirrors the original's `ts2py.<Option>` settings (internal/config
// loads these from file/flags and hands this struct to New).
type Config struct {
	BaseClassName  string
	ClassDecorator string
	UseEnum        bool
	UseLiteralType bool
	UseTypeUnion   bool
	UseNotRequired bool
}

// Compiler holds all state for a single document compilation. None of it
// survives past Compile returning; reset is called at the start of every
// run so a Compiler value can be reused across files.
type Compiler struct {
	cfg Config

	imports *importSet

	// declared holds every type-level name (interface/type_alias/enum/
	// virtual_enum) anywhere in the document, gathered in a pre-pass so
	// forward references can be told apart from genuinely external names.
	declared map[string]bool
	// seen holds the subset of declared already emitted, in document
	// order, so compileTypeName knows whether a reference needs quoting.
	seen map[string]bool

	// knownTypes is a stack of name sets, pushed on entering a nested
	// scope (namespace/module) and popped on leaving it, mirroring the
	// original's known_types scope stack.
	knownTypes []map[string]bool
	// localClasses holds, per nesting level, the rendered source of
	// anonymous object-type classes that must be hoisted above the
	// class that references them.
	localClasses [][]string
	// objName stack records the name of each enclosing interface while its
	// body is compiled; nothing reads it to derive names.
	objName []string
	// scopeType records whether the enclosing scope is an interface body
	// ("interface") or not (""), the way the original distinguishes
	// method-shorthand declarations from plain variable declarations.
	scopeType []string

	overloadedTypeNames map[string]bool
	funcName            string
	stripTypeFromConst  bool

	typeVarOrder []string
	typeVarSeen  map[string]bool

	diags []*diagnostics.Diagnostic
}

// New returns a Compiler configured per cfg.
func New(cfg Config) *Compiler {
	if cfg.BaseClassName == "" {
		cfg.BaseClassName = "TypedDict"
	}
	c := &Compiler{cfg: cfg}
	c.reset()
	return c
}

func (c *Compiler) reset() {
	c.imports = newImportSet()
	c.declared = map[string]bool{}
	c.seen = map[string]bool{}
	c.knownTypes = []map[string]bool{{}}
	c.localClasses = [][]string{nil}
	c.objName = nil
	c.scopeType = []string{""}
	c.overloadedTypeNames = map[string]bool{}
	c.funcName = ""
	c.stripTypeFromConst = true
	c.typeVarOrder = nil
	c.typeVarSeen = map[string]bool{}
	c.diags = nil
}

func (c *Compiler) diag(d *diagnostics.Diagnostic) { c.diags = append(c.diags, d) }

// Compile lowers a whole `document` node into a complete Python module,
// returning its source text and every diagnostic raised along the way.
func (c *Compiler) Compile(doc *ast.Node) (string, []*diagnostics.Diagnostic) {
	c.reset()
	c.collectDeclared(doc.Children)
	c.markOverloads(doc.Children)

	body := c.emitSequence(doc.Children)

	p := prettyprinter.New()
	p.WriteBlock(strings.TrimRight(c.imports.render(), "\n"))
	if len(c.typeVarOrder) > 0 {
		p.Blank()
		for _, t := range c.typeVarOrder {
			p.WriteLine(fmt.Sprintf("%s = TypeVar(%q)", t, t))
		}
	}
	for _, block := range body {
		p.Blank()
		p.WriteBlock(block)
	}
	return p.String(), c.diags
}

// emitSequence compiles a run of sibling top-level-shaped nodes (the
// document root, or a namespace/module body), hoisting any local classes
// generated while compiling each member immediately above it.
func (c *Compiler) emitSequence(nodes []*ast.Node) []string {
	var out []string
	for _, n := range nodes {
		c.markSeen(n)
		c.localClasses = append(c.localClasses, nil)
		rendered := c.emitTopLevel(n)
		hoisted := c.localClasses[len(c.localClasses)-1]
		c.localClasses = c.localClasses[:len(c.localClasses)-1]
		if len(hoisted) > 0 {
			out = append(out, strings.Join(hoisted, "\n\n"))
		}
		if rendered != "" {
			out = append(out, rendered)
		}
	}
	return out
}

// declaredName returns the declaration-introducing name for a top-level
// node, or "" if the node does not introduce a type-level name.
func declaredName(n *ast.Node) string {
	switch n.Name {
	case ast.Interface, ast.TypeAlias, ast.Enum, ast.VirtualEnum:
		if len(n.Children) > 0 {
			return n.Children[0].Content
		}
	}
	return ""
}

func (c *Compiler) collectDeclared(nodes []*ast.Node) {
	for _, n := range nodes {
		if name := declaredName(n); name != "" {
			c.declared[toTypeName(name)] = true
		}
		if n.Name == ast.Namespace || n.Name == ast.Module {
			c.collectDeclared(n.Children[1:])
		}
	}
}

func (c *Compiler) markSeen(n *ast.Node) {
	if name := declaredName(n); name != "" {
		c.seen[toTypeName(name)] = true
	}
}

// markOverloads flags function names declared more than once at the same
// nesting level, matching mark_overloaded_functions. Only the document's
// top level is scanned. emitFunction then gives every flagged declaration
// its own `@overload` decorator; no singledispatch host or .register
// chain is emitted.
func (c *Compiler) markOverloads(nodes []*ast.Node) {
	counts := map[string]int{}
	for _, n := range nodes {
		if n.Name == ast.Function && len(n.Children) > 0 {
			counts[toVarName(n.Children[0].Content)]++
		}
	}
	for name, count := range counts {
		if count > 1 {
			c.overloadedTypeNames[name] = true
		}
	}
}

func (c *Compiler) emitTopLevel(n *ast.Node) string {
	switch n.Name {
	case ast.Interface:
		return c.emitInterface(n)
	case ast.TypeAlias:
		return c.emitTypeAlias(n)
	case ast.Enum:
		return c.emitEnum(n)
	case ast.VirtualEnum:
		return c.emitVirtualEnum(n)
	case ast.Const:
		return c.emitConst(n)
	case ast.Function:
		return c.emitFunction(n)
	case ast.Namespace:
		return c.emitNamespace(n)
	case ast.Module:
		return c.emitModule(n)
	case ast.Assignment:
		return c.emitAssignment(n)
	default:
		// A bare top-level literal: nothing meaningful to lower, but it
		// consumed no name so it is silently dropped rather than erroring.
		return ""
	}
}
