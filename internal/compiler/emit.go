package compiler

import (
	"fmt"
	"strings"

	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/prettyprinter"
)

const indent = "    "

// registerTypeVars handles `type_parameters := "<" parameter_type
// {"," parameter_type} ">"` at a declaration site, emitting one
// module-level `T = TypeVar("T")` per parameter and returning their names.
// A parameter carrying an `extends`/`=` clause cannot be expressed as a
// plain TypeVar; it is downgraded to unbounded and flagged C002 the way
// compile_type_expression's restricted-generic branch does.
func (c *Compiler) registerTypeVars(tp *ast.Node) []string {
	if tp == nil {
		return nil
	}
	var names []string
	for _, param := range tp.Children {
		name := toTypeName(param.Children[0].Content)
		if param.Attr("restricted", "") == "true" {
			c.diag(diagnostics.Warningf(diagnostics.ErrC002, param.Pos,
				"type parameter %q has a bound or default with no Python equivalent; compiled as an unbounded TypeVar", name))
		}
		if !c.typeVarSeen[name] {
			c.typeVarSeen[name] = true
			c.typeVarOrder = append(c.typeVarOrder, name)
			c.imports.use("TypeVar")
		}
		names = append(names, name)
	}
	return names
}

// emitInterface lowers `interface` to a TypedDict subclass (or, when an
// `extends` clause is present, a subclass of its listed bases). Optional
// members are split into a `*Required`/total=False pair unless
// cfg.UseNotRequired asks for inline NotRequired[...] annotations instead.
func (c *Compiler) emitInterface(n *ast.Node) string {
	name := toTypeName(n.Children[0].Content)
	rest := n.Children[1:]

	var typeParams *ast.Node
	var extends *ast.Node
	var block *ast.Node
	for _, ch := range rest {
		switch ch.Name {
		case ast.TypeParameters:
			typeParams = ch
		case ast.Extends:
			extends = ch
		case ast.DeclarationsBlk:
			block = ch
		}
	}
	typeVars := c.registerTypeVars(typeParams)

	c.scopeType = append(c.scopeType, "interface")
	c.objName = append(c.objName, name)
	defer func() {
		c.scopeType = c.scopeType[:len(c.scopeType)-1]
		c.objName = c.objName[:len(c.objName)-1]
	}()

	var bases []string
	if extends != nil {
		for _, e := range extends.Children {
			bases = append(bases, strings.Trim(c.compileAtom(e.Children[0]), `"`))
		}
	} else {
		bases = append(bases, c.cfg.BaseClassName)
		c.imports.useExtra("TypedDict")
	}
	if len(typeVars) > 0 {
		c.imports.use("Generic")
		bases = append(bases, fmt.Sprintf("Generic[%s]", strings.Join(typeVars, ", ")))
		c.diag(diagnostics.Warningf(diagnostics.Unsupported, n.Pos,
			"generic interface %q combines TypedDict and Generic, which CPython's typing module does not support at runtime; emitted as a best-effort approximation", name))
	}

	var required, optional []string
	for _, decl := range block.Children {
		if decl.Name != ast.Declaration {
			continue
		}
		line, isOptional := c.emitDeclarationField(decl)
		if isOptional && !c.cfg.UseNotRequired {
			optional = append(optional, line)
		} else {
			required = append(required, line)
		}
	}

	var b strings.Builder
	if c.cfg.ClassDecorator != "" {
		fmt.Fprintf(&b, "@%s\n", c.cfg.ClassDecorator)
	}
	if len(optional) == 0 {
		fmt.Fprintf(&b, "class %s(%s):\n", name, strings.Join(bases, ", "))
		if len(required) == 0 {
			b.WriteString(indent + "pass\n")
		} else {
			b.WriteString(strings.Join(required, "\n") + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}

	reqName := name + "Required"
	fmt.Fprintf(&b, "class %s(%s):\n", reqName, strings.Join(bases, ", "))
	if len(required) == 0 {
		b.WriteString(indent + "pass\n")
	} else {
		b.WriteString(strings.Join(required, "\n") + "\n")
	}
	b.WriteString("\n\n")
	if c.cfg.ClassDecorator != "" {
		fmt.Fprintf(&b, "@%s\n", c.cfg.ClassDecorator)
	}
	fmt.Fprintf(&b, "class %s(%s, total=False):\n", name, reqName)
	b.WriteString(strings.Join(optional, "\n") + "\n")
	return strings.TrimRight(b.String(), "\n")
}

// emitDeclarationField lowers one `declaration` (property or method
// shorthand) to a TypedDict member line, returning whether it was marked
// optional in the source.
func (c *Compiler) emitDeclarationField(decl *ast.Node) (string, bool) {
	parts := decl.Children
	if len(parts) > 0 && parts[0].Name == ast.Qualifiers {
		parts = parts[1:]
	}
	name := toVarName(parts[0].Content)
	optional := decl.Attr("optional", "") == "true"
	var typ string
	if decl.Attr("kind", "") == "method" {
		args := parts[1]
		var argTypes []string
		for _, a := range args.Children {
			if a.Name == ast.ArgTail {
				argTypes = append(argTypes, "...")
				continue
			}
			if len(a.Children) > 1 {
				argTypes = append(argTypes, c.compileTypes(a.Children[1]))
			} else {
				c.imports.use("Any")
				argTypes = append(argTypes, "Any")
			}
		}
		ret := "None"
		if len(parts) > 2 {
			ret = c.compileTypes(parts[2])
		}
		c.imports.use("Callable")
		typ = fmt.Sprintf("Callable[[%s], %s]", strings.Join(argTypes, ", "), ret)
	} else {
		typ = c.compileTypes(parts[1])
	}
	if optional && c.cfg.UseNotRequired {
		c.imports.useExtra("NotRequired")
		typ = fmt.Sprintf("NotRequired[%s]", typ)
	}
	return fmt.Sprintf("%s%s: %s", indent, name, typ), optional
}

// emitTypeAlias lowers `type_alias` to a plain Python assignment of a type
// expression (`Foo = Union[int, str]`), optionally parameterized via
// TypeVars for a generic alias.
func (c *Compiler) emitTypeAlias(n *ast.Node) string {
	name := toTypeName(n.Children[0].Content)
	rest := n.Children[1:]
	var typeParams, value *ast.Node
	for i, ch := range rest {
		if ch.Name == ast.TypeParameters {
			typeParams = ch
		} else if i == len(rest)-1 {
			value = ch
		}
	}
	c.registerTypeVars(typeParams)
	return fmt.Sprintf("%s = %s", name, c.compileTypes(value))
}

// emitEnum lowers `enum` to an Enum/IntEnum subclass when cfg.UseEnum is
// set, or to a plain class of constants otherwise.
func (c *Compiler) emitEnum(n *ast.Node) string {
	name := toTypeName(n.Children[0].Content)
	return c.emitEnumLike(name, n.Children[1:])
}

// emitVirtualEnum lowers the object-literal-as-enum idiom to the same
// shape an `enum` declaration produces.
func (c *Compiler) emitVirtualEnum(n *ast.Node) string {
	name := toTypeName(n.Children[0].Content)
	return c.emitEnumLike(name, n.Children[1:])
}

func (c *Compiler) emitEnumLike(name string, items []*ast.Node) string {
	allInt := true
	for _, it := range items {
		if len(it.Children) > 1 && it.Children[1].Name != ast.Integer {
			allInt = false
		}
	}

	var b strings.Builder
	if c.cfg.UseEnum {
		base := "Enum"
		if allInt {
			base = "IntEnum"
			c.imports.needsIntEnum = true
		} else {
			c.imports.needsEnum = true
		}
		fmt.Fprintf(&b, "class %s(%s):\n", name, base)
		for i, it := range items {
			member := toVarName(it.Children[0].Content)
			value := fmt.Sprintf("%d", i)
			if len(it.Children) > 1 {
				value = c.renderLiteralValue(it.Children[1])
			}
			fmt.Fprintf(&b, "%s%s = %s\n", indent, member, value)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	fmt.Fprintf(&b, "class %s:\n", name)
	for i, it := range items {
		member := toVarName(it.Children[0].Content)
		value := fmt.Sprintf("%d", i)
		if len(it.Children) > 1 {
			value = c.renderLiteralValue(it.Children[1])
		}
		fmt.Fprintf(&b, "%s%s = %s\n", indent, member, value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// emitConst lowers `const` to a module-level assignment. The type
// annotation is omitted when the source carried none, matching
// stripTypeFromConst: Python type checkers infer a literal's type on
// assignment, so an explicit `Any`/inferred annotation only adds noise.
func (c *Compiler) emitConst(n *ast.Node) string {
	name := toVarName(n.Children[0].Content)
	hasType := n.Attr("hasType", "") == "true"
	var typeNode, valueNode *ast.Node
	if hasType {
		typeNode, valueNode = n.Children[1], n.Children[2]
	} else {
		valueNode = n.Children[1]
	}
	value := c.renderLiteralValue(valueNode)
	if hasType {
		return fmt.Sprintf("%s: %s = %s", name, c.compileTypes(typeNode), value)
	}
	return fmt.Sprintf("%s = %s", name, value)
}

// emitAssignment lowers a bare top-level `identifier "=" literal` statement.
func (c *Compiler) emitAssignment(n *ast.Node) string {
	name := toVarName(n.Children[0].Content)
	return fmt.Sprintf("%s = %s", name, c.renderLiteralValue(n.Children[1]))
}

// emitFunction lowers `function` to a `def` stub whose body is `...`
// (a .pyi-style declaration stub, matching the source being itself a
// declaration-only .d.ts). Every declaration of a name listed in
// overloadedTypeNames is emitted as its own `@overload`-decorated stub;
// no singledispatch registration chain is generated.
func (c *Compiler) emitFunction(n *ast.Node) string {
	name := toVarName(n.Children[0].Content)
	rest := n.Children[1:]
	var typeParams, args, ret *ast.Node
	for i, ch := range rest {
		switch {
		case ch.Name == ast.TypeParameters:
			typeParams = ch
		case ch.Name == ast.ArgList:
			args = ch
		case i == len(rest)-1:
			ret = ch
		}
	}
	c.registerTypeVars(typeParams)

	var params []string
	for _, a := range args.Children {
		if a.Name == ast.ArgTail {
			arg := a.Children[0]
			t := "Any"
			if len(arg.Children) > 1 {
				t = c.compileTypes(arg.Children[1])
			} else {
				c.imports.use("Any")
			}
			params = append(params, fmt.Sprintf("*%s: %s", toVarName(arg.Children[0].Content), t))
			continue
		}
		pname := toVarName(a.Children[0].Content)
		t := "Any"
		if len(a.Children) > 1 {
			t = c.compileTypes(a.Children[1])
		} else {
			c.imports.use("Any")
		}
		if a.Attr("optional", "") == "true" {
			c.imports.use("Optional")
			t = fmt.Sprintf("Optional[%s]", t)
			params = append(params, fmt.Sprintf("%s: %s = None", pname, t))
			continue
		}
		params = append(params, fmt.Sprintf("%s: %s", pname, t))
	}

	var b strings.Builder
	if c.overloadedTypeNames[name] {
		c.imports.use("overload")
		b.WriteString("@overload\n")
	}
	fmt.Fprintf(&b, "def %s(%s) -> %s: ...", name, strings.Join(params, ", "), c.compileTypes(ret))
	return b.String()
}

// emitNamespace lowers `namespace` to a class whose body holds the
// recompiled members, the closest Python analogue to a TS namespace's
// nested-scope-of-declarations semantics.
func (c *Compiler) emitNamespace(n *ast.Node) string {
	name := toTypeName(n.Children[0].Content)
	return c.emitNestedScope(name, n.Children[1:])
}

// emitModule lowers `declare module "name" { ... }` / `declare module Name
// { ... }`. A quoted module name augments an existing (often third-party)
// module and has no Python container to nest into, so its members flatten
// to the top level under an explanatory comment; an identifier name
// behaves like a namespace.
func (c *Compiler) emitModule(n *ast.Node) string {
	nameNode := n.Children[0]
	if nameNode.Name == ast.Name {
		c.diag(diagnostics.Warningf(diagnostics.NotYetImplemented, n.Pos,
			"ambient module augmentation %q has no Python target module; members flattened to top level", nameNode.Content))
		members := c.emitSequence(n.Children[1:])
		if len(members) == 0 {
			return ""
		}
		return fmt.Sprintf("# ambient module %q\n%s", nameNode.Content, strings.Join(members, "\n\n"))
	}
	return c.emitNestedScope(toTypeName(nameNode.Content), n.Children[1:])
}

func (c *Compiler) emitNestedScope(name string, children []*ast.Node) string {
	c.knownTypes = append(c.knownTypes, map[string]bool{})
	defer func() { c.knownTypes = c.knownTypes[:len(c.knownTypes)-1] }()

	members := c.emitSequence(children)
	p := prettyprinter.New()
	p.WriteLine(fmt.Sprintf("class %s:", name))
	p.Indent()
	if len(members) == 0 {
		p.WriteLine("pass")
	} else {
		for i, m := range members {
			if i > 0 {
				p.Blank()
			}
			p.WriteBlock(m)
		}
	}
	p.Dedent()
	return strings.TrimRight(p.String(), "\n")
}

// renderLiteralValue renders a `literal` value node (integer, number,
// string, boolean, array, object) as Python source.
func (c *Compiler) renderLiteralValue(n *ast.Node) string {
	switch n.Name {
	case ast.Integer, ast.Number:
		return n.Content
	case ast.String:
		return fmt.Sprintf("%q", unquoteContent(n.Content))
	case ast.Boolean:
		return strings.ToUpper(n.Content[:1]) + n.Content[1:]
	case ast.Array:
		var parts []string
		for _, el := range n.Children {
			parts = append(parts, c.renderLiteralValue(el))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ast.Object:
		var parts []string
		for _, assoc := range n.Children {
			key := assoc.Children[0].Content
			val := c.renderLiteralValue(assoc.Children[1])
			parts = append(parts, fmt.Sprintf("%q: %s", key, val))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	c.diag(diagnostics.New(diagnostics.ErrC001, n.Pos, "unrecognized literal node "+n.Name))
	return "None"
}
