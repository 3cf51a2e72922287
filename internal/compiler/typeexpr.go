package compiler

import (
	"fmt"
	"strings"

	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
)

// basicTypeSubstitution is the fixed TypeScript-basic-type -> Python
// typing-expression table, ported verbatim from compiler.py's
// TYPE_NAME_SUBSTITUTION.
var basicTypeSubstitution = map[string]string{
	"object":        "Dict",
	"array":         "List",
	"string":        "str",
	"number":        "float",
	"decimal":       "float",
	"integer":       "int",
	"uinteger":      "int",
	"boolean":       "bool",
	"null":          "None",
	"undefined":     "None",
	"void":          "None",
	"unknown":       "Any",
	"any":           "Any",
	"never":         "NoReturn",
	"Thenable":      "Coroutine",
	"Array":         "List",
	"ReadonlyArray": "List",
	"Uint32Array":   "List[int]",
	"Error":         "Exception",
	"RegExp":        "str",
}

// genericBasicSubstitution maps a generic base name used WITH type
// arguments (Array<T>, Record<K, V>, ...) to its typing constructor.
var genericBasicSubstitution = map[string]string{
	"Array":         "List",
	"ReadonlyArray": "List",
	"Record":        "Dict",
	"Map":           "Dict",
	"ReadonlyMap":   "Dict",
	"Set":           "Set",
	"ReadonlySet":   "Set",
	"Promise":       "Coroutine",
	"Thenable":      "Coroutine",
}

// compileTypes compiles a `types`/`intersection`/`type` node (the shapes
// parseTypes can hand back) into a Python type-annotation string.
func (c *Compiler) compileTypes(n *ast.Node) string {
	if n == nil {
		return "Any"
	}
	switch n.Name {
	case ast.Types:
		return c.compileUnion(n.Children)
	case ast.Intersection:
		// Python's structural typing has no intersection operator the
		// original can target; the first operand is used as the closest
		// approximation, matching the P004 warning raised at parse time.
		return c.compileTypes(n.Children[0])
	case ast.TypeNode:
		if len(n.Children) == 0 {
			return "Any"
		}
		return c.compileAtom(n.Children[0])
	default:
		return c.compileAtom(n)
	}
}

// compileUnion renders `types := type {"|" type}`, deduplicating operands
// and folding a "None" branch into Optional[...] the way the original
// collapses `T | undefined` / `T | null` into `Optional[T]`.
func (c *Compiler) compileUnion(terms []*ast.Node) string {
	var parts []string
	seen := map[string]bool{}
	hasNone := false
	for _, t := range terms {
		s := c.compileTypes(t)
		if s == "None" {
			hasNone = true
			continue
		}
		if !seen[s] {
			seen[s] = true
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	var body string
	if len(parts) == 1 {
		body = parts[0]
	} else if c.cfg.UseTypeUnion {
		c.imports.use("Union")
		body = fmt.Sprintf("Union[%s]", strings.Join(parts, ", "))
	} else {
		body = strings.Join(parts, " | ")
	}
	if hasNone {
		c.imports.use("Optional")
		return fmt.Sprintf("Optional[%s]", body)
	}
	return body
}

// compileAtom dispatches on one non-union type term.
func (c *Compiler) compileAtom(n *ast.Node) string {
	switch n.Name {
	case ast.ArrayOf:
		c.imports.use("List")
		return fmt.Sprintf("List[%s]", c.compileTypes(n.Children[0]))
	case ast.BasicType:
		if n.Content == "keyof" {
			c.imports.use("Any")
			c.diag(diagnostics.Warningf(diagnostics.Unsupported, n.Pos, "'keyof' has no direct Python equivalent; compiled as Any"))
			return "Any"
		}
		if py, ok := basicTypeSubstitution[n.Content]; ok {
			head := py
			if idx := strings.IndexByte(py, '['); idx >= 0 {
				head = py[:idx]
			}
			switch head {
			case "Any", "Coroutine", "Dict", "List", "NoReturn":
				c.imports.use(head)
			}
			return py
		}
		return toTypeName(n.Content)
	case ast.TypeName:
		return c.compileTypeName(n.Content)
	case ast.GenericType:
		return c.compileGeneric(n)
	case ast.TypeTuple:
		c.imports.use("Tuple")
		if len(n.Children) == 0 {
			return "Tuple[()]"
		}
		var parts []string
		for _, t := range n.Children {
			parts = append(parts, c.compileTypes(t))
		}
		return fmt.Sprintf("Tuple[%s]", strings.Join(parts, ", "))
	case ast.FuncType:
		return c.compileFuncType(n)
	case ast.MappedType:
		return c.compileMappedType(n)
	case ast.String:
		return c.compileLiteralType(n, fmt.Sprintf("%q", unquoteContent(n.Content)))
	case ast.Integer:
		return c.compileLiteralType(n, n.Content)
	case ast.Boolean:
		title := strings.ToUpper(n.Content[:1]) + n.Content[1:]
		return c.compileLiteralType(n, title)
	}
	c.diag(diagnostics.New(diagnostics.ErrC001, n.Pos, "unrecognized type node "+n.Name))
	return "Any"
}

// compileLiteralType renders a literal used in type position: `Literal[x]`
// when cfg.UseLiteralType is set, else the literal's runtime type.
func (c *Compiler) compileLiteralType(n *ast.Node, rendered string) string {
	if c.cfg.UseLiteralType {
		c.imports.use("Literal")
		return fmt.Sprintf("Literal[%s]", rendered)
	}
	switch n.Name {
	case ast.String:
		return "str"
	case ast.Integer:
		return "int"
	case ast.Boolean:
		return "bool"
	}
	return "Any"
}

func unquoteContent(lit string) string {
	if len(lit) >= 2 && (lit[0] == '"' || lit[0] == '\'') {
		return lit[1 : len(lit)-1]
	}
	return lit
}

// compileTypeName resolves a bare type reference, quoting it as a forward
// reference if its declaration has not been emitted yet in this document
// (compile_type_expression's forward-ref logic).
func (c *Compiler) compileTypeName(raw string) string {
	name := toTypeName(raw)
	if !c.declared[name] {
		return name
	}
	if c.seen[name] {
		return name
	}
	return fmt.Sprintf("%q", name)
}

// compileGeneric renders `generic_type := type_name "<" types {"," types} ">"`.
func (c *Compiler) compileGeneric(n *ast.Node) string {
	base := n.Children[0].Content
	argsNode := n.Children[1]
	var args []string
	for _, a := range argsNode.Children {
		args = append(args, c.compileTypes(a))
	}
	if py, ok := genericBasicSubstitution[base]; ok {
		c.imports.use(py)
		if py == "Dict" && len(args) == 1 {
			c.imports.use("Any")
			args = append(args, "Any")
		}
		return fmt.Sprintf("%s[%s]", py, strings.Join(args, ", "))
	}
	name := c.compileTypeName(base)
	return fmt.Sprintf("%s[%s]", strings.Trim(name, `"`), strings.Join(args, ", "))
}

// compileFuncType renders `func_type := arg_list "=>" types` as
// `Callable[[arg types...], return type]`.
func (c *Compiler) compileFuncType(n *ast.Node) string {
	c.imports.use("Callable")
	argList, ret := n.Children[0], n.Children[1]
	var argTypes []string
	for _, a := range argList.Children {
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
	return fmt.Sprintf("Callable[[%s], %s]", strings.Join(argTypes, ", "), c.compileTypes(ret))
}

// compileMappedType renders `{ [K in keyof T]: V }` and `{ [key: string]: V }`
// as `Dict[KeyType, ValueType]`.
func (c *Compiler) compileMappedType(n *ast.Node) string {
	c.imports.use("Dict")
	sig := n.Children[0]
	switch sig.Name {
	case ast.MapSignature:
		keyType := "str"
		if len(sig.Children) > 1 && sig.Children[1] != nil {
			keyType = c.compileTypes(sig.Children[1])
		}
		valueType := "Any"
		if len(sig.Children) > 2 && sig.Children[2] != nil {
			valueType = c.compileTypes(sig.Children[2])
		} else {
			c.imports.use("Any")
		}
		return fmt.Sprintf("Dict[%s, %s]", keyType, valueType)
	case ast.IndexSignature:
		keyType := c.compileTypes(sig.Children[1])
		valueType := c.compileTypes(sig.Children[2])
		return fmt.Sprintf("Dict[%s, %s]", keyType, valueType)
	}
	c.imports.use("Any")
	return "Dict[str, Any]"
}
