// Package ast defines the homogeneous, named-node tree shared by the parser,
// the AST transformer and the compiler.
//
// The grammar rule name doubles as the node's semantic tag ("document",
// "interface", "types", "basic_type", ...); compiler.go dispatches on it the
// way the original DHParser-based implementation's Compiler.on_<rule>
// methods do. The teacher codebase's own IR (tygorgen/ir: StructDescriptor,
// EnumDescriptor, AliasDescriptor, ... each a distinct Go type satisfying a
// sealed TypeDescriptor interface with Kind()/TypeName()/Doc()/Src()) takes
// the opposite approach: one struct per construct, dispatched with a type
// switch. That shape fits a schema whose descriptors have genuinely
// different fields; this grammar's own data model is different: every
// node already has a name, ordered children, and an associative attribute
// map regardless of which rule produced it, so a single homogeneous Node
// matches it directly and avoids forty near-identical struct definitions
// for a grammar this shallow, at the cost of losing the teacher's
// compile-time field checking per construct.
package ast

import "github.com/thelicato/ts2py-go/internal/token"

// Well-known node names. Not exhaustive of every grammar rule (literals like
// "+" punctuation never become nodes), but every name the compiler switches
// on lives here so typos are caught at compile time.
const (
	Document        = "document"
	Module          = "module"
	Namespace       = "namespace"
	VirtualEnum     = "virtual_enum"
	Interface       = "interface"
	TypeAlias       = "type_alias"
	Enum            = "enum"
	Const           = "const"
	Declaration     = "declaration"
	Function        = "function"
	Types           = "types"
	TypeNode        = "type"
	BasicType       = "basic_type"
	TypeName        = "type_name"
	GenericType     = "generic_type"
	TypeParameters  = "type_parameters"
	ParameterTypes  = "parameter_types"
	ParameterType   = "parameter_type"
	TypeTuple       = "type_tuple"
	ArrayOf         = "array_of"
	FuncType        = "func_type"
	MappedType      = "mapped_type"
	MapSignature    = "map_signature"
	IndexSignature  = "index_signature"
	Intersection    = "intersection"
	Extends         = "extends"
	ExtendsType     = "extends_type"
	EqualsType      = "equals_type"
	DeclarationsBlk = "declarations_block"
	ArgList         = "arg_list"
	Argument        = "argument"
	ArgTail         = "arg_tail"
	Optional        = "optional"
	Qualifiers      = "qualifiers"
	Readonly        = "readonly"
	Static          = "static"
	Identifier      = "identifier"
	Variable        = "variable"
	Literal         = "literal"
	Integer         = "integer"
	Number          = "number"
	String          = "string"
	Boolean         = "boolean"
	Array           = "array"
	Object          = "object"
	Association     = "association"
	Name            = "name"
	Assignment      = "assignment"
	Item            = "item"
	Text            = "TEXT"
	Zombie          = "ZOMBIE"
	Empty           = "EMPTY"
)

// Node is a tagged, ordered tree node. Content holds the literal text for
// leaf nodes (identifiers, literals); Children holds named or positional
// sub-nodes for interior nodes. Attrs carries string tags the parser sets
// on a node (optional, kind, const, hasType, restricted) for the compiler
// to read.
type Node struct {
	Name     string
	Content  string
	Children []*Node
	Attrs    map[string]string
	Pos      token.Position
}

// NewNode creates a named interior node.
func NewNode(name string, pos token.Position, children ...*Node) *Node {
	return &Node{Name: name, Pos: pos, Children: children}
}

// NewLeaf creates a leaf node carrying literal content.
func NewLeaf(name, content string, pos token.Position) *Node {
	return &Node{Name: name, Content: content, Pos: pos}
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Has reports whether a direct child with the given name exists.
func (n *Node) Has(name string) bool {
	return n.Child(name) != nil
}

// All returns every direct child with the given name, in order.
func (n *Node) All(name string) []*Node {
	var out []*Node
	if n == nil {
		return out
	}
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Select returns every descendant (not just direct children) with the given
// name, depth-first, mirroring DHParser's Node.select used throughout the
// original compiler (e.g. `node.select("type_name")`).
func (n *Node) Select(name string) []*Node {
	var out []*Node
	if n == nil {
		return out
	}
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if c.Name == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// Attr returns an injected attribute, defaulting to def if absent.
func (n *Node) Attr(key, def string) string {
	if n == nil || n.Attrs == nil {
		return def
	}
	if v, ok := n.Attrs[key]; ok {
		return v
	}
	return def
}

// SetAttr injects or overwrites an attribute on the node.
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[key] = value
}

// AppendAttr appends value to the existing attribute value for key,
// starting from "" when the attribute is absent.
func (n *Node) AppendAttr(key, value string) {
	n.SetAttr(key, n.Attr(key, "")+value)
}
