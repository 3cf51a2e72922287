package ast_test

import (
	"testing"

	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/token"
)

func TestNode_ChildAndHas(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}
	name := ast.NewLeaf(ast.Identifier, "Foo", pos)
	block := ast.NewNode(ast.DeclarationsBlk, pos)
	iface := ast.NewNode(ast.Interface, pos, name, block)

	if !iface.Has(ast.DeclarationsBlk) {
		t.Fatalf("expected interface to have a declarations_block child")
	}
	if got := iface.Child(ast.Identifier); got.Content != "Foo" {
		t.Fatalf("Child(identifier) = %q, want Foo", got.Content)
	}
	if iface.Child(ast.Enum) != nil {
		t.Fatalf("Child(enum) should be nil")
	}
}

func TestNode_SelectIsDepthFirst(t *testing.T) {
	pos := token.Position{}
	inner := ast.NewLeaf(ast.TypeName, "Bar", pos)
	outer := ast.NewNode(ast.GenericType, pos, ast.NewLeaf(ast.TypeName, "Outer", pos),
		ast.NewNode(ast.TypeParameters, pos, ast.NewNode(ast.TypeNode, pos, inner)))

	found := outer.Select(ast.TypeName)
	if len(found) != 2 {
		t.Fatalf("Select(type_name) = %d nodes, want 2", len(found))
	}
	if found[0].Content != "Outer" || found[1].Content != "Bar" {
		t.Fatalf("unexpected order: %v", found)
	}
}

func TestNode_AttrDefaultAndAppend(t *testing.T) {
	n := &ast.Node{Name: ast.Interface}
	if got := n.Attr("preface", ""); got != "" {
		t.Fatalf("Attr default = %q, want empty", got)
	}
	n.AppendAttr("preface", "a")
	n.AppendAttr("preface", "b")
	if got := n.Attr("preface", ""); got != "ab" {
		t.Fatalf("AppendAttr accumulated = %q, want ab", got)
	}
}
