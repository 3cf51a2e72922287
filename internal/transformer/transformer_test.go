package transformer_test

import (
	"testing"

	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/token"
	"github.com/thelicato/ts2py-go/internal/transformer"
)

func TestRun_PrunesEmptyQualifiers(t *testing.T) {
	pos := token.Position{}
	empty := ast.NewNode(ast.Qualifiers, pos)
	name := ast.NewLeaf(ast.Identifier, "x", pos)
	decl := ast.NewNode(ast.Declaration, pos, empty, name)
	root := ast.NewNode(ast.DeclarationsBlk, pos, decl)

	transformer.New().Run(root)

	if len(decl.Children) != 1 {
		t.Fatalf("expected empty qualifiers child to be pruned, got %d children", len(decl.Children))
	}
	if decl.Children[0].Name != ast.Identifier {
		t.Fatalf("expected remaining child to be identifier, got %s", decl.Children[0].Name)
	}
}

func TestRun_KeepsNonEmptyQualifiers(t *testing.T) {
	pos := token.Position{}
	readonly := ast.NewLeaf(ast.Readonly, "readonly", pos)
	quals := ast.NewNode(ast.Qualifiers, pos, readonly)
	name := ast.NewLeaf(ast.Identifier, "x", pos)
	decl := ast.NewNode(ast.Declaration, pos, quals, name)
	root := ast.NewNode(ast.DeclarationsBlk, pos, decl)

	transformer.New().Run(root)

	if len(decl.Children) != 2 {
		t.Fatalf("expected non-empty qualifiers to survive, got %d children", len(decl.Children))
	}
	if decl.Children[0].Name != ast.Qualifiers {
		t.Fatalf("expected first child to remain qualifiers, got %s", decl.Children[0].Name)
	}
}

func TestRun_RecursesIntoNestedChildren(t *testing.T) {
	pos := token.Position{}
	empty := ast.NewNode(ast.Qualifiers, pos)
	name := ast.NewLeaf(ast.Identifier, "x", pos)
	inner := ast.NewNode(ast.Declaration, pos, empty, name)
	block := ast.NewNode(ast.DeclarationsBlk, pos, inner)
	iface := ast.NewNode(ast.Interface, pos, ast.NewLeaf(ast.Identifier, "Foo", pos), block)

	transformer.New().Run(iface)

	if len(inner.Children) != 1 {
		t.Fatalf("expected nested declaration's empty qualifiers to be pruned, got %d children", len(inner.Children))
	}
}

func TestRun_HandlesNilNode(t *testing.T) {
	if got := transformer.New().Run(nil); got != nil {
		t.Fatalf("Run(nil) = %v, want nil", got)
	}
}
