// Package transformer runs the single, stateless CST-to-AST cleanup pass
// between parsing and compilation. The original DHParser pipeline's
// transformation table is just `{":Text": change_name("TEXT", "")}` — one
// rule renaming anonymous text nodes. Because internal/parser never
// produces DHParser's anonymous ":Text" containers to begin with (it builds
// named nodes directly), this stage's job narrows to one cleanup: dropping
// the empty `qualifiers` node a declaration carries when no readonly/static
// token was present. No other node kind is removed or renamed.
package transformer

import "github.com/thelicato/ts2py-go/internal/ast"

// Transformer applies the cleanup pass. It carries no state between runs,
// matching the original's transformer being a pure, reusable table rather
// than a visitor with its own fields.
type Transformer struct{}

// New returns a ready-to-use Transformer.
func New() *Transformer { return &Transformer{} }

// Run rewrites root in place and returns it, pruning qualifier/attribute
// containers the parser always emits (even when empty) down to nil so the
// compiler's node.Has / node.Child checks see an honest absence.
func (t *Transformer) Run(root *ast.Node) *ast.Node {
	t.visit(root)
	return root
}

func (t *Transformer) visit(n *ast.Node) {
	if n == nil {
		return
	}
	kept := n.Children[:0]
	for _, c := range n.Children {
		if c.Name == ast.Qualifiers && len(c.Children) == 0 {
			continue
		}
		t.visit(c)
		kept = append(kept, c)
	}
	n.Children = kept
}
