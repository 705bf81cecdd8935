package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/TFMV/codegauge/types"
)

// node adapts a tree-sitter node to types.SyntaxNode. The wrapper keeps
// a reference to the file source so Text can slice the node's span; the
// owning FileTree must stay open while nodes are in use.
type node struct {
	inner *sitter.Node
	src   []byte
}

func wrapNode(n *sitter.Node, src []byte) types.SyntaxNode {
	if n == nil {
		return nil
	}
	return node{inner: n, src: src}
}

func (nd node) Kind() string {
	return nd.inner.Type()
}

func (nd node) Named() bool {
	return nd.inner.IsNamed()
}

func (nd node) Start() types.Position {
	p := nd.inner.StartPoint()
	// tree-sitter points are 0-based
	return types.Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}

func (nd node) Span() (int, int) {
	return int(nd.inner.StartByte()), int(nd.inner.EndByte())
}

func (nd node) Parent() types.SyntaxNode {
	return wrapNode(nd.inner.Parent(), nd.src)
}

func (nd node) ChildCount() int {
	return int(nd.inner.ChildCount())
}

func (nd node) Child(i int) types.SyntaxNode {
	return wrapNode(nd.inner.Child(i), nd.src)
}

func (nd node) Text() string {
	return nd.inner.Content(nd.src)
}
