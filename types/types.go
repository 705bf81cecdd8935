package types

// Position is a 1-based source location.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SyntaxNode is a read-only handle into a syntax tree produced by an
// external parser. The analysis packages only ever read through this
// interface, so the scorers can run against any tree implementation:
// a tree-sitter parse of real source or a hand-built tree in tests.
//
// Named reports whether the node is a named grammar rule rather than an
// anonymous token; anonymous tokens (keywords, operators, punctuation)
// carry their literal text as their kind.
type SyntaxNode interface {
	Kind() string
	Named() bool
	Start() Position
	// Span returns the node's byte offsets within the file source.
	Span() (start, end int)
	Parent() SyntaxNode
	ChildCount() int
	Child(i int) SyntaxNode
	Text() string
}
