package analysis

import "github.com/TFMV/codegauge/types"

// Walk traverses the tree rooted at n in depth-first pre-order, visiting
// every node exactly once in source order. If fn returns false the
// node's children are skipped. Walk keeps no state between calls and
// does not recover panics raised by fn.
func Walk(n types.SyntaxNode, fn func(types.SyntaxNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for i := 0; i < n.ChildCount(); i++ {
		Walk(n.Child(i), fn)
	}
}
