package analysis

import "github.com/TFMV/codegauge/types"

// ComputeCognitiveComplexity returns the nesting-weighted complexity of
// one file tree. Every control-flow construct and every && / || scores
// 1 + the current nesting level; control-flow constructs raise the
// nesting level for their children, as do functions nested inside other
// functions. The nesting counter is local to the walk, so per-file
// scores stay independent and sum to the codebase total.
func ComputeCognitiveComplexity(root types.SyntaxNode) int {
	total := 0

	// visit recursively traverses the tree, passing along the current
	// nesting level. The increment/decrement discipline is balanced:
	// sibling subtrees see the same level the node was entered with.
	var visit func(n types.SyntaxNode, nesting int, inFunction bool)
	visit = func(n types.SyntaxNode, nesting int, inFunction bool) {
		if n == nil {
			return
		}

		childNesting := nesting
		childInFunction := inFunction

		if n.Named() {
			kind := n.Kind()
			if _, ok := cognitiveKinds[kind]; ok {
				total += 1 + nesting
				childNesting++
			} else if kind == "binary_expression" && isLogical(n) {
				total += 1 + nesting
			} else if IsFunctionKind(kind) {
				// A function only deepens nesting when it is itself
				// nested inside another function; a top-level function
				// body starts at level 0.
				if inFunction {
					childNesting++
				}
				childInFunction = true
			}
		}

		for i := 0; i < n.ChildCount(); i++ {
			visit(n.Child(i), childNesting, childInFunction)
		}
	}

	visit(root, 0, false)
	return total
}
