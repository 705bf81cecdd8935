package analysis

import "github.com/TFMV/codegauge/types"

// ComputeCyclomaticComplexity returns the McCabe complexity of one
// function-like subtree: 1 for the linear path through the function,
// plus 1 for every decision construct and every short-circuit operator
// (&&, ||, ??) anywhere in the subtree. Branches inside nested functions
// count toward the outer score too; the nested function is additionally
// scored on its own when the file walk reaches it.
func ComputeCyclomaticComplexity(fn types.SyntaxNode) int {
	complexity := 1 // Base complexity
	Walk(fn, func(n types.SyntaxNode) bool {
		if !n.Named() {
			return false
		}
		if _, ok := decisionKinds[n.Kind()]; ok {
			complexity++
		} else if n.Kind() == "binary_expression" && isShortCircuit(n) {
			complexity++
		}
		return true
	})
	return complexity
}

// FunctionName resolves the identifier a function-like node is known by:
// its own name for declarations and methods, or the binding it is
// assigned to for arrow functions and function expressions. Anonymous
// functions are reported as "<anonymous>".
func FunctionName(n types.SyntaxNode) string {
	if n.Kind() != "arrow_function" {
		for i := 0; i < n.ChildCount(); i++ {
			c := n.Child(i)
			if c == nil || !c.Named() {
				continue
			}
			switch c.Kind() {
			case "identifier", "property_identifier":
				return c.Text()
			}
		}
	}

	if p := n.Parent(); p != nil && p.Named() {
		switch p.Kind() {
		case "variable_declarator", "pair", "assignment_expression", "public_field_definition":
			if c := firstNamedChild(p); c != nil {
				return c.Text()
			}
		}
	}

	return "<anonymous>"
}

func firstNamedChild(n types.SyntaxNode) types.SyntaxNode {
	for i := 0; i < n.ChildCount(); i++ {
		if c := n.Child(i); c != nil && c.Named() {
			return c
		}
	}
	return nil
}

// CollectFunctions walks a file tree and scores every function-like node
// it finds, in source order.
func CollectFunctions(root types.SyntaxNode) []types.FunctionComplexity {
	var functions []types.FunctionComplexity
	Walk(root, func(n types.SyntaxNode) bool {
		if !n.Named() {
			return false
		}
		if IsFunctionKind(n.Kind()) {
			pos := n.Start()
			functions = append(functions, types.FunctionComplexity{
				Name:       FunctionName(n),
				Complexity: ComputeCyclomaticComplexity(n),
				Line:       pos.Line,
				Column:     pos.Column,
			})
		}
		return true
	})
	return functions
}
