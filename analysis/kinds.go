package analysis

import "github.com/TFMV/codegauge/types"

// Node kind sets for the tree-sitter JavaScript/TypeScript grammars.
// Kinds a scorer does not recognize are ignored, never an error.

// functionKinds are the function-like nodes scored as functions.
// "function" is the function-expression kind in older grammar revisions.
var functionKinds = map[string]struct{}{
	"function_declaration":           {},
	"function_expression":            {},
	"function":                       {},
	"generator_function_declaration": {},
	"generator_function":             {},
	"arrow_function":                 {},
	"method_definition":              {},
}

// decisionKinds add one decision point each to cyclomatic complexity.
var decisionKinds = map[string]struct{}{
	"if_statement":       {},
	"ternary_expression": {},
	"switch_case":        {},
	"catch_clause":       {},
	"while_statement":    {},
	"do_statement":       {},
	"for_statement":      {},
	"for_in_statement":   {},
	"for_of_statement":   {},
}

// cognitiveKinds score 1 + nesting level and raise the nesting level for
// their children. Note: the whole switch scores once here, while the
// cyclomatic scorer counts its individual case clauses.
var cognitiveKinds = map[string]struct{}{
	"if_statement":       {},
	"ternary_expression": {},
	"switch_statement":   {},
	"for_statement":      {},
	"for_in_statement":   {},
	"for_of_statement":   {},
	"while_statement":    {},
	"do_statement":       {},
	"catch_clause":       {},
}

// halsteadOperatorKinds classify a node as a Halstead operator.
var halsteadOperatorKinds = map[string]struct{}{
	"assignment_expression":           {},
	"augmented_assignment_expression": {},
	"binary_expression":               {},
}

// halsteadOperandKinds classify a node as a Halstead operand.
var halsteadOperandKinds = map[string]struct{}{
	"identifier":        {},
	"string":            {},
	"number":            {},
	"member_expression": {},
}

// IsFunctionKind reports whether kind is a function-like node kind.
func IsFunctionKind(kind string) bool {
	_, ok := functionKinds[kind]
	return ok
}

// binaryOperator returns the operator token of a binary expression
// ("&&", "||", "+", ...), or "" if none is found.
func binaryOperator(n types.SyntaxNode) string {
	for i := 0; i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && !c.Named() {
			return c.Kind()
		}
	}
	return ""
}

// isShortCircuit reports whether n is a &&, || or ?? expression.
func isShortCircuit(n types.SyntaxNode) bool {
	switch binaryOperator(n) {
	case "&&", "||", "??":
		return true
	}
	return false
}

// isLogical reports whether n is a && or || expression. The cognitive
// scorer deliberately excludes ??.
func isLogical(n types.SyntaxNode) bool {
	switch binaryOperator(n) {
	case "&&", "||":
		return true
	}
	return false
}
