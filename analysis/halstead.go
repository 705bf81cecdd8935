package analysis

import (
	"math"

	"github.com/TFMV/codegauge/expr"
	"github.com/TFMV/codegauge/types"
)

// HalsteadCounter accumulates operator and operand occurrences across an
// entire codebase. Operators are assignment, compound-assignment and
// binary expressions; operands are identifiers, string and numeric
// literals, and property accesses. Uniqueness is tracked by the node's
// source text, so two occurrences rendering identically count as one
// distinct entry.
type HalsteadCounter struct {
	cache *expr.TextCache

	operatorSet   map[string]struct{}
	operandSet    map[string]struct{}
	operatorCount int
	operandCount  int
}

// NewHalsteadCounter creates a counter that interns node text through
// the given cache.
func NewHalsteadCounter(cache *expr.TextCache) *HalsteadCounter {
	return &HalsteadCounter{
		cache:       cache,
		operatorSet: map[string]struct{}{},
		operandSet:  map[string]struct{}{},
	}
}

// AddFile classifies every node of one file tree.
func (h *HalsteadCounter) AddFile(path string, root types.SyntaxNode) {
	Walk(root, func(n types.SyntaxNode) bool {
		if !n.Named() {
			return false
		}
		kind := n.Kind()
		if _, ok := halsteadOperatorKinds[kind]; ok {
			h.operatorSet[h.cache.Text(path, n)] = struct{}{}
			h.operatorCount++
		} else if _, ok := halsteadOperandKinds[kind]; ok {
			h.operandSet[h.cache.Text(path, n)] = struct{}{}
			h.operandCount++
		}
		return true
	})
}

// Metrics derives the Halstead metrics from the accumulated counts.
// Values are kept at full precision; rounding happens only when a report
// is rendered.
func (h *HalsteadCounter) Metrics() types.HalsteadMetrics {
	n1 := len(h.operatorSet)
	n2 := len(h.operandSet)
	N1 := h.operatorCount
	N2 := h.operandCount

	m := types.HalsteadMetrics{
		Vocabulary: n1 + n2,
		Length:     N1 + N2,
	}
	if m.Vocabulary > 0 {
		m.Volume = float64(m.Length) * math.Log2(float64(m.Vocabulary))
	}
	if n2 > 0 {
		m.Difficulty = (float64(n1) / 2.0) * (float64(N2) / float64(n2))
	}
	m.Effort = m.Difficulty * m.Volume
	m.Time = m.Effort / 18
	m.Bugs = m.Volume / 3000
	return m
}
