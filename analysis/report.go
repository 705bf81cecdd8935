package analysis

import (
	"fmt"
	"strings"

	"github.com/TFMV/codegauge/types"
)

const (
	// highComplexityLimit is the fixed breakpoint above which a function
	// is reported as a worst offender.
	highComplexityLimit = 10
	// maxReportedFiles caps the "Most Complex Files" block.
	maxReportedFiles = 10
)

// RenderReport turns a metrics snapshot into the human-readable text
// report: summary, distribution, Halstead metrics, and — when any
// function exceeds the high-complexity breakpoint — the worst files with
// their offending functions.
func RenderReport(m types.ComplexityMetrics) string {
	var sb strings.Builder

	sb.WriteString("Code Complexity Report\n")
	sb.WriteString("======================\n\n")
	fmt.Fprintf(&sb, "Average Complexity:   %.1f\n", m.Average)
	fmt.Fprintf(&sb, "Median Complexity:    %d\n", m.Median)
	fmt.Fprintf(&sb, "Max Complexity:       %d\n", m.Max)
	fmt.Fprintf(&sb, "Cognitive Complexity: %d\n", m.CognitiveComplexity)

	sb.WriteString("\nDistribution:\n")
	fmt.Fprintf(&sb, "  High (>10):    %d\n", m.HighComplexity)
	fmt.Fprintf(&sb, "  Medium (6-10): %d\n", m.MediumComplexity)
	fmt.Fprintf(&sb, "  Low (1-5):     %d\n", m.LowComplexity)

	h := m.Halstead
	sb.WriteString("\nHalstead Metrics:\n")
	fmt.Fprintf(&sb, "  Vocabulary: %d\n", h.Vocabulary)
	fmt.Fprintf(&sb, "  Length:     %d\n", h.Length)
	fmt.Fprintf(&sb, "  Volume:     %.2f\n", h.Volume)
	fmt.Fprintf(&sb, "  Difficulty: %.2f\n", h.Difficulty)
	fmt.Fprintf(&sb, "  Effort:     %.2f\n", h.Effort)
	fmt.Fprintf(&sb, "  Time:       %.1fs (~%d min)\n", h.Time, int(h.Time/60))
	fmt.Fprintf(&sb, "  Bugs:       %.2f\n", h.Bugs)

	if m.HighComplexity > 0 {
		sb.WriteString("\nMost Complex Files:\n")
		reported := 0
		for _, file := range m.Files {
			if file.MaxFunctionComplexity() <= highComplexityLimit {
				continue
			}
			if reported == maxReportedFiles {
				break
			}
			fmt.Fprintf(&sb, "  %s\n", file.Path)
			for _, fn := range file.Functions {
				if fn.Complexity > highComplexityLimit {
					fmt.Fprintf(&sb, "    %s (line %d): %d\n", fn.Name, fn.Line, fn.Complexity)
				}
			}
			reported++
		}
	}

	return sb.String()
}
