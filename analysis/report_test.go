package analysis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TFMV/codegauge/analysis"
	"github.com/TFMV/codegauge/types"
)

func TestRenderReportSummary(t *testing.T) {
	m := types.ComplexityMetrics{
		Average:             3.4,
		Median:              3,
		Max:                 8,
		Min:                 1,
		MediumComplexity:    2,
		LowComplexity:       5,
		CognitiveComplexity: 12,
		Halstead: types.HalsteadMetrics{
			Vocabulary: 40,
			Length:     120,
			Volume:     638.51,
			Difficulty: 9.5,
			Effort:     6065.85,
			Time:       336.99,
			Bugs:       0.21,
		},
	}

	report := analysis.RenderReport(m)

	assert.True(t, strings.HasPrefix(report, "Code Complexity Report\n======================\n"))
	assert.Contains(t, report, "Average Complexity:   3.4")
	assert.Contains(t, report, "Median Complexity:    3")
	assert.Contains(t, report, "Max Complexity:       8")
	assert.Contains(t, report, "Cognitive Complexity: 12")
	assert.Contains(t, report, "High (>10):    0")
	assert.Contains(t, report, "Medium (6-10): 2")
	assert.Contains(t, report, "Low (1-5):     5")
	assert.Contains(t, report, "Volume:     638.51")
	assert.Contains(t, report, "Time:       337.0s (~5 min)")

	// No function above the breakpoint, so no offender block.
	assert.NotContains(t, report, "Most Complex Files")
}

func TestRenderReportMostComplexFiles(t *testing.T) {
	m := types.ComplexityMetrics{
		Average:        9.0,
		Median:         12,
		Max:            15,
		Min:            3,
		HighComplexity: 2,
		LowComplexity:  1,
		Files: []types.FileComplexity{
			{
				Path:       "src/worst.ts",
				Complexity: 27,
				Functions: []types.FunctionComplexity{
					{Name: "parse", Complexity: 15, Line: 4},
					{Name: "validate", Complexity: 12, Line: 80},
				},
			},
			{
				Path:       "src/fine.ts",
				Complexity: 3,
				Functions: []types.FunctionComplexity{
					{Name: "noop", Complexity: 3, Line: 1},
				},
			},
		},
	}

	report := analysis.RenderReport(m)

	assert.Contains(t, report, "Most Complex Files:")
	assert.Contains(t, report, "  src/worst.ts\n")
	assert.Contains(t, report, "    parse (line 4): 15")
	assert.Contains(t, report, "    validate (line 80): 12")

	// Files and functions at or below the breakpoint stay out.
	assert.NotContains(t, report, "src/fine.ts")
	assert.NotContains(t, report, "noop")
}

func TestRenderReportCapsReportedFiles(t *testing.T) {
	m := types.ComplexityMetrics{HighComplexity: 12, Max: 11}
	for i := 0; i < 12; i++ {
		m.Files = append(m.Files, types.FileComplexity{
			Path:       "src/file.ts",
			Complexity: 11,
			Functions:  []types.FunctionComplexity{{Name: "f", Complexity: 11, Line: 1}},
		})
	}

	report := analysis.RenderReport(m)
	assert.Equal(t, 10, strings.Count(report, "  src/file.ts\n"))
}
