package analysis

import (
	"fmt"
	"strings"

	"github.com/TFMV/codegauge/types"
)

// ThresholdError is the structured failure returned when aggregate
// metrics exceed the configured limits. It carries every violation plus
// the full rendered report, so a failing build step is diagnostic by
// default.
type ThresholdError struct {
	Violations []string
	Report     string
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("complexity thresholds exceeded:\n  - %s\n\n%s",
		strings.Join(e.Violations, "\n  - "), e.Report)
}

// CheckThresholds compares the aggregated metrics against the given
// limits. Checks run in fixed order (average, max, cognitive) and all
// comparisons are strict, so a metric exactly at its limit passes. Every
// violation is accumulated before deciding; on failure the returned
// error is a *ThresholdError.
func CheckThresholds(m types.ComplexityMetrics, t types.ComplexityThresholds) error {
	var violations []string

	if m.Average > t.MaxAverage {
		violations = append(violations,
			fmt.Sprintf("average complexity %.1f exceeds threshold %.1f", m.Average, t.MaxAverage))
	}
	if m.Max > t.MaxFunction {
		violations = append(violations,
			fmt.Sprintf("maximum function complexity %d exceeds threshold %d", m.Max, t.MaxFunction))
	}
	if m.CognitiveComplexity > t.MaxCognitive {
		violations = append(violations,
			fmt.Sprintf("cognitive complexity %d exceeds threshold %d", m.CognitiveComplexity, t.MaxCognitive))
	}

	if len(violations) > 0 {
		return &ThresholdError{
			Violations: violations,
			Report:     RenderReport(m),
		}
	}
	return nil
}
