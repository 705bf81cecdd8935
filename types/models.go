package types

import (
	"encoding/json"
	"fmt"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// FunctionComplexity is the cyclomatic score of a single function-like
// node, recorded once during a file walk and never mutated afterwards.
type FunctionComplexity struct {
	Name       string `json:"name"`
	Complexity int    `json:"complexity"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
}

// FileComplexity holds the per-function scores of one source file in
// source order. Complexity is always the sum of the function scores.
type FileComplexity struct {
	Path                string               `json:"path"`
	Complexity          int                  `json:"complexity"`
	CognitiveComplexity int                  `json:"cognitive_complexity"`
	Functions           []FunctionComplexity `json:"functions"`
}

// MaxFunctionComplexity returns the worst single-function score in the
// file, or 0 if the file has no functions.
func (f FileComplexity) MaxFunctionComplexity() int {
	max := 0
	for _, fn := range f.Functions {
		if fn.Complexity > max {
			max = fn.Complexity
		}
	}
	return max
}

// HalsteadMetrics are the software-science metrics derived from the
// operator/operand counts of the whole codebase.
type HalsteadMetrics struct {
	Vocabulary int     `json:"vocabulary"` // n1 + n2
	Length     int     `json:"length"`     // N1 + N2
	Volume     float64 `json:"volume"`     // length * log2(vocabulary)
	Difficulty float64 `json:"difficulty"` // (n1/2) * (N2/n2)
	Effort     float64 `json:"effort"`     // difficulty * volume
	Time       float64 `json:"time"`       // effort / 18, in seconds
	Bugs       float64 `json:"bugs"`       // volume / 3000
}

// ComplexityMetrics is the read-only snapshot produced by one analysis
// run. Files are sorted descending by their worst single-function score.
type ComplexityMetrics struct {
	Average             float64          `json:"average"`
	Median              int              `json:"median"`
	Max                 int              `json:"max"`
	Min                 int              `json:"min"`
	HighComplexity      int              `json:"high_complexity"`   // functions with complexity > 10
	MediumComplexity    int              `json:"medium_complexity"` // 6-10
	LowComplexity       int              `json:"low_complexity"`    // 1-5
	CognitiveComplexity int              `json:"cognitive_complexity"`
	Halstead            HalsteadMetrics  `json:"halstead_metrics"`
	Files               []FileComplexity `json:"files"`
}

// TotalFunctions returns the number of functions scored across all files.
func (m ComplexityMetrics) TotalFunctions() int {
	n := 0
	for _, f := range m.Files {
		n += len(f.Functions)
	}
	return n
}

// PrettyPrint returns the metrics snapshot as indented JSON.
func (m ComplexityMetrics) PrettyPrint() string {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating summary: %v", err)
	}
	return string(jsonBytes)
}

// ComplexityThresholds are the limits the gate checks aggregate metrics
// against. All comparisons are strict: a metric exactly at its limit
// passes.
type ComplexityThresholds struct {
	MaxAverage   float64 `json:"max_average" yaml:"max_average"`
	MaxFunction  int     `json:"max_function" yaml:"max_function"`
	MaxCognitive int     `json:"max_cognitive" yaml:"max_cognitive"`
}

// DefaultThresholds returns the default gate limits.
func DefaultThresholds() ComplexityThresholds {
	return ComplexityThresholds{
		MaxAverage:   5,
		MaxFunction:  10,
		MaxCognitive: 100,
	}
}

// RunRecord is the stored summary of one analysis run.
type RunRecord struct {
	ID                  *models.RecordID `json:"id,omitempty"`
	Directory           string           `json:"directory"`
	TotalFunctions      int              `json:"total_functions"`
	Average             float64          `json:"average"`
	Median              int              `json:"median"`
	Max                 int              `json:"max"`
	Min                 int              `json:"min"`
	HighComplexity      int              `json:"high_complexity"`
	MediumComplexity    int              `json:"medium_complexity"`
	LowComplexity       int              `json:"low_complexity"`
	CognitiveComplexity int              `json:"cognitive_complexity"`
	Halstead            HalsteadMetrics  `json:"halstead_metrics"`
}

// FileMetricsRecord is the stored complexity of one source file.
type FileMetricsRecord struct {
	ID                  *models.RecordID `json:"id,omitempty"`
	Directory           string           `json:"directory"`
	Path                string           `json:"path"`
	Complexity          int              `json:"complexity"`
	MaxComplexity       int              `json:"max_complexity"`
	CognitiveComplexity int              `json:"cognitive_complexity"`
}

// FunctionMetricsRecord is the stored score of one function.
type FunctionMetricsRecord struct {
	ID         *models.RecordID `json:"id,omitempty"`
	Directory  string           `json:"directory"`
	Path       string           `json:"path"`
	Name       string           `json:"name"`
	Complexity int              `json:"complexity"`
	Line       int              `json:"line"`
	Column     int              `json:"column"`
}
