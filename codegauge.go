// Package codegauge analyzes the complexity of JavaScript and TypeScript
// codebases. It parses a source tree with tree-sitter, scores every
// function (cyclomatic), file (cognitive) and the whole codebase
// (Halstead), and gates builds against configurable thresholds.
package codegauge

import (
	"context"
	"fmt"

	"github.com/TFMV/codegauge/analysis"
	"github.com/TFMV/codegauge/db"
	"github.com/TFMV/codegauge/parser"
	"github.com/TFMV/codegauge/types"
)

// Analyzer is the high-level entry point tying the engine to its
// project configuration and optional metrics store.
type Analyzer struct {
	DB         db.DB
	Engine     *analysis.Analyzer
	Thresholds types.ComplexityThresholds
}

// NewAnalyzer creates an Analyzer from the project configuration at
// configPath (empty means the default lookup). A malformed configuration
// is a fatal error; no partial analyzer is returned.
func NewAnalyzer(configPath string) (*Analyzer, error) {
	cfg, err := parser.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		Engine:     analysis.NewAnalyzer(cfg),
		Thresholds: cfg.Thresholds,
	}, nil
}

// NewAnalyzerWithDB creates an Analyzer that also persists runs to
// SurrealDB.
func NewAnalyzerWithDB(configPath string, dbConfig db.Config) (*Analyzer, error) {
	a, err := NewAnalyzer(configPath)
	if err != nil {
		return nil, err
	}

	sdb, err := db.NewSurrealDB(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	a.DB = sdb
	return a, nil
}

// Initialize sets up the metrics store, if one is configured.
func (a *Analyzer) Initialize(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Initialize(ctx)
}

// Analyze scores every configured source file under dir and returns the
// aggregated metrics snapshot.
func (a *Analyzer) Analyze(ctx context.Context, dir string) (types.ComplexityMetrics, error) {
	return a.Engine.GetMetrics(ctx, dir)
}

// Check analyzes dir and compares the result against the configured
// thresholds. On violation the returned error is a
// *analysis.ThresholdError carrying every violation and the full
// rendered report; the metrics are returned in both cases.
func (a *Analyzer) Check(ctx context.Context, dir string) (types.ComplexityMetrics, error) {
	metrics, err := a.Analyze(ctx, dir)
	if err != nil {
		return types.ComplexityMetrics{}, err
	}
	if err := analysis.CheckThresholds(metrics, a.Thresholds); err != nil {
		return metrics, err
	}
	return metrics, nil
}

// Report analyzes dir and renders the text report.
func (a *Analyzer) Report(ctx context.Context, dir string) (string, error) {
	metrics, err := a.Analyze(ctx, dir)
	if err != nil {
		return "", err
	}
	return analysis.RenderReport(metrics), nil
}

// AnalyzeAndStore analyzes dir and persists the run to the metrics
// store.
func (a *Analyzer) AnalyzeAndStore(ctx context.Context, dir string) (types.ComplexityMetrics, error) {
	metrics, err := a.Analyze(ctx, dir)
	if err != nil {
		return types.ComplexityMetrics{}, err
	}
	if a.DB == nil {
		return types.ComplexityMetrics{}, fmt.Errorf("no metrics store configured")
	}
	if err := a.DB.StoreMetrics(ctx, dir, metrics); err != nil {
		return types.ComplexityMetrics{}, fmt.Errorf("failed to store analysis results: %w", err)
	}
	return metrics, nil
}
