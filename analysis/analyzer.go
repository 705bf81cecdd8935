// Package analysis walks parsed syntax trees and produces cyclomatic,
// cognitive and Halstead complexity metrics, aggregated into a
// codebase-wide snapshot and checked against configurable thresholds.
package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/TFMV/codegauge/expr"
	"github.com/TFMV/codegauge/parser"
	"github.com/TFMV/codegauge/types"
)

// Analyzer orchestrates one analysis run: resolve the project's source
// files, parse them, score every file and aggregate the results.
type Analyzer struct {
	Parser    *parser.Parser
	TextCache *expr.TextCache
}

// NewAnalyzer creates an Analyzer for the given project configuration.
func NewAnalyzer(cfg parser.Config) *Analyzer {
	return &Analyzer{
		Parser:    parser.NewParser(cfg),
		TextCache: expr.NewTextCache(10000),
	}
}

// GetMetrics analyzes every configured source file under dir and returns
// the aggregated metrics snapshot. Files are parsed concurrently;
// scoring runs sequentially over the parsed trees so the walk order, and
// with it the output, is deterministic.
func (a *Analyzer) GetMetrics(ctx context.Context, dir string) (types.ComplexityMetrics, error) {
	paths, err := a.Parser.SourceFiles(dir)
	if err != nil {
		return types.ComplexityMetrics{}, fmt.Errorf("failed to resolve source files: %w", err)
	}

	trees := make([]*parser.FileTree, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			tree, err := a.Parser.ParseFile(gctx, dir, path)
			if err != nil {
				return fmt.Errorf("error parsing %s: %w", path, err)
			}
			trees[i] = tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, tree := range trees {
			if tree != nil {
				tree.Close()
			}
		}
		return types.ComplexityMetrics{}, err
	}

	halstead := NewHalsteadCounter(a.TextCache)
	cognitive := 0
	files := make([]types.FileComplexity, 0, len(trees))
	var complexities []int

	for _, tree := range trees {
		fc := types.FileComplexity{
			Path:                tree.Path,
			Functions:           CollectFunctions(tree.Root),
			CognitiveComplexity: ComputeCognitiveComplexity(tree.Root),
		}
		for _, fn := range fc.Functions {
			fc.Complexity += fn.Complexity
			complexities = append(complexities, fn.Complexity)
		}
		cognitive += fc.CognitiveComplexity
		halstead.AddFile(tree.Path, tree.Root)

		files = append(files, fc)
		tree.Close()
	}

	return aggregate(files, complexities, cognitive, halstead.Metrics()), nil
}

// aggregate composes the per-file results into the codebase snapshot.
func aggregate(files []types.FileComplexity, complexities []int, cognitive int, halstead types.HalsteadMetrics) types.ComplexityMetrics {
	m := types.ComplexityMetrics{
		CognitiveComplexity: cognitive,
		Halstead:            halstead,
		Files:               files,
	}

	if len(complexities) > 0 {
		sorted := make([]int, len(complexities))
		copy(sorted, complexities)
		sort.Ints(sorted)

		sum := 0
		for _, c := range sorted {
			sum += c
		}
		m.Average = math.Round(float64(sum)/float64(len(sorted))*10) / 10
		// Even-length lists take the upper-middle element, not the
		// averaged midpoint.
		m.Median = sorted[len(sorted)/2]
		m.Min = sorted[0]
		m.Max = sorted[len(sorted)-1]

		for _, c := range sorted {
			switch {
			case c > 10:
				m.HighComplexity++
			case c >= 6:
				m.MediumComplexity++
			default:
				m.LowComplexity++
			}
		}
	}

	// The file with the single worst function sorts first, even when
	// another file has a larger aggregate sum.
	sort.SliceStable(m.Files, func(i, j int) bool {
		return m.Files[i].MaxFunctionComplexity() > m.Files[j].MaxFunctionComplexity()
	})

	return m
}
