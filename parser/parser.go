// Package parser resolves a project's source files and parses them with
// tree-sitter into syntax trees the analysis package reads through the
// types.SyntaxNode interface.
package parser

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/TFMV/codegauge/types"
)

// Parser parses JavaScript and TypeScript sources for analysis. A Parser
// is safe for concurrent use; each ParseFile call creates its own
// tree-sitter parser instance.
type Parser struct {
	cfg Config
}

func NewParser(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

// Thresholds returns the gate limits from the project configuration.
func (p *Parser) Thresholds() types.ComplexityThresholds {
	return p.cfg.Thresholds
}

// FileTree is one parsed source file. Close must be called once the
// tree's nodes are no longer needed.
type FileTree struct {
	Path string // slash-separated, relative to the analyzed directory
	Root types.SyntaxNode

	tree *sitter.Tree
}

func (f *FileTree) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// SourceFiles walks dir and returns the relative paths selected by the
// configured include/exclude globs, sorted for deterministic output.
func (p *Parser) SourceFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk directory: %w", err)
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if p.selected(rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}

func (p *Parser) selected(rel string) bool {
	included := false
	for _, pattern := range p.cfg.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, pattern := range p.cfg.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	return true
}

// ParseFile reads and parses one source file. rel is the slash-separated
// path relative to dir. An unreadable file is a fatal error; syntactic
// errors are not — tree-sitter produces a tree for malformed source and
// the scorers treat unrecognized nodes as no-ops.
func (p *Parser) ParseFile(ctx context.Context, dir, rel string) (*FileTree, error) {
	src, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rel, err)
	}

	sp := sitter.NewParser()
	sp.SetLanguage(languageFor(rel))

	tree, err := sp.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", rel, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		slog.Warn("source contains syntax errors", slog.String("file", rel))
	}

	return &FileTree{
		Path: rel,
		Root: wrapNode(root, src),
		tree: tree,
	}, nil
}

func languageFor(path string) *sitter.Language {
	switch {
	case strings.HasSuffix(path, ".tsx"):
		return tsx.GetLanguage()
	case strings.HasSuffix(path, ".ts"), strings.HasSuffix(path, ".mts"), strings.HasSuffix(path, ".cts"):
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}
