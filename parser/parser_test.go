package parser_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/codegauge/parser"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := parser.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, parser.DefaultConfig(), cfg)
	assert.Equal(t, 5.0, cfg.Thresholds.MaxAverage)
	assert.Equal(t, 10, cfg.Thresholds.MaxFunction)
	assert.Equal(t, 100, cfg.Thresholds.MaxCognitive)
}

func TestLoadConfigOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codegauge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`thresholds:
  max_average: 4.5
  max_function: 8
  max_cognitive: 60
exclude:
  - "**/vendor/**"
`), 0644))

	cfg, err := parser.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4.5, cfg.Thresholds.MaxAverage)
	assert.Equal(t, 8, cfg.Thresholds.MaxFunction)
	assert.Equal(t, 60, cfg.Thresholds.MaxCognitive)
	assert.Equal(t, []string{"**/vendor/**"}, cfg.Exclude)
	// Include was not set in the file, so the defaults survive.
	assert.Equal(t, parser.DefaultConfig().Include, cfg.Include)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	_, err := parser.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read project configuration")
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thresholds: [not: a: map"), 0644))

	_, err := parser.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse project configuration")
}

func write(t *testing.T, dir, name string, src string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
}

func TestSourceFilesSelection(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "b.ts", "let b = 1;")
	write(t, dir, "a.tsx", "let a = 1;")
	write(t, dir, "src/c.js", "let c = 1;")
	write(t, dir, "src/types.d.ts", "declare let d: number;")
	write(t, dir, "node_modules/x/index.js", "let x = 1;")
	write(t, dir, "dist/out.js", "let o = 1;")
	write(t, dir, "README.md", "# readme")

	p := parser.NewParser(parser.DefaultConfig())
	paths, err := p.SourceFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.tsx", "b.ts", "src/c.js"}, paths)
}

func TestSourceFilesCustomGlobs(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "src/app.ts", "let a = 1;")
	write(t, dir, "test/app.test.ts", "let t = 1;")

	cfg := parser.DefaultConfig()
	cfg.Exclude = append(cfg.Exclude, "**/*.test.ts")
	p := parser.NewParser(cfg)

	paths, err := p.SourceFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.ts"}, paths)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "app.ts", "function greet(name: string) {\n  return name;\n}\n")

	p := parser.NewParser(parser.DefaultConfig())
	tree, err := p.ParseFile(context.Background(), dir, "app.ts")
	require.NoError(t, err)
	defer tree.Close()

	assert.Equal(t, "app.ts", tree.Path)
	require.NotNil(t, tree.Root)
	assert.Equal(t, "program", tree.Root.Kind())
	require.Equal(t, 1, tree.Root.ChildCount())

	fn := tree.Root.Child(0)
	assert.Equal(t, "function_declaration", fn.Kind())
	assert.True(t, fn.Named())

	// Positions are 1-based.
	pos := fn.Start()
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 1, pos.Column)

	// The wrapped node exposes parents and source text.
	assert.Equal(t, "program", fn.Parent().Kind())
	start, end := fn.Span()
	assert.Less(t, start, end)
}

func TestParseFileByExtension(t *testing.T) {
	dir := t.TempDir()
	// TSX-only syntax parses under the tsx grammar.
	write(t, dir, "view.tsx", "const view = <div>hello</div>;\n")
	// Type annotations parse under the typescript grammar.
	write(t, dir, "typed.ts", "const n: number = 1;\n")
	write(t, dir, "plain.js", "var n = 1;\n")

	p := parser.NewParser(parser.DefaultConfig())
	for _, name := range []string{"view.tsx", "typed.ts", "plain.js"} {
		tree, err := p.ParseFile(context.Background(), dir, name)
		require.NoError(t, err, name)
		assert.Equal(t, "program", tree.Root.Kind(), name)
		tree.Close()
	}
}

func TestParseFileUnreadable(t *testing.T) {
	p := parser.NewParser(parser.DefaultConfig())
	_, err := p.ParseFile(context.Background(), t.TempDir(), "missing.ts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
