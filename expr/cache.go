// Package expr interns the source text of syntax-node spans so the
// Halstead computer does not re-slice the same operand and operator
// renderings over and over on large trees.
package expr

import (
	"runtime"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/TFMV/codegauge/types"
)

type spanKey struct {
	path  string
	start int
	end   int
}

// TextCache caches node source text keyed by file path and byte span.
type TextCache struct {
	cache *lru.Cache
	mu    sync.RWMutex // Mutex for thread safety
}

// NewTextCache creates a new TextCache of the given size and registers a
// cleanup function that clears it when the cache is garbage collected.
func NewTextCache(size int) *TextCache {
	tc := &TextCache{
		cache: lru.New(size),
	}

	runtime.AddCleanup(tc, func(c *lru.Cache) {
		c.Clear()
	}, tc.cache)

	return tc
}

// Text returns the source text for the node's span in the given file,
// using the cache to avoid redundant slicing.
func (c *TextCache) Text(path string, n types.SyntaxNode) string {
	start, end := n.Span()
	key := spanKey{path: path, start: start, end: end}

	// Try reading with a read lock first.
	c.mu.RLock()
	if val, ok := c.cache.Get(key); ok {
		c.mu.RUnlock()
		return val.(string)
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check in case another goroutine computed it meanwhile.
	if val, ok := c.cache.Get(key); ok {
		return val.(string)
	}

	text := n.Text()
	c.cache.Add(key, text)
	return text
}

// Clear clears the cache.
func (c *TextCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
}
