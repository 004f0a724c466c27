package xpath

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// defaultCacheCapacity bounds the number of distinct source strings an
// ExpressionCache remembers before evicting the least recently used entry.
const defaultCacheCapacity = 1000

// ExpressionCache memoizes already-built Expression trees under their
// source text: an LRU keyed by the XPath string. The core doesn't parse
// XPath text itself (that's an external collaborator), so this cache sits
// in front of whatever builds the tree (a parser, or a caller assembling
// one by hand), memoizing Compile calls rather than parse calls.
type ExpressionCache struct {
	mu    sync.RWMutex
	inner *lru.Cache
}

// NewExpressionCache returns a cache holding up to capacity entries. A
// capacity of 0 uses defaultCacheCapacity.
func NewExpressionCache(capacity int) *ExpressionCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &ExpressionCache{inner: lru.New(capacity)}
}

// Get returns the cached Expression for source, if present.
func (c *ExpressionCache) Get(source string) (Expression, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.inner.Get(source)
	if !ok {
		return nil, false
	}
	expr, ok := v.(Expression)
	return expr, ok
}

// Put stores expr under source, evicting the least recently used entry if
// the cache is at capacity.
func (c *ExpressionCache) Put(source string, expr Expression) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Add(source, expr)
}

// Compiled wraps a Compile function (typically a parser's entry point) with
// an ExpressionCache, so repeated calls for the same source string build
// the tree only once.
type Compiled struct {
	Cache   *ExpressionCache
	Compile func(source string) (Expression, error)
}

// Expression returns the cached tree for source, compiling and caching it
// on a miss.
func (c *Compiled) Expression(source string) (Expression, error) {
	if expr, ok := c.Cache.Get(source); ok {
		return expr, nil
	}
	expr, err := c.Compile(source)
	if err != nil {
		return nil, err
	}
	c.Cache.Put(source, expr)
	return expr, nil
}
