// Package cachedtree wraps an aatree.Tree with a read-through LRU cache
// of recent Search results, for callers whose probe keys are expensive
// to re-derive (e.g. hashed) or whose lookup pattern is skewed enough
// that caching a handful of recent hits pays off. It is a Go-native
// addition on top of the container's core contract in package aatree,
// grounded in the teacher's own cache-wrapped backends
// (backend/store/cache, backend/index/cache, backend/depot/cache) and
// its generic common.LruCache.
package cachedtree

import (
	"log"
	"unsafe"

	"github.com/fantom-foundation-labs/aatree/aatree"
	"github.com/fantom-foundation-labs/aatree/internal/common"
)

// ErrClosed is returned by Search after Close has been called.
const ErrClosed = common.ConstError("cachedtree: use of cache after close")

// evictionNotifier is told about every key the cache drops to make room
// for a new entry. It exists so tests can observe eviction without
// reaching into the cache's internals; see cachedtree_mocks.go.
//
//go:generate mockgen -source cachedtree.go -destination cachedtree_mocks.go -package cachedtree
type evictionNotifier[K any] interface {
	OnEvict(key K)
}

// Cache wraps an *aatree.Tree[T, H], caching the last few Search
// results keyed by K (the projection of a node down to whatever
// comparable value identifies it, supplied by keyOf).
//
// Cache does not wrap Insert/Delete and does not observe mutations of
// the underlying tree: entries for deleted or replaced nodes stay cached
// and keep being returned by Search until Invalidate drops the whole
// cache. There is no per-key invalidation.
type Cache[T any, H aatree.Linkable[T], K comparable] struct {
	tree   *aatree.Tree[T, H]
	keyOf  func(H) K
	lru    *common.LruCache[K, H]
	logger *log.Logger
	notify evictionNotifier[K]
	closed bool
}

// New creates a Cache of the given capacity over tree. keyOf extracts
// the comparable cache key from a node handle.
func New[T any, H aatree.Linkable[T], K comparable](tree *aatree.Tree[T, H], capacity int, keyOf func(H) K) *Cache[T, H, K] {
	return &Cache[T, H, K]{
		tree:   tree,
		keyOf:  keyOf,
		lru:    common.NewLruCache[K, H](capacity),
		logger: log.Default(),
	}
}

// SetEvictionNotifier registers a callback invoked whenever the cache
// evicts an entry to make room for a new one.
func (c *Cache[T, H, K]) SetEvictionNotifier(n evictionNotifier[K]) {
	c.notify = n
}

// Search returns the node equal to probe, consulting the cache before
// falling back to the underlying tree's Search.
func (c *Cache[T, H, K]) Search(probe H) (H, error) {
	var none H
	if c.closed {
		return none, ErrClosed
	}

	key := c.keyOf(probe)
	if hit, ok := c.lru.Get(key); ok {
		return hit, nil
	}

	n := c.tree.Search(probe)
	if n == nil {
		return none, nil
	}

	evictedKey, _, evicted := c.lru.Set(key, n)
	if evicted {
		c.logger.Printf("cachedtree: evicted key %v", evictedKey)
		if c.notify != nil {
			c.notify.OnEvict(evictedKey)
		}
	}
	return n, nil
}

// Invalidate drops every cached entry without touching the underlying
// tree. Call it after any Insert, Delete, DeleteFirst, or DeleteLast on
// the wrapped tree.
func (c *Cache[T, H, K]) Invalidate() {
	c.lru.Clear()
}

// Close marks the cache unusable; subsequent Search calls return
// ErrClosed. The underlying tree is unaffected.
func (c *Cache[T, H, K]) Close() {
	c.closed = true
	c.lru.Clear()
}

// GetMemoryFootprint reports the memory consumed by the cache's own
// bookkeeping (the LRU entries and the wrapped tree handle). Cached
// node pointers reference caller-owned storage, so — consistent with
// the container's no-allocation contract — their referenced size is
// not counted here.
func (c *Cache[T, H, K]) GetMemoryFootprint() *common.MemoryFootprint {
	selfSize := unsafe.Sizeof(*c)
	mf := common.NewMemoryFootprint(selfSize)
	mf.AddChild("lru", c.lru.GetMemoryFootprint(0))
	mf.AddChild("tree", c.tree.GetMemoryFootprint())
	return mf
}
