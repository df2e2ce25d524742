// Package templatecache caches parsed page templates. Parsing HTML into a
// node tree is the expensive half of rendering; the cache keeps parsed
// trees in memory with TTL expiration and LRU eviction, and deduplicates
// concurrent loads of the same template with singleflight.
//
// Cached trees are shared between callers. Nodes are immutable by
// convention, so callers must not write through them; the normalizer
// already builds new nodes instead of mutating.
package templatecache

import (
	"container/list"
	"context"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/liftweb/lift/pkg/htmlnorm"
	"github.com/liftweb/lift/pkg/htmlparse"
)

// Loader produces the parsed tree for a template name on a cache miss.
type Loader func(ctx context.Context, name string) ([]htmlnorm.Node, error)

// FSLoader returns a Loader that reads template files from fsys and parses
// them as HTML fragments.
func FSLoader(fsys fs.FS) Loader {
	return func(_ context.Context, name string) ([]htmlnorm.Node, error) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("templatecache: reading %q: %w", name, err)
		}
		nodes, err := htmlparse.ParseFragment(string(data))
		if err != nil {
			return nil, fmt.Errorf("templatecache: parsing %q: %w", name, err)
		}
		return nodes, nil
	}
}

type entry struct {
	expiresAt time.Time // zero value = never expires
	nodes     []htmlnorm.Node
	name      string
}

func (e *entry) isExpired() bool {
	if e.expiresAt.IsZero() {
		return false
	}
	return time.Now().After(e.expiresAt)
}

// Cache is an in-memory template cache. Entries expire on access after the
// configured TTL; when a maximum entry count is set, the least recently
// used entry is evicted first.
type Cache struct {
	loader   Loader
	items    map[string]*list.Element
	eviction *list.List
	group    singleflight.Group
	opts     options
	mu       sync.Mutex
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	ttl        time.Duration
	maxEntries int
}

// WithTTL sets how long a parsed tree stays valid. Zero or negative means
// entries never expire.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

// WithMaxEntries caps the number of cached templates. Zero means unbounded.
func WithMaxEntries(n int) Option {
	return func(o *options) { o.maxEntries = n }
}

// New creates a Cache backed by the given loader.
func New(loader Loader, opts ...Option) *Cache {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache{
		loader:   loader,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
	}
}

// Get returns the parsed tree for name, loading it on a miss. Concurrent
// calls for the same missing name share a single load.
func (c *Cache) Get(ctx context.Context, name string) ([]htmlnorm.Node, error) {
	c.mu.Lock()
	if elem, ok := c.items[name]; ok {
		e := elem.Value.(*entry)
		if e.isExpired() {
			c.removeElement(elem)
		} else {
			c.eviction.MoveToFront(elem)
			c.mu.Unlock()
			return e.nodes, nil
		}
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(name, func() (any, error) {
		nodes, err := c.loader(ctx, name)
		if err != nil {
			return nil, err
		}
		c.store(name, nodes)
		return nodes, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]htmlnorm.Node), nil
}

// Invalidate drops the cached tree for name, if present.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[name]; ok {
		c.removeElement(elem)
	}
}

// Clear drops every cached tree.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}

// Len returns the number of cached templates, counting expired entries
// that have not been accessed yet.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cache) store(name string, nodes []htmlnorm.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.opts.ttl > 0 {
		expiresAt = time.Now().Add(c.opts.ttl)
	}

	if elem, ok := c.items[name]; ok {
		e := elem.Value.(*entry)
		e.nodes = nodes
		e.expiresAt = expiresAt
		c.eviction.MoveToFront(elem)
		return
	}

	if c.opts.maxEntries > 0 && len(c.items) >= c.opts.maxEntries {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	elem := c.eviction.PushFront(&entry{name: name, nodes: nodes, expiresAt: expiresAt})
	c.items[name] = elem
}

// removeElement expects c.mu to be held.
func (c *Cache) removeElement(elem *list.Element) {
	e := elem.Value.(*entry)
	c.eviction.Remove(elem)
	delete(c.items, e.name)
}
