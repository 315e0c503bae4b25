package snmpbind

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/golangsnmp/snmpbind/view"
)

// ViewKey is the cache key the MIB view is stored under.
const ViewKey = "mibViewController"

// Cache is caller-owned state shared across binding calls. The zero value
// is ready to use and builds the default view on first access.
type Cache struct {
	mu      sync.Mutex
	entries map[string]any
	factory func() *view.View
	logger  *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithView stores v under ViewKey up front.
func WithView(v *view.View) CacheOption {
	return func(c *Cache) {
		if v != nil {
			c.set(ViewKey, v)
		}
	}
}

// WithViewFactory replaces the default view constructor used when the
// cache holds no view.
func WithViewFactory(f func() *view.View) CacheOption {
	return func(c *Cache) { c.factory = f }
}

// WithCacheLogger sets the logger passed to views built by the cache.
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) { c.logger = logger }
}

// NewCache returns a configured cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the entry stored under key.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores an entry under key.
func (c *Cache) Set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, v)
}

func (c *Cache) set(key string, v any) {
	if c.entries == nil {
		c.entries = make(map[string]any)
	}
	c.entries[key] = v
}

// GetView returns the view stored in c under ViewKey, building and storing
// one first if needed. Concurrent first calls build a single view. A nil
// cache gets a fresh default view on every call.
func GetView(c *Cache) *view.View {
	if c == nil {
		return view.Default()
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[ViewKey].(*view.View); ok && v != nil {
		return v
	}
	if old, ok := c.entries[ViewKey]; ok && logEnabled(c.logger, slog.LevelWarn) {
		c.logger.Warn("replacing cache entry that is not a view",
			slog.String("key", ViewKey),
			slog.String("type", fmt.Sprintf("%T", old)))
	}

	var v *view.View
	if c.factory != nil {
		v = c.factory()
	}
	if v == nil {
		v = view.Default(view.WithLogger(c.logger))
	}
	c.set(ViewKey, v)
	if logEnabled(c.logger, slog.LevelDebug) {
		c.logger.Debug("view created",
			slog.Int("modules", len(v.Mib().Modules())),
			slog.Int("nodes", v.Mib().NodeCount()))
	}
	return v
}
