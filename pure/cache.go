package pure

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Option configures a Cache at creation time.
type Option func(*config)

type config struct {
	maxSize uint32
	ttl     time.Duration
	logger  *zap.Logger
}

// WithMaxSize bounds the cache to n live entries. When the bound is hit the
// cache rotates generations: the current table becomes the previous one and
// a fresh table takes writes, so roughly the most recent n..2n results stay
// reachable. n must be greater than zero.
func WithMaxSize(n uint32) Option {
	if n == 0 {
		panic("pure: max size should be greater than 0")
	}
	return func(cfg *config) { cfg.maxSize = n }
}

// WithTTL stamps every stored entry with a validity window of d. Entries
// outside their window read as misses and are recomputed on the next call.
// d must be positive.
func WithTTL(d time.Duration) Option {
	if d <= 0 {
		panic("pure: ttl should be positive")
	}
	return func(cfg *config) { cfg.ttl = d }
}

// WithObserver attaches a logger that records cache lifecycle events
// (creation, generation rotation) at debug level.
func WithObserver(logger *zap.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

// Cache stores computed results keyed by argument signature. Signatures are
// held in a trie of sync.Maps, one level per argument, so variable-arity
// callbacks share the machinery. The zero bound means no eviction ever.
// All methods are safe for concurrent use.
type Cache struct {
	id       string
	gens     atomic.Pointer[generations]
	size     atomic.Uint32
	maxSize  uint32
	ttl      time.Duration
	logger   *zap.Logger
	rotateMu sync.Mutex
}

type generations struct {
	head *sync.Map
	tail *sync.Map
}

type entry struct {
	value any
	span  timespan.TimeSpan
	timed bool
}

// NewCache builds a standalone cache. Most callers want the Memoize
// wrappers or Registry.CacheFor instead, which manage shared instances.
func NewCache(opts ...Option) *Cache {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Cache{
		id:      uuid.New().String(),
		maxSize: cfg.maxSize,
		ttl:     cfg.ttl,
		logger:  cfg.logger,
	}
	c.gens.Store(&generations{head: &sync.Map{}, tail: &sync.Map{}})
	if c.logger != nil {
		c.logger.Debug("memo cache created",
			zap.String("cache_id", c.id),
			zap.Uint32("max_size", c.maxSize),
			zap.Duration("ttl", c.ttl),
		)
	}
	return c
}

// ID returns the unique identifier of this cache instance.
func (c *Cache) ID() string { return c.id }

// Len reports the number of live entries in the current generation.
func (c *Cache) Len() int { return int(c.size.Load()) }

// Load returns the cached result for the signature, checking the current
// generation first and the previous one second. Expired entries read as
// misses.
func (c *Cache) Load(keys []Key) (any, bool) {
	g := c.gens.Load()
	for _, m := range [2]*sync.Map{g.head, g.tail} {
		leaf, last := leafFor(m, keys, false)
		if leaf == nil {
			continue
		}
		raw, ok := leaf.Load(last)
		if !ok {
			continue
		}
		e := raw.(entry)
		if e.timed && !e.span.Contains(time.Now()) {
			return nil, false
		}
		return e.value, true
	}
	return nil, false
}

// Store records the result for the signature in the current generation,
// rotating first when the bound is reached.
func (c *Cache) Store(keys []Key, value any) {
	e := entry{value: value}
	if c.ttl > 0 {
		now := time.Now()
		e.span = timespan.BetweenTimes(now, now.Add(c.ttl))
		e.timed = true
	}

	c.maybeRotate()
	leaf, last := leafFor(c.gens.Load().head, keys, true)
	if _, loaded := leaf.Swap(last, e); !loaded {
		c.size.Add(1)
	}
}

func (c *Cache) maybeRotate() {
	if c.maxSize == 0 || c.size.Load() < c.maxSize {
		return
	}
	c.rotateMu.Lock()
	defer c.rotateMu.Unlock()
	if c.size.Load() < c.maxSize {
		return
	}
	old := c.gens.Load()
	c.gens.Store(&generations{head: &sync.Map{}, tail: old.head})
	c.size.Store(0)
	if c.logger != nil {
		c.logger.Debug("memo cache rotated",
			zap.String("cache_id", c.id),
			zap.Uint32("max_size", c.maxSize),
		)
	}
}

// leafFor walks the signature trie down to the map holding the final key.
// With create unset, a missing intermediate level returns a nil map.
func leafFor(m *sync.Map, keys []Key, create bool) (*sync.Map, Key) {
	if len(keys) == 0 {
		panic("pure: empty signature")
	}
	for _, k := range keys[:len(keys)-1] {
		next, ok := m.Load(k)
		if !ok {
			if !create {
				return nil, nil
			}
			next, _ = m.LoadOrStore(k, &sync.Map{})
		}
		m = next.(*sync.Map)
	}
	return m, keys[len(keys)-1]
}
