package pure

import (
	"reflect"
	"sync"
)

// Registry maps callback identity to the cache memoizing that callback.
// Identity is the function's entry pointer, so two Memoize calls on the
// same named function share one cache. Go gives closures built from the
// same literal one entry pointer, so such closures share too; capturing
// closures that must stay isolated should go through the Cached wrappers
// with their own Cache. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	caches map[uintptr]*Cache
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{caches: make(map[uintptr]*Cache)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the Memoize
// wrappers.
func DefaultRegistry() *Registry { return defaultRegistry }

// CacheFor returns the cache registered for callback, creating one with
// opts on first sight. Options only apply to the call that creates the
// cache; later callers receive the existing instance unchanged. It reports
// false, with a nil cache, when callback is not a callable function.
func (r *Registry) CacheFor(callback any, opts ...Option) (*Cache, bool) {
	id, ok := callbackID(callback)
	if !ok {
		return nil, false
	}

	r.mu.RLock()
	c, found := r.caches[id]
	r.mu.RUnlock()
	if found {
		return c, true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, found = r.caches[id]; found {
		return c, true
	}
	c = NewCache(opts...)
	r.caches[id] = c
	return c, true
}

// Forget drops the cache registered for callback, reporting whether one
// existed. Wrappers created earlier keep using the dropped cache; only
// future CacheFor calls see a fresh one.
func (r *Registry) Forget(callback any) bool {
	id, ok := callbackID(callback)
	if !ok {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, found := r.caches[id]; !found {
		return false
	}
	delete(r.caches, id)
	return true
}

// Flush drops every registered cache.
func (r *Registry) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caches = make(map[uintptr]*Cache)
}

// Len reports the number of registered caches.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.caches)
}

func callbackID(callback any) (uintptr, bool) {
	if callback == nil {
		return 0, false
	}
	v := reflect.ValueOf(callback)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0, false
	}
	return v.Pointer(), true
}
