package pure

// The Memoize family wraps pure callbacks of common arities. Wrappers go
// through the default registry, so memoizing the same callback twice shares
// one cache and the callback runs at most once per distinct signature.
// Options take effect only when the wrap creates the cache. A nil callback
// is returned unchanged.
//
// Registry identity is the callback's code pointer, which Go shares between
// closures built from the same literal. Memoize is therefore meant for
// named functions and method values; for capturing closures use the Cached
// variants with a dedicated Cache per instance.

func MemoizeI1O1[I1, O1 any](fn func(I1) O1, opts ...Option) func(I1) O1 {
	cache, ok := defaultRegistry.CacheFor(fn, opts...)
	if !ok {
		return fn
	}
	return CachedI1O1(cache, fn)
}

func MemoizeI2O1[I1, I2, O1 any](fn func(I1, I2) O1, opts ...Option) func(I1, I2) O1 {
	cache, ok := defaultRegistry.CacheFor(fn, opts...)
	if !ok {
		return fn
	}
	return CachedI2O1(cache, fn)
}

func MemoizeI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1, opts ...Option) func(I1, I2, I3) O1 {
	cache, ok := defaultRegistry.CacheFor(fn, opts...)
	if !ok {
		return fn
	}
	return CachedI3O1(cache, fn)
}

func MemoizeI1O2[I1, O1, O2 any](fn func(I1) (O1, O2), opts ...Option) func(I1) (O1, O2) {
	cache, ok := defaultRegistry.CacheFor(fn, opts...)
	if !ok {
		return fn
	}
	return CachedI1O2(cache, fn)
}

func MemoizeI2O2[I1, I2, O1, O2 any](fn func(I1, I2) (O1, O2), opts ...Option) func(I1, I2) (O1, O2) {
	cache, ok := defaultRegistry.CacheFor(fn, opts...)
	if !ok {
		return fn
	}
	return CachedI2O2(cache, fn)
}

// The Cached family memoizes through an explicit cache instead of the
// registry. Each wrapped closure gets exactly the cache it is handed, so
// two closures from the same literal stay isolated.

func CachedI1O1[I1, O1 any](cache *Cache, fn func(I1) O1) func(I1) O1 {
	if cache == nil || fn == nil {
		return fn
	}
	return func(i1 I1) O1 {
		keys := Signature(i1)
		if v, hit := cache.Load(keys); hit {
			return as[O1](v)
		}
		out := fn(i1)
		cache.Store(keys, out)
		return out
	}
}

func CachedI2O1[I1, I2, O1 any](cache *Cache, fn func(I1, I2) O1) func(I1, I2) O1 {
	if cache == nil || fn == nil {
		return fn
	}
	return func(i1 I1, i2 I2) O1 {
		keys := Signature(i1, i2)
		if v, hit := cache.Load(keys); hit {
			return as[O1](v)
		}
		out := fn(i1, i2)
		cache.Store(keys, out)
		return out
	}
}

func CachedI3O1[I1, I2, I3, O1 any](cache *Cache, fn func(I1, I2, I3) O1) func(I1, I2, I3) O1 {
	if cache == nil || fn == nil {
		return fn
	}
	return func(i1 I1, i2 I2, i3 I3) O1 {
		keys := Signature(i1, i2, i3)
		if v, hit := cache.Load(keys); hit {
			return as[O1](v)
		}
		out := fn(i1, i2, i3)
		cache.Store(keys, out)
		return out
	}
}

func CachedI1O2[I1, O1, O2 any](cache *Cache, fn func(I1) (O1, O2)) func(I1) (O1, O2) {
	if cache == nil || fn == nil {
		return fn
	}
	return func(i1 I1) (O1, O2) {
		keys := Signature(i1)
		if v, hit := cache.Load(keys); hit {
			p := v.(pair)
			return as[O1](p.fst), as[O2](p.snd)
		}
		o1, o2 := fn(i1)
		cache.Store(keys, pair{fst: o1, snd: o2})
		return o1, o2
	}
}

func CachedI2O2[I1, I2, O1, O2 any](cache *Cache, fn func(I1, I2) (O1, O2)) func(I1, I2) (O1, O2) {
	if cache == nil || fn == nil {
		return fn
	}
	return func(i1 I1, i2 I2) (O1, O2) {
		keys := Signature(i1, i2)
		if v, hit := cache.Load(keys); hit {
			p := v.(pair)
			return as[O1](p.fst), as[O2](p.snd)
		}
		o1, o2 := fn(i1, i2)
		cache.Store(keys, pair{fst: o1, snd: o2})
		return o1, o2
	}
}

// as converts a cached any back to its static type, tolerating nil
// interface values (a memoized nil error round-trips as nil).
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

type pair struct {
	fst any
	snd any
}

// Forget drops the default-registry cache for callback.
func Forget(callback any) bool {
	return defaultRegistry.Forget(callback)
}

// Flush drops every cache in the default registry.
func Flush() {
	defaultRegistry.Flush()
}
