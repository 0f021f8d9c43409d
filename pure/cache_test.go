package pure_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/on-the-ground/funkit/pure"
)

func TestCacheBasicUsage(t *testing.T) {
	cache := pure.NewCache()

	keys := pure.Signature("a", "b", "c")
	cache.Store(keys, "final")

	val, ok := cache.Load(keys)
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = cache.Load(pure.Signature("a", "b", "x"))
	assert.False(t, ok)

	// overwrite existing
	cache.Store(keys, "updated")
	val, ok = cache.Load(keys)
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheEmptySignaturePanics(t *testing.T) {
	cache := pure.NewCache()
	assert.Panics(t, func() { cache.Load([]pure.Key{}) })
	assert.Panics(t, func() { cache.Store(nil, 1) })
}

func TestCacheUnboundedByDefault(t *testing.T) {
	cache := pure.NewCache()
	for i := 0; i < 1000; i++ {
		cache.Store(pure.Signature(i), i)
	}
	for i := 0; i < 1000; i++ {
		v, ok := cache.Load(pure.Signature(i))
		require.True(t, ok, "entry %d evicted from unbounded cache", i)
		assert.Equal(t, i, v)
	}
}

func TestCacheRotationKeepsRecentGeneration(t *testing.T) {
	cache := pure.NewCache(pure.WithMaxSize(4))
	for i := 0; i < 8; i++ {
		cache.Store(pure.Signature(i), i)
	}

	// second generation still reachable after one rotation
	for i := 4; i < 8; i++ {
		v, ok := cache.Load(pure.Signature(i))
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	// a second rotation drops the first generation entirely
	for i := 8; i < 12; i++ {
		cache.Store(pure.Signature(i), i)
	}
	for i := 0; i < 4; i++ {
		_, ok := cache.Load(pure.Signature(i))
		assert.False(t, ok, "entry %d survived two rotations", i)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	cache := pure.NewCache(pure.WithTTL(10 * time.Millisecond))
	keys := pure.Signature("k")
	cache.Store(keys, "v")

	v, ok := cache.Load(keys)
	require.True(t, ok)
	assert.Equal(t, "v", v)

	time.Sleep(25 * time.Millisecond)
	_, ok = cache.Load(keys)
	assert.False(t, ok, "entry outlived its validity window")

	// storing again renews the window
	cache.Store(keys, "v2")
	v, ok = cache.Load(keys)
	require.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestCacheInvalidOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { pure.WithMaxSize(0) })
	assert.Panics(t, func() { pure.WithTTL(0) })
	assert.Panics(t, func() { pure.WithTTL(-time.Second) })
}

func TestCacheObserverLogging(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)

	cache := pure.NewCache(
		pure.WithMaxSize(2),
		pure.WithObserver(zap.New(core)),
	)
	for i := 0; i < 3; i++ {
		cache.Store(pure.Signature(i), i)
	}

	created := recorded.FilterMessage("memo cache created").All()
	require.Len(t, created, 1)
	assert.Equal(t, cache.ID(), created[0].ContextMap()["cache_id"])

	rotated := recorded.FilterMessage("memo cache rotated").All()
	require.Len(t, rotated, 1)
}

type point struct{ x, y int }

func (p point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }

func TestSignatureKeys(t *testing.T) {
	// Stringer keys by its String() form
	assert.Equal(t, pure.KeyFor(point{1, 2}), pure.KeyFor(point{1, 2}))
	assert.Equal(t, "(1,2)", pure.KeyFor(point{1, 2}))

	// comparable values key by themselves
	assert.Equal(t, 42, pure.KeyFor(42))

	// non-comparable values hash deterministically
	k1 := pure.KeyFor([]int{1, 2, 3})
	k2 := pure.KeyFor([]int{1, 2, 3})
	k3 := pure.KeyFor([]int{3, 2, 1})
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)

	// nil gets a dedicated key distinct from the empty string
	assert.NotEqual(t, pure.KeyFor(nil), pure.KeyFor(""))

	assert.Len(t, pure.Signature(1, "a", nil), 3)
}
