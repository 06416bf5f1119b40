package loader

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func testPayload(i int) []byte {
	return bytes.Repeat([]byte(fmt.Sprintf("payload-%d;", i)), 100)
}

func TestCacheConfigValidation(t *testing.T) {
	_, err := NewLRU(&LRUConfig{Size: 1})
	require.NotNil(t, err)
	_, err = NewLRU(&LRUConfig{Size: 10, CompressedFraction: 1.5})
	require.NotNil(t, err)
	cache, err := NewLRU(&LRUConfig{Size: 2, CompressedFraction: 1})
	require.Nil(t, err)
	iCache, ok := cache.(*lru)
	require.True(t, ok)
	require.Equal(t, 1, iCache.maxUncompressed)
	require.Equal(t, 1, iCache.maxCompressed)
}

func TestCacheUncompressedOnly(t *testing.T) {
	cache, err := NewLRU(&LRUConfig{Size: 10})
	require.Nil(t, err)
	defer cache.Destroy()
	iCache, ok := cache.(*lru)
	require.True(t, ok)

	for i := 0; i < 20; i++ {
		cache.Add(fmt.Sprintf("k%d", i), testPayload(i))
	}
	require.Equal(t, 10, len(iCache.pmap))
	require.Equal(t, 10, iCache.recentList.Len())
	require.Equal(t, 0, iCache.compressedList.Len())
	_, ok = cache.Get("k9")
	require.False(t, ok)
	value, ok := cache.Get("k10")
	require.True(t, ok)
	require.Equal(t, testPayload(10), value)
}

func TestCachePayloadsAreNotShared(t *testing.T) {
	cache, err := NewLRU(&LRUConfig{Size: 2, CompressedFraction: 0.5})
	require.Nil(t, err)
	defer cache.Destroy()

	added := testPayload(0)
	cache.Add("k0", added)
	added[0] = 'X'
	value, ok := cache.Get("k0")
	require.True(t, ok)
	require.Equal(t, testPayload(0), value)
	value[0] = 'Y'
	value, ok = cache.Get("k0")
	require.True(t, ok)
	require.Equal(t, testPayload(0), value)

	// k0 moves to the compressed tier, and a hit promotes it back
	cache.Add("k1", testPayload(1))
	value, ok = cache.Get("k0")
	require.True(t, ok)
	value[0] = 'Z'
	value, ok = cache.Get("k0")
	require.True(t, ok)
	require.Equal(t, testPayload(0), value)
}

func TestCacheRecencyOnGet(t *testing.T) {
	cache, err := NewLRU(&LRUConfig{Size: 3})
	require.Nil(t, err)
	cache.Add("a", testPayload(0))
	cache.Add("b", testPayload(1))
	cache.Add("c", testPayload(2))
	// touching a makes b the least recently used
	_, ok := cache.Get("a")
	require.True(t, ok)
	cache.Add("d", testPayload(3))
	_, ok = cache.Get("b")
	require.False(t, ok)
	_, ok = cache.Get("a")
	require.True(t, ok)
}

func TestCacheReplace(t *testing.T) {
	cache, err := NewLRU(&LRUConfig{Size: 4, CompressedFraction: 0.5})
	require.Nil(t, err)
	cache.Add("a", testPayload(0))
	cache.Add("a", testPayload(1))
	require.Equal(t, 1, cache.CurrentSize())
	value, ok := cache.Get("a")
	require.True(t, ok)
	require.Equal(t, testPayload(1), value)
}

func TestCacheCompressedTier(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	cache, err := NewLRU(&LRUConfig{Size: 4, CompressedFraction: 0.5, Metrics: metrics})
	require.Nil(t, err)
	iCache, ok := cache.(*lru)
	require.True(t, ok)

	for i := 0; i < 5; i++ {
		cache.Add(fmt.Sprintf("k%d", i), testPayload(i))
	}
	// k3 and k4 are raw, k1 and k2 are compressed, k0 was dropped
	require.Equal(t, 4, cache.CurrentSize())
	require.Equal(t, 2, iCache.recentList.Len())
	require.Equal(t, 2, iCache.compressedList.Len())
	compressed := iCache.compressedPmap["k1"].Value.(*cachedPayload).value
	require.Less(t, len(compressed), len(testPayload(1)))

	_, ok = cache.Get("k0")
	require.False(t, ok)

	value, ok := cache.Get("k1")
	require.True(t, ok)
	require.Equal(t, testPayload(1), value)
	// k1 is promoted, which pushes k3 into the compressed tier
	_, ok = iCache.pmap["k1"]
	require.True(t, ok)
	_, ok = iCache.compressedPmap["k3"]
	require.True(t, ok)
	require.Equal(t, 4, cache.CurrentSize())

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheHitsTotal.WithLabelValues(compressedTier)))
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.CacheHitsTotal.WithLabelValues(rawTier)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheMissesTotal))
	require.Equal(t, 4.0, testutil.ToFloat64(metrics.CacheEvictionsTotal.WithLabelValues(rawTier)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheEvictionsTotal.WithLabelValues(compressedTier)))

	cache.Destroy()
	require.Equal(t, 0, cache.CurrentSize())
}

func TestCompressRoundTrip(t *testing.T) {
	for _, value := range [][]byte{{}, []byte("x"), testPayload(7)} {
		compressed, err := compress(value)
		require.Nil(t, err)
		decompressed, err := decompress(compressed)
		require.Nil(t, err)
		require.Equal(t, len(value), len(decompressed))
		require.True(t, bytes.Equal(value, decompressed))
	}
}
