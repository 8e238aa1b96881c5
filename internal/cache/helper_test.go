package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type cachedValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedValue) func() error {
		return func() error {
			fetches++
			*dest = cachedValue{Name: "hello", Count: 3}
			return nil
		}
	}

	var first cachedValue
	require.NoError(t, Aside(ctx, "test:key", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "hello", first.Name)

	var second cachedValue
	require.NoError(t, Aside(ctx, "test:key", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches, "second read should be served from cache")
	assert.Equal(t, first, second)
}

func TestAside_CorruptEntryRefetches(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("test:key", "not json"))

	var got cachedValue
	err := Aside(ctx, "test:key", &got, time.Minute, func() error {
		got = cachedValue{Name: "fresh"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Name)

	// the corrupt entry was replaced with valid JSON
	raw, err := mr.Get("test:key")
	require.NoError(t, err)
	assert.Contains(t, raw, `"fresh"`)
}

func TestAside_NoClientFallsThrough(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var got cachedValue
	err := Aside(ctx, "test:key", &got, time.Minute, func() error {
		got = cachedValue{Name: "direct"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "direct", got.Name)
}

func TestAside_RedisDownFallsThrough(t *testing.T) {
	mr := setupMiniredis(t)
	mr.Close()
	ctx := context.Background()

	var got cachedValue
	err := Aside(ctx, "test:key", &got, time.Minute, func() error {
		got = cachedValue{Name: "direct"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "direct", got.Name)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(TrendingKey, "[]"))
	require.NoError(t, mr.Set(UserKey(7), "{}"))

	InvalidateTrending(ctx)
	InvalidateUser(ctx, 7)

	assert.False(t, mr.Exists(TrendingKey))
	assert.False(t, mr.Exists(UserKey(7)))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "user:42", UserKey(42))
	assert.Equal(t, "blacklist:abc", JTIBlacklistKey("abc"))
}
