package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursecraft-api/internal/config"
	apperrors "coursecraft-api/pkg/errors"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	port, err := strconv.Atoi(srv.Port())
	require.NoError(t, err)

	client, err := NewClient(&config.RedisConfig{Host: srv.Host(), Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, srv
}

func TestClientHealthCheck(t *testing.T) {
	client, _ := newTestClient(t)
	assert.NoError(t, client.HealthCheck(context.Background()))
}

func TestClientGetSet(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))
	got, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = client.Get(ctx, "missing")
	assert.True(t, IsNil(err))
}

func TestCacheGetOrLoad(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client)
	ctx := context.Background()

	loads := 0
	loader := func() (interface{}, error) {
		loads++
		return map[string]string{"name": "kurs"}, nil
	}

	first, err := cache.GetOrLoad(ctx, "course:1", time.Minute, loader)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"kurs"}`, string(first))
	assert.Equal(t, 1, loads)

	// 第二次命中缓存，loader 不再执行
	second, err := cache.GetOrLoad(ctx, "course:1", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
	assert.Equal(t, 1, loads)
}

func TestCacheGetOrLoadSafe(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client)
	ctx := context.Background()

	got, err := cache.GetOrLoadSafe(ctx, "media:photos:pexels:go:10", time.Minute, func() (interface{}, error) {
		return []string{"a", "b"}, nil
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(got))

	// 已缓存后 loader 错误不可见
	got, err = cache.GetOrLoadSafe(ctx, "media:photos:pexels:go:10", time.Minute, func() (interface{}, error) {
		return nil, assert.AnError
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(got))
}

func TestCacheGetOrLoadSafePropagatesLoaderError(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client)

	_, err := cache.GetOrLoadSafe(context.Background(), "miss", time.Minute, func() (interface{}, error) {
		return nil, apperrors.New(apperrors.CodeVendorError, "vendor down")
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeVendorError))
}

func TestCacheDelete(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "x", time.Minute))
	require.NoError(t, cache.Delete(ctx, "a"))
	_, err := cache.Get(ctx, "a")
	assert.True(t, IsNil(err))
}

func TestCacheInvalidatePattern(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "media:photos:1", "x", time.Minute))
	require.NoError(t, cache.Set(ctx, "media:photos:2", "y", time.Minute))
	require.NoError(t, cache.Set(ctx, "other:1", "z", time.Minute))

	require.NoError(t, cache.InvalidatePattern(ctx, "media:photos:*"))

	_, err := cache.Get(ctx, "media:photos:1")
	assert.True(t, IsNil(err))
	_, err = cache.Get(ctx, "other:1")
	assert.NoError(t, err)
}

func TestRateLimiterAllow(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.1", "/api/course/titles")

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, key, 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, err := limiter.Allow(ctx, key, 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	client, srv := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.2", "/api/slides/generate")

	ok, err := limiter.Allow(ctx, key, 1, 50*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = limiter.Allow(ctx, key, 1, 50*time.Millisecond)
	require.NoError(t, err)
	require.False(t, ok)

	// 窗口滑过后重新放行
	srv.FastForward(time.Second)
	time.Sleep(60 * time.Millisecond)
	ok, err = limiter.Allow(ctx, key, 1, 50*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiterRemaining(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.3", "/api/export/slides")

	remaining, err := limiter.Remaining(ctx, key, 5, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)

	_, err = limiter.Allow(ctx, key, 5, time.Minute)
	require.NoError(t, err)

	remaining, err = limiter.Remaining(ctx, key, 5, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 4, remaining)
}

func TestRateLimiterReset(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.4", "/api/media/photos")

	ok, err := limiter.Allow(ctx, key, 1, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, limiter.Reset(ctx, key))
	ok, err = limiter.Allow(ctx, key, 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuildRateLimitKey(t *testing.T) {
	assert.Equal(t, "ratelimit:1.2.3.4:/api/course/titles", BuildRateLimitKey("1.2.3.4", "/api/course/titles"))
}

func TestOAuthStateStore(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewOAuthStateStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "state-abc", "verifier-xyz"))

	verifier, err := store.Consume(ctx, "state-abc")
	require.NoError(t, err)
	assert.Equal(t, "verifier-xyz", verifier)

	// 状态一次性，重复消费即失败
	_, err = store.Consume(ctx, "state-abc")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeOAuthFailed))
}

func TestOAuthStateStoreUnknownState(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewOAuthStateStore(client, time.Minute)

	_, err := store.Consume(context.Background(), "never-saved")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeOAuthFailed))
}

func TestOAuthStateStoreExpiry(t *testing.T) {
	client, srv := newTestClient(t)
	store := NewOAuthStateStore(client, time.Second)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "state-ttl", "verifier"))
	srv.FastForward(2 * time.Second)

	_, err := store.Consume(ctx, "state-ttl")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeOAuthFailed))
}
