package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesapi/internal/adapters/cache"
	"notesapi/internal/config"
	cachePorts "notesapi/internal/ports/cache"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:            host,
		Port:            port,
		Password:        "",
		DB:              0,
		ConnectTimeout:  5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		PoolSize:        10,
		MinIdle:         5,
		IdleTimeout:     5 * time.Minute,
		MaxConnLifetime: 1 * time.Hour,
		DefaultTTL:      15 * time.Minute,
	}

	return s, cfg
}

func TestNewRedisCache_Success(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)

	require.NoError(t, err)
	require.NotNil(t, redisCache)

	_, ok := redisCache.(cachePorts.Cache)
	assert.True(t, ok, "should implement Cache interface")

	assert.NoError(t, redisCache.Close())
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	ctx := context.Background()

	cfg := &config.RedisConfig{
		Host:           "nonexistent.host",
		Port:           12345,
		ConnectTimeout: 100 * time.Millisecond,
		ReadTimeout:    100 * time.Millisecond,
		WriteTimeout:   100 * time.Millisecond,
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg)

	require.Error(t, err)
	assert.Nil(t, redisCache)
}

func TestRedisCache_SetAndGet(t *testing.T) {
	s, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	t.Run("значение сохраняется и читается", func(t *testing.T) {
		err := redisCache.Set(ctx, "profile:user-1", `{"id":"user-1"}`, time.Minute)
		require.NoError(t, err)

		value, err := redisCache.Get(ctx, "profile:user-1")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"user-1"}`, value)
	})

	t.Run("отсутствующий ключ не является ошибкой", func(t *testing.T) {
		value, err := redisCache.Get(ctx, "profile:missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("нулевой TTL заменяется значением по умолчанию", func(t *testing.T) {
		err := redisCache.Set(ctx, "profile:user-2", "cached", 0)
		require.NoError(t, err)

		ttl := s.TTL("profile:user-2")
		assert.Equal(t, cfg.DefaultTTL, ttl)
	})

	t.Run("значение истекает по TTL", func(t *testing.T) {
		err := redisCache.Set(ctx, "profile:user-3", "cached", time.Minute)
		require.NoError(t, err)

		s.FastForward(2 * time.Minute)

		value, err := redisCache.Get(ctx, "profile:user-3")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestRedisCache_Delete(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	err = redisCache.Set(ctx, "profile:user-1", "cached", time.Minute)
	require.NoError(t, err)

	err = redisCache.Delete(ctx, "profile:user-1")
	require.NoError(t, err)

	value, err := redisCache.Get(ctx, "profile:user-1")
	require.NoError(t, err)
	assert.Empty(t, value)
}
