package reports_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liekit/pkg/reports"
)

// fakeRedis implements the handful of commands the cache issues.
type fakeRedis struct {
	redis.Cmdable

	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.err)
}

func TestCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := reports.RedisConfig{KeyPrefix: "test:", TTL: time.Hour}

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()
		rdb := newFakeRedis()
		c := reports.NewCache(rdb, cfg)

		require.NoError(t, c.Set(ctx, verdict("a", "h", time.Now())))
		assert.Contains(t, rdb.data, "test:h")
		assert.Equal(t, time.Hour, rdb.ttl["test:h"])

		got, err := c.Get(ctx, "h")
		require.NoError(t, err)
		assert.Equal(t, "a", got.ID)
	})

	t.Run("miss", func(t *testing.T) {
		t.Parallel()
		c := reports.NewCache(newFakeRedis(), cfg)
		_, err := c.Get(ctx, "h")
		assert.ErrorIs(t, err, reports.ErrNotFound)
	})

	t.Run("server errors", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection refused")
		rdb := newFakeRedis()
		rdb.err = boom
		c := reports.NewCache(rdb, cfg)

		assert.ErrorIs(t, c.Set(ctx, verdict("a", "h", time.Now())), boom)
		_, err := c.Get(ctx, "h")
		assert.ErrorIs(t, err, boom)
		assert.False(t, reports.IsNotFound(err))
		assert.ErrorIs(t, c.Healthcheck()(ctx), reports.ErrHealthcheckFailed)
	})

	t.Run("rejects verdict without hash", func(t *testing.T) {
		t.Parallel()
		c := reports.NewCache(newFakeRedis(), cfg)
		assert.ErrorIs(t, c.Set(ctx, verdict("a", "", time.Now())), reports.ErrInvalidReport)
	})
}
