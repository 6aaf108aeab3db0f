package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/liekit/pkg/lies"
)

type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the URL of the database. It should be in the format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"liekit:verdict:"` // KeyPrefix namespaces cached verdicts.
	TTL            time.Duration `env:"REDIS_VERDICT_TTL" envDefault:"24h"`            // TTL bounds how long a verdict stays cached. Zero keeps it forever.
}

// ConnectRedis parses the URL and pings until the server answers or the
// connect timeout runs out.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// Cache maps a verdict hash to the latest verdict seen with that hash.
type Cache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewCache wraps a redis client.
func NewCache(client redis.Cmdable, cfg RedisConfig) *Cache {
	return &Cache{client: client, prefix: cfg.KeyPrefix, ttl: cfg.TTL}
}

// Set caches v under its hash.
func (c *Cache) Set(ctx context.Context, v lies.Verdict) error {
	if err := validate(v); err != nil {
		return err
	}
	data, err := encode(v)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key(v.Hash), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache verdict %s: %w", v.Hash, err)
	}
	return nil
}

// Get returns the cached verdict for hash or ErrNotFound.
func (c *Cache) Get(ctx context.Context, hash string) (lies.Verdict, error) {
	data, err := c.client.Get(ctx, c.key(hash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return lies.Verdict{}, ErrNotFound
		}
		return lies.Verdict{}, fmt.Errorf("read cached verdict %s: %w", hash, err)
	}
	return decode(data)
}

// Healthcheck pings the server.
func (c *Cache) Healthcheck() Healthcheck {
	return func(ctx context.Context) error {
		if err := c.client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

func (c *Cache) key(hash string) string {
	return c.prefix + hash
}
