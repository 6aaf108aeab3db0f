package ratelimiter

import (
	"fmt"
	"time"
)

// Config is a token bucket per client: Burst tokens at most, Refill tokens
// added every Interval.
type Config struct {
	Burst      int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
	Refill     int           `env:"RATE_LIMIT_REFILL" envDefault:"1"`
	Interval   time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"1s"`
	StaleAfter time.Duration `env:"RATE_LIMIT_STALE_AFTER" envDefault:"1h"`    // StaleAfter drops buckets idle this long.
	TrustProxy bool          `env:"RATE_LIMIT_TRUST_PROXY" envDefault:"false"` // TrustProxy keys clients by forwarding headers.
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{Burst: 10, Refill: 1, Interval: time.Second, StaleAfter: time.Hour}
}

func (c Config) validate() error {
	if c.Burst <= 0 {
		return fmt.Errorf("%w: burst must be positive, got %d", ErrInvalidConfig, c.Burst)
	}
	if c.Refill <= 0 {
		return fmt.Errorf("%w: refill must be positive, got %d", ErrInvalidConfig, c.Refill)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidConfig, c.Interval)
	}
	return nil
}
