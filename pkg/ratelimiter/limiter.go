package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Result is the outcome of one Allow call.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request fit in the bucket.
func (r Result) Allowed() bool { return r.Remaining >= 0 }

// RetryAfter is how long a rejected caller should wait. Zero when allowed.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, r.ResetAt.Sub(now))
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastSeen   time.Time
}

// Limiter keeps one in-memory token bucket per key.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// New validates cfg and returns a limiter.
func New(cfg Config) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Limiter{cfg: cfg, now: time.Now, buckets: make(map[string]*bucket)}, nil
}

// Allow takes one token for key. A rejected call does not drain the bucket
// further, so a client that backs off recovers on schedule.
func (l *Limiter) Allow(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Burst, lastRefill: now}
		l.buckets[key] = b
	}
	b.lastSeen = now

	// Refill in whole intervals so the schedule does not drift.
	if n := int(now.Sub(b.lastRefill) / l.cfg.Interval); n > 0 {
		b.tokens = min(b.tokens+min(n, l.cfg.Burst)*l.cfg.Refill, l.cfg.Burst)
		b.lastRefill = b.lastRefill.Add(time.Duration(n) * l.cfg.Interval)
	}

	res := Result{Limit: l.cfg.Burst, ResetAt: b.lastRefill.Add(l.cfg.Interval)}
	if b.tokens == 0 {
		res.Remaining = -1
		return res
	}
	b.tokens--
	res.Remaining = b.tokens
	return res
}

// Sweep drops buckets not seen within StaleAfter and returns how many went.
func (l *Limiter) Sweep() int {
	if l.cfg.StaleAfter <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	n := 0
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.cfg.StaleAfter {
			delete(l.buckets, k)
			n++
		}
	}
	return n
}

// Run sweeps periodically until ctx is done.
func (l *Limiter) Run(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.Sweep()
		}
	}
}
