package reports

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/liekit/pkg/lies"
)

type localEntry struct {
	hash    string
	verdict lies.Verdict
	expires time.Time
}

// LocalCache is an in-process verdict cache for deployments without Redis.
// It keeps the most recently used hashes; older ones are evicted once the
// capacity is reached.
type LocalCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
}

var _ VerdictCache = (*LocalCache)(nil)

// NewLocalCache holds up to capacity verdicts, each for ttl. A zero ttl
// keeps entries until evicted. It panics on a non-positive capacity.
func NewLocalCache(capacity int, ttl time.Duration) *LocalCache {
	if capacity <= 0 {
		panic("reports: local cache capacity must be positive")
	}
	return &LocalCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *LocalCache) Set(_ context.Context, v lies.Verdict) error {
	if v.Hash == "" {
		return ErrInvalidReport
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var expires time.Time
	if c.ttl > 0 {
		expires = c.now().Add(c.ttl)
	}

	if el, ok := c.items[v.Hash]; ok {
		e := el.Value.(*localEntry)
		e.verdict, e.expires = v, expires
		c.order.MoveToFront(el)
		return nil
	}

	c.items[v.Hash] = c.order.PushFront(&localEntry{hash: v.Hash, verdict: v, expires: expires})
	if c.order.Len() > c.capacity {
		c.remove(c.order.Back())
	}
	return nil
}

func (c *LocalCache) Get(_ context.Context, hash string) (lies.Verdict, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[hash]
	if !ok {
		return lies.Verdict{}, ErrNotFound
	}
	e := el.Value.(*localEntry)
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		c.remove(el)
		return lies.Verdict{}, ErrNotFound
	}
	c.order.MoveToFront(el)
	return e.verdict, nil
}

// Len reports the number of cached verdicts, expired ones included.
func (c *LocalCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// must hold mu
func (c *LocalCache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*localEntry).hash)
}
