package reports

import "time"

// SetClock replaces the cache's time source.
func (c *LocalCache) SetClock(now func() time.Time) { c.now = now }
