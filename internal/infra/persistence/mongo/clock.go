package mongo

import (
	"sync"
	"time"
)

// clock hands out UTC timestamps that never go backwards within the process.
// Values are truncated to milliseconds, the precision BSON dates keep, so a
// returned entity equals what a later read yields.
type clock struct {
	mu   sync.Mutex
	last time.Time
}

var defaultClock = &clock{}

func (c *clock) Now() time.Time {
	now := time.Now().UTC().Truncate(time.Millisecond)

	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Before(c.last) {
		return c.last
	}
	c.last = now

	return now
}
