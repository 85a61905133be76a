package localstore

import (
	"fmt"
	"sync"
	"time"
)

// idGenerator produces "{prefix}_{millis}" identifiers from a monotonic
// millisecond counter, so rapid successive creates within the same
// millisecond cannot collide.
type idGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDGenerator(now func() time.Time) *idGenerator {
	if now == nil {
		now = time.Now
	}
	return &idGenerator{now: now}
}

func (g *idGenerator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("%s_%d", prefix, ms)
}
