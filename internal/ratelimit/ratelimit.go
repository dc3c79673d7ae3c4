package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter defines the interface for rate limiting
type Limiter interface {
	Allow(key string) bool
	// Prune drops limiters not used for longer than idle and returns how many.
	Prune(idle time.Duration) int
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// InMemoryLimiter keeps one token bucket per key in memory
type InMemoryLimiter struct {
	keys map[string]*entry
	mu   sync.Mutex
	r    rate.Limit // Rate of adding tokens
	b    int        // Bucket size
	now  func() time.Time
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(10, time.Minute, 5) -> 10 fetches a minute per client, burst of 5
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	return &InMemoryLimiter{
		keys: make(map[string]*entry),
		r:    rate.Every(per / time.Duration(requests)),
		b:    burst,
		now:  time.Now,
	}
}

var _ Limiter = (*InMemoryLimiter)(nil)

// Allow checks if key is allowed to perform an action
func (l *InMemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, exists := l.keys[key]
	if !exists {
		e = &entry{limiter: rate.NewLimiter(l.r, l.b)}
		l.keys[key] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

func (l *InMemoryLimiter) Prune(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for key, e := range l.keys {
		if e.lastSeen.Before(cutoff) {
			delete(l.keys, key)
			removed++
		}
	}
	return removed
}
