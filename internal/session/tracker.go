package session

import (
	"sync"
	"time"
)

type generation struct {
	current uint64
	touched time.Time
}

// Tracker numbers the gallery requests of each client so that only the most
// recent one gets to replace the gallery.
type Tracker struct {
	mu      sync.Mutex
	clients map[string]*generation
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		clients: make(map[string]*generation),
		now:     time.Now,
	}
}

// Begin starts a new request for id and returns its generation.
func (t *Tracker) Begin(id string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	g, ok := t.clients[id]
	if !ok {
		g = &generation{}
		t.clients[id] = g
	}
	g.current++
	g.touched = t.now()
	return g.current
}

// IsCurrent reports whether gen is still the latest request of id.
func (t *Tracker) IsCurrent(id string, gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	g, ok := t.clients[id]
	return ok && g.current == gen
}

// Prune forgets clients idle for longer than idle and returns how many.
func (t *Tracker) Prune(idle time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-idle)
	removed := 0
	for id, g := range t.clients {
		if g.touched.Before(cutoff) {
			delete(t.clients, id)
			removed++
		}
	}
	return removed
}

func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.clients)
}
