package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryLimiter_BurstThenRefill(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewInMemoryLimiter(1, time.Second, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "burst exhausted")
	assert.True(t, l.Allow("b"), "keys have separate buckets")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"), "one token refilled")
	assert.False(t, l.Allow("a"))
}

func TestInMemoryLimiter_Prune(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewInMemoryLimiter(10, time.Minute, 5)
	l.now = func() time.Time { return now }

	l.Allow("old")
	now = now.Add(time.Hour)
	l.Allow("fresh")

	assert.Equal(t, 1, l.Prune(30*time.Minute))
	assert.Len(t, l.keys, 1)
	assert.Contains(t, l.keys, "fresh")
}
