package facts

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_HasTenDistinctEntries(t *testing.T) {
	assert.Len(t, All, 10)

	seen := make(map[string]bool)
	for _, f := range All {
		assert.NotEmpty(t, f)
		assert.False(t, seen[f], "duplicate fact %q", f)
		seen[f] = true
	}
}

func TestRandom_AlwaysFromList(t *testing.T) {
	for i := 0; i < 200; i++ {
		f := Random()
		assert.True(t, slices.Contains(All[:], f), "unexpected fact %q", f)
	}
}

func TestPick_CoversWholeList(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[Pick(r)] = true
	}
	assert.Len(t, seen, len(All))
}
