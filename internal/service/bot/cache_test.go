package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

func TestTranspositionCacheExactEntries(t *testing.T) {
	c := NewTranspositionCache()
	key := CacheKey{Board: domain.NewStandardBoard().Pack(), Player: domain.Player1, Depth: 3, Maximizing: true}

	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Put(key, 42)
	score, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, 42, score)

	other := key
	other.Maximizing = false
	_, ok = c.Get(other)
	assert.False(t, ok)

	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, misses)
}

func TestTranspositionCacheBounds(t *testing.T) {
	c := NewTranspositionCache()
	lower := CacheKey{Depth: 1}
	upper := CacheKey{Depth: 2}
	exact := CacheKey{Depth: 3}

	c.Store(lower, 50, 0, 40) // failed high
	c.Store(upper, -5, 0, 40) // failed low
	c.Store(exact, 20, 0, 40)

	_, ok := c.Probe(lower, 0, 60)
	assert.False(t, ok, "lower bound below beta cannot decide")
	score, ok := c.Probe(lower, 0, 50)
	assert.True(t, ok)
	assert.Equal(t, 50, score)

	_, ok = c.Probe(upper, -10, 40)
	assert.False(t, ok, "upper bound above alpha cannot decide")
	score, ok = c.Probe(upper, -5, 40)
	assert.True(t, ok)
	assert.Equal(t, -5, score)

	score, ok = c.Probe(exact, 100, 200)
	assert.True(t, ok)
	assert.Equal(t, 20, score)

	_, ok = c.Get(lower)
	assert.False(t, ok)
}

func TestTranspositionCacheClear(t *testing.T) {
	c := NewTranspositionCache()
	c.Put(CacheKey{Depth: 1}, 1)
	c.Put(CacheKey{Depth: 2}, 2)
	c.Get(CacheKey{Depth: 1})
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	hits, misses := c.Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}
