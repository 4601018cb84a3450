package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

type boundFlag uint8

const (
	boundExact boundFlag = iota
	boundLower
	boundUpper
)

// CacheKey identifies a search node. Packed holds every cell, so two distinct
// boards never share a key.
type CacheKey struct {
	Board      domain.Packed
	Player     domain.PlayerID
	Depth      int
	Maximizing bool
}

type cacheEntry struct {
	score int
	flag  boundFlag
}

// TranspositionCache memoizes search scores for the lifetime of one
// top-level search. Scores produced by a cut-off are stored as bounds and
// are only handed back when they still decide the caller's window.
type TranspositionCache struct {
	entries map[CacheKey]cacheEntry
	hits    int
	misses  int
}

func NewTranspositionCache() *TranspositionCache {
	return &TranspositionCache{entries: make(map[CacheKey]cacheEntry)}
}

// Get returns an exact score stored under key.
func (c *TranspositionCache) Get(key CacheKey) (int, bool) {
	e, ok := c.entries[key]
	if !ok || e.flag != boundExact {
		c.misses++
		return 0, false
	}
	c.hits++
	return e.score, true
}

// Put stores an exact score.
func (c *TranspositionCache) Put(key CacheKey, score int) {
	c.entries[key] = cacheEntry{score: score, flag: boundExact}
}

// Probe returns a stored score if it is usable inside the window (alpha, beta).
func (c *TranspositionCache) Probe(key CacheKey, alpha, beta int) (int, bool) {
	e, ok := c.entries[key]
	if ok {
		switch {
		case e.flag == boundExact,
			e.flag == boundLower && e.score >= beta,
			e.flag == boundUpper && e.score <= alpha:
			c.hits++
			return e.score, true
		}
	}
	c.misses++
	return 0, false
}

// Store records a score searched with the window (alpha, beta), classifying it
// as exact or as a bound.
func (c *TranspositionCache) Store(key CacheKey, score, alpha, beta int) {
	flag := boundExact
	switch {
	case score <= alpha:
		flag = boundUpper
	case score >= beta:
		flag = boundLower
	}
	c.entries[key] = cacheEntry{score: score, flag: flag}
}

func (c *TranspositionCache) Clear() {
	clear(c.entries)
	c.hits, c.misses = 0, 0
}

func (c *TranspositionCache) Len() int { return len(c.entries) }

// Stats reports lookups since the last Clear.
func (c *TranspositionCache) Stats() (hits, misses int) { return c.hits, c.misses }
