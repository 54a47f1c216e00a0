// Package embedding provides semantic phrase embeddings for the similarity engine.
package embedding

import (
	"context"
	"sync"
)

// Embedder turns a phrase into a fixed-length numeric vector.
type Embedder interface {
	Embed(ctx context.Context, phrase string) ([]float32, error)
}

// Cache memoizes an inner embedder by exact phrase. The pairwise similarity
// loop looks up the same phrases repeatedly (every resume skill against every
// job skill), and the skill vocabulary is static, so a process-lifetime cache
// keeps the dominant cost bounded by the number of distinct phrases.
type Cache struct {
	inner Embedder

	mu      sync.RWMutex
	vectors map[string][]float32
}

// NewCache wraps inner with a phrase-keyed cache.
func NewCache(inner Embedder) *Cache {
	return &Cache{inner: inner, vectors: make(map[string][]float32)}
}

// Embed returns the cached vector for phrase, computing it once on miss.
func (c *Cache) Embed(ctx context.Context, phrase string) ([]float32, error) {
	c.mu.RLock()
	vec, ok := c.vectors[phrase]
	c.mu.RUnlock()
	if ok {
		return vec, nil
	}

	vec, err := c.inner.Embed(ctx, phrase)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.vectors[phrase] = vec
	c.mu.Unlock()
	return vec, nil
}

// Warm precomputes vectors for phrases, stopping at the first error. Intended
// for the static skill vocabulary at startup.
func (c *Cache) Warm(ctx context.Context, phrases []string) error {
	for _, phrase := range phrases {
		if _, err := c.Embed(ctx, phrase); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of cached vectors.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vectors)
}
