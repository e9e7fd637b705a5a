package services

import (
	"path/filepath"
	"sync"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
)

// TransferCache remembers the most recently loaded transfer object.
// It holds a single entry keyed by descriptor path; the owner decides when to invalidate it.
type TransferCache struct {
	mu   sync.Mutex
	last *domain.TransferObject
}

// NewTransferCache creates an empty cache
func NewTransferCache() *TransferCache {
	return &TransferCache{}
}

// Get returns the cached object when its path matches
func (c *TransferCache) Get(path string) (*domain.TransferObject, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last == nil || cacheKey(c.last.Path()) != cacheKey(path) {
		return nil, false
	}
	return c.last, true
}

// Put replaces the cached object
func (c *TransferCache) Put(t *domain.TransferObject) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = t
}

// Invalidate drops the cached object if it was loaded from path
func (c *TransferCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last != nil && cacheKey(c.last.Path()) == cacheKey(path) {
		c.last = nil
	}
}

// Clear drops the cached object
func (c *TransferCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = nil
}

func cacheKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
