package usecase

import (
	"sync"

	"github.com/3-lines-studio/vibe-landing/internal/core"
)

type renderCache struct {
	mu      sync.RWMutex
	entries map[string]core.RenderedPage
}

func newRenderCache() *renderCache {
	return &renderCache{
		entries: make(map[string]core.RenderedPage),
	}
}

func (c *renderCache) get(key string) (core.RenderedPage, bool) {
	c.mu.RLock()
	page, exists := c.entries[key]
	c.mu.RUnlock()
	return page, exists
}

func (c *renderCache) set(key string, page core.RenderedPage) {
	c.mu.Lock()
	c.entries[key] = page
	c.mu.Unlock()
}

func (c *renderCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
