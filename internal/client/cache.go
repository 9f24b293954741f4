package client

import (
	"sync"

	"github.com/todolist/core/internal/domain/entities"
)

// todosCacheKey is the fixed resource key the list cache is held under.
const todosCacheKey = "todos"

// ListCache holds the most recently fetched todo collection. A successful
// mutation invalidates it, so the next read goes back to the server instead of
// patching the cached set in place.
type ListCache struct {
	mu    sync.Mutex
	key   string
	todos []*entities.Todo
	fresh bool
}

// NewListCache creates an empty, stale cache
func NewListCache() *ListCache {
	return &ListCache{key: todosCacheKey}
}

// Key returns the resource key the cache is bound to
func (c *ListCache) Key() string {
	return c.key
}

// Get returns the cached collection and whether it is still fresh
func (c *ListCache) Get() ([]*entities.Todo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fresh {
		return nil, false
	}
	return c.todos, true
}

// Set stores a freshly fetched collection
func (c *ListCache) Set(todos []*entities.Todo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.todos = todos
	c.fresh = true
}

// Invalidate marks the cached collection stale
func (c *ListCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.todos = nil
	c.fresh = false
}
