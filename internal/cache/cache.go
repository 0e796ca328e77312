// Package cache holds normalized query results for the todos list, keyed by
// the sort variable the query was issued with.
package cache

import (
	"sync"

	"github.com/hy4ri/todo-tui/internal/api"
)

// Cache stores the last todos result per sort order.
// A Cache is owned by whoever creates it and is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[api.SortOrder][]api.Todo
	version int64
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[api.SortOrder][]api.Todo)}
}

// ReadTodos returns a copy of the cached list for sort.
// The second result is false when the query has never been written.
func (c *Cache) ReadTodos(sort api.SortOrder) ([]api.Todo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	todos, ok := c.entries[sort]
	if !ok {
		return nil, false
	}
	return cloneTodos(todos), true
}

// WriteTodos replaces the cached list for sort.
func (c *Cache) WriteTodos(sort api.SortOrder, todos []api.Todo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[sort] = cloneTodos(todos)
	c.version++
}

// RemoveTodo drops the entry with the given id from every cached list and
// returns how many lists changed. At most one entry is removed per list.
func (c *Cache) RemoveTodo(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := 0
	for sort, todos := range c.entries {
		if filtered, ok := RemoveByID(todos, id); ok {
			c.entries[sort] = filtered
			changed++
		}
	}
	if changed > 0 {
		c.version++
	}
	return changed
}

// Version increases on every write; renderers use it to detect stale output.
func (c *Cache) Version() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// RemoveByID returns todos without the first entry whose ID matches id.
// The input slice is not modified.
func RemoveByID(todos []api.Todo, id string) ([]api.Todo, bool) {
	for i, t := range todos {
		if t.ID != id {
			continue
		}
		out := make([]api.Todo, 0, len(todos)-1)
		out = append(out, todos[:i]...)
		out = append(out, todos[i+1:]...)
		return out, true
	}
	return todos, false
}

func cloneTodos(todos []api.Todo) []api.Todo {
	out := make([]api.Todo, len(todos))
	copy(out, todos)
	return out
}
