package preset

import (
	"container/list"
	"sync"
)

// lruCache is a thread-safe LRU cache of compiled programs keyed by expression
type lruCache struct {
	size  int
	order *list.List
	items map[string]*list.Element
	mu    sync.Mutex
}

type cacheEntry struct {
	expression string
	program    Program
}

func newLRUCache(size int) *lruCache {
	return &lruCache{
		size:  size,
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

// Get returns the program for expression and marks it most recently used
func (c *lruCache) Get(expression string) (Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.items[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(node)
	return node.Value.(*cacheEntry).program, true
}

// Put adds or refreshes a program, evicting the least recently used one when full
func (c *lruCache) Put(expression string, program Program) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.items[expression]; ok {
		c.order.MoveToFront(node)
		node.Value.(*cacheEntry).program = program
		return
	}

	c.items[expression] = c.order.PushFront(&cacheEntry{expression: expression, program: program})
	if c.order.Len() > c.size {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).expression)
	}
}

// Clear removes all programs
func (c *lruCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
}

// Len returns the number of cached programs
func (c *lruCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
