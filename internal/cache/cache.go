package cache

import (
	"sync"
	"time"

	"github.com/ashisht1812/Fotush-Web/internal/ui"
)

type entry struct {
	state ui.State
	exp   time.Time
}

// Cache keeps visitor state in memory. Entries expire ttl after their last
// write.
type Cache struct {
	mu       sync.RWMutex
	visitors map[string]entry
	ttl      time.Duration
	now      func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		visitors: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (c *Cache) GetVisitor(id string) (ui.State, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.visitors[id]
	if !ok || c.now().After(e.exp) {
		return ui.State{}, false
	}
	return e.state, true
}

func (c *Cache) SetVisitor(id string, st ui.State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.visitors[id] = entry{state: st, exp: c.now().Add(c.ttl)}
}

// UpdateVisitor runs fn on the visitor's state while holding the write lock.
// Missing or expired entries start from initial. When fn fails the stored
// entry is left as it was.
func (c *Cache) UpdateVisitor(id string, initial ui.State, fn func(*ui.State) error) (ui.State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := initial
	if e, ok := c.visitors[id]; ok && !c.now().After(e.exp) {
		st = e.state
	}
	if err := fn(&st); err != nil {
		return ui.State{}, err
	}
	c.visitors[id] = entry{state: st, exp: c.now().Add(c.ttl)}
	return st, nil
}

func (c *Cache) InvalidateVisitor(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.visitors, id)
}

// Purge drops expired entries and returns how many were removed.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for id, e := range c.visitors {
		if now.After(e.exp) {
			delete(c.visitors, id)
			n++
		}
	}
	return n
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.visitors)
}
