package window

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Handle is an open window owned by the Cache while it stays open.
type Handle struct {
	ID     uuid.UUID
	Key    string // key as requested by the caller
	Name   string // fully qualified name
	Window Window
}

func newHandle(key, name string, w Window) *Handle {
	return &Handle{ID: uuid.New(), Key: key, Name: name, Window: w}
}

// Cache tracks open non-dialog windows by qualified name, ignoring case.
// Entries never expire; they leave only through Remove or RemoveIf.
type Cache struct {
	mu    sync.Mutex
	store *gocache.Cache
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{store: gocache.New(gocache.NoExpiration, 0)}
}

// Put stores h under name, silently replacing any previous entry. The
// replaced window is forgotten, not closed.
func (c *Cache) Put(name string, h *Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Set(fold(name), h, gocache.NoExpiration)
}

// Get returns the handle stored under name.
func (c *Cache) Get(name string) (*Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(fold(name))
}

func (c *Cache) get(k string) (*Handle, bool) {
	v, ok := c.store.Get(k)
	if !ok {
		return nil, false
	}
	h, ok := v.(*Handle)
	return h, ok
}

// Remove evicts name.
func (c *Cache) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Delete(fold(name))
}

// Take evicts name and returns what was stored there.
func (c *Cache) Take(name string) (*Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := fold(name)
	h, ok := c.get(k)
	if ok {
		c.store.Delete(k)
	}
	return h, ok
}

// RemoveIf evicts name only while it still holds h.
func (c *Cache) RemoveIf(name string, h *Handle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := fold(name)
	cur, ok := c.get(k)
	if !ok || cur != h {
		return false
	}
	c.store.Delete(k)
	return true
}

// Len returns the number of tracked windows.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.ItemCount()
}

// Names returns the qualified names of tracked windows, sorted.
func (c *Cache) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.store.Items()
	names := make([]string, 0, len(items))
	for _, item := range items {
		if h, ok := item.Object.(*Handle); ok {
			names = append(names, h.Name)
		}
	}
	sort.Strings(names)
	return names
}
