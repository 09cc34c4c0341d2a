package source

import (
	"os"
	"sync"
	"time"

	"github.com/signadot/docdiff/debug"
)

// Cache memoizes document loads by path.  An entry is reused while the
// file's size and modification time are unchanged and reloaded
// otherwise.  The zero loader means pick by extension per path.
type Cache struct {
	loader Loader

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	doc     *Document
	size    int64
	modTime time.Time
}

func NewCache(loader Loader) *Cache {
	return &Cache{
		loader:  loader,
		entries: map[string]*cacheEntry{},
	}
}

func (c *Cache) Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[path]; ok &&
		e.size == info.Size() && e.modTime.Equal(info.ModTime()) {
		if debug.Cache() {
			debug.Logf("cache hit %s\n", path)
		}
		return e.doc, nil
	}
	if debug.Cache() {
		debug.Logf("cache miss %s\n", path)
	}
	loader := c.loader
	if loader == nil {
		loader = ForPath(path)
	}
	doc, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	c.entries[path] = &cacheEntry{
		doc:     doc,
		size:    info.Size(),
		modTime: info.ModTime(),
	}
	return doc, nil
}

// Invalidate drops the entry for path, if any.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
