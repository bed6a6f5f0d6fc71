package archive

import (
	"hash/maphash"
	"sync"

	"github.com/dgryski/go-tinylfu"
)

var cacheSeed = maphash.MakeSeed()

func cacheHash(id uint32) uint64 {
	return maphash.Comparable(cacheSeed, id)
}

// decodeCache holds decompressed entry bodies keyed by entry id, avoiding a
// re-decode when the same id is requested again shortly after. It is nil
// when caching is disabled (the default), in which case every lookup is a
// cache miss. A non-nil cache serialises get and add under mu, so it may be
// shared by concurrent Extract calls.
type decodeCache struct {
	mu sync.Mutex
	t  *tinylfu.T[uint32, []byte]
}

func newDecodeCache(size int) *decodeCache {
	if size <= 0 {
		return nil
	}
	return &decodeCache{t: tinylfu.New[uint32, []byte](size, size*10, cacheHash)}
}

func (c *decodeCache) get(id uint32) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t.Get(id)
}

func (c *decodeCache) add(id uint32, data []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.Add(id, data)
}
