package raster

import (
	"hash/fnv"
	"sync"
)

// DefaultFaceCacheLimit is the default maximum number of cached faces.
const DefaultFaceCacheLimit = 32

// faceKey uniquely identifies an instantiated face.
type faceKey struct {
	// hash is the FNV-64a hash of the font content.
	hash uint64

	size  float64
	style Style
	cfg   Config
}

// faceEntry is an internal cache entry in the LRU list.
type faceEntry struct {
	key  faceKey
	face Face

	prev *faceEntry
	next *faceEntry
}

// FaceCache is an explicit cache of instantiated faces keyed by font
// content hash, size, style and backend configuration.
//
// It replaces implicit process-wide font caching: the cache is owned by
// whoever constructs it, shared deliberately, and released with Purge.
// FaceCache is safe for concurrent use.
type FaceCache struct {
	mu      sync.Mutex
	limit   int
	entries map[faceKey]*faceEntry

	// head is the most recently used entry, tail the least.
	head *faceEntry
	tail *faceEntry

	hits   uint64
	misses uint64
}

// NewFaceCache creates a cache holding at most limit faces.
// A non-positive limit selects DefaultFaceCacheLimit.
func NewFaceCache(limit int) *FaceCache {
	if limit <= 0 {
		limit = DefaultFaceCacheLimit
	}
	return &FaceCache{
		limit:   limit,
		entries: make(map[faceKey]*faceEntry),
	}
}

// Get returns a face for the font content at the given size and style,
// opening and caching it on first use. Open errors are not cached.
func (c *FaceCache) Get(data []byte, size float64, style Style, opts ...Option) (Face, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	key := faceKey{hash: hashBytes(data), size: size, style: style, cfg: cfg}

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.moveToFront(e)
		c.hits++
		face := e.face
		c.mu.Unlock()
		return face, nil
	}
	c.misses++
	c.mu.Unlock()

	// Open outside the lock; parsing a font is slow.
	face, err := Open(data, size, style, opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have opened the same face meanwhile.
	if e, ok := c.entries[key]; ok {
		c.moveToFront(e)
		return e.face, nil
	}

	e := &faceEntry{key: key, face: face}
	c.entries[key] = e
	c.pushFront(e)
	for len(c.entries) > c.limit {
		c.evictTail()
	}
	return face, nil
}

// Len returns the number of cached faces.
func (c *FaceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cache hit and miss counts.
func (c *FaceCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Purge releases every cached face.
func (c *FaceCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[faceKey]*faceEntry)
	c.head = nil
	c.tail = nil
}

// pushFront inserts e at the head of the LRU list.
// Must be called with the lock held.
func (c *FaceCache) pushFront(e *faceEntry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

// moveToFront marks e as most recently used.
// Must be called with the lock held.
func (c *FaceCache) moveToFront(e *faceEntry) {
	if c.head == e {
		return
	}
	// Unlink.
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	if c.tail == e {
		c.tail = e.prev
	}
	c.pushFront(e)
}

// evictTail removes the least recently used entry.
// Must be called with the lock held.
func (c *FaceCache) evictTail() {
	e := c.tail
	if e == nil {
		return
	}
	logger().Debug("raster: evicting cached face", "size", e.key.size, "style", e.key.style.String())
	if e.prev != nil {
		e.prev.next = nil
	}
	c.tail = e.prev
	if c.head == e {
		c.head = nil
	}
	delete(c.entries, e.key)
}

// hashBytes returns the FNV-64a hash of data.
func hashBytes(data []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(data) // fnv.Write never returns an error
	return h.Sum64()
}
