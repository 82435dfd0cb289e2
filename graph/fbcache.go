package graph

import (
	"sync"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/internal/sdbm"
)

type fbEntry struct {
	key uint64
	desc ghi.FramebufDesc
	fb   ghi.Framebuf
}

// fbCache caches concrete Framebufs keyed by the ordered tuple of
// attachment identities (resource id proxy via texture UID, layer,
// level, kind). A fresh lookup additionally compares width, height,
// attachment count and depth/stencil presence before accepting a
// hash match, since distinct attachment tuples may collide.
type fbCache struct {
	mu      sync.Mutex
	gpu     ghi.GPU
	buckets map[uint64][]*fbEntry
}

func newFBCache(gpu ghi.GPU) *fbCache {
	return &fbCache{gpu: gpu, buckets: make(map[uint64][]*fbEntry)}
}

func fbKey(desc ghi.FramebufDesc) uint64 {
	h := sdbm.Hash(nil)
	mix := func(v uint64) {
		var b [8]byte
		for i := range b {
			b[i] = byte(v >> (8 * i))
		}
		h ^= sdbm.Hash(b[:])*31 + 1
	}
	for _, c := range desc.Color {
		mix(uint64(c.Texture.UID()))
		mix(uint64(c.Layer))
		mix(uint64(c.Level))
		mix(uint64(c.Kind))
	}
	if desc.DS != nil {
		mix(uint64(desc.DS.Texture.UID()))
		mix(uint64(desc.DS.Layer))
		mix(uint64(desc.DS.Level))
		mix(uint64(desc.DS.Kind))
	}
	return h
}

func fbDescEqual(a, b ghi.FramebufDesc) bool {
	if a.Width != b.Width || a.Height != b.Height || len(a.Color) != len(b.Color) {
		return false
	}
	if (a.DS == nil) != (b.DS == nil) {
		return false
	}
	for i := range a.Color {
		if !attachRefEqual(a.Color[i], b.Color[i]) {
			return false
		}
	}
	if a.DS != nil && !attachRefEqual(*a.DS, *b.DS) {
		return false
	}
	return true
}

func attachRefEqual(a, b ghi.AttachmentRef) bool {
	return a.Texture.UID() == b.Texture.UID() && a.Layer == b.Layer && a.Level == b.Level && a.Kind == b.Kind
}

// get returns the cached Framebuf for desc, creating and inserting
// one on miss.
func (c *fbCache) get(desc ghi.FramebufDesc) (ghi.Framebuf, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := fbKey(desc)
	for _, e := range c.buckets[key] {
		if fbDescEqual(e.desc, desc) {
			return e.fb, nil
		}
	}

	fb, err := c.gpu.NewFramebuf(&desc)
	if err != nil {
		return nil, err
	}
	c.buckets[key] = append(c.buckets[key], &fbEntry{key: key, desc: desc, fb: fb})
	return fb, nil
}

// reset destroys every cached framebuffer and clears the cache,
// called from Graph.ResetResources and Graph.Resize.
func (c *fbCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, bucket := range c.buckets {
		for _, e := range bucket {
			e.fb.Destroy()
		}
	}
	c.buckets = make(map[uint64][]*fbEntry)
}
