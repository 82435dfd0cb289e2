package graph

import (
	"sync"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/internal/bitm"
)

type poolEntry struct {
	desc ghi.TextureDesc
	tex  ghi.Texture
	free bool
}

// pool is the frame graph's transient-texture free-list: a realize
// request matches by type, internal format, resolution, sample
// count + fixed-sample-location flag, swizzle, and mip count; first
// match wins. On miss, a new texture is allocated and owned by the
// pool until the graph is destroyed or ResetResources is called.
//
// occupied tracks, per slot in entries, whether that slot holds a
// live texture (as opposed to one that has been trimmed by
// Graph.Resize); it is a bitm.Bitm rather than a plain slice length
// check so that trimmed slots can be reused without compacting
// entries and invalidating other slots' indices.
type pool struct {
	mu       sync.Mutex
	gpu      ghi.GPU
	entries  []poolEntry
	occupied bitm.Bitm[uint32]
}

func newPool(gpu ghi.GPU) *pool { return &pool{gpu: gpu} }

func (p *pool) acquire(desc ghi.TextureDesc) (ghi.Texture, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.entries {
		e := &p.entries[i]
		if e.free && textureDescEqual(e.desc, desc) {
			e.free = false
			return e.tex, nil
		}
	}

	tex, err := p.gpu.NewTexture(&desc)
	if err != nil {
		return nil, err
	}

	idx, ok := p.occupied.Search()
	if !ok {
		p.occupied.Grow(1)
		idx, _ = p.occupied.Search()
	}
	p.occupied.Set(idx)
	for len(p.entries) <= idx {
		p.entries = append(p.entries, poolEntry{})
	}
	p.entries[idx] = poolEntry{desc: desc, tex: tex}
	return tex, nil
}

func (p *pool) release(tex ghi.Texture) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.entries {
		if p.entries[i].tex == tex {
			p.entries[i].free = true
			return
		}
	}
}

// trimFree destroys and drops every currently-free entry, called on
// Graph.Resize so that screen-relative transient attachments are
// recreated at the new resolution rather than matched against
// stale-sized free entries.
func (p *pool) trimFree() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.entries {
		e := &p.entries[i]
		if e.free && e.tex != nil {
			e.tex.Destroy()
			p.occupied.Unset(i)
			*e = poolEntry{}
		}
	}
}

// reset destroys every owned texture, including ones currently
// checked out; callers must ensure no task holds a live reference.
func (p *pool) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.entries {
		if p.entries[i].tex != nil {
			p.entries[i].tex.Destroy()
		}
	}
	p.entries = p.entries[:0]
	p.occupied = bitm.Bitm[uint32]{}
}

func textureDescEqual(a, b ghi.TextureDesc) bool {
	return a.Type == b.Type &&
		a.Format == b.Format &&
		a.Size == b.Size &&
		a.Samples == b.Samples &&
		a.FixedSampleLocations == b.FixedSampleLocations &&
		a.Swizzle == b.Swizzle &&
		a.Levels == b.Levels
}
