// Package device implements the process-wide GPU capability and
// state-descriptor cache layer described in spec §4.2: a Device
// owns capability/limit discovery plus hash-consed caches for
// samplers and the three fixed-function descriptor structs
// (RasterState, DSState, BlendState), and hands out monotonically
// increasing UIDs that the command recorder uses to detect "same
// handle" without comparing backend objects directly.
//
// All caches are append-only for the lifetime of the Device;
// entries are freed only when the Device itself is destroyed.
package device

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/internal/sdbm"
)

// HashFunc computes a bucket key for a descriptor's canonical byte
// representation. The default is SDBM (internal/sdbm), matching
// the source system's choice; callers may supply their own when
// constructing a Device, e.g. to avoid the fmt-based encoding's
// allocation cost in a hot path.
type HashFunc func(desc any) uint64

// DefaultHash is the SDBM-based default HashFunc. It encodes desc
// with fmt.Sprintf("%#v", desc) before hashing, which is adequate
// for the plain-value descriptor structs hash-consed here (no
// pointers, no slices).
func DefaultHash(desc any) uint64 { return sdbm.HashString(fmt.Sprintf("%#v", desc)) }

// Device owns process-wide GPU capability discovery and the
// hash-consed descriptor/sampler caches. A Device is safe for
// concurrent use by multiple goroutines (creation requests may
// race even though command recording itself is single-threaded,
// per spec §5).
type Device struct {
	limits ghi.Limits
	hash   HashFunc
	uid    atomic.Uint32

	mu       sync.Mutex
	samplers hashCons[ghi.SamplerDesc, ghi.Sampler]
	rasters  hashCons[ghi.RasterState, *ghi.RasterState]
	blends   hashCons[ghi.BlendState, *ghi.BlendState]
	depths   hashCons[ghi.DSState, *ghi.DSState]

	// Counters, mirroring spec §4.3's "number of live ..." State
	// counters but tracked here since pipelines/render
	// passes/framebuffers are created through the Device's GPU.
	nPipeline    atomic.Int64
	nRenderPass  atomic.Int64
	nFramebuf    atomic.Int64
	nXfb         atomic.Int64
	nQueryPool   atomic.Int64
}

// New creates a Device with the given capability limits. If hash
// is nil, DefaultHash is used.
func New(limits ghi.Limits, hash HashFunc) *Device {
	if hash == nil {
		hash = DefaultHash
	}
	d := &Device{limits: limits, hash: hash}
	d.samplers = newHashCons[ghi.SamplerDesc, ghi.Sampler]()
	d.rasters = newHashCons[ghi.RasterState, *ghi.RasterState]()
	d.blends = newHashCons[ghi.BlendState, *ghi.BlendState]()
	d.depths = newHashCons[ghi.DSState, *ghi.DSState]()
	return d
}

// Limits returns the Device's discovered implementation limits.
func (d *Device) Limits() ghi.Limits { return d.limits }

// NextUID returns the next value in the Device's monotonically
// increasing 32-bit UID counter.
func (d *Device) NextUID() uint32 { return d.uid.Add(1) }

// GetOrCreateSampler performs a hash lookup for desc and, on miss,
// calls alloc to create a new backend Sampler and inserts it. On
// hit, it returns the cached handle and alloc is not called.
func (d *Device) GetOrCreateSampler(desc ghi.SamplerDesc, alloc func(ghi.SamplerDesc) (ghi.Sampler, error)) (ghi.Sampler, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.samplers.get(d.hash, desc); ok {
		return s, nil
	}
	s, err := alloc(desc)
	if err != nil {
		return nil, err
	}
	d.samplers.put(d.hash, desc, s)
	return s, nil
}

// GetOrCreateRaster returns the canonical pointer for desc,
// allocating a new cache entry on miss. The returned pointer is
// stable for the Device's lifetime, so command-recorder diffs can
// compare it by identity instead of by value.
func (d *Device) GetOrCreateRaster(desc ghi.RasterState) *ghi.RasterState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.rasters.get(d.hash, desc); ok {
		return p
	}
	p := new(ghi.RasterState)
	*p = desc
	d.rasters.put(d.hash, desc, p)
	return p
}

// GetOrCreateBlend returns the canonical pointer for desc.
func (d *Device) GetOrCreateBlend(desc ghi.BlendState) *ghi.BlendState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.blends.get(d.hash, desc); ok {
		return p
	}
	p := new(ghi.BlendState)
	*p = desc
	d.blends.put(d.hash, desc, p)
	return p
}

// GetOrCreateDS returns the canonical pointer for desc.
func (d *Device) GetOrCreateDS(desc ghi.DSState) *ghi.DSState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.depths.get(d.hash, desc); ok {
		return p
	}
	p := new(ghi.DSState)
	*p = desc
	d.depths.put(d.hash, desc, p)
	return p
}

// Counters returns the Device's live-object counters, in the order
// (pipelines, render passes, framebuffers, transform feedbacks,
// query pools), per spec §4.3.
func (d *Device) Counters() (pipelines, renderPasses, framebufs, xfbs, queryPools int64) {
	return d.nPipeline.Load(), d.nRenderPass.Load(), d.nFramebuf.Load(), d.nXfb.Load(), d.nQueryPool.Load()
}

// NotePipeline adjusts the live-pipeline counter by delta (+1 on
// create, -1 on destroy).
func (d *Device) NotePipeline(delta int64) { d.nPipeline.Add(delta) }

// NoteRenderPass adjusts the live-render-pass counter.
func (d *Device) NoteRenderPass(delta int64) { d.nRenderPass.Add(delta) }

// NoteFramebuf adjusts the live-framebuffer counter.
func (d *Device) NoteFramebuf(delta int64) { d.nFramebuf.Add(delta) }

// NoteXfb adjusts the live-transform-feedback counter.
func (d *Device) NoteXfb(delta int64) { d.nXfb.Add(delta) }

// NoteQueryPool adjusts the live-query-pool counter.
func (d *Device) NoteQueryPool(delta int64) { d.nQueryPool.Add(delta) }
