package cmd

import "github.com/ardentgfx/ghi"

// BindVertexBuffer binds buf at the given slot of the current
// VAO's vertex-buffer bindings. It is a no-op when both (buf.UID,
// offset) already equal the per-slot cache, per spec §4.4.
func (r *Recorder) BindVertexBuffer(slot int, buf ghi.Buffer, offset int64) {
	v := r.State.VAO
	if v == nil {
		r.Backend.BindVertexBuffer(slot, buf, offset)
		return
	}
	uid, off := v.SlotBuf(slot)
	var wantUID uint32
	if buf != nil {
		wantUID = buf.UID()
	}
	if uid == wantUID && off == offset {
		return
	}
	r.Backend.BindVertexBuffer(slot, buf, offset)
	v.SetSlotBuf(slot, wantUID, offset)
}

// BindVertexBuffers is the multi-bind path: it skips the whole
// backend call when no slot in [start, start+len(bufs)) changed.
func (r *Recorder) BindVertexBuffers(start int, bufs []ghi.Buffer, offsets []int64) {
	v := r.State.VAO
	if v == nil {
		r.Backend.BindVertexBuffers(start, bufs, offsets)
		return
	}
	changed := false
	for i := range bufs {
		uid, off := v.SlotBuf(start + i)
		var wantUID uint32
		if bufs[i] != nil {
			wantUID = bufs[i].UID()
		}
		if uid != wantUID || off != offsets[i] {
			changed = true
			break
		}
	}
	if !changed {
		return
	}
	r.Backend.BindVertexBuffers(start, bufs, offsets)
	for i := range bufs {
		var wantUID uint32
		if bufs[i] != nil {
			wantUID = bufs[i].UID()
		}
		v.SetSlotBuf(start+i, wantUID, offsets[i])
	}
}

// BindIndexBuffer binds buf as the index buffer. The bind is
// cached per-VAO by buffer UID, per spec §4.4.
func (r *Recorder) BindIndexBuffer(format ghi.IndexFmt, buf ghi.Buffer, offset int64) {
	v := r.State.VAO
	var wantUID uint32
	if buf != nil {
		wantUID = buf.UID()
	}
	if v != nil && v.IndexBufUID() == wantUID && r.State.IndexBufUID == wantUID && r.State.IndexBufOff == offset {
		return
	}
	r.Backend.BindIndexBuffer(buf, int(format), offset)
	if v != nil {
		v.SetIndexBufUID(wantUID)
	}
	r.State.IndexBufUID = wantUID
	r.State.IndexBufOff = offset
}

// IndexFmt is the index-buffer element size, in bytes (2 or 4).
type IndexFmt = ghi.IndexFmt

// ResourceSlots bundles one call's worth of shader-resource
// bindings across the four kinds named in spec §4.4 ("Shader
// resources"): buffers, samplers, textures and images.
type ResourceSlots struct {
	Buffers  []ghi.Buffer
	BufOff   []int64
	BufSize  []int64
	Samplers []ghi.Sampler
	Textures []ghi.Texture
	Images   []ghi.Texture
}

// BindResources iterates (buffers, samplers, textures, images);
// for each slot it compares the cached handle and, on miss, emits
// the corresponding bind call. Ranged buffer bindings bypass the
// cache entirely, since the same handle may be bound with a
// different size.
func (r *Recorder) BindResources(startSlot int, res ResourceSlots) {
	s := r.State
	t := &s.Shader
	ensure := func(n int) {
		for len(t.BufferUID) < n {
			t.BufferUID = append(t.BufferUID, 0)
			t.BufferOff = append(t.BufferOff, -1)
		}
		for len(t.SamplerUID) < n {
			t.SamplerUID = append(t.SamplerUID, 0)
		}
		for len(t.TextureUID) < n {
			t.TextureUID = append(t.TextureUID, 0)
		}
		for len(t.ImageUID) < n {
			t.ImageUID = append(t.ImageUID, 0)
		}
	}

	for i, buf := range res.Buffers {
		slot := startSlot + i
		ensure(slot + 1)
		hasRange := res.BufSize != nil && res.BufSize[i] > 0
		if hasRange {
			r.Backend.BindBufferRange(slot, buf, res.BufOff[i], res.BufSize[i])
			continue
		}
		var uid uint32
		if buf != nil {
			uid = buf.UID()
		}
		if t.BufferUID[slot] == uid {
			continue
		}
		r.Backend.BindBufferBase(slot, buf)
		t.BufferUID[slot] = uid
	}

	for i, splr := range res.Samplers {
		slot := startSlot + i
		ensure(slot + 1)
		uid, ok := splrUID(splr)
		if ok && t.SamplerUID[slot] == uid {
			continue
		}
		r.Backend.BindSampler(slot, splr)
		t.SamplerUID[slot] = uid
	}

	for i, tex := range res.Textures {
		slot := startSlot + i
		ensure(slot + 1)
		var uid uint32
		if tex != nil {
			uid = tex.UID()
		}
		if t.TextureUID[slot] == uid {
			continue
		}
		r.Backend.BindTextureUnit(slot, tex)
		t.TextureUID[slot] = uid
	}

	for i, img := range res.Images {
		slot := startSlot + i
		ensure(slot + 1)
		var uid uint32
		if img != nil {
			uid = img.UID()
		}
		if t.ImageUID[slot] == uid {
			continue
		}
		r.Backend.BindImageTexture(slot, img, 0, 0, false)
		t.ImageUID[slot] = uid
	}
}

// splrUID extracts a stable identity from a Sampler for cache
// comparison. Samplers are hash-consed at the Device, so pointer
// identity (via a type assertion to an identity-bearing handle) is
// sufficient; callers without such a handle fall back to "always
// rebind" by returning ok=false.
func splrUID(s ghi.Sampler) (uint32, bool) {
	type uidHaver interface{ UID() uint32 }
	if u, ok := s.(uidHaver); ok {
		return u.UID(), true
	}
	return 0, false
}
