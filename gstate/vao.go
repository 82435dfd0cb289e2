package gstate

import (
	"fmt"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/internal/sdbm"
)

// VAO wraps a backend vertex-array object together with the
// per-slot last-bound vertex-buffer UID/offset pairs the command
// recorder uses to skip redundant bind calls (spec §4.3/§4.4).
type VAO struct {
	Handle VAOHandle

	Bindings []ghi.VertexBinding
	Attribs  []ghi.VertexAttrib

	slotBufUID []uint32
	slotBufOff []int64
	indexUID   uint32
}

// VAOHandle is the backend-specific vertex-array object identity.
// gl45 implements it as a GL name.
type VAOHandle interface {
	Destroy()
}

// VAOFactory creates a backend VAOHandle and programs its
// attribute formats, bindings and instance-step divisors, per spec
// §4.3: "creates a VAO, programs attribute formats (float/double/
// integer variants), bindings, instance-step divisors, and enables
// each attribute location".
type VAOFactory func(bindings []ghi.VertexBinding, attribs []ghi.VertexAttrib) (VAOHandle, error)

func vaoKey(bindings []ghi.VertexBinding, attribs []ghi.VertexAttrib) uint64 {
	return sdbm.HashString(fmt.Sprintf("%#v|%#v", bindings, attribs))
}

func bindingsEqual(a, b []ghi.VertexBinding) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func attribsEqual(a, b []ghi.VertexAttrib) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// vaoCache is the §4.3 "VAO cache keyed by (vertex_bindings[],
// vertex_attribs[]) tuple hash". On miss it creates a new VAO
// through factory; on hit it returns the existing one, with its
// per-slot cached buffer state intact for incremental binding.
type vaoCache struct {
	factory VAOFactory
	buckets map[uint64][]*VAO
}

func newVAOCache(factory VAOFactory) *vaoCache {
	return &vaoCache{factory: factory, buckets: make(map[uint64][]*VAO)}
}

// GetOrCreate returns the cached VAO for the given binding/
// attribute tuple, creating and inserting one on miss.
func (c *vaoCache) GetOrCreate(bindings []ghi.VertexBinding, attribs []ghi.VertexAttrib) (*VAO, error) {
	h := vaoKey(bindings, attribs)
	for _, v := range c.buckets[h] {
		if bindingsEqual(v.Bindings, bindings) && attribsEqual(v.Attribs, attribs) {
			return v, nil
		}
	}
	handle, err := c.factory(bindings, attribs)
	if err != nil {
		return nil, err
	}
	v := &VAO{
		Handle:     handle,
		Bindings:   append([]ghi.VertexBinding(nil), bindings...),
		Attribs:    append([]ghi.VertexAttrib(nil), attribs...),
		slotBufUID: make([]uint32, len(bindings)),
		slotBufOff: make([]int64, len(bindings)),
	}
	for i := range v.slotBufUID {
		v.slotBufUID[i] = 0
		v.slotBufOff[i] = -1
	}
	c.buckets[h] = append(c.buckets[h], v)
	return v, nil
}

// Len returns the number of distinct VAOs currently cached.
func (c *vaoCache) Len() int {
	n := 0
	for _, b := range c.buckets {
		n += len(b)
	}
	return n
}

// SlotBuf returns the cached (UID, offset) pair bound at a given
// vertex-buffer slot, used by the command recorder to skip
// redundant binds.
func (v *VAO) SlotBuf(slot int) (uid uint32, off int64) {
	return v.slotBufUID[slot], v.slotBufOff[slot]
}

// SetSlotBuf records the (UID, offset) now bound at slot.
func (v *VAO) SetSlotBuf(slot int, uid uint32, off int64) {
	v.slotBufUID[slot] = uid
	v.slotBufOff[slot] = off
}

// IndexBufUID returns the buffer UID last bound as this VAO's
// index buffer (index-buffer bind is cached per-VAO, per spec
// §4.4).
func (v *VAO) IndexBufUID() uint32 { return v.indexUID }

// SetIndexBufUID records the buffer UID now bound as this VAO's
// index buffer.
func (v *VAO) SetIndexBufUID(uid uint32) { v.indexUID = uid }
