package gl45

import (
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
)

// buffer implements ghi.Buffer. Immutable buffers are created with
// glNamedBufferStorage and never resized; mutable buffers are
// created with glNamedBufferData and may be reallocated or orphaned
// by issuing a fresh glNamedBufferData call against the same name.
type buffer struct {
	name    uint32
	uid     uint32
	size    int64
	kind    ghi.BufferKind
	flags   ghi.StorageFlag
	access  ghi.AccessHint
	usage   ghi.UsageHint
	mapping []byte
}

func (g *GPU) NewBuffer(desc *ghi.BufferDesc) (ghi.Buffer, error) {
	if desc.Size <= 0 {
		return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewBuffer: size must be positive"}
	}
	var name uint32
	gl.CreateBuffers(1, &name)
	b := &buffer{
		name:   name,
		uid:    g.nextUID(),
		size:   desc.Size,
		kind:   desc.Kind,
		flags:  desc.Flags,
		access: desc.Access,
		usage:  desc.Usage,
	}
	if desc.Kind == ghi.Immutable {
		gl.NamedBufferStorage(name, desc.Size, nil, glStorageFlags(desc.Flags))
	} else {
		gl.NamedBufferData(name, desc.Size, nil, glUsageHint(desc.Access, desc.Usage))
	}
	return b, nil
}

func glStorageFlags(f ghi.StorageFlag) uint32 {
	var bits uint32
	if f&ghi.SMapRead != 0 {
		bits |= gl.MAP_READ_BIT
	}
	if f&ghi.SMapWrite != 0 {
		bits |= gl.MAP_WRITE_BIT
	}
	if f&ghi.SPersistent != 0 {
		bits |= gl.MAP_PERSISTENT_BIT
	}
	if f&ghi.SCoherent != 0 {
		bits |= gl.MAP_COHERENT_BIT
	}
	if f&ghi.SDynamicStorage != 0 {
		bits |= gl.DYNAMIC_STORAGE_BIT
	}
	if f&ghi.SClientStorage != 0 {
		bits |= gl.CLIENT_STORAGE_BIT
	}
	return bits
}

func glUsageHint(a ghi.AccessHint, u ghi.UsageHint) uint32 {
	switch u {
	case ghi.UsageDynamic:
		switch a {
		case ghi.AccessRead:
			return gl.DYNAMIC_READ
		default:
			return gl.DYNAMIC_DRAW
		}
	case ghi.UsageStream:
		switch a {
		case ghi.AccessRead:
			return gl.STREAM_READ
		default:
			return gl.STREAM_DRAW
		}
	default:
		switch a {
		case ghi.AccessRead:
			return gl.STATIC_READ
		default:
			return gl.STATIC_DRAW
		}
	}
}

func (b *buffer) Destroy() {
	if b == nil || b.name == 0 {
		return
	}
	gl.DeleteBuffers(1, &b.name)
	b.name = 0
}

func (b *buffer) Size() int64         { return b.size }
func (b *buffer) Kind() ghi.BufferKind { return b.kind }
func (b *buffer) UID() uint32         { return b.uid }

func (b *buffer) Write(offset int64, src []byte) error {
	if offset < 0 || offset+int64(len(src)) > b.size {
		return &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "Buffer.Write: range exceeds buffer size"}
	}
	if len(src) == 0 {
		return nil
	}
	gl.NamedBufferSubData(b.name, offset, int64(len(src)), gl.Ptr(&src[0]))
	return nil
}

func (b *buffer) Read(offset int64, dst []byte) error {
	if offset < 0 || offset+int64(len(dst)) > b.size {
		return &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "Buffer.Read: range exceeds buffer size"}
	}
	if len(dst) == 0 {
		return nil
	}
	gl.GetNamedBufferSubData(b.name, offset, int64(len(dst)), gl.Ptr(&dst[0]))
	return nil
}

func (b *buffer) Realloc(size int64, src []byte) error {
	if b.kind == ghi.Immutable {
		return &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "Buffer.Realloc: buffer is immutable"}
	}
	var p unsafe.Pointer
	if len(src) > 0 {
		p = gl.Ptr(&src[0])
	}
	gl.NamedBufferData(b.name, size, p, glUsageHint(b.access, b.usage))
	b.size = size
	return nil
}

func (b *buffer) Orphan() error {
	if b.kind == ghi.Immutable {
		return &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "Buffer.Orphan: buffer is immutable"}
	}
	gl.NamedBufferData(b.name, b.size, nil, glUsageHint(b.access, b.usage))
	return nil
}

func (b *buffer) Map(rng *ghi.Range, opts ghi.MapOptions) ([]byte, error) {
	if opts.Invalidate != ghi.InvalidateNone && opts.Kind&ghi.TransferRead != 0 {
		return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "Buffer.Map: invalidation is not allowed with TransferRead"}
	}
	off, length := int64(0), b.size
	if rng != nil {
		off, length = rng.Offset, rng.Length
	}
	var access uint32
	if opts.Kind&ghi.TransferRead != 0 {
		access |= gl.MAP_READ_BIT
	}
	if opts.Kind&ghi.TransferWrite != 0 {
		access |= gl.MAP_WRITE_BIT
	}
	switch opts.Invalidate {
	case ghi.InvalidateRange:
		access |= gl.MAP_INVALIDATE_RANGE_BIT
	case ghi.InvalidateBuffer:
		access |= gl.MAP_INVALIDATE_BUFFER_BIT
	}
	if opts.Persistent {
		access |= gl.MAP_PERSISTENT_BIT
	}
	if opts.Coherent {
		access |= gl.MAP_COHERENT_BIT
	}
	if opts.FlushExplicit {
		access |= gl.MAP_FLUSH_EXPLICIT_BIT
	}
	if opts.Unsynchronized {
		access |= gl.MAP_UNSYNCHRONIZED_BIT
	}
	p := gl.MapNamedBufferRange(b.name, off, length, access)
	if p == nil {
		return nil, &ghi.Error{Kind: ghi.EAllocationFailed, Reason: "Buffer.Map: driver refused the mapping"}
	}
	b.mapping = unsafe.Slice((*byte)(p), length)
	return b.mapping, nil
}

func (b *buffer) Unmap() {
	gl.UnmapNamedBuffer(b.name)
	b.mapping = nil
}

func (b *buffer) Invalidate(rng *ghi.Range) error {
	if rng == nil {
		gl.InvalidateBufferData(b.name)
		return nil
	}
	gl.InvalidateBufferSubData(b.name, rng.Offset, rng.Length)
	return nil
}

func (b *buffer) FlushMappedRange(rng ghi.Range) error {
	gl.FlushMappedNamedBufferRange(b.name, rng.Offset, rng.Length)
	return nil
}
