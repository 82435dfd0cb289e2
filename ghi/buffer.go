package ghi

// StorageFlag is a bit in the flag set of an immutable buffer's
// storage. Flags combine to describe what kind of CPU access the
// buffer's backing store must support.
type StorageFlag int

// Immutable-storage flags.
const (
	SMapRead StorageFlag = 1 << iota
	SMapWrite
	SPersistent
	SCoherent
	SDynamicStorage
	SClientStorage
)

// AccessHint is the CPU access hint of a mutable buffer.
type AccessHint int

// Access hints.
const (
	AccessWrite AccessHint = iota
	AccessRead
	AccessNone
)

// UsageHint is the expected update frequency of a mutable buffer.
type UsageHint int

// Usage hints.
const (
	UsageStatic UsageHint = iota
	UsageDynamic
	UsageStream
)

// BufferKind selects whether a buffer uses immutable or mutable
// storage.
type BufferKind int

// Buffer storage kinds.
const (
	Immutable BufferKind = iota
	Mutable
)

// BufferDesc describes the creation parameters of a Buffer.
// For Kind == Immutable, Flags is meaningful and Access/Usage are
// ignored. For Kind == Mutable, Access/Usage are meaningful and
// Flags is ignored.
type BufferDesc struct {
	Size   int64
	Kind   BufferKind
	Flags  StorageFlag
	Access AccessHint
	Usage  UsageHint
}

// MapKind is a mask of the transfer directions a Buffer mapping
// will be used for.
type MapKind int

// Map transfer directions.
const (
	TransferRead MapKind = 1 << iota
	TransferWrite
)

// InvalidateKind describes what, if anything, a Buffer.Map call
// invalidates before returning its pointer.
type InvalidateKind int

// Invalidate kinds.
const (
	InvalidateNone InvalidateKind = iota
	InvalidateRange
	InvalidateBuffer
)

// MapOptions configures a Buffer.Map call. InvalidateKind != None
// is rejected when Kind includes TransferRead: invalidating while
// also reading back is a contradiction.
type MapOptions struct {
	Kind          MapKind
	Invalidate    InvalidateKind
	Persistent    bool
	Coherent      bool
	FlushExplicit bool
	Unsynchronized bool
}

// Range is a byte offset/length pair.
type Range struct {
	Offset int64
	Length int64
}

// Buffer is the interface that defines a GHI buffer: linear GPU
// memory that is either immutable (a fixed flag set establishes
// what CPU access it supports) or mutable (reallocatable,
// orphanable, described by an access/usage hint pair).
type Buffer interface {
	Destroyer

	// Size returns the buffer's size in bytes. Fixed for an
	// immutable buffer; Realloc changes it for a mutable one.
	Size() int64

	// Kind returns whether the buffer is immutable or mutable.
	Kind() BufferKind

	// UID returns the buffer's monotonic identity, used by the
	// command recorder to detect "same handle" without comparing
	// backend objects directly.
	UID() uint32

	// Write uploads src into the buffer at the given offset.
	Write(offset int64, src []byte) error

	// Read reads len(dst) bytes starting at offset into dst.
	// This is a blocking, GPU-synchronizing operation.
	Read(offset int64, dst []byte) error

	// Realloc resizes a mutable buffer to a new size, optionally
	// seeding it with src. It is rejected for immutable buffers.
	Realloc(size int64, src []byte) error

	// Orphan discards the buffer's current storage and allocates
	// a fresh one of the same size, letting the driver avoid a
	// stall on buffers still in flight. Rejected for immutable
	// buffers.
	Orphan() error

	// Map maps the buffer (or a byte range of it) for CPU access
	// and returns a slice over the mapped memory. Only one mapping
	// may be active on a Buffer at a time.
	Map(rng *Range, opts MapOptions) ([]byte, error)

	// Unmap ends a previously established mapping.
	Unmap()

	// Invalidate hints to the driver that the contents of rng (or
	// the whole buffer, if rng is nil) need not be preserved.
	Invalidate(rng *Range) error

	// FlushMappedRange flushes CPU writes to rng so that they
	// become visible to the GPU. Required after a persistent,
	// non-coherent mapping before the range is consumed.
	FlushMappedRange(rng Range) error
}
