package ghi

// LoadOp is the type of an attachment's load operation.
type LoadOp int

// Load operations.
const (
	LLoad LoadOp = iota
	LClear
	LDontCare
)

// ClearValue is a union of four floats, four int32s or four
// uint32s for a color attachment, or a depth/stencil pair for a
// depth-stencil attachment. Which field is read is determined by
// the attachment's PixelFmt's ClearType.
type ClearValue struct {
	Float   [4]float32
	Int     [4]int32
	UInt    [4]uint32
	Depth   float32
	Stencil uint32
}

// ColorAttachment describes one color render target slot of a
// declarative RenderPass.
type ColorAttachment struct {
	Format PixelFmt
	Load   LoadOp
}

// DSAttachment describes the depth/stencil render target slot of a
// declarative RenderPass.
type DSAttachment struct {
	Format PixelFmt
	Load   LoadOp
}

// Subpass lists, by index into the enclosing RenderPass'
// attachment list, the color attachments a subpass writes.
// Per §9 design notes, a per-subpass depth/stencil attachment
// reference and per-attachment resolve targets are not supported:
// the pass-level DSAttachment (if any) is implicitly bound to
// every subpass.
type Subpass struct {
	Color []int
}

// Limits on a declarative RenderPass, per spec §3.
const (
	MaxColorAttachments = 8
	MaxSubpasses        = 16
)

// RenderPass is the interface that defines a declarative render
// pass: an ordered list of color attachments (with per-attachment
// load ops), an optional depth/stencil attachment, and an ordered
// list of subpasses, each referencing a subset of the pass'
// attachments.
type RenderPass interface {
	Destroyer

	// ColorAttachments returns the pass' color attachment list.
	ColorAttachments() []ColorAttachment

	// DSAttachment returns the pass' depth/stencil attachment, or
	// nil if none.
	DSAttachment() *DSAttachment

	// Subpasses returns the pass' subpass list.
	Subpasses() []Subpass
}

// AttachKind distinguishes a color attachment reference from a
// depth/stencil one, used by the Framebuf cache's identity tuple.
type AttachKind int

// Attachment kinds.
const (
	AttachColor AttachKind = iota
	AttachDepthStencil
)

// AttachmentRef identifies one concrete attachment of a Framebuf:
// a texture, the layer/level it targets, and its kind. Framebuf
// identity (for the cache) is the ordered tuple of AttachmentRefs.
type AttachmentRef struct {
	Texture Texture
	Layer   int
	Level   int
	Kind    AttachKind
}

// FramebufDesc describes the creation parameters of a Framebuf.
type FramebufDesc struct {
	Color  []AttachmentRef
	DS     *AttachmentRef
	Width  int
	Height int
}

// Framebuf is the interface that defines the concrete render
// targets bound by a render pass.
type Framebuf interface {
	Destroyer

	Width() int
	Height() int
}
