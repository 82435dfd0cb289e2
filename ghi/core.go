// Package ghi defines the GPU-abstraction layer (GHI) that the frame
// graph drives. The interfaces describe a backend matching OpenGL
// 4.5's feature set: bindless-adjacent direct-state-access object
// creation, immutable storage, multi-draw-indirect and compute.
//
// ghi itself has no OpenGL dependency - it is a set of interfaces,
// value types and hash-consing-friendly descriptors. The gl45
// subpackage provides the concrete implementation.
package ghi

import "log"

// Driver is the interface that provides methods for loading and
// unloading an underlying backend implementation.
type Driver interface {
	// Open initializes the driver and returns the GPU it exposes.
	// Further calls with the same receiver must return the same
	// GPU instance. Not safe for parallel execution.
	Open() (GPU, error)

	// Name returns the name of the driver. Must not open it.
	Name() string

	// Close deinitializes the driver. Closing a driver that is
	// not open has no effect. Not safe for parallel execution.
	Close()
}

// Destroyer is the interface wrapping the Destroy method. Types
// that implement it may hold GPU memory not managed by the Go
// garbage collector, so Destroy must be called explicitly.
type Destroyer interface {
	Destroy()
}

// GPU is the main interface to a backend implementation. It
// creates every other GHI object and exposes the Device's
// capability limits.
type GPU interface {
	// Driver returns the Driver that owns the GPU.
	Driver() Driver

	// Limits returns the implementation limits. Immutable for
	// the lifetime of the GPU.
	Limits() Limits

	// NewBuffer creates a new buffer from desc.
	NewBuffer(desc *BufferDesc) (Buffer, error)

	// NewTexture creates a new immutable-storage texture.
	NewTexture(desc *TextureDesc) (Texture, error)

	// NewMutableTexture creates a new mutable-storage texture,
	// optionally seeded with initial level-0 data.
	NewMutableTexture(desc *TextureDesc, initial []byte) (Texture, error)

	// NewBufferBackedTexture creates a texture view over buf,
	// interpreting its bytes using dataType.
	NewBufferBackedTexture(dataType DataType, buf Buffer, offset, length int64) (Texture, error)

	// NewShaderModule compiles source into a shader module for
	// the given stage.
	NewShaderModule(stage Stage, sources []string) (ShaderModule, error)

	// NewShaderModuleBinary creates a shader module from a
	// previously retrieved compiled binary.
	NewShaderModuleBinary(stage Stage, binary []byte) (ShaderModule, error)

	// NewPipeline creates a new graphics or compute pipeline. The
	// state parameter must be a pointer to a GraphState or a
	// pointer to a CompState.
	NewPipeline(state any) (Pipeline, error)

	// NewRenderPass creates a new declarative render pass.
	NewRenderPass(color []ColorAttachment, ds *DSAttachment, subpasses []Subpass) (RenderPass, error)

	// NewFramebuf creates a concrete framebuffer aggregating the
	// given attachments.
	NewFramebuf(desc *FramebufDesc) (Framebuf, error)

	// NewQuery creates a new query object targeting target.
	NewQuery(target QueryTarget) (Query, error)

	// NewXfbCapture creates a new transform-feedback capture
	// object bound to the given buffer ranges.
	NewXfbCapture(buffers []Buffer, offsets, sizes []int64) (XfbCapture, error)
}

// Limits describes backend-implementation limits, discovered once
// at Device creation and immutable afterwards.
type Limits struct {
	MaxTextureSize1D   int
	MaxTextureSize2D   int
	MaxTextureSizeCube int
	MaxTextureSize3D   int
	MaxTextureLayers   int
	MaxAnisotropy      int
	MaxColorAttach     int
	MaxDrawBuffers     int
	MaxSubpasses       int
	MaxVertexAttribs   int
	MaxVertexBindings  int
	MaxUniformBlock    int64
	MaxShaderStorage   int64
	MaxCombinedTexUnit int
	UniformBufferAlign int64

	HalfFloatVertex bool
	HalfFloatPixel  bool
	S3TC            bool
	AnisotropicFilt bool
	BindlessTexture bool
}

// logf logs a soft-fail diagnostic through the standard log
// package. No code in this module calls it: recoverable validation
// errors are returned to the caller as *Error and are not logged;
// there is no exception-based unwinding.
func logf(format string, args ...any) { log.Printf("ghi: "+format, args...) }
