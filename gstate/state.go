// Package gstate implements the GHI State (context) described in
// spec §4.3: the thread-associated current GPU state — bound
// pipeline, VAO, binding tables, clear/scissor/viewport state,
// pack/unpack alignment — plus the VAO cache.
//
// Per the §9 design note on the source's mutable GState singleton,
// State is an explicit struct threaded through the frame graph and
// command recorder APIs rather than a hidden global; SetCurrent and
// Current remain as the thread-local-style access point the source
// exposed, under the single-threaded-per-context contract of spec
// §5 (callers recording commands must pin the calling goroutine to
// an OS thread with runtime.LockOSThread).
package gstate

import (
	"sync"

	"github.com/ardentgfx/ghi"
)

// ClipControl selects the clip-space convention a State was
// configured for at creation. Frozen per State.
type ClipControl int

// Clip-control conventions.
const (
	ClipOpenGL ClipControl = iota // lower-left origin, Z in [-1, 1]
	ClipDirectX
)

// ViewportOrigin selects the 2D origin convention viewport/scissor
// rectangles are expressed in. Frozen per State.
type ViewportOrigin int

// Viewport origin conventions.
const (
	OriginBottomLeft ViewportOrigin = iota
	OriginTopLeft
)

// BindingTable holds the currently bound resources for one shader
// resource kind (buffers, samplers, textures or images), indexed by
// slot.
type BindingTable struct {
	BufferUID  []uint32
	BufferOff  []int64
	SamplerUID []uint32
	TextureUID []uint32
	ImageUID   []uint32
}

// FixedState mirrors, at State, the last-applied values of the
// Device's hash-consed fixed-function descriptors, compared by
// pointer identity against a pipeline's own descriptors to decide
// whether the command recorder must diff field-by-field.
type FixedState struct {
	Raster *ghi.RasterState
	Blend  *ghi.BlendState
	DS     *ghi.DSState
}

// Config freezes the State's context conventions at creation time.
type Config struct {
	Clip           ClipControl
	ViewportOrigin ViewportOrigin
}

// State represents one thread's current GPU state.
type State struct {
	cfg Config

	Pipeline  ghi.Pipeline
	VAO       *VAO
	Framebuf  ghi.Framebuf
	FBWidth   int
	FBHeight  int

	Fixed FixedState

	LastPatchVertices int
	LastPrimRestart   bool

	VertexBuf  BindingTable
	Shader     BindingTable
	IndexBufUID uint32
	IndexBufOff int64

	PackAlign   int
	UnpackAlign int
	ReadClamp   bool
	StencilRef  uint32
	BlendColor  [4]float32

	ScissorEnable bool
	Scissor       Range2D

	// Saved state used by the render-pass binder and the clear
	// path to restore values temporarily overridden for a clear
	// (spec §4.4 "Clear / copy" and §4.6).
	Saved SavedState

	vaoCache *vaoCache

	Counters Counters
}

// Range2D is a 2D rectangle, used for the scissor state.
type Range2D struct{ X, Y, Width, Height int }

// SavedState captures the fields that begin_render_pass/clear
// paths must restore afterwards.
type SavedState struct {
	ColorMask         [8]ghi.ColorMask
	ScissorEnable     bool
	Scissor           Range2D
	RasterizerDiscard bool
	DepthWrite        bool
}

// Counters tracks live-object counts per spec §4.3.
type Counters struct {
	Pipelines, RenderPasses, Framebufs, Xfbs, QueryPools int
}

// New creates a State initialized with the backend defaults
// documented in spec §6: cube-map-seamless on, pack/unpack
// alignment 4, blend off with (One, Zero)/Add, cull-back/CCW/fill,
// depth test+write on with Less, stencil off with Always/ref 0,
// read-color clamp off.
func New(cfg Config, vaoFactory VAOFactory) *State {
	s := &State{
		cfg:         cfg,
		PackAlign:   4,
		UnpackAlign: 4,
		vaoCache:    newVAOCache(vaoFactory),
	}
	s.Fixed.Raster = &ghi.RasterState{Cull: ghi.CullBack, FrontCCW: true, Fill: ghi.FillSolid}
	s.Fixed.DS = &ghi.DSState{
		DepthTest: true, DepthWrite: true, DepthFunc: ghi.CLess,
		Front: ghi.StencilFace{Fail: ghi.SKeep, DepthFail: ghi.SKeep, Pass: ghi.SKeep, Cmp: ghi.CAlways, ReadMask: 0xffffffff, WriteMask: 0xffffffff},
		Back:  ghi.StencilFace{Fail: ghi.SKeep, DepthFail: ghi.SKeep, Pass: ghi.SKeep, Cmp: ghi.CAlways, ReadMask: 0xffffffff, WriteMask: 0xffffffff},
	}
	s.Fixed.Blend = &ghi.BlendState{
		Targets: [8]ghi.ColorBlend{ghi.PresetNoBlend.Blend(), ghi.PresetNoBlend.Blend(), ghi.PresetNoBlend.Blend(), ghi.PresetNoBlend.Blend(),
			ghi.PresetNoBlend.Blend(), ghi.PresetNoBlend.Blend(), ghi.PresetNoBlend.Blend(), ghi.PresetNoBlend.Blend()},
	}
	s.Saved.DepthWrite = true
	return s
}

// Config returns the State's frozen context configuration.
func (s *State) Config() Config { return s.cfg }

// VAOCache returns the VAO cache owned by this State.
func (s *State) VAOCache() *vaoCache { return s.vaoCache }

var (
	curMu sync.Mutex
	cur   *State
)

// SetCurrent sets s as the current State. There is a single
// current State per process, shared by every thread and goroutine.
func SetCurrent(s *State) {
	curMu.Lock()
	cur = s
	curMu.Unlock()
}

// Current returns the State last passed to SetCurrent from any
// thread, or nil if none has been set.
func Current() *State {
	curMu.Lock()
	defer curMu.Unlock()
	return cur
}
