package ghi

// Topology is the type of primitive topology.
type Topology int

// Primitive topologies.
const (
	TPoint Topology = iota
	TLine
	TLineStrip
	TTriangle
	TTriangleStrip
	TPatch
)

// VertexFmt is the format of a single vertex attribute, spanning
// the float/double/integer variants the command recorder must
// program distinctly into the VAO (see gstate).
type VertexFmt int

// Vertex attribute formats.
const (
	VFloat VertexFmt = iota
	VFloatNormalized
	VInt
	VUint
	VDouble
)

// VertexAttrib describes one vertex attribute.
type VertexAttrib struct {
	Location uint32
	Binding  uint32
	DataType DataType
	Offset   uint32
}

// VertexBinding describes one vertex buffer binding slot.
type VertexBinding struct {
	Binding   uint32
	Stride    uint32
	PerInstance bool
	Divisor   uint32
}

// IndexFmt describes the element size of index buffer data.
type IndexFmt int

// Index formats.
const (
	Index16 IndexFmt = 2
	Index32 IndexFmt = 4
)

// CullMode selects which triangle faces are culled.
type CullMode int

// Cull modes.
const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

// FillMode selects the rasterization fill mode.
type FillMode int

// Fill modes.
const (
	FillSolid FillMode = iota
	FillWireframe
)

// RasterState defines the rasterizer state of a graphics pipeline.
// It is hash-consed at the Device.
type RasterState struct {
	Cull           CullMode
	Fill           FillMode
	FrontCCW       bool
	ScissorEnable  bool
	MultisampleEnable bool
	RasterizerDiscard bool
	LineSmooth     bool
	DepthClamp     bool
	PolygonOffsetSlope float32
	PolygonOffsetBias  float32
	PolygonOffsetClamp float32
}

// StencilOp is the type of stencil operations.
type StencilOp int

// Stencil operations.
const (
	SKeep StencilOp = iota
	SZero
	SReplace
	SIncClamp
	SDecClamp
	SInvert
	SIncWrap
	SDecWrap
)

// StencilFace defines per-face stencil test/op parameters.
type StencilFace struct {
	Fail      StencilOp
	DepthFail StencilOp
	Pass      StencilOp
	Cmp       CmpFunc
	ReadMask  uint32
	WriteMask uint32
}

// DSState defines the depth/stencil state of a graphics pipeline.
// Hash-consed at the Device.
type DSState struct {
	DepthTest   bool
	DepthWrite  bool
	DepthFunc   CmpFunc
	StencilTest bool
	Front       StencilFace
	Back        StencilFace
}

// BlendOp is the type of blend operations.
type BlendOp int

// Blend operations.
const (
	BAdd BlendOp = iota
	BSubtract
	BRevSubtract
	BMin
	BMax
)

// BlendFac is the type of blend factors.
type BlendFac int

// Blend factors.
const (
	BZero BlendFac = iota
	BOne
	BSrcColor
	BInvSrcColor
	BSrcAlpha
	BInvSrcAlpha
	BDstColor
	BInvDstColor
	BDstAlpha
	BInvDstAlpha
	BSrcAlphaSaturated
	BBlendColor
	BInvBlendColor
)

// ColorMask is a mask of color write channels.
type ColorMask int

// Color write masks.
const (
	CRed ColorMask = 1 << iota
	CGreen
	CBlue
	CAlpha
	CAll ColorMask = CRed | CGreen | CBlue | CAlpha
)

// LogicOp is a logical framebuffer blend operation.
type LogicOp int

// Logic ops. Copy means "logic op disabled".
const (
	LogicCopy LogicOp = iota
	LogicClear
	LogicAnd
	LogicXor
	LogicOr
	LogicInvert
)

// ColorBlend defines one render target's blend parameters.
// SrcRGB/DstRGB/OpRGB apply to color; SrcAlpha/DstAlpha/OpAlpha
// apply to alpha. A separate call is only required at the command
// recorder level when the RGB and Alpha parameters differ.
type ColorBlend struct {
	Enable    bool
	WriteMask ColorMask
	SrcRGB    BlendFac
	DstRGB    BlendFac
	OpRGB     BlendOp
	SrcAlpha  BlendFac
	DstAlpha  BlendFac
	OpAlpha   BlendOp
}

// BlendState defines the color blend state of a graphics pipeline.
// Hash-consed at the Device.
type BlendState struct {
	IndependentBlend  bool
	AlphaToCoverage   bool
	LogicOpEnable     bool
	LogicOp           LogicOp
	Targets           [8]ColorBlend
}

// BlendPreset names a ready-made BlendState.Targets[0] value.
type BlendPreset int

// Blend presets.
const (
	PresetNoBlend BlendPreset = iota
	PresetAlpha
	PresetColorAdd
	PresetMultiply
	PresetSourceToDest
	PresetAddMul
	PresetAddAlpha
	PresetPremultipliedAlpha
)

// Blend returns the fixed ColorBlend tuple for a preset, per spec
// §6: (enable, color-mask-RGBA, src/dst factors RGB & Alpha, op).
func (p BlendPreset) Blend() ColorBlend {
	switch p {
	case PresetNoBlend:
		return ColorBlend{
			Enable: false, WriteMask: CAll,
			SrcRGB: BOne, DstRGB: BZero, OpRGB: BAdd,
			SrcAlpha: BOne, DstAlpha: BZero, OpAlpha: BAdd,
		}
	case PresetAlpha:
		return ColorBlend{
			Enable: true, WriteMask: CAll,
			SrcRGB: BSrcAlpha, DstRGB: BInvSrcAlpha, OpRGB: BAdd,
			SrcAlpha: BSrcAlpha, DstAlpha: BInvSrcAlpha, OpAlpha: BAdd,
		}
	case PresetColorAdd:
		return ColorBlend{
			Enable: true, WriteMask: CAll,
			SrcRGB: BOne, DstRGB: BOne, OpRGB: BAdd,
			SrcAlpha: BOne, DstAlpha: BOne, OpAlpha: BAdd,
		}
	case PresetMultiply:
		return ColorBlend{
			Enable: true, WriteMask: CAll,
			SrcRGB: BDstColor, DstRGB: BZero, OpRGB: BAdd,
			SrcAlpha: BDstAlpha, DstAlpha: BZero, OpAlpha: BAdd,
		}
	case PresetSourceToDest:
		return ColorBlend{
			Enable: true, WriteMask: CAll,
			SrcRGB: BSrcColor, DstRGB: BInvSrcColor, OpRGB: BAdd,
			SrcAlpha: BSrcAlpha, DstAlpha: BInvSrcAlpha, OpAlpha: BAdd,
		}
	case PresetAddMul:
		return ColorBlend{
			Enable: true, WriteMask: CAll,
			SrcRGB: BDstColor, DstRGB: BOne, OpRGB: BAdd,
			SrcAlpha: BDstAlpha, DstAlpha: BOne, OpAlpha: BAdd,
		}
	case PresetAddAlpha:
		return ColorBlend{
			Enable: true, WriteMask: CAll,
			SrcRGB: BSrcAlpha, DstRGB: BOne, OpRGB: BAdd,
			SrcAlpha: BSrcAlpha, DstAlpha: BOne, OpAlpha: BAdd,
		}
	case PresetPremultipliedAlpha:
		return ColorBlend{
			Enable: true, WriteMask: CAll,
			SrcRGB: BOne, DstRGB: BInvSrcAlpha, OpRGB: BAdd,
			SrcAlpha: BOne, DstAlpha: BInvSrcAlpha, OpAlpha: BAdd,
		}
	}
	return ColorBlend{}
}

// Stage is a mask of programmable shader stages.
type Stage int

// Stages.
const (
	SVertex Stage = 1 << iota
	SFragment
	SCompute
	STessControl
	STessEval
	SGeometry
)

// ShaderModule is the interface that defines an opaque compiled
// shader. The backend must be able to retrieve a compiled binary
// for caching.
type ShaderModule interface {
	Destroyer

	// Stage returns the shader stage this module targets.
	Stage() Stage

	// Binary returns the compiled binary for this module, for
	// caching by the caller.
	Binary() ([]byte, error)
}

// ShaderFunc pairs a compiled module with an entry-point name.
type ShaderFunc struct {
	Module ShaderModule
	Entry  string
}

// DescType is the type of a shader-visible resource descriptor.
type DescType int

// Descriptor types.
const (
	DBuffer DescType = iota
	DImage
	DConstant
	DTexture
	DSampler
)

// Descriptor describes one shader-visible resource slot.
type Descriptor struct {
	Type   DescType
	Stages Stage
	Slot   int
	Count  int
}

// GraphState defines the combination of programmable and
// fixed-function stages of a graphics pipeline. Graphics pipelines
// are created from a GraphState. Pass/Subpass bind the pipeline to
// the subpass it is valid to use in - it must not be bound outside
// it.
type GraphState struct {
	VertFunc  ShaderFunc
	FragFunc  ShaderFunc
	TessCtrl  *ShaderFunc
	TessEval  *ShaderFunc
	Geom      *ShaderFunc
	Bindings  []VertexBinding
	Attribs   []VertexAttrib
	Topology  Topology
	PatchVertices int
	PrimitiveRestart bool
	Raster    RasterState
	Samples   int
	DS        DSState
	Blend     BlendState
	Pass      RenderPass
	Subpass   int
}

// CompState defines the state of a compute pipeline: a single
// compute shader function.
type CompState struct {
	Func ShaderFunc
}

// Pipeline is the interface that defines a GPU pipeline. A
// graphics Pipeline owns a cached vertex-array object obtained
// from gstate's VAO cache, keyed by its binding/attribute tuple.
type Pipeline interface {
	Destroyer

	// IsCompute reports whether this is a compute pipeline.
	IsCompute() bool

	// UID returns the pipeline's monotonic identity.
	UID() uint32

	// Graph returns the GraphState the pipeline was created from,
	// or nil if IsCompute() is true.
	Graph() *GraphState

	// Compute returns the CompState the pipeline was created
	// from, or nil if IsCompute() is false.
	Compute() *CompState

	// VAO returns the cached vertex-array-object handle the
	// pipeline was bound to at creation time (a *gstate.VAO,
	// returned as any to avoid a ghi->gstate import cycle), or
	// nil for a compute pipeline.
	VAO() any
}
