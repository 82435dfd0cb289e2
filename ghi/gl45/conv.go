// Package gl45 implements ghi.GPU on top of an OpenGL 4.5 core
// context, using the direct-state-access entry points: objects are
// created with glCreate*/glNamedBuffer*/glTextureStorage* rather
// than the bind-to-edit style, matching spec §2/§9's "no implicit
// binds as a side effect of creation". Query objects (glGenQueries)
// and texture views (glGenTextures, as glTextureView requires) are
// the exceptions.
//
// The package has no window/context dependency of its own; a
// context must already be current on the calling OS thread (see
// the wsi package) before any GPU method is called.
package gl45

import (
	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
)

func textureTarget(t ghi.TextureType) uint32 {
	switch t {
	case ghi.Texture1D:
		return gl.TEXTURE_1D
	case ghi.Texture1DArray:
		return gl.TEXTURE_1D_ARRAY
	case ghi.Texture2D:
		return gl.TEXTURE_2D
	case ghi.Texture2DMS:
		return gl.TEXTURE_2D_MULTISAMPLE
	case ghi.Texture2DArray:
		return gl.TEXTURE_2D_ARRAY
	case ghi.Texture2DArrayMS:
		return gl.TEXTURE_2D_MULTISAMPLE_ARRAY
	case ghi.Texture3D:
		return gl.TEXTURE_3D
	case ghi.TextureCube:
		return gl.TEXTURE_CUBE_MAP
	case ghi.TextureCubeArray:
		return gl.TEXTURE_CUBE_MAP_ARRAY
	case ghi.TextureRect:
		return gl.TEXTURE_RECTANGLE
	}
	return gl.TEXTURE_2D
}

var pixelFmtTable = map[ghi.PixelFmt]uint32{
	ghi.RGBA8unorm: gl.RGBA8,
	ghi.RGBA8snorm: gl.RGBA8_SNORM,
	ghi.RGBA8sRGB:  gl.SRGB8_ALPHA8,
	ghi.BGRA8unorm: gl.RGBA8,
	ghi.BGRA8sRGB:  gl.SRGB8_ALPHA8,
	ghi.RG8unorm:   gl.RG8,
	ghi.RG8snorm:   gl.RG8_SNORM,
	ghi.R8unorm:    gl.R8,
	ghi.R8snorm:    gl.R8_SNORM,
	ghi.RGBA8uint:  gl.RGBA8UI,
	ghi.RGBA8int:   gl.RGBA8I,
	ghi.RG8uint:    gl.RG8UI,
	ghi.RG8int:     gl.RG8I,
	ghi.R8uint:     gl.R8UI,
	ghi.R8int:      gl.R8I,

	ghi.RGBA16unorm: gl.RGBA16,
	ghi.RGBA16snorm: gl.RGBA16_SNORM,
	ghi.RGBA16float: gl.RGBA16F,
	ghi.RGBA16uint:  gl.RGBA16UI,
	ghi.RGBA16int:   gl.RGBA16I,
	ghi.RG16float:   gl.RG16F,
	ghi.RG16uint:    gl.RG16UI,
	ghi.RG16int:     gl.RG16I,
	ghi.R16float:    gl.R16F,
	ghi.R16uint:     gl.R16UI,
	ghi.R16int:      gl.R16I,

	ghi.RGBA32float: gl.RGBA32F,
	ghi.RGBA32uint:  gl.RGBA32UI,
	ghi.RGBA32int:   gl.RGBA32I,
	ghi.RG32float:   gl.RG32F,
	ghi.RG32uint:    gl.RG32UI,
	ghi.RG32int:     gl.RG32I,
	ghi.R32float:    gl.R32F,
	ghi.R32uint:     gl.R32UI,
	ghi.R32int:      gl.R32I,

	ghi.RGB10A2unorm:   gl.RGB10_A2,
	ghi.RGB10A2uint:    gl.RGB10_A2UI,
	ghi.R11G11B10float: gl.R11F_G11F_B10F,
	ghi.RGB9E5:         gl.RGB9_E5,

	ghi.SRGB8:       gl.SRGB8,
	ghi.SRGB8Alpha8: gl.SRGB8_ALPHA8,

	ghi.RGTC1unorm: gl.COMPRESSED_RED_RGTC1,
	ghi.RGTC1snorm: gl.COMPRESSED_SIGNED_RED_RGTC1,
	ghi.RGTC2unorm: gl.COMPRESSED_RG_RGTC2,
	ghi.RGTC2snorm: gl.COMPRESSED_SIGNED_RG_RGTC2,

	ghi.BPTCrgbaUnorm: gl.COMPRESSED_RGBA_BPTC_UNORM,
	ghi.BPTCsRGBAlpha: gl.COMPRESSED_SRGB_ALPHA_BPTC_UNORM,
	ghi.BPTCrgbFloat:  gl.COMPRESSED_RGB_BPTC_SIGNED_FLOAT,
	ghi.BPTCrgbUFloat: gl.COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT,

	ghi.Stencil8:             gl.STENCIL_INDEX8,
	ghi.Depth16unorm:         gl.DEPTH_COMPONENT16,
	ghi.Depth24unorm:         gl.DEPTH_COMPONENT24,
	ghi.Depth32unorm:         gl.DEPTH_COMPONENT32,
	ghi.Depth32float:         gl.DEPTH_COMPONENT32F,
	ghi.Depth24Stencil8:      gl.DEPTH24_STENCIL8,
	ghi.Depth32floatStencil8: gl.DEPTH32F_STENCIL8,
}

func glInternalFormat(f ghi.PixelFmt) uint32 {
	if v, ok := pixelFmtTable[f]; ok {
		return v
	}
	return gl.RGBA8
}

var dataTypeBaseTable = map[string]uint32{
	"int8": gl.BYTE, "uint8": gl.UNSIGNED_BYTE,
	"int16": gl.SHORT, "uint16": gl.UNSIGNED_SHORT,
	"int32": gl.INT, "uint32": gl.UNSIGNED_INT,
	"half": gl.HALF_FLOAT, "float": gl.FLOAT, "double": gl.DOUBLE,
}

// glDataFormat maps a DataType to the (format, type) pair used by
// upload/readback calls, inferring the pixel layout from its
// component count.
func glDataFormat(dt ghi.DataType) (format, typ uint32) {
	info := ghi.DataTypeOf(dt)
	typ = dataTypeBaseTable[info.BaseType]
	switch info.Components {
	case 1:
		format = gl.RED
	case 2:
		format = gl.RG
	case 3:
		format = gl.RGB
	default:
		format = gl.RGBA
	}
	return
}

func glFilter(f ghi.Filter, mip bool, mipLinear bool) uint32 {
	switch {
	case f == ghi.FNearest && !mip:
		return gl.NEAREST
	case f == ghi.FNearest && mip && !mipLinear:
		return gl.NEAREST_MIPMAP_NEAREST
	case f == ghi.FNearest && mip && mipLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	case f == ghi.FLinear && !mip:
		return gl.LINEAR
	case f == ghi.FLinear && mip && !mipLinear:
		return gl.LINEAR_MIPMAP_NEAREST
	default:
		return gl.LINEAR_MIPMAP_LINEAR
	}
}

func glAddrMode(a ghi.AddrMode) int32 {
	switch a {
	case ghi.AWrap:
		return gl.REPEAT
	case ghi.AMirror:
		return gl.MIRRORED_REPEAT
	case ghi.AClamp:
		return gl.CLAMP_TO_EDGE
	case ghi.AMirrorClamp:
		return gl.MIRROR_CLAMP_TO_EDGE
	case ghi.ABorder:
		return gl.CLAMP_TO_BORDER
	}
	return gl.REPEAT
}

func glCmpFunc(c ghi.CmpFunc) int32 {
	switch c {
	case ghi.CNever:
		return gl.NEVER
	case ghi.CLess:
		return gl.LESS
	case ghi.CEqual:
		return gl.EQUAL
	case ghi.CLessEqual:
		return gl.LEQUAL
	case ghi.CGreater:
		return gl.GREATER
	case ghi.CNotEqual:
		return gl.NOTEQUAL
	case ghi.CGreaterEqual:
		return gl.GEQUAL
	case ghi.CAlways:
		return gl.ALWAYS
	}
	return gl.ALWAYS
}

func glBlendFac(f ghi.BlendFac) uint32 {
	switch f {
	case ghi.BZero:
		return gl.ZERO
	case ghi.BOne:
		return gl.ONE
	case ghi.BSrcColor:
		return gl.SRC_COLOR
	case ghi.BInvSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case ghi.BSrcAlpha:
		return gl.SRC_ALPHA
	case ghi.BInvSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case ghi.BDstColor:
		return gl.DST_COLOR
	case ghi.BInvDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case ghi.BDstAlpha:
		return gl.DST_ALPHA
	case ghi.BInvDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case ghi.BSrcAlphaSaturated:
		return gl.SRC_ALPHA_SATURATE
	case ghi.BBlendColor:
		return gl.CONSTANT_COLOR
	case ghi.BInvBlendColor:
		return gl.ONE_MINUS_CONSTANT_COLOR
	}
	return gl.ONE
}

func glBlendOp(o ghi.BlendOp) uint32 {
	switch o {
	case ghi.BAdd:
		return gl.FUNC_ADD
	case ghi.BSubtract:
		return gl.FUNC_SUBTRACT
	case ghi.BRevSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case ghi.BMin:
		return gl.MIN
	case ghi.BMax:
		return gl.MAX
	}
	return gl.FUNC_ADD
}

func glStencilOp(o ghi.StencilOp) uint32 {
	switch o {
	case ghi.SKeep:
		return gl.KEEP
	case ghi.SZero:
		return gl.ZERO
	case ghi.SReplace:
		return gl.REPLACE
	case ghi.SIncClamp:
		return gl.INCR
	case ghi.SDecClamp:
		return gl.DECR
	case ghi.SInvert:
		return gl.INVERT
	case ghi.SIncWrap:
		return gl.INCR_WRAP
	case ghi.SDecWrap:
		return gl.DECR_WRAP
	}
	return gl.KEEP
}

func glPrimitive(t ghi.Topology) uint32 {
	switch t {
	case ghi.TPoint:
		return gl.POINTS
	case ghi.TLine:
		return gl.LINES
	case ghi.TLineStrip:
		return gl.LINE_STRIP
	case ghi.TTriangle:
		return gl.TRIANGLES
	case ghi.TTriangleStrip:
		return gl.TRIANGLE_STRIP
	case ghi.TPatch:
		return gl.PATCHES
	}
	return gl.TRIANGLES
}

func glLogicOp(o ghi.LogicOp) uint32 {
	switch o {
	case ghi.LogicClear:
		return gl.CLEAR
	case ghi.LogicAnd:
		return gl.AND
	case ghi.LogicXor:
		return gl.XOR
	case ghi.LogicOr:
		return gl.OR
	case ghi.LogicInvert:
		return gl.INVERT
	}
	return gl.COPY
}

func glQueryTarget(t ghi.QueryTarget) uint32 {
	switch t {
	case ghi.QSamplesPassed:
		return gl.SAMPLES_PASSED
	case ghi.QAnySamplesPassed:
		return gl.ANY_SAMPLES_PASSED
	case ghi.QAnySamplesPassedConservative:
		return gl.ANY_SAMPLES_PASSED_CONSERVATIVE
	case ghi.QTimeElapsed:
		return gl.TIME_ELAPSED
	case ghi.QTimestamp:
		return gl.TIMESTAMP
	case ghi.QPrimitivesGenerated:
		return gl.PRIMITIVES_GENERATED
	case ghi.QXfbPrimitivesWritten:
		return gl.TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN
	}
	return gl.SAMPLES_PASSED
}

func glShaderStage(s ghi.Stage) uint32 {
	switch s {
	case ghi.SVertex:
		return gl.VERTEX_SHADER
	case ghi.SFragment:
		return gl.FRAGMENT_SHADER
	case ghi.SCompute:
		return gl.COMPUTE_SHADER
	case ghi.STessControl:
		return gl.TESS_CONTROL_SHADER
	case ghi.STessEval:
		return gl.TESS_EVALUATION_SHADER
	case ghi.SGeometry:
		return gl.GEOMETRY_SHADER
	}
	return gl.VERTEX_SHADER
}

func glShaderStageBit(s ghi.Stage) uint32 {
	switch s {
	case ghi.SVertex:
		return gl.VERTEX_SHADER_BIT
	case ghi.SFragment:
		return gl.FRAGMENT_SHADER_BIT
	case ghi.SCompute:
		return gl.COMPUTE_SHADER_BIT
	case ghi.STessControl:
		return gl.TESS_CONTROL_SHADER_BIT
	case ghi.STessEval:
		return gl.TESS_EVALUATION_SHADER_BIT
	case ghi.SGeometry:
		return gl.GEOMETRY_SHADER_BIT
	}
	return gl.VERTEX_SHADER_BIT
}
