package gl45

import (
	"fmt"

	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/device"
)

const driverName = "opengl4.5"

// Driver implements ghi.Driver and ghi.GPU over an OpenGL 4.5 core
// context already current on the calling thread. Unlike a windowing
// driver, Driver does not create the context itself - the wsi
// package owns that - it only loads the function pointers and
// queries the implementation limits the first time Open is called.
type Driver struct {
	gpu *GPU
}

// New creates a Driver. getProcAddress must be supplied by the
// windowing layer (wsi.Window.GetProcAddress, or glfw.GetProcAddress
// directly). go-gl's gl.Init resolves entry points against whatever
// context is current on the calling thread rather than taking a
// loader function, so getProcAddress is retained on GPU only for
// callers that need to resolve extension entry points themselves.
func New(getProcAddress func(name string) uintptr) *Driver {
	d := &Driver{}
	d.gpu = &GPU{getProcAddress: getProcAddress, driver: d}
	return d
}

func (d *Driver) Name() string { return driverName }

func (d *Driver) Open() (ghi.GPU, error) {
	if d.gpu.opened {
		return d.gpu, nil
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl45: %w", err)
	}
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	d.gpu.queryLimits()
	d.gpu.dev = device.New(d.gpu.limits, nil)
	d.gpu.opened = true
	return d.gpu, nil
}

func (d *Driver) Close() {
	d.gpu.opened = false
}

func queryInt(name uint32) int {
	var v int32
	gl.GetIntegerv(name, &v)
	return int(v)
}

func (g *GPU) queryLimits() {
	g.limits = ghi.Limits{
		MaxTextureSize1D:   queryInt(gl.MAX_TEXTURE_SIZE),
		MaxTextureSize2D:   queryInt(gl.MAX_TEXTURE_SIZE),
		MaxTextureSizeCube: queryInt(gl.MAX_CUBE_MAP_TEXTURE_SIZE),
		MaxTextureSize3D:   queryInt(gl.MAX_3D_TEXTURE_SIZE),
		MaxTextureLayers:   queryInt(gl.MAX_ARRAY_TEXTURE_LAYERS),
		MaxAnisotropy:      16,
		MaxColorAttach:     queryInt(gl.MAX_COLOR_ATTACHMENTS),
		MaxDrawBuffers:     queryInt(gl.MAX_DRAW_BUFFERS),
		MaxSubpasses:       ghi.MaxSubpasses,
		MaxVertexAttribs:   queryInt(gl.MAX_VERTEX_ATTRIBS),
		MaxVertexBindings:  queryInt(gl.MAX_VERTEX_ATTRIB_BINDINGS),
		MaxCombinedTexUnit: queryInt(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS),
		HalfFloatVertex:    true,
		HalfFloatPixel:     true,
		S3TC:               true,
		AnisotropicFilt:    true,
		BindlessTexture:    false,
	}
	var u, s int64
	gl.GetInteger64v(gl.MAX_UNIFORM_BLOCK_SIZE, &u)
	gl.GetInteger64v(gl.MAX_SHADER_STORAGE_BLOCK_SIZE, &s)
	g.limits.MaxUniformBlock = u
	g.limits.MaxShaderStorage = s
	var align int32
	gl.GetIntegerv(gl.UNIFORM_BUFFER_OFFSET_ALIGNMENT, &align)
	g.limits.UniformBufferAlign = int64(align)
}
