package gl45

import (
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/cmd"
	"github.com/ardentgfx/ghi/gstate"
)

// Backend implements cmd.Backend, the actual OpenGL 4.5 call stream
// the command recorder drives after diffing a request against
// gstate.State. Backend holds no state of its own beyond what is
// needed to translate a call; gstate.State is the single source of
// truth for "what is currently applied".
type Backend struct {
	boundVAO    *vaoHandle
	indexOffset int64
	indexSize   int
	boundFB     uint32
}

// NewBackend returns a Backend ready to be passed to cmd.New.
func NewBackend() *Backend { return &Backend{} }

func glBool(b bool) uint8 {
	if b {
		return gl.TRUE
	}
	return gl.FALSE
}

func glEnable(cap uint32, enable bool) {
	if enable {
		gl.Enable(cap)
	} else {
		gl.Disable(cap)
	}
}

func (b *Backend) BindProgramPipeline(p ghi.Pipeline) {
	pp, ok := p.(*pipeline)
	if !ok || pp == nil {
		gl.BindProgramPipeline(0)
		return
	}
	gl.BindProgramPipeline(pp.ppo)
}

func (b *Backend) BindVertexArray(vao any) {
	v, ok := vao.(*gstate.VAO)
	if !ok || v == nil {
		b.boundVAO = nil
		gl.BindVertexArray(0)
		return
	}
	h, ok := v.Handle.(*vaoHandle)
	if !ok || h == nil {
		b.boundVAO = nil
		gl.BindVertexArray(0)
		return
	}
	b.boundVAO = h
	gl.BindVertexArray(h.name)
}

func (b *Backend) SetDrawBuffers(slots []int) {
	if len(slots) == 0 {
		gl.DrawBuffer(gl.NONE)
		return
	}
	bufs := make([]uint32, len(slots))
	for i, s := range slots {
		bufs[i] = gl.COLOR_ATTACHMENT0 + uint32(s)
	}
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])
}

func (b *Backend) SetPatchVertices(n int) { gl.PatchParameteri(gl.PATCH_VERTICES, int32(n)) }

func (b *Backend) SetPrimitiveRestartFixedIndex(enable bool) {
	glEnable(gl.PRIMITIVE_RESTART_FIXED_INDEX, enable)
}

func (b *Backend) SetBlendEnable(slot int, enable bool) {
	if enable {
		gl.Enablei(gl.BLEND, uint32(slot))
	} else {
		gl.Disablei(gl.BLEND, uint32(slot))
	}
}

func (b *Backend) SetColorMask(slot int, mask ghi.ColorMask) {
	gl.ColorMaski(uint32(slot),
		glBool(mask&ghi.CRed != 0), glBool(mask&ghi.CGreen != 0),
		glBool(mask&ghi.CBlue != 0), glBool(mask&ghi.CAlpha != 0))
}

func (b *Backend) SetBlendEquation(slot int, rgb, alpha ghi.BlendOp, separate bool) {
	if separate {
		gl.BlendEquationSeparatei(uint32(slot), glBlendOp(rgb), glBlendOp(alpha))
	} else {
		gl.BlendEquationi(uint32(slot), glBlendOp(rgb))
	}
}

func (b *Backend) SetBlendFunc(slot int, srcRGB, dstRGB, srcAlpha, dstAlpha ghi.BlendFac, separate bool) {
	if separate {
		gl.BlendFuncSeparatei(uint32(slot), glBlendFac(srcRGB), glBlendFac(dstRGB), glBlendFac(srcAlpha), glBlendFac(dstAlpha))
	} else {
		gl.BlendFunci(uint32(slot), glBlendFac(srcRGB), glBlendFac(dstRGB))
	}
}

func (b *Backend) SetIndependentBlend(enable bool) {} // implied by per-slot (...i) calls, nothing to toggle

func (b *Backend) SetAlphaToCoverage(enable bool) { glEnable(gl.SAMPLE_ALPHA_TO_COVERAGE, enable) }

func (b *Backend) SetLogicOp(enable bool, op ghi.LogicOp) {
	glEnable(gl.COLOR_LOGIC_OP, enable)
	if enable {
		gl.LogicOp(glLogicOp(op))
	}
}

func (b *Backend) SetFillMode(mode ghi.FillMode) {
	if mode == ghi.FillWireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (b *Backend) SetCullMode(mode ghi.CullMode) {
	if mode == ghi.CullNone {
		gl.Disable(gl.CULL_FACE)
		return
	}
	gl.Enable(gl.CULL_FACE)
	if mode == ghi.CullFront {
		gl.CullFace(gl.FRONT)
	} else {
		gl.CullFace(gl.BACK)
	}
}

func (b *Backend) SetFrontFace(ccw bool) {
	if ccw {
		gl.FrontFace(gl.CCW)
	} else {
		gl.FrontFace(gl.CW)
	}
}

func (b *Backend) SetScissorEnable(enable bool) { glEnable(gl.SCISSOR_TEST, enable) }
func (b *Backend) SetMultisampleEnable(enable bool) { glEnable(gl.MULTISAMPLE, enable) }
func (b *Backend) SetRasterizerDiscard(enable bool) { glEnable(gl.RASTERIZER_DISCARD, enable) }
func (b *Backend) SetLineSmooth(enable bool)       { glEnable(gl.LINE_SMOOTH, enable) }
func (b *Backend) SetDepthClamp(enable bool)       { glEnable(gl.DEPTH_CLAMP, enable) }

func (b *Backend) SetPolygonOffset(enable bool, slope, bias, clamp float32) {
	glEnable(gl.POLYGON_OFFSET_FILL, enable)
	glEnable(gl.POLYGON_OFFSET_LINE, enable)
	if enable {
		gl.PolygonOffsetClamp(slope, bias, clamp)
	}
}

func (b *Backend) SetDepthTest(enable bool)  { glEnable(gl.DEPTH_TEST, enable) }
func (b *Backend) SetDepthWrite(enable bool) { gl.DepthMask(glBool(enable)) }
func (b *Backend) SetDepthFunc(fn ghi.CmpFunc) { gl.DepthFunc(uint32(glCmpFunc(fn))) }
func (b *Backend) SetStencilTest(enable bool)  { glEnable(gl.STENCIL_TEST, enable) }

func (b *Backend) SetStencilWriteMask(face int, mask uint32) {
	gl.StencilMaskSeparate(stencilFaceEnum(face), mask)
}

func (b *Backend) SetStencilFunc(front, back bool, cmp ghi.CmpFunc, ref uint32, readMask uint32, combined bool) {
	if combined {
		gl.StencilFuncSeparate(gl.FRONT_AND_BACK, uint32(glCmpFunc(cmp)), int32(ref), readMask)
		return
	}
	if front {
		gl.StencilFuncSeparate(gl.FRONT, uint32(glCmpFunc(cmp)), int32(ref), readMask)
	}
	if back {
		gl.StencilFuncSeparate(gl.BACK, uint32(glCmpFunc(cmp)), int32(ref), readMask)
	}
}

func (b *Backend) SetStencilOp(front, back bool, fail, depthFail, pass ghi.StencilOp, combined bool) {
	if combined {
		gl.StencilOpSeparate(gl.FRONT_AND_BACK, glStencilOp(fail), glStencilOp(depthFail), glStencilOp(pass))
		return
	}
	if front {
		gl.StencilOpSeparate(gl.FRONT, glStencilOp(fail), glStencilOp(depthFail), glStencilOp(pass))
	}
	if back {
		gl.StencilOpSeparate(gl.BACK, glStencilOp(fail), glStencilOp(depthFail), glStencilOp(pass))
	}
}

func stencilFaceEnum(face int) uint32 {
	switch face {
	case 0:
		return gl.FRONT
	case 1:
		return gl.BACK
	default:
		return gl.FRONT_AND_BACK
	}
}

func (b *Backend) vaoStride(slot int) int32 {
	if b.boundVAO == nil {
		return 0
	}
	return b.boundVAO.strides[uint32(slot)]
}

func (b *Backend) BindVertexBuffer(slot int, buf ghi.Buffer, offset int64) {
	if b.boundVAO == nil {
		return
	}
	var name uint32
	if buf != nil {
		name = buf.(*buffer).name
	}
	gl.VertexArrayVertexBuffer(b.boundVAO.name, uint32(slot), name, int(offset), b.vaoStride(slot))
}

func (b *Backend) BindVertexBuffers(start int, bufs []ghi.Buffer, offsets []int64) {
	for i, buf := range bufs {
		b.BindVertexBuffer(start+i, buf, offsets[i])
	}
}

func (b *Backend) BindIndexBuffer(buf ghi.Buffer, indexSize int, offset int64) {
	b.indexOffset = offset
	b.indexSize = indexSize
	if b.boundVAO == nil {
		return
	}
	var name uint32
	if buf != nil {
		name = buf.(*buffer).name
	}
	gl.VertexArrayElementBuffer(b.boundVAO.name, name)
}

func (b *Backend) indexGLType() uint32 {
	if b.indexSize == 2 {
		return gl.UNSIGNED_SHORT
	}
	return gl.UNSIGNED_INT
}

func (b *Backend) BindBufferRange(slot int, buf ghi.Buffer, offset, size int64) {
	gl.BindBufferRange(gl.SHADER_STORAGE_BUFFER, uint32(slot), buf.(*buffer).name, offset, size)
}

func (b *Backend) BindBufferBase(slot int, buf ghi.Buffer) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, uint32(slot), buf.(*buffer).name)
}

func (b *Backend) BindSampler(slot int, s ghi.Sampler) {
	if s == nil {
		gl.BindSampler(uint32(slot), 0)
		return
	}
	gl.BindSampler(uint32(slot), s.(*sampler).name)
}

func (b *Backend) BindTextureUnit(slot int, t ghi.Texture) {
	if t == nil {
		gl.BindTextureUnit(uint32(slot), 0)
		return
	}
	gl.BindTextureUnit(uint32(slot), t.(*texture).name)
}

func (b *Backend) BindImageTexture(slot int, t ghi.Texture, level, layer int, layered bool) {
	if t == nil {
		gl.BindImageTexture(uint32(slot), 0, 0, false, 0, gl.READ_WRITE, gl.RGBA8)
		return
	}
	tex := t.(*texture)
	gl.BindImageTexture(uint32(slot), tex.name, int32(level), layered, int32(layer), gl.READ_WRITE, glInternalFormat(tex.desc.Format))
}

func (b *Backend) SetViewport(index int, x, y, w, h, znear, zfar float32) {
	gl.ViewportIndexedf(uint32(index), x, y, w, h)
	gl.DepthRangeIndexed(uint32(index), float64(znear), float64(zfar))
}

func (b *Backend) SetScissorRect(index int, x, y, w, h int) {
	gl.ScissorIndexed(uint32(index), int32(x), int32(y), int32(w), int32(h))
}

func (b *Backend) Draw(topology ghi.Topology, vertCount, instCount, baseVert, baseInst int) {
	gl.DrawArraysInstancedBaseInstance(glPrimitive(topology), int32(baseVert), int32(vertCount), int32(instCount), uint32(baseInst))
}

func (b *Backend) DrawIndexed(topology ghi.Topology, idxCount, instCount, baseIdx, vertOff, baseInst int) {
	size := b.indexSize
	if size == 0 {
		size = 4
	}
	byteOff := b.indexOffset + int64(baseIdx)*int64(size)
	gl.DrawElementsInstancedBaseVertexBaseInstance(glPrimitive(topology), int32(idxCount), b.indexGLType(),
		unsafe.Pointer(uintptr(byteOff)), int32(instCount), int32(vertOff), uint32(baseInst))
}

func (b *Backend) DrawIndirect(topology ghi.Topology, buf ghi.Buffer, offset int64, count int, stride int) {
	gl.BindBuffer(gl.DRAW_INDIRECT_BUFFER, buf.(*buffer).name)
	gl.MultiDrawArraysIndirect(glPrimitive(topology), unsafe.Pointer(uintptr(offset)), int32(count), int32(stride))
	gl.BindBuffer(gl.DRAW_INDIRECT_BUFFER, 0)
}

func (b *Backend) Dispatch(x, y, z int) { gl.DispatchCompute(uint32(x), uint32(y), uint32(z)) }

func (b *Backend) BeginQuery(target ghi.QueryTarget, q ghi.Query, stream int) {
	q.(*query).Begin(stream)
}

func (b *Backend) EndQuery(q ghi.Query, stream int) { q.(*query).End() }

func (b *Backend) BeginConditionalRender(q ghi.Query, mode cmd.ConditionalRenderMode) {
	qq := q.(*query)
	gl.BeginConditionalRender(qq.names[len(qq.names)-1], glConditionalMode(mode))
}

func (b *Backend) EndConditionalRender() { gl.EndConditionalRender() }

func glConditionalMode(mode cmd.ConditionalRenderMode) uint32 {
	switch {
	case mode&cmd.CondByRegion != 0 && mode&cmd.CondWait != 0:
		return gl.QUERY_BY_REGION_WAIT
	case mode&cmd.CondByRegion != 0:
		return gl.QUERY_BY_REGION_NO_WAIT
	case mode&cmd.CondWait != 0:
		return gl.QUERY_WAIT
	default:
		return gl.QUERY_NO_WAIT
	}
}

func (b *Backend) ClearBuffer(buf ghi.Buffer, cv ghi.ClearValue, pattern []byte) {
	bb := buf.(*buffer)
	gl.ClearNamedBufferData(bb.name, gl.R8, gl.RED, gl.UNSIGNED_BYTE, clearPatternPtr(pattern))
}

func (b *Backend) ClearBufferRange(buf ghi.Buffer, offset, size int64, cv ghi.ClearValue, pattern []byte) {
	bb := buf.(*buffer)
	gl.ClearNamedBufferSubData(bb.name, gl.R8, offset, size, gl.RED, gl.UNSIGNED_BYTE, clearPatternPtr(pattern))
}

func clearPatternPtr(pattern []byte) unsafe.Pointer {
	if len(pattern) == 0 {
		return nil
	}
	return gl.Ptr(&pattern[0])
}

func (b *Backend) ClearTexture(t ghi.Texture, level int, cv ghi.ClearValue) {
	tex := t.(*texture)
	gl.ClearTexImage(tex.name, int32(level), clearFormat(tex.desc.Format), clearType(tex.desc.Format), clearValuePtr(tex.desc.Format, cv))
}

func (b *Backend) ClearTextureRect(t ghi.Texture, level int, off ghi.Off3D, size ghi.Dim3D, cv ghi.ClearValue) {
	tex := t.(*texture)
	gl.ClearTexSubImage(tex.name, int32(level), int32(off.X), int32(off.Y), int32(off.Z),
		int32(size.Width), int32(size.Height), int32(max(size.Depth, 1)),
		clearFormat(tex.desc.Format), clearType(tex.desc.Format), clearValuePtr(tex.desc.Format, cv))
}

func clearFormat(f ghi.PixelFmt) uint32 {
	switch ghi.Info(f).ClearType {
	case ghi.ClearUInt32, ghi.ClearInt32:
		return gl.RGBA_INTEGER
	default:
		return gl.RGBA
	}
}

func clearType(f ghi.PixelFmt) uint32 {
	switch ghi.Info(f).ClearType {
	case ghi.ClearUInt32:
		return gl.UNSIGNED_INT
	case ghi.ClearInt32:
		return gl.INT
	default:
		return gl.FLOAT
	}
}

func clearValuePtr(f ghi.PixelFmt, cv ghi.ClearValue) unsafe.Pointer {
	switch ghi.Info(f).ClearType {
	case ghi.ClearUInt32:
		return gl.Ptr(&cv.UInt[0])
	case ghi.ClearInt32:
		return gl.Ptr(&cv.Int[0])
	default:
		return gl.Ptr(&cv.Float[0])
	}
}

func (b *Backend) ClearFramebufColor(index int, cv ghi.ClearValue) {
	gl.ClearNamedFramebufferfv(b.boundFB, gl.COLOR, int32(index), &cv.Float[0])
}

func (b *Backend) ClearFramebufDepthStencil(clearDepth, clearStencil bool, cv ghi.ClearValue) {
	switch {
	case clearDepth && clearStencil:
		gl.ClearNamedFramebufferfi(b.boundFB, gl.DEPTH_STENCIL, 0, cv.Depth, int32(cv.Stencil))
	case clearDepth:
		gl.ClearNamedFramebufferfv(b.boundFB, gl.DEPTH, 0, &cv.Depth)
	case clearStencil:
		stencil := int32(cv.Stencil)
		gl.ClearNamedFramebufferiv(b.boundFB, gl.STENCIL, 0, &stencil)
	}
}

func (b *Backend) CopyBufferRange(src, dst ghi.Buffer, srcOff, dstOff, size int64) {
	gl.CopyNamedBufferSubData(src.(*buffer).name, dst.(*buffer).name, srcOff, dstOff, size)
}

func (b *Backend) CopyBufferToTexture(src ghi.Buffer, srcOff int64, dst ghi.Texture, layer, level int, off ghi.Off3D, size ghi.Dim3D) {
	gl.BindBuffer(gl.PIXEL_UNPACK_BUFFER, src.(*buffer).name)
	tex := dst.(*texture)
	format, typ := glDataFormat(inferDataType(tex.desc.Format))
	gl.TextureSubImage3D(tex.name, int32(level), int32(off.X), int32(off.Y), int32(layer),
		int32(size.Width), int32(size.Height), int32(max(size.Depth, 1)), format, typ, unsafe.Pointer(uintptr(srcOff)))
	gl.BindBuffer(gl.PIXEL_UNPACK_BUFFER, 0)
}

func (b *Backend) CopyTextureToBuffer(src ghi.Texture, layer, level int, off ghi.Off3D, size ghi.Dim3D, dst ghi.Buffer, dstOff int64) {
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, dst.(*buffer).name)
	tex := src.(*texture)
	format, typ := glDataFormat(inferDataType(tex.desc.Format))
	gl.GetTextureSubImage(tex.name, int32(level), int32(off.X), int32(off.Y), int32(layer),
		int32(size.Width), int32(size.Height), int32(max(size.Depth, 1)), format, typ, 0, unsafe.Pointer(uintptr(dstOff)))
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, 0)
}

func (b *Backend) CopyTextureToTexture(src ghi.Texture, srcLayer, srcLevel int, srcOff ghi.Off3D, dst ghi.Texture, dstLayer, dstLevel int, dstOff ghi.Off3D, size ghi.Dim3D) {
	s, d := src.(*texture), dst.(*texture)
	gl.CopyImageSubData(s.name, s.target, int32(srcLevel), int32(srcOff.X), int32(srcOff.Y), int32(srcLayer),
		d.name, d.target, int32(dstLevel), int32(dstOff.X), int32(dstOff.Y), int32(dstLayer),
		int32(size.Width), int32(size.Height), int32(max(size.Depth, 1)))
}

func (b *Backend) BlitFramebuf(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask cmd.BlitMask, linear bool) {
	var bits uint32
	if mask&cmd.BlitColor != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&cmd.BlitDepth != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	if mask&cmd.BlitStencil != 0 {
		bits |= gl.STENCIL_BUFFER_BIT
	}
	filter := uint32(gl.NEAREST)
	if linear {
		filter = gl.LINEAR
	}
	gl.BlitNamedFramebuffer(0, 0, int32(srcX0), int32(srcY0), int32(srcX1), int32(srcY1),
		int32(dstX0), int32(dstY0), int32(dstX1), int32(dstY1), bits, filter)
}

func (b *Backend) Fence() (ghi.Fence, error) { return newFence() }

func (b *Backend) ClientWait(f ghi.Fence, timeoutNanos int64) ghi.WaitResult {
	fe, ok := f.(*fence)
	if !ok || fe.sync == nil {
		return ghi.WaitFailed
	}
	status := gl.ClientWaitSync(fe.sync, gl.SYNC_FLUSH_COMMANDS_BIT, uint64(timeoutNanos))
	switch status {
	case gl.ALREADY_SIGNALED:
		return ghi.AlreadySignaled
	case gl.CONDITION_SATISFIED:
		return ghi.ConditionSatisfied
	case gl.TIMEOUT_EXPIRED:
		return ghi.TimeoutExpired
	default:
		return ghi.WaitFailed
	}
}

func (b *Backend) ServerWait(f ghi.Fence) {
	fe, ok := f.(*fence)
	if !ok || fe.sync == nil {
		return
	}
	gl.WaitSync(fe.sync, 0, gl.TIMEOUT_IGNORED)
}

func (b *Backend) IsSignaled(f ghi.Fence) bool {
	fe, ok := f.(*fence)
	if !ok || fe.sync == nil {
		return false
	}
	var length int32
	var value int32
	gl.GetSynciv(fe.sync, gl.SYNC_STATUS, 4, &length, &value)
	return value == gl.SIGNALED
}

func (b *Backend) Flush() { gl.Flush() }

func (b *Backend) MemoryBarrier(bits ghi.BarrierBit) { gl.MemoryBarrier(glBarrierBits(bits)) }

func (b *Backend) RegionBarrier(bits ghi.BarrierBit, x, y, w, h int) {
	gl.MemoryBarrier(glBarrierBits(bits))
}

func (b *Backend) TextureBarrier() { gl.TextureBarrier() }

func glBarrierBits(bits ghi.BarrierBit) uint32 {
	var m uint32
	if bits&ghi.BarrierImageStore != 0 {
		m |= gl.SHADER_IMAGE_ACCESS_BARRIER_BIT
	}
	if bits&ghi.BarrierShaderStorage != 0 {
		m |= gl.SHADER_STORAGE_BARRIER_BIT
	}
	if bits&ghi.BarrierXfbWrite != 0 {
		m |= gl.TRANSFORM_FEEDBACK_BARRIER_BIT
	}
	if bits&ghi.BarrierClientUpdate != 0 {
		m |= gl.CLIENT_MAPPED_BUFFER_BARRIER_BIT
	}
	if bits&ghi.BarrierFramebuffer != 0 {
		m |= gl.FRAMEBUFFER_BARRIER_BIT
	}
	if bits&ghi.BarrierTextureFetch != 0 {
		m |= gl.TEXTURE_FETCH_BARRIER_BIT
	}
	if bits&ghi.BarrierElementArray != 0 {
		m |= gl.ELEMENT_ARRAY_BARRIER_BIT
	}
	if bits&ghi.BarrierUniform != 0 {
		m |= gl.UNIFORM_BARRIER_BIT
	}
	if bits&ghi.BarrierCommand != 0 {
		m |= gl.COMMAND_BARRIER_BIT
	}
	if bits == ghi.BarrierAll {
		m = gl.ALL_BARRIER_BITS
	}
	return m
}

func (b *Backend) SetStencilRef(value uint32) {} // folded into SetStencilFunc's ref parameter
func (b *Backend) SetBlendColor(r, g, b2, a float32) { gl.BlendColor(r, g, b2, a) }
func (b *Backend) SetPackAlignment(n int)   { gl.PixelStorei(gl.PACK_ALIGNMENT, int32(n)) }
func (b *Backend) SetUnpackAlignment(n int) { gl.PixelStorei(gl.UNPACK_ALIGNMENT, int32(n)) }
func (b *Backend) SetReadColorClamp(enable bool) {
	if enable {
		gl.ClampColor(gl.CLAMP_READ_COLOR, gl.TRUE)
	} else {
		gl.ClampColor(gl.CLAMP_READ_COLOR, gl.FALSE)
	}
}

func (b *Backend) BeginRenderPass(pass ghi.RenderPass, fb ghi.Framebuf, subpassIndex int) {
	f, ok := fb.(*framebuf)
	if !ok || f == nil {
		b.boundFB = 0
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return
	}
	b.boundFB = f.name
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.name)
}

func (b *Backend) EndRenderPass() {
	b.boundFB = 0
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}
