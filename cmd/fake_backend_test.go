package cmd

import "github.com/ardentgfx/ghi"

// call records one Backend invocation by name, for order- and
// count-sensitive assertions. fakeBackend only implements the
// methods exercised by these tests; every other Backend method is
// promoted from the nil-embedded interface and would panic if
// called, which none of these tests do.
type call struct {
	name string
	ints []int
	f32  []float32
	b    []bool
}

type fakeBackend struct {
	Backend
	calls []call
}

func (b *fakeBackend) SetViewport(index int, x, y, w, h, znear, zfar float32) {
	b.calls = append(b.calls, call{name: "SetViewport", ints: []int{index}, f32: []float32{x, y, w, h, znear, zfar}})
}

func (b *fakeBackend) SetScissorRect(index int, x, y, w, h int) {
	b.calls = append(b.calls, call{name: "SetScissorRect", ints: []int{index, x, y, w, h}})
}

func (b *fakeBackend) SetScissorEnable(enable bool) {
	b.calls = append(b.calls, call{name: "SetScissorEnable", b: []bool{enable}})
}

func (b *fakeBackend) SetRasterizerDiscard(enable bool) {
	b.calls = append(b.calls, call{name: "SetRasterizerDiscard", b: []bool{enable}})
}

func (b *fakeBackend) SetDepthWrite(enable bool) {
	b.calls = append(b.calls, call{name: "SetDepthWrite", b: []bool{enable}})
}

func (b *fakeBackend) SetColorMask(slot int, mask ghi.ColorMask) {
	b.calls = append(b.calls, call{name: "SetColorMask", ints: []int{slot, int(mask)}})
}

func (b *fakeBackend) ClearFramebufColor(index int, cv ghi.ClearValue) {
	b.calls = append(b.calls, call{name: "ClearFramebufColor", ints: []int{index}})
}

func (b *fakeBackend) ClearFramebufDepthStencil(clearDepth, clearStencil bool, cv ghi.ClearValue) {
	b.calls = append(b.calls, call{name: "ClearFramebufDepthStencil", b: []bool{clearDepth, clearStencil}})
}

func (b *fakeBackend) BeginRenderPass(pass ghi.RenderPass, fb ghi.Framebuf, subpassIndex int) {
	b.calls = append(b.calls, call{name: "BeginRenderPass", ints: []int{subpassIndex}})
}

func (b *fakeBackend) EndRenderPass() {
	b.calls = append(b.calls, call{name: "EndRenderPass"})
}

func (b *fakeBackend) BindProgramPipeline(p ghi.Pipeline) {
	b.calls = append(b.calls, call{name: "BindProgramPipeline"})
}

func (b *fakeBackend) BindVertexArray(vao any) {
	b.calls = append(b.calls, call{name: "BindVertexArray"})
}

func (b *fakeBackend) SetDrawBuffers(slots []int) {
	b.calls = append(b.calls, call{name: "SetDrawBuffers", ints: slots})
}

func (b *fakeBackend) SetPatchVertices(n int) {
	b.calls = append(b.calls, call{name: "SetPatchVertices", ints: []int{n}})
}

func (b *fakeBackend) SetPrimitiveRestartFixedIndex(enable bool) {
	b.calls = append(b.calls, call{name: "SetPrimitiveRestartFixedIndex", b: []bool{enable}})
}

func (b *fakeBackend) SetBlendEnable(slot int, enable bool) {
	b.calls = append(b.calls, call{name: "SetBlendEnable", ints: []int{slot}, b: []bool{enable}})
}

func (b *fakeBackend) SetBlendEquation(slot int, rgb, alpha ghi.BlendOp, separate bool) {
	b.calls = append(b.calls, call{name: "SetBlendEquation", ints: []int{slot, int(rgb), int(alpha)}, b: []bool{separate}})
}

func (b *fakeBackend) SetBlendFunc(slot int, srcRGB, dstRGB, srcAlpha, dstAlpha ghi.BlendFac, separate bool) {
	b.calls = append(b.calls, call{name: "SetBlendFunc", ints: []int{slot, int(srcRGB), int(dstRGB), int(srcAlpha), int(dstAlpha)}, b: []bool{separate}})
}

func (b *fakeBackend) SetIndependentBlend(enable bool) {
	b.calls = append(b.calls, call{name: "SetIndependentBlend", b: []bool{enable}})
}

func (b *fakeBackend) SetAlphaToCoverage(enable bool) {
	b.calls = append(b.calls, call{name: "SetAlphaToCoverage", b: []bool{enable}})
}

func (b *fakeBackend) SetLogicOp(enable bool, op ghi.LogicOp) {
	b.calls = append(b.calls, call{name: "SetLogicOp", b: []bool{enable}, ints: []int{int(op)}})
}

func (b *fakeBackend) SetFillMode(mode ghi.FillMode)   { b.calls = append(b.calls, call{name: "SetFillMode"}) }
func (b *fakeBackend) SetCullMode(mode ghi.CullMode)   { b.calls = append(b.calls, call{name: "SetCullMode"}) }
func (b *fakeBackend) SetFrontFace(ccw bool)           { b.calls = append(b.calls, call{name: "SetFrontFace"}) }
func (b *fakeBackend) SetMultisampleEnable(enable bool) {
	b.calls = append(b.calls, call{name: "SetMultisampleEnable"})
}
func (b *fakeBackend) SetLineSmooth(enable bool) { b.calls = append(b.calls, call{name: "SetLineSmooth"}) }
func (b *fakeBackend) SetDepthClamp(enable bool)  { b.calls = append(b.calls, call{name: "SetDepthClamp"}) }
func (b *fakeBackend) SetPolygonOffset(enable bool, slope, bias, clamp float32) {
	b.calls = append(b.calls, call{name: "SetPolygonOffset"})
}
func (b *fakeBackend) SetDepthTest(enable bool)  { b.calls = append(b.calls, call{name: "SetDepthTest"}) }
func (b *fakeBackend) SetDepthFunc(fn ghi.CmpFunc) { b.calls = append(b.calls, call{name: "SetDepthFunc"}) }
func (b *fakeBackend) SetStencilTest(enable bool) { b.calls = append(b.calls, call{name: "SetStencilTest"}) }
func (b *fakeBackend) SetStencilWriteMask(face int, mask uint32) {
	b.calls = append(b.calls, call{name: "SetStencilWriteMask"})
}
func (b *fakeBackend) SetStencilFunc(front, back bool, cmp ghi.CmpFunc, ref uint32, readMask uint32, combined bool) {
	b.calls = append(b.calls, call{name: "SetStencilFunc"})
}
func (b *fakeBackend) SetStencilOp(front, back bool, fail, depthFail, pass ghi.StencilOp, combined bool) {
	b.calls = append(b.calls, call{name: "SetStencilOp"})
}

func (b *fakeBackend) BindVertexBuffer(slot int, buf ghi.Buffer, offset int64) {
	b.calls = append(b.calls, call{name: "BindVertexBuffer", ints: []int{slot}})
}

func (b *fakeBackend) countOf(name string) int {
	n := 0
	for _, c := range b.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

type fakeBuffer struct {
	ghi.Buffer
	uid uint32
}

func (f *fakeBuffer) UID() uint32 { return f.uid }
