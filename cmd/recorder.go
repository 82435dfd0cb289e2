package cmd

import (
	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/gstate"
)

// Recorder is the command recorder of spec §4.4. It diffs each
// public call against the bound gstate.State and forwards only the
// backend calls required to bring the backend in sync.
type Recorder struct {
	State   *gstate.State
	Backend Backend
}

// New creates a Recorder layered on the given State and Backend.
func New(s *gstate.State, b Backend) *Recorder {
	return &Recorder{State: s, Backend: b}
}

// BindPipeline implements the §4.4 BindPipeline contract:
//
//  1. If p == State.Pipeline, only rebind the enclosing render
//     pass' subpass draw-buffer set and return.
//  2. Otherwise bind program pipeline, bind the VAO referenced by
//     p, rebind the subpass draw-buffer set, program patch
//     vertices / primitive-restart only when changed.
//  3. Diff blend state.
//  4. Diff rasterizer state.
//  5. Diff depth-stencil state.
func (r *Recorder) BindPipeline(p ghi.Pipeline, drawBuffers []int) {
	s := r.State
	same := p != nil && s.Pipeline == p
	if same {
		r.Backend.SetDrawBuffers(drawBuffers)
		return
	}

	r.Backend.BindProgramPipeline(p)
	if vao := p.VAO(); vao != nil {
		if v, ok := vao.(*gstate.VAO); ok {
			if s.VAO != v {
				r.Backend.BindVertexArray(v.Handle)
				s.VAO = v
			}
		}
	}
	r.Backend.SetDrawBuffers(drawBuffers)

	if gs := p.Graph(); gs != nil {
		if gs.Topology == ghi.TPatch {
			if s.LastPatchVertices != gs.PatchVertices {
				r.Backend.SetPatchVertices(gs.PatchVertices)
				s.LastPatchVertices = gs.PatchVertices
			}
		}
		if s.LastPrimRestart != gs.PrimitiveRestart {
			r.Backend.SetPrimitiveRestartFixedIndex(gs.PrimitiveRestart)
			s.LastPrimRestart = gs.PrimitiveRestart
		}
		r.diffBlend(&gs.Blend)
		r.diffRaster(&gs.Raster)
		r.diffDS(&gs.DS)
	}

	s.Pipeline = p
}

func (r *Recorder) diffBlend(want *ghi.BlendState) {
	s := r.State
	cur := s.Fixed.Blend
	if cur == want {
		return
	}
	if cur.IndependentBlend != want.IndependentBlend {
		r.Backend.SetIndependentBlend(want.IndependentBlend)
	}
	if cur.AlphaToCoverage != want.AlphaToCoverage {
		r.Backend.SetAlphaToCoverage(want.AlphaToCoverage)
	}
	if cur.LogicOpEnable != want.LogicOpEnable || cur.LogicOp != want.LogicOp {
		r.Backend.SetLogicOp(want.LogicOpEnable && want.LogicOp != ghi.LogicCopy, want.LogicOp)
	}

	n := 1
	if want.IndependentBlend {
		n = len(want.Targets)
	}
	for i := 0; i < n; i++ {
		c, w := cur.Targets[i], want.Targets[i]
		if c.Enable != w.Enable {
			r.Backend.SetBlendEnable(i, w.Enable)
		}
		if c.WriteMask != w.WriteMask {
			r.Backend.SetColorMask(i, w.WriteMask)
		}
		if c.OpRGB != w.OpRGB || c.OpAlpha != w.OpAlpha {
			r.Backend.SetBlendEquation(i, w.OpRGB, w.OpAlpha, w.OpRGB != w.OpAlpha)
		}
		if c.SrcRGB != w.SrcRGB || c.DstRGB != w.DstRGB || c.SrcAlpha != w.SrcAlpha || c.DstAlpha != w.DstAlpha {
			separate := w.SrcRGB != w.SrcAlpha || w.DstRGB != w.DstAlpha
			r.Backend.SetBlendFunc(i, w.SrcRGB, w.DstRGB, w.SrcAlpha, w.DstAlpha, separate)
		}
	}
	s.Fixed.Blend = want
}

func (r *Recorder) diffRaster(want *ghi.RasterState) {
	s := r.State
	cur := s.Fixed.Raster
	if cur == want {
		return
	}
	if cur.Fill != want.Fill {
		r.Backend.SetFillMode(want.Fill)
	}
	if cur.Cull != want.Cull {
		if want.Cull == ghi.CullNone {
			r.Backend.SetCullMode(ghi.CullNone)
		} else {
			r.Backend.SetCullMode(want.Cull)
		}
	}
	if cur.FrontCCW != want.FrontCCW {
		r.Backend.SetFrontFace(want.FrontCCW)
	}
	if cur.ScissorEnable != want.ScissorEnable {
		r.Backend.SetScissorEnable(want.ScissorEnable)
	}
	if cur.MultisampleEnable != want.MultisampleEnable {
		r.Backend.SetMultisampleEnable(want.MultisampleEnable)
	}
	if cur.RasterizerDiscard != want.RasterizerDiscard {
		r.Backend.SetRasterizerDiscard(want.RasterizerDiscard)
	}
	if cur.LineSmooth != want.LineSmooth {
		r.Backend.SetLineSmooth(want.LineSmooth)
	}
	if cur.DepthClamp != want.DepthClamp {
		r.Backend.SetDepthClamp(want.DepthClamp)
	}
	curOffset := cur.PolygonOffsetSlope != 0 || cur.PolygonOffsetBias != 0 || cur.PolygonOffsetClamp != 0
	wantOffset := want.PolygonOffsetSlope != 0 || want.PolygonOffsetBias != 0 || want.PolygonOffsetClamp != 0
	if curOffset != wantOffset || *cur != *want {
		r.Backend.SetPolygonOffset(wantOffset, want.PolygonOffsetSlope, want.PolygonOffsetBias, want.PolygonOffsetClamp)
	}
	s.Fixed.Raster = want
}

func (r *Recorder) diffDS(want *ghi.DSState) {
	s := r.State
	cur := s.Fixed.DS
	if cur == want {
		return
	}
	if cur.DepthTest != want.DepthTest {
		r.Backend.SetDepthTest(want.DepthTest)
	}
	if cur.DepthWrite != want.DepthWrite {
		r.Backend.SetDepthWrite(want.DepthWrite)
	}
	if cur.DepthFunc != want.DepthFunc {
		r.Backend.SetDepthFunc(want.DepthFunc)
	}
	if cur.StencilTest != want.StencilTest {
		r.Backend.SetStencilTest(want.StencilTest)
	}

	collapsedFunc := want.Front.Cmp == want.Back.Cmp && want.Front.ReadMask == want.Back.ReadMask
	if cur.Front != want.Front || cur.Back != want.Back {
		if collapsedFunc {
			r.Backend.SetStencilFunc(true, true, want.Front.Cmp, s.StencilRef, want.Front.ReadMask, true)
		} else {
			r.Backend.SetStencilFunc(true, false, want.Front.Cmp, s.StencilRef, want.Front.ReadMask, false)
			r.Backend.SetStencilFunc(false, true, want.Back.Cmp, s.StencilRef, want.Back.ReadMask, false)
		}
		if cur.Front.WriteMask != want.Front.WriteMask {
			r.Backend.SetStencilWriteMask(0, want.Front.WriteMask)
		}
		if cur.Back.WriteMask != want.Back.WriteMask {
			r.Backend.SetStencilWriteMask(1, want.Back.WriteMask)
		}
		collapsedOp := want.Front.Fail == want.Back.Fail && want.Front.DepthFail == want.Back.DepthFail && want.Front.Pass == want.Back.Pass
		if collapsedOp {
			r.Backend.SetStencilOp(true, true, want.Front.Fail, want.Front.DepthFail, want.Front.Pass, true)
		} else {
			r.Backend.SetStencilOp(true, false, want.Front.Fail, want.Front.DepthFail, want.Front.Pass, false)
			r.Backend.SetStencilOp(false, true, want.Back.Fail, want.Back.DepthFail, want.Back.Pass, false)
		}
	}
	s.Fixed.DS = want
}
