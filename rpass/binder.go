// Package rpass implements the render-pass binding contract of spec
// §4.6: begin_render_pass binds the chosen draw-framebuffer, sets
// the subpass draw buffers, and for each attachment with
// LoadOp=Clear temporarily overrides scissor/rasterizer-discard/
// color-mask/depth-write to perform the clear before restoring them,
// so a subsequent subpass record callback sees the same fixed-
// function state it would have seen without the clear.
package rpass

import (
	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/cmd"
)

// Rect is a render area or viewport extent, in framebuffer pixels.
type Rect struct {
	X, Y, Width, Height int
}

// Binder drives the render-pass begin/end sequence on top of a
// cmd.Recorder.
type Binder struct {
	R *cmd.Recorder
}

// New creates a Binder over r.
func New(r *cmd.Recorder) *Binder { return &Binder{R: r} }

// Begin binds fb as the current draw framebuffer, sets the
// viewport to area, and clears every attachment of pass whose
// LoadOp is LClear using colorVals/dsVal (indexed the same as
// pass.ColorAttachments()), saving and restoring scissor/
// rasterizer-discard/color-mask/depth-write around the clear.
func (b *Binder) Begin(pass ghi.RenderPass, fb ghi.Framebuf, area Rect, colorVals []ghi.ClearValue, dsVal ghi.ClearValue) {
	s := b.R.State
	s.Framebuf = fb
	s.FBWidth, s.FBHeight = fb.Width(), fb.Height()
	b.R.Backend.BeginRenderPass(pass, fb, 0)

	b.R.SetViewport(cmd.Viewport{
		X: float32(area.X), Y: float32(area.Y),
		Width: float32(area.Width), Height: float32(area.Height),
		Znear: 0, Zfar: 1,
	})

	colorAtt := pass.ColorAttachments()
	var clearIdx []int
	var clearVals []ghi.ClearValue
	for i, a := range colorAtt {
		if a.Load == ghi.LClear {
			clearIdx = append(clearIdx, i)
			var cv ghi.ClearValue
			if i < len(colorVals) {
				cv = colorVals[i]
			}
			clearVals = append(clearVals, cv)
		}
	}
	ds := pass.DSAttachment()
	clearDepth := ds != nil && ds.Load == ghi.LClear
	clearStencil := clearDepth && hasStencil(ds.Format)

	if len(clearIdx) == 0 && !clearDepth {
		return
	}

	prevScissorEnable := s.ScissorEnable
	prevScissor := s.Scissor

	b.R.SetScissorEnable(true)
	b.R.SetScissor(cmd.Scissor{X: area.X, Y: area.Y, Width: area.Width, Height: area.Height})

	b.R.ClearFramebufAttachments(clearIdx, clearVals, clearDepth, clearStencil, dsVal)

	b.R.SetScissor(cmd.Scissor{X: prevScissor.X, Y: prevScissor.Y, Width: prevScissor.Width, Height: prevScissor.Height})
	b.R.SetScissorEnable(prevScissorEnable)
}

// End ends the currently bound render pass.
func (b *Binder) End() {
	b.R.Backend.EndRenderPass()
	b.R.State.Framebuf = nil
}

// hasStencil reports whether a depth/stencil PixelFmt carries a
// stencil component, per the format table's ClearType.
func hasStencil(f ghi.PixelFmt) bool {
	ci := ghi.Info(f)
	return ci.ClearType == ghi.ClearDepthStencil || ci.ClearType == ghi.ClearStencilOnly
}
