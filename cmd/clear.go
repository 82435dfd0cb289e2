package cmd

import "github.com/ardentgfx/ghi"

// ClearBuffer clears a buffer's full range with the byte pattern
// given in cv/pattern.
func (r *Recorder) ClearBuffer(buf ghi.Buffer, cv ghi.ClearValue, pattern []byte) {
	r.Backend.ClearBuffer(buf, cv, pattern)
}

// ClearBufferRange clears a sub-range of a buffer.
func (r *Recorder) ClearBufferRange(buf ghi.Buffer, offset, size int64, cv ghi.ClearValue, pattern []byte) {
	r.Backend.ClearBufferRange(buf, offset, size, cv, pattern)
}

// ClearTexture clears an entire mip level of a texture.
func (r *Recorder) ClearTexture(t ghi.Texture, level int, cv ghi.ClearValue) {
	r.Backend.ClearTexture(t, level, cv)
}

// ClearTextureRect clears a sub-region of a texture's mip level.
func (r *Recorder) ClearTextureRect(t ghi.Texture, level int, off ghi.Off3D, size ghi.Dim3D, cv ghi.ClearValue) {
	r.Backend.ClearTextureRect(t, level, off, size, cv)
}

// ClearFramebufAttachments clears the named subset of the currently
// bound framebuffer's color attachments (by draw-buffer index) and,
// optionally, its depth/stencil attachment, following the §4.4
// clear contract: rasterizer-discard is temporarily disabled,
// depth-writes are temporarily enabled if disabled, the affected
// color masks are forced to full RGBA for the duration of the
// clear, and all three are restored to their saved values
// afterwards.
func (r *Recorder) ClearFramebufAttachments(colorIdx []int, colorVals []ghi.ClearValue, clearDepth, clearStencil bool, ds ghi.ClearValue) {
	s := r.State
	prevDiscard := s.Fixed.Raster.RasterizerDiscard
	prevDepthWrite := s.Fixed.DS.DepthWrite
	prevMask := make([]ghi.ColorMask, len(colorIdx))
	for i, idx := range colorIdx {
		prevMask[i] = s.Fixed.Blend.Targets[idx].WriteMask
	}

	if prevDiscard {
		r.Backend.SetRasterizerDiscard(false)
	}
	if (clearDepth || clearStencil) && !prevDepthWrite {
		r.Backend.SetDepthWrite(true)
	}
	for i, idx := range colorIdx {
		if prevMask[i] != ghi.CAll {
			r.Backend.SetColorMask(idx, ghi.CAll)
		}
	}

	for i, idx := range colorIdx {
		r.Backend.ClearFramebufColor(idx, colorVals[i])
	}
	if clearDepth || clearStencil {
		r.Backend.ClearFramebufDepthStencil(clearDepth, clearStencil, ds)
	}

	for i, idx := range colorIdx {
		if prevMask[i] != ghi.CAll {
			r.Backend.SetColorMask(idx, prevMask[i])
		}
	}
	if (clearDepth || clearStencil) && !prevDepthWrite {
		r.Backend.SetDepthWrite(false)
	}
	if prevDiscard {
		r.Backend.SetRasterizerDiscard(true)
	}
}

// CopyBufferRange copies data between buffers.
func (r *Recorder) CopyBufferRange(src, dst ghi.Buffer, srcOff, dstOff, size int64) {
	r.Backend.CopyBufferRange(src, dst, srcOff, dstOff, size)
}

// CopyBufferToTexture copies data from a buffer into a texture,
// dispatched per texture type (1D, 1D-array/2D, 2D-array/3D, cube)
// by the backend.
func (r *Recorder) CopyBufferToTexture(src ghi.Buffer, srcOff int64, dst ghi.Texture, layer, level int, off ghi.Off3D, size ghi.Dim3D) {
	r.Backend.CopyBufferToTexture(src, srcOff, dst, layer, level, off, size)
}

// CopyTextureToBuffer copies data from a texture into a buffer.
func (r *Recorder) CopyTextureToBuffer(src ghi.Texture, layer, level int, off ghi.Off3D, size ghi.Dim3D, dst ghi.Buffer, dstOff int64) {
	r.Backend.CopyTextureToBuffer(src, layer, level, off, size, dst, dstOff)
}

// CopyTextureToTexture copies data between textures via an image
// sub-data copy.
func (r *Recorder) CopyTextureToTexture(src ghi.Texture, srcLayer, srcLevel int, srcOff ghi.Off3D, dst ghi.Texture, dstLayer, dstLevel int, dstOff ghi.Off3D, size ghi.Dim3D) {
	r.Backend.CopyTextureToTexture(src, srcLayer, srcLevel, srcOff, dst, dstLayer, dstLevel, dstOff, size)
}

// BlitFramebuf blits between framebuffers with the given mask and
// filter.
func (r *Recorder) BlitFramebuf(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask BlitMask, linear bool) {
	r.Backend.BlitFramebuf(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, linear)
}
