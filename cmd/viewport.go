package cmd

import (
	"github.com/ardentgfx/ghi/gstate"
)

// Viewport defines the bounds of one viewport, in the caller's
// coordinate convention (see gstate.OriginTopLeft/OriginBottomLeft).
type Viewport struct {
	X, Y, Width, Height, Znear, Zfar float32
}

// Scissor defines one scissor rectangle, in the same convention.
type Scissor struct {
	X, Y, Width, Height int
}

// flipY converts a Y coordinate from the State's configured
// viewport-origin convention to the backend's bottom-left-origin
// convention, per spec §4.4 ("Viewport / scissor"): when the
// configured origin is top-left, Y is flipped against the current
// framebuffer height.
func flipY(originTopLeft bool, y, h, fbHeight float32) float32 {
	if !originTopLeft {
		return y
	}
	return fbHeight - y - h
}

// SetViewport sets a single viewport, applying the origin-flip
// convention frozen at State creation.
func (r *Recorder) SetViewport(vp Viewport) { r.SetViewports([]Viewport{vp}) }

// SetViewports sets one or more viewports in a single call.
func (r *Recorder) SetViewports(vps []Viewport) {
	top := r.State.Config().ViewportOrigin == gstate.OriginTopLeft
	fbh := float32(r.State.FBHeight)
	for i, vp := range vps {
		y := flipY(top, vp.Y, vp.Height, fbh)
		r.Backend.SetViewport(i, vp.X, y, vp.Width, vp.Height, vp.Znear, vp.Zfar)
	}
}

// SetScissor sets a single scissor rectangle, applying the same
// origin convention as SetViewport.
func (r *Recorder) SetScissor(sc Scissor) { r.SetScissors([]Scissor{sc}) }

// SetScissors sets one or more scissor rectangles.
func (r *Recorder) SetScissors(scs []Scissor) {
	top := r.State.Config().ViewportOrigin == gstate.OriginTopLeft
	fbh := r.State.FBHeight
	for i, sc := range scs {
		y := sc.Y
		if top {
			y = fbh - sc.Y - sc.Height
		}
		r.Backend.SetScissorRect(i, sc.X, y, sc.Width, sc.Height)
		if i == 0 {
			r.State.Scissor = gstate.Range2D{X: sc.X, Y: sc.Y, Width: sc.Width, Height: sc.Height}
		}
	}
}

// SetScissorEnable toggles the scissor test, tracked on State so
// the render-pass binder can save/restore it around a clear.
func (r *Recorder) SetScissorEnable(enable bool) {
	if r.State.ScissorEnable == enable {
		return
	}
	r.Backend.SetScissorEnable(enable)
	r.State.ScissorEnable = enable
}
