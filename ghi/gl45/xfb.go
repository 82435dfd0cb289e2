package gl45

import (
	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/device"
)

// xfbCapture implements ghi.XfbCapture on top of a transform-feedback
// object, with each buffer range bound via
// glTransformFeedbackBufferRange.
type xfbCapture struct {
	dev  *device.Device
	name uint32
}

func (g *GPU) NewXfbCapture(buffers []ghi.Buffer, offsets, sizes []int64) (ghi.XfbCapture, error) {
	if len(buffers) != len(offsets) || len(buffers) != len(sizes) {
		return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewXfbCapture: buffers/offsets/sizes length mismatch"}
	}
	var name uint32
	gl.CreateTransformFeedbacks(1, &name)
	for i, b := range buffers {
		buf, ok := b.(*buffer)
		if !ok {
			gl.DeleteTransformFeedbacks(1, &name)
			return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewXfbCapture: buffer not created by this GPU"}
		}
		gl.TransformFeedbackBufferRange(name, uint32(i), buf.name, offsets[i], sizes[i])
	}
	g.dev.NoteXfb(1)
	return &xfbCapture{dev: g.dev, name: name}, nil
}

func (x *xfbCapture) Destroy() {
	if x == nil || x.dev == nil {
		return
	}
	gl.DeleteTransformFeedbacks(1, &x.name)
	x.dev.NoteXfb(-1)
	x.dev = nil
}

func (x *xfbCapture) Begin() {
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, x.name)
	gl.BeginTransformFeedback(gl.TRIANGLES)
}

func (x *xfbCapture) End() {
	gl.EndTransformFeedback()
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, 0)
}

func (x *xfbCapture) Pause() {
	gl.PauseTransformFeedback()
}

func (x *xfbCapture) Resume() {
	gl.ResumeTransformFeedback()
}
