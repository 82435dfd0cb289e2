package gl45

import (
	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
)

// fence implements ghi.Fence as a GL sync object.
type fence struct {
	sync gl.GLsync
}

func newFence() (*fence, error) {
	s := gl.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
	if s == nil {
		return nil, &ghi.Error{Kind: ghi.EAllocationFailed, Reason: "Fence: glFenceSync returned nil"}
	}
	return &fence{sync: s}, nil
}

func (f *fence) Destroy() {
	if f == nil || f.sync == nil {
		return
	}
	gl.DeleteSync(f.sync)
	f.sync = nil
}
