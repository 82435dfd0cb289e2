package cmd

import "github.com/ardentgfx/ghi"

// Fence inserts a new GPU fence into the command stream.
func (r *Recorder) Fence() (ghi.Fence, error) { return r.Backend.Fence() }

// ClientWait blocks the calling thread until f is signaled or
// timeoutNanos elapses.
func (r *Recorder) ClientWait(f ghi.Fence, timeoutNanos int64) ghi.WaitResult {
	return r.Backend.ClientWait(f, timeoutNanos)
}

// ServerWait makes the GPU itself wait on f before executing any
// subsequently recorded commands, without blocking the caller.
func (r *Recorder) ServerWait(f ghi.Fence) { r.Backend.ServerWait(f) }

// IsSignaled reports whether f has already been signaled, without
// blocking.
func (r *Recorder) IsSignaled(f ghi.Fence) bool { return r.Backend.IsSignaled(f) }

// Flush flushes the command stream.
func (r *Recorder) Flush() { r.Backend.Flush() }

// MemoryBarrier inserts a global memory barrier for the given
// access bits.
func (r *Recorder) MemoryBarrier(bits ghi.BarrierBit) { r.Backend.MemoryBarrier(bits) }

// RegionBarrier inserts a framebuffer-region barrier (glTextureBarrier
// with a rect qualifier has no direct GL 4.5 equivalent; the gl45
// backend ignores the rectangle and issues a global glMemoryBarrier
// for bits).
func (r *Recorder) RegionBarrier(bits ghi.BarrierBit, x, y, w, h int) {
	r.Backend.RegionBarrier(bits, x, y, w, h)
}

// TextureBarrier inserts a texture-fetch/framebuffer-write ordering
// barrier.
func (r *Recorder) TextureBarrier() { r.Backend.TextureBarrier() }

// SetStencilRef sets the stencil reference value, diffed against
// State.
func (r *Recorder) SetStencilRef(value uint32) {
	if r.State.StencilRef == value {
		return
	}
	r.Backend.SetStencilRef(value)
	r.State.StencilRef = value
}

// SetBlendColor sets the constant blend color, diffed against
// State.
func (r *Recorder) SetBlendColor(c [4]float32) {
	if r.State.BlendColor == c {
		return
	}
	r.Backend.SetBlendColor(c[0], c[1], c[2], c[3])
	r.State.BlendColor = c
}

// SetPackAlignment sets the pixel-pack alignment used by readback
// calls, diffed against State.
func (r *Recorder) SetPackAlignment(n int) {
	if r.State.PackAlign == n {
		return
	}
	r.Backend.SetPackAlignment(n)
	r.State.PackAlign = n
}

// SetUnpackAlignment sets the pixel-unpack alignment used by upload
// calls, diffed against State.
func (r *Recorder) SetUnpackAlignment(n int) {
	if r.State.UnpackAlign == n {
		return
	}
	r.Backend.SetUnpackAlignment(n)
	r.State.UnpackAlign = n
}

// SetReadColorClamp toggles whether ReadRect clamps color values to
// [0, 1], diffed against State.
func (r *Recorder) SetReadColorClamp(enable bool) {
	if r.State.ReadClamp == enable {
		return
	}
	r.Backend.SetReadColorClamp(enable)
	r.State.ReadClamp = enable
}
