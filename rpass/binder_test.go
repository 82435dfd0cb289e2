package rpass

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/cmd"
	"github.com/ardentgfx/ghi/gstate"
)

// fakeBackend implements only the cmd.Backend methods Begin/End
// exercise; the rest are promoted from the nil-embedded interface.
type fakeBackend struct {
	cmd.Backend
	scissorRectCalls int
	scissorEnableLog []bool
}

func (b *fakeBackend) BeginRenderPass(pass ghi.RenderPass, fb ghi.Framebuf, subpassIndex int) {}
func (b *fakeBackend) EndRenderPass()                                                        {}
func (b *fakeBackend) SetViewport(index int, x, y, w, h, znear, zfar float32)                {}
func (b *fakeBackend) SetScissorRect(index int, x, y, w, h int)                              { b.scissorRectCalls++ }
func (b *fakeBackend) SetScissorEnable(enable bool) {
	b.scissorEnableLog = append(b.scissorEnableLog, enable)
}
func (b *fakeBackend) ClearFramebufColor(index int, cv ghi.ClearValue)                             {}
func (b *fakeBackend) ClearFramebufDepthStencil(clearDepth, clearStencil bool, cv ghi.ClearValue) {}
func (b *fakeBackend) SetColorMask(slot int, mask ghi.ColorMask)                                  {}
func (b *fakeBackend) SetRasterizerDiscard(enable bool)                                           {}
func (b *fakeBackend) SetDepthWrite(enable bool)                                                  {}

type fakeFramebuf struct{ w, h int }

func (f *fakeFramebuf) Destroy()    {}
func (f *fakeFramebuf) Width() int  { return f.w }
func (f *fakeFramebuf) Height() int { return f.h }

type fakeRenderPass struct {
	color []ghi.ColorAttachment
	ds    *ghi.DSAttachment
}

func (p *fakeRenderPass) Destroy()                                {}
func (p *fakeRenderPass) ColorAttachments() []ghi.ColorAttachment { return p.color }
func (p *fakeRenderPass) DSAttachment() *ghi.DSAttachment         { return p.ds }
func (p *fakeRenderPass) Subpasses() []ghi.Subpass                { return nil }

// S4: a render pass whose sole color attachment clears must restore
// the scissor enable flag and rectangle to their pre-pass values
// once Begin returns, so the subpass record callbacks that follow
// see the same fixed-function state a pass without a clear would
// have left.
func TestBeginEndRestoresScissor(t *testing.T) {
	s := gstate.New(gstate.Config{}, nil)
	s.ScissorEnable = true
	s.Scissor = gstate.Range2D{X: 10, Y: 20, Width: 100, Height: 80}

	be := &fakeBackend{}
	r := cmd.New(s, be)
	b := New(r)

	pass := &fakeRenderPass{color: []ghi.ColorAttachment{{Format: 0, Load: ghi.LClear}}}
	fb := &fakeFramebuf{w: 64, h: 64}

	b.Begin(pass, fb, Rect{X: 0, Y: 0, Width: 64, Height: 64}, []ghi.ClearValue{{}}, ghi.ClearValue{})
	b.End()

	assert.True(t, s.ScissorEnable)
	assert.Equal(t, gstate.Range2D{X: 10, Y: 20, Width: 100, Height: 80}, s.Scissor)
	assert.GreaterOrEqual(t, be.scissorRectCalls, 2, "the clear path must set, then restore, a scissor rect")
}

// When no attachment needs clearing, Begin must not touch scissor
// state at all.
func TestBeginNoClearLeavesScissorUntouched(t *testing.T) {
	s := gstate.New(gstate.Config{}, nil)
	s.ScissorEnable = false
	s.Scissor = gstate.Range2D{X: 1, Y: 2, Width: 3, Height: 4}

	be := &fakeBackend{}
	r := cmd.New(s, be)
	b := New(r)

	pass := &fakeRenderPass{color: []ghi.ColorAttachment{{Format: 0, Load: ghi.LLoad}}}
	fb := &fakeFramebuf{w: 64, h: 64}

	b.Begin(pass, fb, Rect{X: 0, Y: 0, Width: 64, Height: 64}, nil, ghi.ClearValue{})

	assert.Empty(t, be.scissorEnableLog)
	assert.Equal(t, gstate.Range2D{X: 1, Y: 2, Width: 3, Height: 4}, s.Scissor)
}
