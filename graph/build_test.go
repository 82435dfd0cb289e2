package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/cmd"
)

// fakeGPU implements ghi.GPU with only the methods these tests
// exercise; every other method panics via the nil-embedded
// interface if called.
type fakeGPU struct {
	ghi.GPU
	texAllocs int
	fbAllocs  int
}

func (g *fakeGPU) NewTexture(desc *ghi.TextureDesc) (ghi.Texture, error) {
	g.texAllocs++
	return &fakeTexture{uid: uint32(g.texAllocs), size: desc.Size}, nil
}

func (g *fakeGPU) NewFramebuf(desc *ghi.FramebufDesc) (ghi.Framebuf, error) {
	g.fbAllocs++
	return &fakeFramebuf{w: desc.Width, h: desc.Height}, nil
}

func (g *fakeGPU) NewRenderPass(color []ghi.ColorAttachment, ds *ghi.DSAttachment, subs []ghi.Subpass) (ghi.RenderPass, error) {
	return &fakeRenderPass{color: color, ds: ds}, nil
}

// fakeTexture implements only the handful of Texture methods the
// graph package itself calls (UID, Size, Destroy); everything else
// is promoted from the nil-embedded interface and would panic if
// exercised, which these tests never do.
type fakeTexture struct {
	ghi.Texture
	uid  uint32
	size ghi.Dim3D
}

func (t *fakeTexture) UID() uint32    { return t.uid }
func (t *fakeTexture) Size() ghi.Dim3D { return t.size }
func (t *fakeTexture) Destroy()       {}

type fakeFramebuf struct {
	w, h int
}

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

func texDesc() ghi.TextureDesc {
	return ghi.TextureDesc{Type: ghi.Texture2D, Format: ghi.RGBA8unorm, Size: ghi.Dim3D{Width: 64, Height: 64}, Levels: 1}
}

// TestCullChain exercises the chain A->R1->B->R2->C->R3 where R3 has
// no reader and is neither captured nor external: every task must be
// culled and the built timeline must be empty.
func TestCullChain(t *testing.T) {
	gpu := &fakeGPU{}
	g := New(gpu, 64, 64)

	a := g.AddTask("A")
	r1 := a.AddNewResource("R1", texDesc())

	b := g.AddTask("B")
	b.AddResource(r1, Read)
	r2 := b.AddNewResource("R2", texDesc())

	c := g.AddTask("C")
	c.AddResource(r2, Read)
	c.AddNewResource("R3", texDesc())

	require.NoError(t, g.Build(nil))

	assert.Equal(t, 0, a.refCount)
	assert.Equal(t, 0, b.refCount)
	assert.Equal(t, 0, c.refCount)
	assert.Empty(t, g.timeline)
	assert.Equal(t, 0, gpu.texAllocs, "a culled chain must never realize a texture")
}

// TestCapturePreserves re-runs the same chain with R3 marked
// captured: every task survives culling, R1/R2 are realized and
// derealized in-place (B derealizes R1, C derealizes R2), and R3
// stays realized until Clear.
func TestCapturePreserves(t *testing.T) {
	gpu := &fakeGPU{}
	g := New(gpu, 64, 64)

	var aRan, bRan, cRan bool

	a := g.AddTask("A")
	r1 := a.AddNewResource("R1", texDesc())
	a.OnExecute(func(_ *cmd.Recorder) { aRan = true })

	b := g.AddTask("B")
	b.AddResource(r1, Read)
	r2 := b.AddNewResource("R2", texDesc())
	b.OnExecute(func(_ *cmd.Recorder) { bRan = true })

	c := g.AddTask("C")
	c.AddResource(r2, Read)
	r3 := c.AddNewResource("R3", texDesc())
	r3.SetCaptured(true)
	c.OnExecute(func(_ *cmd.Recorder) { cRan = true })

	require.NoError(t, g.Build(nil))

	assert.Equal(t, 1, a.refCount)
	assert.Equal(t, 1, b.refCount)
	assert.Equal(t, 1, c.refCount)
	require.Len(t, g.timeline, 3)

	assert.Nil(t, r1.handle, "R1 is derealized in-place at B's step")
	assert.Nil(t, r2.handle, "R2 is derealized in-place at C's step")
	assert.NotNil(t, r3.handle, "captured R3 stays realized past Build")

	g.Execute(nil)
	assert.True(t, aRan)
	assert.True(t, bRan)
	assert.True(t, cRan)
	assert.NotNil(t, r3.handle, "captured R3 still realized after Execute")

	g.Clear()
	assert.Nil(t, r3.handle, "captured R3 is derealized only at Clear")
}
