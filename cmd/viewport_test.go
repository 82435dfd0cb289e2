package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardentgfx/ghi/gstate"
)

// S6: top-left origin, framebuffer height 600, viewport
// {0,40,800,480} must flip to backend y=80 (600 - 40 - 480).
func TestSetViewportOriginFlip(t *testing.T) {
	s := gstate.New(gstate.Config{ViewportOrigin: gstate.OriginTopLeft}, nil)
	s.FBHeight = 600
	be := &fakeBackend{}
	r := New(s, be)

	r.SetViewport(Viewport{X: 0, Y: 40, Width: 800, Height: 480, Znear: 0, Zfar: 1})

	assert.Len(t, be.calls, 1)
	got := be.calls[0]
	assert.Equal(t, "SetViewport", got.name)
	assert.Equal(t, float32(80), got.f32[1], "backend Y must be flipped against framebuffer height")
}

// A bottom-left-origin State must pass the Y coordinate through
// unchanged.
func TestSetViewportBottomLeftNoFlip(t *testing.T) {
	s := gstate.New(gstate.Config{ViewportOrigin: gstate.OriginBottomLeft}, nil)
	s.FBHeight = 600
	be := &fakeBackend{}
	r := New(s, be)

	r.SetViewport(Viewport{X: 0, Y: 40, Width: 800, Height: 480})

	got := be.calls[0]
	assert.Equal(t, float32(40), got.f32[1])
}
