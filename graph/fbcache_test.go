package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardentgfx/ghi"
)

// TestFramebufCacheIdentity covers S3: two lookups against the same
// ordered attachment tuple (same texture, layer, level, kind) must
// return the identical Framebuf handle and must not allocate twice.
func TestFramebufCacheIdentity(t *testing.T) {
	gpu := &fakeGPU{}
	c := newFBCache(gpu)

	tex := &fakeTexture{uid: 7, size: ghi.Dim3D{Width: 800, Height: 600}}
	desc := ghi.FramebufDesc{
		Color:  []ghi.AttachmentRef{{Texture: tex, Layer: 0, Level: 0, Kind: ghi.AttachColor}},
		Width:  800,
		Height: 600,
	}

	fb1, err := c.get(desc)
	require.NoError(t, err)
	fb2, err := c.get(desc)
	require.NoError(t, err)

	assert.Same(t, fb1, fb2)
	assert.Equal(t, 1, gpu.fbAllocs)
}

// A distinct attachment tuple (different layer) must miss the cache
// and allocate a second Framebuf.
func TestFramebufCacheMissOnDifferentAttachment(t *testing.T) {
	gpu := &fakeGPU{}
	c := newFBCache(gpu)

	tex := &fakeTexture{uid: 7, size: ghi.Dim3D{Width: 800, Height: 600}}
	d1 := ghi.FramebufDesc{
		Color:  []ghi.AttachmentRef{{Texture: tex, Layer: 0, Level: 0, Kind: ghi.AttachColor}},
		Width:  800,
		Height: 600,
	}
	d2 := d1
	d2.Color = []ghi.AttachmentRef{{Texture: tex, Layer: 1, Level: 0, Kind: ghi.AttachColor}}

	_, err := c.get(d1)
	require.NoError(t, err)
	_, err = c.get(d2)
	require.NoError(t, err)

	assert.Equal(t, 2, gpu.fbAllocs)
}
