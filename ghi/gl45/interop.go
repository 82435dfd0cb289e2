package gl45

import "github.com/ardentgfx/ghi"

// GLTextureName returns t's underlying GL texture object name, for
// callers that need to interoperate with GL calls the GHI surface
// does not expose (window presentation being the chief example,
// since swapchain/present is outside GHI's scope). ok is false if t
// was not created by this package.
func GLTextureName(t ghi.Texture) (name uint32, ok bool) {
	tex, ok := t.(*texture)
	if !ok {
		return 0, false
	}
	return tex.name, true
}
