package gl45

import (
	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/device"
)

// framebuf implements ghi.Framebuf as a concrete GL framebuffer
// object, with each AttachmentRef bound via glNamedFramebufferTexture
// (whole texture or non-array layer) or
// glNamedFramebufferTextureLayer (a specific array layer/face).
type framebuf struct {
	dev    *device.Device
	name   uint32
	width  int
	height int
}

func (g *GPU) NewFramebuf(desc *ghi.FramebufDesc) (ghi.Framebuf, error) {
	var name uint32
	gl.CreateFramebuffers(1, &name)

	drawBuffers := make([]uint32, 0, len(desc.Color))
	for i, ref := range desc.Color {
		if ref.Texture == nil {
			continue
		}
		bindAttachment(name, gl.COLOR_ATTACHMENT0+uint32(i), ref)
		drawBuffers = append(drawBuffers, gl.COLOR_ATTACHMENT0+uint32(i))
	}
	if len(drawBuffers) > 0 {
		gl.NamedFramebufferDrawBuffers(name, int32(len(drawBuffers)), &drawBuffers[0])
	} else {
		gl.NamedFramebufferDrawBuffer(name, gl.NONE)
	}

	if desc.DS != nil && desc.DS.Texture != nil {
		dt := desc.DS.Texture.(*texture)
		bindAttachment(name, dsAttachPoint(dt.desc.Format), *desc.DS)
	}

	if status := gl.CheckNamedFramebufferStatus(name, gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &name)
		return nil, &ghi.Error{Kind: ghi.EAllocationFailed, Reason: "NewFramebuf: incomplete framebuffer"}
	}

	g.dev.NoteFramebuf(1)
	return &framebuf{dev: g.dev, name: name, width: desc.Width, height: desc.Height}, nil
}

func bindAttachment(fb, attach uint32, ref ghi.AttachmentRef) {
	t := ref.Texture.(*texture)
	if t.Layers() > 1 || t.desc.Type == ghi.TextureCube || t.desc.Type == ghi.TextureCubeArray {
		gl.NamedFramebufferTextureLayer(fb, attach, t.name, int32(ref.Level), int32(ref.Layer))
	} else {
		gl.NamedFramebufferTexture(fb, attach, t.name, int32(ref.Level))
	}
}

func dsAttachPoint(f ghi.PixelFmt) uint32 {
	switch ghi.Info(f).ClearType {
	case ghi.ClearStencilOnly:
		return gl.STENCIL_ATTACHMENT
	case ghi.ClearDepthStencil:
		return gl.DEPTH_STENCIL_ATTACHMENT
	default:
		return gl.DEPTH_ATTACHMENT
	}
}

func (f *framebuf) Destroy() {
	if f == nil || f.name == 0 {
		return
	}
	gl.DeleteFramebuffers(1, &f.name)
	if f.dev != nil {
		f.dev.NoteFramebuf(-1)
		f.dev = nil
	}
	f.name = 0
}

func (f *framebuf) Width() int  { return f.width }
func (f *framebuf) Height() int { return f.height }
