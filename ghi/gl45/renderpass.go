package gl45

import (
	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/device"
)

// renderPass implements ghi.RenderPass. Unlike Vulkan, a GL render
// pass has no native hardware object: attachment load/store
// semantics are carried purely as metadata and interpreted by the
// command recorder and rpass packages when a subpass begins and
// ends. NewRenderPass therefore only validates and stores the
// descriptor.
type renderPass struct {
	dev   *device.Device
	color []ghi.ColorAttachment
	ds    *ghi.DSAttachment
	sub   []ghi.Subpass
}

func (g *GPU) NewRenderPass(color []ghi.ColorAttachment, ds *ghi.DSAttachment, subpasses []ghi.Subpass) (ghi.RenderPass, error) {
	if len(color) > ghi.MaxColorAttachments {
		return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewRenderPass: too many color attachments"}
	}
	if len(subpasses) == 0 {
		return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewRenderPass: at least one subpass is required"}
	}
	if len(subpasses) > ghi.MaxSubpasses {
		return nil, &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "NewRenderPass: too many subpasses"}
	}
	rp := &renderPass{
		dev:   g.dev,
		color: append([]ghi.ColorAttachment(nil), color...),
		sub:   append([]ghi.Subpass(nil), subpasses...),
	}
	if ds != nil {
		cp := *ds
		rp.ds = &cp
	}
	g.dev.NoteRenderPass(1)
	return rp, nil
}

func (p *renderPass) Destroy() {
	if p == nil || p.dev == nil {
		return
	}
	p.dev.NoteRenderPass(-1)
	p.dev = nil
}
func (p *renderPass) ColorAttachments() []ghi.ColorAttachment { return p.color }
func (p *renderPass) DSAttachment() *ghi.DSAttachment         { return p.ds }
func (p *renderPass) Subpasses() []ghi.Subpass                { return p.sub }
