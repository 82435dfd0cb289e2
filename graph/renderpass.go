package graph

import (
	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/cmd"
	"github.com/ardentgfx/ghi/rpass"
)

// ColorSpec describes one color attachment slot of a RenderPassTask,
// either producing a new transient resource or writing an existing
// one (transient or external).
type ColorSpec struct {
	Name    string           // used when NewDesc != nil
	NewDesc *ghi.TextureDesc // non-nil: produce a new transient resource
	Res     *Resource        // non-nil: write an existing resource
	Layer   int
	Level   int
	Load    ghi.LoadOp
	Format  ghi.PixelFmt // required when Res is external; inferred from NewDesc otherwise
}

// DSSpec describes the depth/stencil attachment slot of a
// RenderPassTask, with the same either-new-or-existing shape as
// ColorSpec.
type DSSpec struct {
	Name    string
	NewDesc *ghi.TextureDesc
	Res     *Resource
	Layer   int
	Level   int
	Load    ghi.LoadOp
	Format  ghi.PixelFmt
}

type colorSlot struct {
	res    *Resource
	layer  int
	level  int
	load   ghi.LoadOp
	format ghi.PixelFmt
}

type subpassInfo struct {
	color []int
	fn    RecordFunc
}

// RenderPassTask is a Task specialized for render-pass work: a
// declarative set of color/depth-stencil attachments, an ordered
// list of subpasses with their own record callbacks, a render area
// and clear values, and an optional execute-time condition.
type RenderPassTask struct {
	*Task

	color []colorSlot
	ds    *colorSlot

	area       rpass.Rect
	colorVals  []ghi.ClearValue
	dsVal      ghi.ClearValue
	subpasses  []subpassInfo

	pass ghi.RenderPass
	fb   ghi.Framebuf
}

// SetColorAttachments declares the pass' ordered color attachment
// list.
func (rp *RenderPassTask) SetColorAttachments(specs []ColorSpec) *RenderPassTask {
	rp.color = make([]colorSlot, len(specs))
	for i, s := range specs {
		slot := colorSlot{layer: s.Layer, level: s.Level, load: s.Load, format: s.Format}
		if s.NewDesc != nil {
			slot.res = rp.AddNewResource(s.Name, *s.NewDesc)
			slot.format = s.NewDesc.Format
		} else {
			slot.res = s.Res
			rp.AddResource(s.Res, Write)
			if slot.format == 0 && s.Res.IsTransient() {
				slot.format = s.Res.desc.Format
			}
		}
		rp.color[i] = slot
	}
	return rp
}

// SetDSAttachment declares the pass' depth/stencil attachment.
func (rp *RenderPassTask) SetDSAttachment(s DSSpec) *RenderPassTask {
	slot := colorSlot{layer: s.Layer, level: s.Level, load: s.Load, format: s.Format}
	if s.NewDesc != nil {
		slot.res = rp.AddNewResource(s.Name, *s.NewDesc)
		slot.format = s.NewDesc.Format
	} else {
		slot.res = s.Res
		rp.AddResource(s.Res, ReadWrite)
		if slot.format == 0 && s.Res.IsTransient() {
			slot.format = s.Res.desc.Format
		}
	}
	rp.ds = &slot
	return rp
}

// SetRenderArea sets the pass' render area, used both as the
// initial viewport and as the scissor rectangle during clears.
func (rp *RenderPassTask) SetRenderArea(x, y, w, h int) *RenderPassTask {
	rp.area = rpass.Rect{X: x, Y: y, Width: w, Height: h}
	return rp
}

// SetClearColors sets the per-attachment clear values used for
// color attachments whose Load is LClear.
func (rp *RenderPassTask) SetClearColors(vals []ghi.ClearValue) *RenderPassTask {
	rp.colorVals = vals
	return rp
}

// SetClearDepthStencil sets the clear value used when the
// depth/stencil attachment's Load is LClear.
func (rp *RenderPassTask) SetClearDepthStencil(v ghi.ClearValue) *RenderPassTask {
	rp.dsVal = v
	return rp
}

// AddSubpass appends a subpass referencing the given color
// attachment slots (by index into SetColorAttachments' specs), with
// fn invoked at Execute time to record its draw commands.
func (rp *RenderPassTask) AddSubpass(colorRefs []int, fn RecordFunc) *RenderPassTask {
	rp.subpasses = append(rp.subpasses, subpassInfo{color: colorRefs, fn: fn})
	return rp
}

// Pass returns the concrete RenderPass built at Create time.
func (rp *RenderPassTask) Pass() ghi.RenderPass { return rp.pass }

// Framebuf returns the concrete Framebuf bound at Create time.
func (rp *RenderPassTask) Framebuf() ghi.Framebuf { return rp.fb }

func (rp *RenderPassTask) create(rec *cmd.Recorder) error {
	colorAtt := make([]ghi.ColorAttachment, len(rp.color))
	for i, c := range rp.color {
		colorAtt[i] = ghi.ColorAttachment{Format: c.format, Load: c.load}
	}
	var dsAtt *ghi.DSAttachment
	if rp.ds != nil {
		dsAtt = &ghi.DSAttachment{Format: rp.ds.format, Load: rp.ds.load}
	}
	subs := make([]ghi.Subpass, len(rp.subpasses))
	for i, s := range rp.subpasses {
		subs[i] = ghi.Subpass{Color: s.color}
	}

	pass, err := rp.g.gpu.NewRenderPass(colorAtt, dsAtt, subs)
	if err != nil {
		return err
	}
	rp.pass = pass

	fbColor := make([]ghi.AttachmentRef, len(rp.color))
	width, height := rp.g.width, rp.g.height
	for i, c := range rp.color {
		tex := c.res.Texture()
		fbColor[i] = ghi.AttachmentRef{Texture: tex, Layer: c.layer, Level: c.level, Kind: ghi.AttachColor}
		sz := tex.Size()
		width, height = sz.Width, sz.Height
	}
	var fbDS *ghi.AttachmentRef
	if rp.ds != nil {
		tex := rp.ds.res.Texture()
		fbDS = &ghi.AttachmentRef{Texture: tex, Layer: rp.ds.layer, Level: rp.ds.level, Kind: ghi.AttachDepthStencil}
		sz := tex.Size()
		width, height = sz.Width, sz.Height
	}

	fb, err := rp.g.fbCache.get(ghi.FramebufDesc{Color: fbColor, DS: fbDS, Width: width, Height: height})
	if err != nil {
		return err
	}
	rp.fb = fb
	if rp.area.Width == 0 && rp.area.Height == 0 {
		rp.area = rpass.Rect{Width: width, Height: height}
	}
	return nil
}

func (rp *RenderPassTask) execute(rec *cmd.Recorder) {
	if rp.cond != nil && !rp.cond() {
		return
	}
	b := rpass.New(rec)
	b.Begin(rp.pass, rp.fb, rp.area, rp.colorVals, rp.dsVal)
	for i, s := range rp.subpasses {
		s.fn(rp, i)
	}
	b.End()
}
