package cmd

import "github.com/ardentgfx/ghi"

// topology reports the primitive topology of the currently bound
// pipeline, falling back to triangles if none is bound (BindPipeline
// is a precondition of every draw call, so this only guards against
// a degenerate call order).
func (r *Recorder) topology() ghi.Topology {
	if p := r.State.Pipeline; p != nil {
		if gs := p.Graph(); gs != nil {
			return gs.Topology
		}
	}
	return ghi.TTriangle
}

// Draw dispatches a non-indexed draw.
func (r *Recorder) Draw(vertCount, instCount, baseVert, baseInst int) {
	r.Backend.Draw(r.topology(), vertCount, instCount, baseVert, baseInst)
}

// DrawIndexed dispatches an indexed draw.
func (r *Recorder) DrawIndexed(idxCount, instCount, baseIdx, vertOff, baseInst int) {
	r.Backend.DrawIndexed(r.topology(), idxCount, instCount, baseIdx, vertOff, baseInst)
}

// DrawIndirect dispatches count draws whose parameters are read
// from buf starting at offset, stride bytes apart. The indirect
// buffer is bound for the duration of the call and unbound
// afterwards, per spec §4.4.
func (r *Recorder) DrawIndirect(buf ghi.Buffer, offset int64, count, stride int) {
	r.Backend.DrawIndirect(r.topology(), buf, offset, count, stride)
}

// Dispatch dispatches compute thread groups.
func (r *Recorder) Dispatch(x, y, z int) { r.Backend.Dispatch(x, y, z) }

// BeginQuery begins a query on the given stream index (only
// meaningful for transform-feedback primitive-count queries).
func (r *Recorder) BeginQuery(q ghi.Query, stream int) {
	r.Backend.BeginQuery(q.Target(), q, stream)
}

// EndQuery ends a query.
func (r *Recorder) EndQuery(q ghi.Query, stream int) { r.Backend.EndQuery(q, stream) }

// BeginConditionalRender begins conditional rendering gated on q's
// result, honoring wait/no-wait, by-region and inverted flavors.
func (r *Recorder) BeginConditionalRender(q ghi.Query, mode ConditionalRenderMode) {
	r.Backend.BeginConditionalRender(q, mode)
}

// EndConditionalRender ends conditional rendering.
func (r *Recorder) EndConditionalRender() { r.Backend.EndConditionalRender() }
