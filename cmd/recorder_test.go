package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/gstate"
)

type fakePipeline struct {
	uid   uint32
	graph *ghi.GraphState
}

func (p *fakePipeline) Destroy()               {}
func (p *fakePipeline) IsCompute() bool        { return false }
func (p *fakePipeline) UID() uint32            { return p.uid }
func (p *fakePipeline) Graph() *ghi.GraphState { return p.graph }
func (p *fakePipeline) Compute() *ghi.CompState { return nil }
func (p *fakePipeline) VAO() any               { return nil }

func alphaBlendPipeline(uid uint32) *fakePipeline {
	gs := &ghi.GraphState{Topology: ghi.TTriangle}
	gs.Blend.Targets[0] = ghi.PresetAlpha.Blend()
	return &fakePipeline{uid: uid, graph: gs}
}

// S5: binding a pipeline whose target-0 blend state is the Alpha
// preset must leave the exact (enable, mask, src/dst factors, op)
// tuple the preset defines in the State, with one blend-enable call
// and a single (non-separate) blend func call since RGB and Alpha
// factors match. The preset's Add equation already equals the
// State's default, so the diff emits no blend equation call.
func TestBindPipelineBlendPresetAlpha(t *testing.T) {
	s := gstate.New(gstate.Config{}, nil)
	be := &fakeBackend{}
	r := New(s, be)

	r.BindPipeline(alphaBlendPipeline(1), []int{0})

	require.Equal(t, 1, be.countOf("SetBlendEnable"))
	require.Equal(t, 0, be.countOf("SetBlendEquation"))
	require.Equal(t, 1, be.countOf("SetBlendFunc"))

	var enableCall, funcCall call
	for _, c := range be.calls {
		switch c.name {
		case "SetBlendEnable":
			enableCall = c
		case "SetBlendFunc":
			funcCall = c
		}
	}

	assert.Equal(t, []bool{true}, enableCall.b)
	assert.Equal(t, ghi.PresetAlpha.Blend(), s.Fixed.Blend.Targets[0], "State holds the preset's full tuple")
	assert.Equal(t, []ghi.BlendOp{ghi.BAdd, ghi.BAdd}, []ghi.BlendOp{s.Fixed.Blend.Targets[0].OpRGB, s.Fixed.Blend.Targets[0].OpAlpha}, "RGB and Alpha ops are both Add")
	assert.Equal(t, []int{0, int(ghi.BSrcAlpha), int(ghi.BInvSrcAlpha), int(ghi.BSrcAlpha), int(ghi.BInvSrcAlpha)}, funcCall.ints)
	assert.Equal(t, []bool{false}, funcCall.b, "RGB and Alpha factors match: not separate")
}

// Invariant 8: binding the same pipeline twice in a row must only
// re-emit the subpass draw-buffer rebind, not repeat the fixed-
// function diff.
func TestBindPipelineIdempotent(t *testing.T) {
	s := gstate.New(gstate.Config{}, nil)
	be := &fakeBackend{}
	r := New(s, be)

	p := alphaBlendPipeline(1)
	r.BindPipeline(p, []int{0})
	firstCount := len(be.calls)
	require.Greater(t, firstCount, 1)

	r.BindPipeline(p, []int{0, 1})

	assert.Equal(t, firstCount+1, len(be.calls), "a repeat bind must add exactly one call")
	last := be.calls[len(be.calls)-1]
	assert.Equal(t, "SetDrawBuffers", last.name)
	assert.Equal(t, []int{0, 1}, last.ints)
}
