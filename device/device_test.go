package device

import (
	"testing"

	"github.com/ardentgfx/ghi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSampler is a minimal ghi.Sampler for cache tests.
type fakeSampler struct {
	desc ghi.SamplerDesc
	n    int
}

func (s *fakeSampler) Destroy()              {}
func (s *fakeSampler) Desc() ghi.SamplerDesc { return s.desc }

// TestGetOrCreateSamplerHashConsing is scenario-adjacent to S5:
// invariant 5 requires that two byte-equal descriptors return the
// same handle, and that alloc is only invoked once.
func TestGetOrCreateSamplerHashConsing(t *testing.T) {
	d := New(ghi.Limits{}, nil)
	desc := ghi.SamplerDesc{Filter: ghi.FLinear, AddrU: ghi.AWrap, AddrV: ghi.AWrap, AddrW: ghi.AWrap}
	allocs := 0
	alloc := func(desc ghi.SamplerDesc) (ghi.Sampler, error) {
		allocs++
		return &fakeSampler{desc: desc, n: allocs}, nil
	}

	s1, err := d.GetOrCreateSampler(desc, alloc)
	require.NoError(t, err)
	s2, err := d.GetOrCreateSampler(desc, alloc)
	require.NoError(t, err)

	assert.Same(t, s1, s2)
	assert.Equal(t, 1, allocs)

	// A descriptor that differs in one field must miss the cache.
	other := desc
	other.Filter = ghi.FNearest
	s3, err := d.GetOrCreateSampler(other, alloc)
	require.NoError(t, err)
	assert.NotSame(t, s1, s3)
	assert.Equal(t, 2, allocs)
}

func TestGetOrCreateRasterIdentity(t *testing.T) {
	d := New(ghi.Limits{}, nil)
	desc := ghi.RasterState{Cull: ghi.CullBack, FrontCCW: true}
	p1 := d.GetOrCreateRaster(desc)
	p2 := d.GetOrCreateRaster(desc)
	assert.Same(t, p1, p2)

	desc2 := desc
	desc2.Cull = ghi.CullNone
	p3 := d.GetOrCreateRaster(desc2)
	assert.NotSame(t, p1, p3)
}

func TestGetOrCreateBlendAndDS(t *testing.T) {
	d := New(ghi.Limits{}, nil)
	bs := ghi.BlendState{Targets: [8]ghi.ColorBlend{ghi.PresetAlpha.Blend()}}
	b1 := d.GetOrCreateBlend(bs)
	b2 := d.GetOrCreateBlend(bs)
	assert.Same(t, b1, b2)

	ds := ghi.DSState{DepthTest: true, DepthWrite: true, DepthFunc: ghi.CLess}
	ds1 := d.GetOrCreateDS(ds)
	ds2 := d.GetOrCreateDS(ds)
	assert.Same(t, ds1, ds2)
}

func TestNextUIDMonotonic(t *testing.T) {
	d := New(ghi.Limits{}, nil)
	prev := d.NextUID()
	for i := 0; i < 10; i++ {
		u := d.NextUID()
		assert.Greater(t, u, prev)
		prev = u
	}
}

func TestCounters(t *testing.T) {
	d := New(ghi.Limits{}, nil)
	d.NotePipeline(1)
	d.NotePipeline(1)
	d.NoteRenderPass(1)
	pipelines, passes, fbs, xfbs, qp := d.Counters()
	assert.EqualValues(t, 2, pipelines)
	assert.EqualValues(t, 1, passes)
	assert.EqualValues(t, 0, fbs)
	assert.EqualValues(t, 0, xfbs)
	assert.EqualValues(t, 0, qp)
}
