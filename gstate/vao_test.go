package gstate

import (
	"testing"

	"github.com/ardentgfx/ghi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVAOHandle struct{ n int }

func (h *fakeVAOHandle) Destroy() {}

func TestVAOCacheHitMiss(t *testing.T) {
	creates := 0
	factory := func(b []ghi.VertexBinding, a []ghi.VertexAttrib) (VAOHandle, error) {
		creates++
		return &fakeVAOHandle{n: creates}, nil
	}
	c := newVAOCache(factory)

	bindings := []ghi.VertexBinding{{Binding: 0, Stride: 12}}
	attribs := []ghi.VertexAttrib{{Location: 0, Binding: 0, DataType: ghi.F32x3}}

	v1, err := c.GetOrCreate(bindings, attribs)
	require.NoError(t, err)
	v2, err := c.GetOrCreate(append([]ghi.VertexBinding(nil), bindings...), append([]ghi.VertexAttrib(nil), attribs...))
	require.NoError(t, err)

	assert.Same(t, v1, v2)
	assert.Equal(t, 1, creates)
	assert.Equal(t, 1, c.Len())

	attribs2 := []ghi.VertexAttrib{{Location: 0, Binding: 0, DataType: ghi.F32x4}}
	v3, err := c.GetOrCreate(bindings, attribs2)
	require.NoError(t, err)
	assert.NotSame(t, v1, v3)
	assert.Equal(t, 2, creates)
	assert.Equal(t, 2, c.Len())
}

func TestVAOSlotBufCache(t *testing.T) {
	factory := func(b []ghi.VertexBinding, a []ghi.VertexAttrib) (VAOHandle, error) {
		return &fakeVAOHandle{}, nil
	}
	c := newVAOCache(factory)
	v, err := c.GetOrCreate([]ghi.VertexBinding{{Binding: 0, Stride: 12}}, nil)
	require.NoError(t, err)

	uid, off := v.SlotBuf(0)
	assert.Zero(t, uid)
	assert.EqualValues(t, -1, off)

	v.SetSlotBuf(0, 7, 128)
	uid, off = v.SlotBuf(0)
	assert.EqualValues(t, 7, uid)
	assert.EqualValues(t, 128, off)
}

func TestSetCurrentAndCurrent(t *testing.T) {
	s := New(Config{}, nil)
	SetCurrent(s)
	assert.Same(t, s, Current())
}
