package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/gstate"
)

func newVAOState(t *testing.T) (*gstate.State, *gstate.VAO) {
	t.Helper()
	factory := func(bindings []ghi.VertexBinding, attribs []ghi.VertexAttrib) (gstate.VAOHandle, error) {
		return fakeVAOHandle{}, nil
	}
	s := gstate.New(gstate.Config{}, factory)
	v, err := s.VAOCache().GetOrCreate([]ghi.VertexBinding{{Binding: 0, Stride: 12}}, []ghi.VertexAttrib{{Location: 0, Binding: 0}})
	require.NoError(t, err)
	s.VAO = v
	return s, v
}

type fakeVAOHandle struct{}

func (fakeVAOHandle) Destroy() {}

// Invariant 3: the recorder must skip a vertex-buffer bind when the
// per-slot cached (UID, offset) already matches the request, and
// must emit exactly one backend call per distinct (slot, UID,
// offset) triple actually presented.
func TestBindVertexBufferCacheSkipsRedundantBinds(t *testing.T) {
	s, _ := newVAOState(t)
	be := &fakeBackend{}
	r := New(s, be)

	buf := &fakeBuffer{uid: 1}

	r.BindVertexBuffer(0, buf, 0)  // miss: binds
	r.BindVertexBuffer(0, buf, 0)  // hit: same (slot, UID, offset)
	r.BindVertexBuffer(0, buf, 16) // miss: offset changed
	r.BindVertexBuffer(0, buf, 16) // hit

	otherBuf := &fakeBuffer{uid: 2}
	r.BindVertexBuffer(0, otherBuf, 16) // miss: UID changed

	assert.Equal(t, 3, be.countOf("BindVertexBuffer"))
}

// BindVertexBuffer with no bound VAO always forwards to the backend
// (there is no per-slot cache to consult).
func TestBindVertexBufferNoVAOAlwaysForwards(t *testing.T) {
	s := gstate.New(gstate.Config{}, nil)
	be := &fakeBackend{}
	r := New(s, be)

	buf := &fakeBuffer{uid: 1}
	r.BindVertexBuffer(0, buf, 0)
	r.BindVertexBuffer(0, buf, 0)

	assert.Equal(t, 2, be.countOf("BindVertexBuffer"))
}
