package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardentgfx/ghi"
)

func TestPoolAcquireReleaseReuses(t *testing.T) {
	gpu := &fakeGPU{}
	p := newPool(gpu)

	desc := texDesc()
	tex1, err := p.acquire(desc)
	require.NoError(t, err)
	p.release(tex1)

	tex2, err := p.acquire(desc)
	require.NoError(t, err)

	assert.Same(t, tex1, tex2, "a freed entry matching the same desc must be reused")
	assert.Equal(t, 1, gpu.texAllocs)
}

func TestPoolAcquireMismatchAllocatesNew(t *testing.T) {
	gpu := &fakeGPU{}
	p := newPool(gpu)

	desc := texDesc()
	tex1, err := p.acquire(desc)
	require.NoError(t, err)
	p.release(tex1)

	other := desc
	other.Size = ghi.Dim3D{Width: 128, Height: 128}
	tex2, err := p.acquire(other)
	require.NoError(t, err)

	assert.NotSame(t, tex1, tex2)
	assert.Equal(t, 2, gpu.texAllocs)
}

func TestPoolTrimFreeDropsOnlyFreeEntries(t *testing.T) {
	gpu := &fakeGPU{}
	p := newPool(gpu)

	desc := texDesc()
	checkedOut, err := p.acquire(desc)
	require.NoError(t, err)
	freed, err := p.acquire(desc)
	require.NoError(t, err)
	p.release(freed)

	p.trimFree()

	// The freed entry was dropped, so re-acquiring the same desc must
	// allocate a fresh texture rather than reuse the trimmed one.
	reacquired, err := p.acquire(desc)
	require.NoError(t, err)
	assert.NotSame(t, freed, reacquired)

	p.release(checkedOut)
	p.release(reacquired)
}
