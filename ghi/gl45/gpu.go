package gl45

import (
	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/device"
)

// GPU implements ghi.GPU over a current OpenGL 4.5 core context. It
// owns no window or context of its own: the caller (wsi) is
// responsible for making a context current on the OS thread before
// invoking any GPU method, and for keeping it current across calls,
// per OpenGL's thread-affinity rules.
type GPU struct {
	getProcAddress func(name string) uintptr
	driver         *Driver
	opened         bool
	limits         ghi.Limits
	dev            *device.Device
}

func (g *GPU) nextUID() uint32 { return g.dev.NextUID() }

func (g *GPU) Driver() ghi.Driver { return g.driver }

func (g *GPU) Limits() ghi.Limits { return g.limits }
