// Package graph implements the frame graph: a declarative DAG of
// render tasks and the transient/external resources they produce,
// read and write. Build performs reference-count culling and
// produces a linear timeline of realize/execute/derealize steps;
// Execute walks that timeline and drives a cmd.Recorder.
//
// The design follows the source's AFrameGraph/ARenderTask/
// AFrameGraphResourceBase split: a Resource is either transient
// (owned by this Graph's texture Pool), external (borrowed, never
// freed) or captured (realized once, torn down only on Clear).
package graph

import (
	"fmt"
	"sync/atomic"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/cmd"
)

// Access is the kind of access a Task has to a Resource.
type Access int

// Access kinds.
const (
	Read Access = iota
	Write
	ReadWrite
)

var resIDGen atomic.Uint64

// Resource is one node of the frame graph's resource set: either a
// transient texture owned by the graph's Pool, or an external
// texture borrowed from the caller. Buffers and other non-poolable
// resources may also be registered as external resources; they are
// never realized/derealized, only tracked for culling.
type Resource struct {
	id       uint64
	name     string
	creator  *Task // nil if external
	readers  []*Task
	writers  []*Task
	refCount int
	captured bool

	desc   ghi.TextureDesc // meaningful only when transient
	handle ghi.Texture
}

// ID returns the resource's unique identity, assigned at creation.
func (r *Resource) ID() uint64 { return r.id }

// Name returns the resource's debug name.
func (r *Resource) Name() string { return r.name }

// IsTransient reports whether the resource is owned by this graph's
// Pool (as opposed to an externally supplied handle).
func (r *Resource) IsTransient() bool { return r.creator != nil }

// IsCaptured reports whether the resource survives past a single
// build/execute cycle, derealized only at Clear.
func (r *Resource) IsCaptured() bool { return r.captured }

// SetCaptured marks the resource as captured.
func (r *Resource) SetCaptured(captured bool) { r.captured = captured }

// Texture returns the resource's realized texture handle. Valid
// only after Build has realized it (i.e. from within a task's
// Create/record callback).
func (r *Resource) Texture() ghi.Texture { return r.handle }

func (r *Resource) realize(g *Graph) error {
	if !r.IsTransient() || r.handle != nil {
		return nil
	}
	tex, err := g.pool.acquire(r.desc)
	if err != nil {
		return fmt.Errorf("graph: realize %q: %w", r.name, err)
	}
	r.handle = tex
	return nil
}

func (r *Resource) derealize(g *Graph) {
	if !r.IsTransient() || r.handle == nil {
		return
	}
	g.pool.release(r.handle)
	r.handle = nil
}

// ConditionFunc gates whether a Task executes this frame.
type ConditionFunc func() bool

// RecordFunc records the commands of one subpass, given the render
// pass' subpass index.
type RecordFunc func(pass *RenderPassTask, subpass int)

// Task is a node of the frame graph: either a plain task driven by
// an Execute callback, or a render-pass task (see RenderPassTask).
type Task struct {
	g    *Graph
	name string

	produced   []*Resource
	readRes    []*Resource
	writeRes   []*Resource
	readWrite  []*Resource

	refCount int
	culled   bool
	cond     ConditionFunc

	create  func(rec *cmd.Recorder) error
	execute func(rec *cmd.Recorder)
}

// Name returns the task's debug name.
func (t *Task) Name() string { return t.name }

// AddNewResource declares a transient resource produced by this
// task, realized from desc by the graph's texture pool.
func (t *Task) AddNewResource(name string, desc ghi.TextureDesc) *Resource {
	r := &Resource{id: resIDGen.Add(1), name: name, creator: t, desc: desc}
	t.produced = append(t.produced, r)
	return r
}

// AddResource declares that this task accesses an existing resource
// (transient or external) with the given access kind.
func (t *Task) AddResource(r *Resource, access Access) {
	switch access {
	case Read:
		r.readers = append(r.readers, t)
		t.readRes = append(t.readRes, r)
	case Write:
		r.writers = append(r.writers, t)
		t.writeRes = append(t.writeRes, r)
	case ReadWrite:
		r.readers = append(r.readers, t)
		r.writers = append(r.writers, t)
		t.readWrite = append(t.readWrite, r)
	}
}

// Cull forces this task out of the timeline regardless of its
// reference count. Unlike structural culling, it does not release
// the resources the task reads, so the tasks producing them are
// kept. Unlike SetCondition, a culled task's resources are never
// realized.
func (t *Task) Cull() { t.culled = true }

// SetCondition installs a predicate that, if it returns false at
// Execute time, causes this task to be skipped. The resource pool
// does not retract realizations for a skipped task: realizations
// happen before Execute, structural culling is via rc==0.
func (t *Task) SetCondition(cond ConditionFunc) { t.cond = cond }

// OnCreate installs the callback invoked once per Build, after this
// task's produced resources have been realized and before any other
// task's resources are touched.
func (t *Task) OnCreate(fn func(rec *cmd.Recorder) error) { t.create = fn }

// OnExecute installs the callback invoked at Execute time for a
// non-culled, condition-satisfied task.
func (t *Task) OnExecute(fn func(rec *cmd.Recorder)) { t.execute = fn }

// Graph is a single frame graph instance. A Graph is reused across
// frames: Clear resets the task/resource set while preserving the
// framebuffer and texture pool caches; ResetResources additionally
// drops those.
type Graph struct {
	gpu ghi.GPU

	tasks     []*Task
	resources []*Resource // produced + external, rebuilt each Build
	external  []*Resource
	captured  []*Resource

	timeline []timelineStep

	pool    *pool
	fbCache *fbCache

	width, height int

	debug bool
}

type timelineStep struct {
	task      *Task
	realize   []*Resource
	derealize []*Resource
}

// New creates an empty Graph bound to gpu, which it uses to realize
// transient textures and create render passes/framebuffers.
func New(gpu ghi.GPU, width, height int) *Graph {
	return &Graph{
		gpu:     gpu,
		pool:    newPool(gpu),
		fbCache: newFBCache(gpu),
		width:   width,
		height:  height,
	}
}

// Width returns the graph's current output width.
func (g *Graph) Width() int { return g.width }

// Height returns the graph's current output height.
func (g *Graph) Height() int { return g.height }

// AddTask registers a new plain task.
func (g *Graph) AddTask(name string) *Task {
	t := &Task{g: g, name: name}
	g.tasks = append(g.tasks, t)
	return t
}

// AddRenderPass registers a new render-pass task.
func (g *Graph) AddRenderPass(name string) *RenderPassTask {
	t := &Task{g: g, name: name}
	rp := &RenderPassTask{Task: t}
	t.execute = rp.execute
	t.create = rp.create
	g.tasks = append(g.tasks, t)
	return rp
}

// AddExternalResource registers a pre-existing texture with the
// graph, for culling/lifetime tracking only; the graph never
// realizes, derealizes or frees it.
func (g *Graph) AddExternalResource(name string, handle ghi.Texture) *Resource {
	r := &Resource{id: resIDGen.Add(1), name: name, handle: handle}
	g.external = append(g.external, r)
	return r
}

// Clear resets the task and resource set but preserves the
// framebuffer and texture pool caches.
func (g *Graph) Clear() {
	for _, r := range g.captured {
		r.derealize(g)
	}
	g.captured = g.captured[:0]
	g.external = g.external[:0]
	g.resources = g.resources[:0]
	g.tasks = g.tasks[:0]
	g.timeline = g.timeline[:0]
}

// ResetResources drops the framebuffer and texture pool caches, in
// addition to whatever Clear would do.
func (g *Graph) ResetResources() {
	g.Clear()
	g.pool.reset()
	g.fbCache.reset()
}

// Resize updates the graph's output dimensions, evicting the
// framebuffer cache (attachment sizes are no longer valid) and
// trimming every currently-free pool texture (screen-relative
// transient attachments must be recreated at the new resolution).
// Supplements spec.md §4.5, which specifies the cache and pool but
// not resize behavior; grounded on FrameGraph.cpp's
// RemoveFramebuffers / texture-pool trim on SetScreenSize.
func (g *Graph) Resize(width, height int) {
	if g.width == width && g.height == height {
		return
	}
	g.width, g.height = width, height
	g.fbCache.reset()
	g.pool.trimFree()
}
