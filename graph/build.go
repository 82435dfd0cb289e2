package graph

import (
	"github.com/ardentgfx/ghi/cmd"
)

// Build runs the frame graph's culling and timeline algorithm (spec
// §4.5, steps 1-5):
//
//  1. Assemble the flat resource list (produced + external).
//  2. Initialize ref counts.
//  3. Iteratively cull unreferenced, non-captured transient
//     resources and the tasks that become unreferenced as a result.
//  4. Produce the timeline: for each non-culled task in submission
//     order, schedule its produced resources' realization (and, for
//     ones with no readers/writers, immediate derealization), and
//     schedule derealization of its R/W/RW resources at the last
//     task that touches them.
//  5. For each step, realize its realize-list, run the task's
//     Create callback, then derealize its derealize-list.
func (g *Graph) Build(rec *cmd.Recorder) error {
	g.registerResources()

	for _, t := range g.tasks {
		t.refCount = len(t.produced) + len(t.writeRes) + len(t.readWrite)
	}

	g.captured = g.captured[:0]
	for _, r := range g.resources {
		r.refCount = len(r.readers)
		if r.IsCaptured() {
			g.captured = append(g.captured, r)
		}
	}

	var stack []*Resource
	for _, r := range g.resources {
		if r.refCount == 0 && r.IsTransient() && !r.IsCaptured() {
			stack = append(stack, r)
		}
	}

	decrTask := func(t *Task) {
		if t.refCount > 0 {
			t.refCount--
		}
		if t.refCount == 0 && !t.culled {
			for _, rd := range t.readRes {
				if rd.refCount > 0 {
					rd.refCount--
				}
				if rd.refCount == 0 && rd.IsTransient() {
					stack = append(stack, rd)
				}
			}
		}
	}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		decrTask(r.creator)
		for _, w := range r.writers {
			decrTask(w)
		}
	}

	g.timeline = g.timeline[:0]

	for ti, t := range g.tasks {
		if t.culled || t.refCount == 0 {
			continue
		}

		var realize, derealize []*Resource
		for _, r := range t.produced {
			realize = append(realize, r)
			if len(r.readers) == 0 && len(r.writers) == 0 && !r.IsCaptured() {
				derealize = append(derealize, r)
			}
		}

		rw := make([]*Resource, 0, len(t.readRes)+len(t.writeRes)+len(t.readWrite))
		rw = append(rw, t.readRes...)
		rw = append(rw, t.writeRes...)
		rw = append(rw, t.readWrite...)
		for _, r := range rw {
			if !r.IsTransient() || r.IsCaptured() {
				continue
			}
			lastIdx, valid := -1, false
			if len(r.readers) > 0 {
				if idx := g.taskIndex(r.readers[len(r.readers)-1]); idx >= 0 {
					valid, lastIdx = true, idx
				}
			}
			if len(r.writers) > 0 {
				if idx := g.taskIndex(r.writers[len(r.writers)-1]); idx >= 0 {
					valid = true
					if idx > lastIdx {
						lastIdx = idx
					}
				}
			}
			if valid && lastIdx == ti {
				derealize = append(derealize, r)
			}
		}

		g.timeline = append(g.timeline, timelineStep{task: t, realize: realize, derealize: derealize})
		step := &g.timeline[len(g.timeline)-1]

		for _, r := range step.realize {
			if err := r.realize(g); err != nil {
				return err
			}
		}
		if t.create != nil {
			if err := t.create(rec); err != nil {
				return err
			}
		}
		for _, r := range step.derealize {
			r.derealize(g)
		}
	}

	return nil
}

func (g *Graph) registerResources() {
	g.resources = g.resources[:0]
	for _, t := range g.tasks {
		g.resources = append(g.resources, t.produced...)
	}
	g.resources = append(g.resources, g.external...)
}

func (g *Graph) taskIndex(t *Task) int {
	for i, tt := range g.tasks {
		if tt == t {
			return i
		}
	}
	return -1
}

// Execute walks the timeline produced by Build, skipping tasks
// whose condition predicate returns false, and invoking each task's
// Execute callback via rec.
func (g *Graph) Execute(rec *cmd.Recorder) {
	for _, step := range g.timeline {
		t := step.task
		if t.cond != nil && !t.cond() {
			continue
		}
		if t.execute != nil {
			t.execute(rec)
		}
	}
	if g.debug {
		g.Debug()
	}
}

// SetDebug toggles whether Execute prints a per-step realize/
// execute/derealize trace after each run.
func (g *Graph) SetDebug(on bool) { g.debug = on }

// Debug prints a per-step realize/execute/derealize trace of the
// last Build's timeline.
func (g *Graph) Debug() {
	println("---------- frame graph ----------")
	for _, step := range g.timeline {
		for _, r := range step.realize {
			println("realize", r.Name())
		}
		println("execute", step.task.Name())
		for _, r := range step.derealize {
			println("derealize", r.Name())
		}
	}
	println("----------------------------------")
}
