package graph

import (
	"fmt"
	"io"
)

// ExportGraphviz dumps the current task/resource set (as registered
// by the last Build, or since the last Clear) as a Graphviz digraph:
// resources colored by transient/external/captured, tasks orange,
// edges colored by produce/write/read.
func (g *Graph) ExportGraphviz(w io.Writer) error {
	fmt.Fprintln(w, "digraph framegraph {")
	fmt.Fprintln(w, "rankdir = LR")
	fmt.Fprintln(w, "node [shape=rectangle, fontname=\"helvetica\", fontsize=12]")
	fmt.Fprintln(w)

	for _, r := range g.resources {
		color := "skyblue"
		switch {
		case r.IsCaptured():
			color = "gold"
		case !r.IsTransient():
			color = "steelblue"
		}
		fmt.Fprintf(w, "%q [label=%q, style=filled, fillcolor=%s]\n",
			r.Name(), fmt.Sprintf("%s\\nrefs: %d\\nid: %d", r.Name(), r.refCount, r.id), color)
	}
	fmt.Fprintln(w)

	for _, t := range g.tasks {
		fmt.Fprintf(w, "%q [label=%q, style=filled, fillcolor=darkorange]\n",
			t.name, fmt.Sprintf("%s\\nrefs: %d", t.name, t.refCount))

		if len(t.produced) > 0 {
			fmt.Fprintf(w, "%q -> { ", t.name)
			for _, r := range t.produced {
				fmt.Fprintf(w, "%q ", r.Name())
			}
			fmt.Fprintln(w, "} [color=seagreen]")
		}
		if len(t.writeRes) > 0 {
			fmt.Fprintf(w, "%q -> { ", t.name)
			for _, r := range t.writeRes {
				fmt.Fprintf(w, "%q ", r.Name())
			}
			fmt.Fprintln(w, "} [color=gold]")
		}
	}
	fmt.Fprintln(w)

	for _, r := range g.resources {
		fmt.Fprintf(w, "%q -> { ", r.Name())
		for _, t := range r.readers {
			fmt.Fprintf(w, "%q ", t.name)
		}
		fmt.Fprintln(w, "} [color=skyblue]")
	}

	fmt.Fprintln(w, "}")
	return nil
}
