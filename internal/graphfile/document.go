// Package graphfile reads and writes task graph definitions.
//
// A definition lists task identifiers and, per task, the identifiers of
// its immediate successors. YAML, JSON and HCL encodings are supported and
// selected by file extension.
package graphfile

import (
	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

// Document is the on-disk form of a task graph.
type Document struct {
	Name       string                                  `json:"name,omitempty" yaml:"name,omitempty"`
	Tasks      []taskgraph.TaskID                      `json:"tasks" yaml:"tasks"`
	Successors map[taskgraph.TaskID][]taskgraph.TaskID `json:"successors,omitempty" yaml:"successors,omitempty"`
}

// Graph builds the task graph described by d. Identifiers that only
// appear in successor lists become tasks as well.
func (d *Document) Graph() *taskgraph.Graph {
	return taskgraph.Build(d.Tasks, d.Successors)
}

// FromGraph returns the document describing g. Tasks without successors
// are listed in Tasks only.
func FromGraph(name string, g *taskgraph.Graph) *Document {
	doc := &Document{
		Name:  name,
		Tasks: g.Tasks(),
	}
	for id, succ := range g.SuccessorMap() {
		if len(succ) == 0 {
			continue
		}
		if doc.Successors == nil {
			doc.Successors = make(map[taskgraph.TaskID][]taskgraph.TaskID)
		}
		doc.Successors[id] = succ
	}
	return doc
}
