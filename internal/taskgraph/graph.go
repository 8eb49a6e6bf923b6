package taskgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Edge is a single "From must finish before To" dependency.
type Edge struct {
	From TaskID `json:"from" yaml:"from"`
	To   TaskID `json:"to" yaml:"to"`
}

// Graph is a set of tasks and their immediate-successor relation.
type Graph struct {
	tasks      map[TaskID]struct{}
	successors map[TaskID][]TaskID
	// next is the lowest identifier AddTask will try to hand out.
	next TaskID
}

// New returns an empty graph whose first allocated task is 1.
func New() *Graph {
	return &Graph{
		tasks:      make(map[TaskID]struct{}),
		successors: make(map[TaskID][]TaskID),
		next:       1,
	}
}

// Build creates a graph from an explicit task set and successor mapping.
//
// It is equivalent to registering every task and then calling AddSuccessor
// for every entry of successors, so identifiers that only appear in the
// mapping become tasks as well. The next identifier handed out by AddTask is
// one greater than the largest task, or 1 when the graph is empty.
func Build(tasks []TaskID, successors map[TaskID][]TaskID) *Graph {
	g := New()
	for _, id := range tasks {
		g.ensure(id)
	}

	from := make([]TaskID, 0, len(successors))
	for id := range successors {
		from = append(from, id)
	}
	SortIDs(from)

	for _, id := range from {
		g.ensure(id)
		for _, to := range successors[id] {
			g.AddSuccessor(id, to)
		}
	}

	g.next = 1
	for id := range g.tasks {
		if id >= g.next {
			g.next = id + 1
		}
	}
	return g
}

func (g *Graph) ensure(id TaskID) {
	if _, ok := g.tasks[id]; ok {
		return
	}
	g.tasks[id] = struct{}{}
	g.successors[id] = nil
}

// AddTask allocates a previously unused identifier, registers it with no
// successors and returns it.
func (g *Graph) AddTask() TaskID {
	for {
		if _, taken := g.tasks[g.next]; !taken {
			break
		}
		g.next++
	}
	id := g.next
	g.ensure(id)
	g.next++
	return id
}

// AddSuccessor records that successor cannot start until predecessor is
// complete. Unknown endpoints are added as tasks with no successors.
// Duplicate edges are appended again.
func (g *Graph) AddSuccessor(predecessor, successor TaskID) {
	g.ensure(predecessor)
	g.ensure(successor)
	g.successors[predecessor] = append(g.successors[predecessor], successor)
}

// NumberOfTasks returns the number of tasks in the graph.
func (g *Graph) NumberOfTasks() int {
	return len(g.tasks)
}

// Contains reports whether id is a task of the graph.
func (g *Graph) Contains(id TaskID) bool {
	_, ok := g.tasks[id]
	return ok
}

// Tasks returns every task identifier in ascending order.
func (g *Graph) Tasks() []TaskID {
	ids := make([]TaskID, 0, len(g.tasks))
	for id := range g.tasks {
		ids = append(ids, id)
	}
	SortIDs(ids)
	return ids
}

// Successors returns S(id), the immediate successors of id, in insertion
// order. The returned slice is a copy.
func (g *Graph) Successors(id TaskID) ([]TaskID, error) {
	if _, ok := g.tasks[id]; !ok {
		return nil, &UnknownTaskError{ID: id}
	}
	succ := g.successors[id]
	out := make([]TaskID, len(succ))
	copy(out, succ)
	return out, nil
}

// Predecessors returns the tasks that list id as a successor, ascending.
// A predecessor with a duplicate edge to id is reported once.
func (g *Graph) Predecessors(id TaskID) ([]TaskID, error) {
	if _, ok := g.tasks[id]; !ok {
		return nil, &UnknownTaskError{ID: id}
	}
	var preds []TaskID
	for _, from := range g.Tasks() {
		for _, to := range g.successors[from] {
			if to == id {
				preds = append(preds, from)
				break
			}
		}
	}
	return preds, nil
}

// Sinks returns the tasks without successors in ascending order.
func (g *Graph) Sinks() []TaskID {
	var sinks []TaskID
	for _, id := range g.Tasks() {
		if len(g.successors[id]) == 0 {
			sinks = append(sinks, id)
		}
	}
	return sinks
}

// Edges returns every edge ordered by source task, then insertion order.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, from := range g.Tasks() {
		for _, to := range g.successors[from] {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// SuccessorMap returns a copy of the successor relation including tasks
// without successors.
func (g *Graph) SuccessorMap() map[TaskID][]TaskID {
	out := make(map[TaskID][]TaskID, len(g.successors))
	for id, succ := range g.successors {
		cp := make([]TaskID, len(succ))
		copy(cp, succ)
		out[id] = cp
	}
	return out
}

// String renders the task set and successor relation on two lines.
func (g *Graph) String() string {
	ids := g.Tasks()

	var b strings.Builder
	b.WriteString("tasks: {")
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(id.String())
	}
	b.WriteString("}\nG: {")
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %s", id, formatIDs(g.successors[id]))
	}
	b.WriteString("}")
	return b.String()
}

func formatIDs(ids []TaskID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// sortedCopy is used where callers need a stable successor order that does
// not depend on insertion.
func sortedCopy(ids []TaskID) []TaskID {
	out := make([]TaskID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
