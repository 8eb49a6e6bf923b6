package labeler

import (
	"fmt"
	"slices"
	"sort"

	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

// Graph is the read-only view of a task graph the labeler needs.
// *taskgraph.Graph satisfies it.
//
// Tasks may be returned in any order. Label sorts a copy ascending before
// scanning, and the smallest-identifier tie-break relies on that scan order.
type Graph interface {
	NumberOfTasks() int
	Tasks() []taskgraph.TaskID
	Successors(id taskgraph.TaskID) ([]taskgraph.TaskID, error)
}

// Labeling is the result of a successful run.
type Labeling struct {
	// Alpha maps every task to its rank in 1..r.
	Alpha map[taskgraph.TaskID]int
	// Order lists tasks from highest to lowest rank (L*).
	Order []taskgraph.TaskID
}

// Rank returns the rank of id and whether id was labeled.
func (l *Labeling) Rank(id taskgraph.TaskID) (int, bool) {
	rank, ok := l.Alpha[id]
	return rank, ok
}

// Len returns the number of labeled tasks.
func (l *Labeling) Len() int {
	return len(l.Order)
}

// Rank labels g and returns only the priority list, highest rank first.
func Rank(g Graph, opts ...Option) ([]taskgraph.TaskID, error) {
	labeling, err := Label(g, opts...)
	if err != nil {
		return nil, err
	}
	return labeling.Order, nil
}

// Label assigns Coffman–Graham ranks to every task of g.
//
// An empty graph yields an empty labeling. Errors from g.Successors are
// returned unchanged; a graph that cannot be fully labeled yields an
// *InvalidGraphError. No partial result is returned on error.
func Label(g Graph, opts ...Option) (*Labeling, error) {
	o := applyOptions(opts)

	total := g.NumberOfTasks()
	if total == 0 {
		o.logger.Debug("empty graph, nothing to label")
		return &Labeling{Alpha: map[taskgraph.TaskID]int{}, Order: []taskgraph.TaskID{}}, nil
	}

	// Scan order must be ascending for ties to go to the smallest identifier.
	tasks := slices.Clone(g.Tasks())
	sort.Slice(tasks, func(i, j int) bool { return tasks[i] < tasks[j] })

	successors := make(map[taskgraph.TaskID][]taskgraph.TaskID, len(tasks))
	for _, id := range tasks {
		succ, err := g.Successors(id)
		if err != nil {
			return nil, err
		}
		successors[id] = succ
	}

	alpha := make(map[taskgraph.TaskID]int, total)
	k := 1

	var sinks []taskgraph.TaskID
	for _, id := range tasks {
		if len(successors[id]) == 0 {
			sinks = append(sinks, id)
		}
	}
	if len(sinks) == 0 {
		return nil, &InvalidGraphError{Reason: ReasonNoSinks, Total: total}
	}

	for _, id := range sinks {
		alpha[id] = k
		o.emit(Step{Rank: k, Task: id, Profile: []int{}, Candidates: slices.Clone(sinks)})
		k++
	}

	for k <= total {
		var (
			candidates []taskgraph.TaskID
			best       taskgraph.TaskID
			bestProf   []int
			found      bool
		)

		for _, id := range tasks {
			if _, labeled := alpha[id]; labeled {
				continue
			}
			profile, ready := readyProfile(successors[id], alpha)
			if !ready {
				continue
			}
			candidates = append(candidates, id)

			// tasks is ascending, so keeping the first of equal profiles
			// breaks ties by smallest identifier.
			if !found || LessLexicographically(profile, bestProf) {
				best, bestProf, found = id, profile, true
			}
		}

		if !found {
			return nil, &InvalidGraphError{Reason: ReasonNoReadyTask, Labeled: k - 1, Total: total}
		}

		alpha[best] = k
		o.emit(Step{Rank: k, Task: best, Profile: bestProf, Candidates: candidates})
		k++
	}

	order := make([]taskgraph.TaskID, total)
	for id, rank := range alpha {
		order[total-rank] = id
	}

	o.logger.Debug("graph labeled", "tasks", total, "order", fmt.Sprint(order))
	return &Labeling{Alpha: alpha, Order: order}, nil
}

// readyProfile returns the decreasing list of successor ranks, or false if
// some successor is still unlabeled.
func readyProfile(succ []taskgraph.TaskID, alpha map[taskgraph.TaskID]int) ([]int, bool) {
	profile := make([]int, 0, len(succ))
	for _, s := range succ {
		rank, ok := alpha[s]
		if !ok {
			return nil, false
		}
		profile = append(profile, rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(profile)))
	return profile, true
}

func (o options) emit(step Step) {
	o.logger.Debug("rank assigned",
		"rank", step.Rank,
		"task", uint64(step.Task),
		"profile", fmt.Sprint(step.Profile),
		"candidates", len(step.Candidates))
	if o.observer != nil {
		o.observer(step)
	}
}
