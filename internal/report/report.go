// Package report describes the outcome of one ranking run.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/coffman/internal/labeler"
	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

// Label pairs a task with its rank.
type Label struct {
	Task taskgraph.TaskID `json:"task" yaml:"task"`
	Rank int              `json:"rank" yaml:"rank"`
}

// Report is the result of ranking one graph.
type Report struct {
	RunID       string             `json:"run_id" yaml:"run_id"`
	Source      string             `json:"source" yaml:"source"`
	Name        string             `json:"name,omitempty" yaml:"name,omitempty"`
	Fingerprint string             `json:"fingerprint" yaml:"fingerprint"`
	Tasks       int                `json:"tasks" yaml:"tasks"`
	Order       []taskgraph.TaskID `json:"order" yaml:"order"`
	Labels      []Label            `json:"labels" yaml:"labels"`
	CreatedAt   time.Time          `json:"created_at" yaml:"created_at"`
	Cached      bool               `json:"cached" yaml:"cached"`
	// Trace holds the rank assignments when tracing was requested.
	Trace []labeler.Step `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// New builds a report for a finished labeling with a fresh run ID.
func New(source, name, fingerprint string, labeling *labeler.Labeling) *Report {
	r := FromOrder(uuid.New().String(), source, name, fingerprint, labeling.Order, time.Now().UTC())

	labels := make([]Label, 0, labeling.Len())
	for _, id := range labeling.Order {
		rank, _ := labeling.Rank(id)
		labels = append(labels, Label{Task: id, Rank: rank})
	}
	sortLabels(labels)
	r.Labels = labels
	return r
}

// FromOrder rebuilds a report from a stored priority list.
func FromOrder(runID, source, name, fingerprint string, order []taskgraph.TaskID, createdAt time.Time) *Report {
	if order == nil {
		order = []taskgraph.TaskID{}
	}
	return &Report{
		RunID:       runID,
		Source:      source,
		Name:        name,
		Fingerprint: fingerprint,
		Tasks:       len(order),
		Order:       order,
		Labels:      labelsFromOrder(order),
		CreatedAt:   createdAt,
	}
}

// labelsFromOrder lists labels by ascending task identifier.
func labelsFromOrder(order []taskgraph.TaskID) []Label {
	labels := make([]Label, len(order))
	for i, id := range order {
		labels[i] = Label{Task: id, Rank: len(order) - i}
	}
	sortLabels(labels)
	return labels
}

func sortLabels(labels []Label) {
	sort.Slice(labels, func(i, j int) bool { return labels[i].Task < labels[j].Task })
}
