package labeler

import (
	"github.com/felixgeelhaar/coffman/internal/log"
	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

// Step describes one rank assignment.
type Step struct {
	Rank int              `json:"rank" yaml:"rank"`
	Task taskgraph.TaskID `json:"task" yaml:"task"`
	// Profile is the chosen task's successor ranks in decreasing order.
	// Sinks have an empty profile.
	Profile []int `json:"profile" yaml:"profile"`
	// Candidates are the ready tasks considered for this rank, ascending.
	Candidates []taskgraph.TaskID `json:"candidates" yaml:"candidates"`
}

// Option configures a labeling run.
type Option func(*options)

type options struct {
	observer func(Step)
	logger   *log.Logger
}

// WithObserver registers fn to be called after every rank assignment, in
// rank order.
func WithObserver(fn func(Step)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// WithLogger sets the logger used for debug output during labeling.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: log.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Discard()
	}
	return o
}
