package labeler

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph is matched by every InvalidGraphError.
var ErrInvalidGraph = errors.New("invalid graph")

// Reason identifies which stage of labeling got stuck.
type Reason string

const (
	// ReasonNoSinks means a non-empty graph has no task without successors.
	ReasonNoSinks Reason = "no_sinks"
	// ReasonNoReadyTask means unlabeled tasks remain but none has all of
	// its successors labeled.
	ReasonNoReadyTask Reason = "no_ready_task"
)

// InvalidGraphError is returned when the graph cannot be fully labeled,
// which in practice means it contains a cycle.
type InvalidGraphError struct {
	Reason  Reason
	Labeled int
	Total   int
}

func (e *InvalidGraphError) Error() string {
	switch e.Reason {
	case ReasonNoSinks:
		return fmt.Sprintf("invalid graph: none of the %d tasks is a sink", e.Total)
	default:
		return fmt.Sprintf("invalid graph: no ready task after labeling %d of %d tasks", e.Labeled, e.Total)
	}
}

// Is makes errors.Is(err, ErrInvalidGraph) work.
func (e *InvalidGraphError) Is(target error) bool {
	return target == ErrInvalidGraph
}
