package taskgraph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTask is matched by errors.Is for every *UnknownTaskError.
var ErrUnknownTask = errors.New("unknown task")

// ErrCycle is matched by errors.Is for every *CycleError.
var ErrCycle = errors.New("cycle detected")

// UnknownTaskError reports a query for a task that is not in the graph.
type UnknownTaskError struct {
	ID TaskID
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("task %d is not in the set of tasks", e.ID)
}

// Is reports whether target is ErrUnknownTask.
func (e *UnknownTaskError) Is(target error) bool {
	return target == ErrUnknownTask
}

// CycleError describes a cycle found by DetectCycle. Path starts and ends
// with the same task.
type CycleError struct {
	Path []TaskID
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, id := range e.Path {
		parts[i] = id.String()
	}
	return fmt.Sprintf("circular dependency detected: %s", strings.Join(parts, " -> "))
}

// Is reports whether target is ErrCycle.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}
