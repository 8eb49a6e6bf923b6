package taskgraph

import (
	"fmt"
	"sort"
	"strconv"
)

// TaskID identifies a task within a Graph.
type TaskID uint64

// String returns the decimal form of the identifier.
func (id TaskID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseTaskID parses a decimal task identifier.
func ParseTaskID(s string) (TaskID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID %q: %w", s, err)
	}
	return TaskID(v), nil
}

// SortIDs sorts ids ascending in place.
func SortIDs(ids []TaskID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
