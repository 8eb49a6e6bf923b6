package taskgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCycle(t *testing.T) {
	tests := []struct {
		name      string
		graph     *Graph
		wantPath  []TaskID
		wantCycle bool
	}{
		{
			name:  "empty graph",
			graph: New(),
		},
		{
			name:  "isolated tasks",
			graph: Build([]TaskID{1, 2, 3}, nil),
		},
		{
			name:  "diamond with transitive edge",
			graph: Build(nil, map[TaskID][]TaskID{1: {2, 3, 4}, 2: {4}, 3: {4}}),
		},
		{
			name:      "self loop",
			graph:     Build(nil, map[TaskID][]TaskID{1: {1}}),
			wantPath:  []TaskID{1, 1},
			wantCycle: true,
		},
		{
			name:      "two task cycle",
			graph:     Build(nil, map[TaskID][]TaskID{1: {2}, 2: {1}}),
			wantPath:  []TaskID{1, 2, 1},
			wantCycle: true,
		},
		{
			name:      "cycle behind an acyclic prefix",
			graph:     Build(nil, map[TaskID][]TaskID{1: {2}, 2: {3}, 3: {4}, 4: {2}}),
			wantPath:  []TaskID{2, 3, 4, 2},
			wantCycle: true,
		},
		{
			name:      "cycle in a disjoint component",
			graph:     Build(nil, map[TaskID][]TaskID{1: {2}, 5: {6}, 6: {5}}),
			wantPath:  []TaskID{5, 6, 5},
			wantCycle: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.graph.DetectCycle()
			if !tt.wantCycle {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCycle))

			var cycleErr *CycleError
			require.True(t, errors.As(err, &cycleErr))
			assert.Equal(t, tt.wantPath, cycleErr.Path)
			assert.Contains(t, err.Error(), "circular dependency detected")
		})
	}
}
