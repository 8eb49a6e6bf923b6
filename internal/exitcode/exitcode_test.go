package exitcode

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/felixgeelhaar/coffman/internal/errors"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", Success, 0},
		{"GeneralError", GeneralError, 1},
		{"UsageError", UsageError, 2},
		{"InvalidGraph", InvalidGraph, 3},
		{"IOError", IOError, 4},
		{"StoreError", StoreError, 5},
		{"ConfigError", ConfigError, 6},
		{"Interrupted", Interrupted, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("Exit code %s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			expected: Success,
		},
		{
			name:     "invalid graph",
			err:      errors.NewInvalidGraphError("g.yaml", stderrors.New("no sinks")),
			expected: InvalidGraph,
		},
		{
			name:     "cyclic graph wrapped",
			err:      fmt.Errorf("validate: %w", errors.NewCyclicGraphError("g.yaml", nil)),
			expected: InvalidGraph,
		},
		{
			name:     "file not found",
			err:      errors.NewFileNotFoundError("g.yaml"),
			expected: IOError,
		},
		{
			name:     "store open",
			err:      errors.NewStoreOpenError("/tmp/x.db", stderrors.New("locked")),
			expected: StoreError,
		},
		{
			name:     "config",
			err:      errors.New(errors.ErrCodeConfigInvalid, "bad"),
			expected: ConfigError,
		},
		{
			name:     "cancelled",
			err:      fmt.Errorf("rank: %w", context.Canceled),
			expected: Interrupted,
		},
		{
			name:     "unknown flag",
			err:      stderrors.New("unknown flag: --foo"),
			expected: UsageError,
		},
		{
			name:     "unknown command",
			err:      stderrors.New(`unknown command "sort" for "coffman"`),
			expected: UsageError,
		},
		{
			name:     "wrong argument count",
			err:      stderrors.New("accepts 1 arg(s), received 2"),
			expected: UsageError,
		},
		{
			name:     "missing arguments",
			err:      stderrors.New("requires at least 1 arg(s), only received 0"),
			expected: UsageError,
		},
		{
			name:     "generic error",
			err:      stderrors.New("something went wrong"),
			expected: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetermineExitCode(tt.err)
			if result != tt.expected {
				t.Errorf("DetermineExitCode(%v) = %d, want %d", tt.err, result, tt.expected)
			}
		})
	}
}

func TestGetExitCodeDescription(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{Success, "Success"},
		{GeneralError, "General error"},
		{UsageError, "Usage error (invalid flags or arguments)"},
		{InvalidGraph, "Invalid task graph"},
		{IOError, "File read or write error"},
		{StoreError, "Ranking cache error"},
		{ConfigError, "Invalid configuration"},
		{Interrupted, "Interrupted"},
		{99, "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := GetExitCodeDescription(tt.code); got != tt.expected {
				t.Errorf("GetExitCodeDescription(%d) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}
