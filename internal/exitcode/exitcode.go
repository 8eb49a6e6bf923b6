package exitcode

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/felixgeelhaar/coffman/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// InvalidGraph indicates a graph that cannot be ranked or is cyclic
	InvalidGraph = 3

	// IOError indicates a graph or report file could not be read or written
	IOError = 4

	// StoreError indicates the ranking cache could not be used
	StoreError = 5

	// ConfigError indicates invalid configuration
	ConfigError = 6

	// Interrupted indicates the run was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps an error to an exit code. Coded errors are
// classified by their code prefix; cobra usage errors by message.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	if stderrors.Is(err, context.Canceled) {
		return Interrupted
	}

	var coded *errors.CoffmanError
	if stderrors.As(err, &coded) {
		code := string(coded.Code)
		switch {
		case strings.HasPrefix(code, "GRAPH-"):
			return InvalidGraph
		case strings.HasPrefix(code, "IO-"):
			return IOError
		case strings.HasPrefix(code, "STORE-"):
			return StoreError
		case strings.HasPrefix(code, "CONFIG-"):
			return ConfigError
		}
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "unknown command") {
		return UsageError
	}
	if strings.Contains(errMsg, "invalid argument") || strings.Contains(errMsg, "required flag") {
		return UsageError
	}
	if strings.Contains(errMsg, "accepts") && strings.Contains(errMsg, "arg(s)") {
		return UsageError
	}
	if strings.Contains(errMsg, "requires at least") {
		return UsageError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case InvalidGraph:
		return "Invalid task graph"
	case IOError:
		return "File read or write error"
	case StoreError:
		return "Ranking cache error"
	case ConfigError:
		return "Invalid configuration"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
