package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Graph errors (GRAPH-001 to GRAPH-099)
	ErrCodeUnknownTask  ErrorCode = "GRAPH-001"
	ErrCodeInvalidGraph ErrorCode = "GRAPH-002"
	ErrCodeCyclicGraph  ErrorCode = "GRAPH-003"

	// Graph file errors (IO-001 to IO-099)
	ErrCodeFileNotFound      ErrorCode = "IO-001"
	ErrCodeFileReadFailed    ErrorCode = "IO-002"
	ErrCodeFileWriteFailed   ErrorCode = "IO-003"
	ErrCodeFileFormatUnknown ErrorCode = "IO-004"
	ErrCodeFileUnmarshal     ErrorCode = "IO-005"
	ErrCodeFileMarshal       ErrorCode = "IO-006"

	// Ranking cache errors (STORE-001 to STORE-099)
	ErrCodeStoreOpen  ErrorCode = "STORE-001"
	ErrCodeStoreRead  ErrorCode = "STORE-002"
	ErrCodeStoreWrite ErrorCode = "STORE-003"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
)

// CoffmanError represents an enhanced error with code, suggestions, and documentation
type CoffmanError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *CoffmanError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *CoffmanError) Unwrap() error {
	return e.Cause
}

// New creates a new CoffmanError
func New(code ErrorCode, message string) *CoffmanError {
	return &CoffmanError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new CoffmanError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *CoffmanError {
	return &CoffmanError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *CoffmanError) WithSuggestion(suggestion string) *CoffmanError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *CoffmanError) WithSuggestions(suggestions ...string) *CoffmanError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *CoffmanError) WithDocs(url string) *CoffmanError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewInvalidGraphError wraps a ranking failure for a graph file
func NewInvalidGraphError(source string, cause error) *CoffmanError {
	return Wrap(ErrCodeInvalidGraph, fmt.Sprintf("graph cannot be ranked: %s", source), cause).
		WithSuggestion(fmt.Sprintf("Run 'coffman validate %s' to locate the cycle", source)).
		WithSuggestion("Make sure at least one task has no successors").
		WithDocs("https://github.com/felixgeelhaar/coffman#graph-files")
}

// NewCyclicGraphError reports a cycle found while validating a graph file
func NewCyclicGraphError(source string, cause error) *CoffmanError {
	return Wrap(ErrCodeCyclicGraph, fmt.Sprintf("graph is not acyclic: %s", source), cause).
		WithSuggestion("Remove one edge of the reported cycle").
		WithSuggestion("Check for tasks that list themselves as successors")
}

// NewUnknownTaskError reports a reference to a task that is not in the graph
func NewUnknownTaskError(source string, cause error) *CoffmanError {
	return Wrap(ErrCodeUnknownTask, fmt.Sprintf("unknown task referenced in %s", source), cause).
		WithSuggestion(fmt.Sprintf("Run 'coffman inspect %s' to list the known tasks", source))
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *CoffmanError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewFileFormatUnknownError reports an unsupported graph file extension
func NewFileFormatUnknownError(path string) *CoffmanError {
	return New(ErrCodeFileFormatUnknown, fmt.Sprintf("unsupported graph file format: %s", path)).
		WithSuggestion("Use one of the extensions: .yaml, .yml, .json, .hcl")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *CoffmanError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}

// NewStoreOpenError reports a ranking cache that could not be opened
func NewStoreOpenError(path string, cause error) *CoffmanError {
	return Wrap(ErrCodeStoreOpen, fmt.Sprintf("failed to open ranking cache: %s", path), cause).
		WithSuggestion("Check that the directory exists and is writable").
		WithSuggestion("Set store.path in ~/.coffman/config.yaml or COFFMAN_STORE_PATH")
}
