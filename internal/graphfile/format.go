package graphfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a graph file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// ErrUnknownFormat is returned for paths whose extension maps to no Format.
var ErrUnknownFormat = errors.New("unknown graph file format")

// Extensions lists the recognised file extensions.
var Extensions = []string{".yaml", ".yml", ".json", ".hcl"}

// FormatFromPath selects the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ParseError reports a file that could not be decoded.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s graph %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
