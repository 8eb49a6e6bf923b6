package cmd

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/felixgeelhaar/coffman/internal/errors"
	"github.com/felixgeelhaar/coffman/internal/graphfile"
	"github.com/felixgeelhaar/coffman/internal/labeler"
	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

// loadError converts a graph loading failure into a coded error.
func loadError(path string, err error) error {
	var parseErr *graphfile.ParseError
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.NewFileNotFoundError(path)
	case stderrors.Is(err, graphfile.ErrUnknownFormat):
		return errors.NewFileFormatUnknownError(path)
	case stderrors.As(err, &parseErr):
		return errors.NewFileUnmarshalError(path, string(parseErr.Format), parseErr.Err)
	default:
		return errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read graph %s", path), err)
	}
}

// rankError converts a labeling failure into a coded error.
func rankError(source string, err error) error {
	switch {
	case stderrors.Is(err, labeler.ErrInvalidGraph):
		return errors.NewInvalidGraphError(source, err)
	case stderrors.Is(err, taskgraph.ErrUnknownTask):
		return errors.NewUnknownTaskError(source, err)
	default:
		return fmt.Errorf("rank %s: %w", source, err)
	}
}
