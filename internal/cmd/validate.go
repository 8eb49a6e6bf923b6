package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/coffman/internal/errors"
	"github.com/felixgeelhaar/coffman/internal/graphfile"
	"github.com/felixgeelhaar/coffman/internal/labeler"
	"github.com/felixgeelhaar/coffman/internal/taskgraph"
	"github.com/felixgeelhaar/coffman/internal/ux"
)

func newValidateCmd(cc *CommandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|dir>...",
		Short: "Check that graph files parse and can be ranked",
		Long: `Validate graph files without printing rankings.

Checks:
- The file parses in its format (by extension)
- The graph has no circular dependency (the cycle is reported)
- Ranking completes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cc, args)
		},
	}
}

func runValidate(cc *CommandContext, args []string) error {
	paths, err := graphfile.Discover(args)
	if err != nil {
		return loadError(firstMissing(args), err)
	}

	results := make(ux.Validation, 0, len(paths))
	for _, path := range paths {
		results = append(results, validateFile(path))
	}

	formatter, err := cc.Formatter()
	if err != nil {
		return err
	}
	if err := formatter.Format(results); err != nil {
		return err
	}

	if !results.Failed() {
		return nil
	}
	invalid := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
			cc.Logger.Debug("invalid graph", "source", r.Source, "error", r.Error)
		}
	}
	return errors.New(errors.ErrCodeInvalidGraph, fmt.Sprintf("%d of %d graphs are invalid", invalid, len(results)))
}

func validateFile(path string) ux.ValidationResult {
	result := ux.ValidationResult{Source: path}

	g, err := loadGraph(path)
	if err != nil {
		return invalid(result, err, errorMessage(err))
	}
	result.Tasks = g.Graph.NumberOfTasks()

	if err := g.Graph.DetectCycle(); err != nil {
		var cycle *taskgraph.CycleError
		if stderrors.As(err, &cycle) {
			result.Cycle = cycle.Path
		}
		return invalid(result, errors.NewCyclicGraphError(path, err), err.Error())
	}

	if _, err := labeler.Label(g.Graph); err != nil {
		return invalid(result, rankError(path, err), err.Error())
	}

	result.Valid = true
	return result
}

// invalid records the error code of err and a short message on result.
func invalid(result ux.ValidationResult, err error, message string) ux.ValidationResult {
	var coded *errors.CoffmanError
	if stderrors.As(err, &coded) {
		result.Code = string(coded.Code)
	}
	result.Error = message
	return result
}

// errorMessage prefers the coded message plus cause over the full chain.
func errorMessage(err error) string {
	var coded *errors.CoffmanError
	if stderrors.As(err, &coded) && coded.Cause != nil {
		return coded.Message + ": " + coded.Cause.Error()
	}
	if coded != nil {
		return coded.Message
	}
	return err.Error()
}
