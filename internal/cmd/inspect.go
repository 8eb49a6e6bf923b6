package cmd

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/coffman/internal/taskgraph"
	"github.com/felixgeelhaar/coffman/internal/ux"
)

func newInspectCmd(cc *CommandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the tasks, edges and fingerprint of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cc, args[0])
		},
	}
}

func runInspect(cc *CommandContext, path string) error {
	g, err := loadGraph(path)
	if err != nil {
		return err
	}

	sources, err := sourceTasks(g.Graph)
	if err != nil {
		return err
	}

	summary := &ux.GraphSummary{
		Name:        g.Name,
		Source:      g.Source,
		Fingerprint: g.Fingerprint,
		Tasks:       g.Graph.Tasks(),
		Sources:     sources,
		Sinks:       g.Graph.Sinks(),
		Edges:       g.Graph.Edges(),
		Acyclic:     true,
	}
	if err := g.Graph.DetectCycle(); err != nil {
		summary.Acyclic = false
		var cycle *taskgraph.CycleError
		if stderrors.As(err, &cycle) {
			summary.Cycle = cycle.Path
		}
	}

	cc.Logger.Debug("graph inspected", "source", path, "graph", g.Graph.String())

	formatter, err := cc.Formatter()
	if err != nil {
		return err
	}
	return formatter.Format(summary)
}

// sourceTasks lists the tasks no other task must precede, ascending.
func sourceTasks(g *taskgraph.Graph) ([]taskgraph.TaskID, error) {
	sources := []taskgraph.TaskID{}
	for _, id := range g.Tasks() {
		preds, err := g.Predecessors(id)
		if err != nil {
			return nil, err
		}
		if len(preds) == 0 {
			sources = append(sources, id)
		}
	}
	return sources, nil
}
