package cmd

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/coffman/internal/errors"
	"github.com/felixgeelhaar/coffman/internal/labeler"
	"github.com/felixgeelhaar/coffman/internal/report"
	"github.com/felixgeelhaar/coffman/internal/store"
	"github.com/felixgeelhaar/coffman/internal/ux"
)

type rankOptions struct {
	trace   bool
	cache   bool
	workers int
	out     string
}

func newRankCmd(cc *CommandContext) *cobra.Command {
	opts := &rankOptions{}

	cmd := &cobra.Command{
		Use:   "rank <file|dir>...",
		Short: "Compute the Coffman–Graham priority list of task graphs",
		Long: `Rank every task of each graph and print the priority list, highest
rank first, together with each task's label.

Several files (or directories of graph files) are ranked in parallel.
With --cache, results are stored by graph fingerprint and reused the next
time an identical graph is ranked.`,
		Example: `  coffman rank build.yaml
  coffman rank graphs/ --workers 4 --format json
  coffman rank pipeline.hcl --trace`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				opts.workers = cc.Config.Rank.Workers
			}
			return runRank(cmd.Context(), cc, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.trace, "trace", false, "include every rank assignment in the output")
	cmd.Flags().BoolVar(&opts.cache, "cache", false, "reuse and record rankings in the local store")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "graphs ranked in parallel (0 = one per CPU)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "also write the reports to this file (.json, .yaml or text)")

	return cmd
}

func runRank(ctx context.Context, cc *CommandContext, args []string, opts *rankOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cc.Logger

	graphs, err := loadGraphs(args, logger)
	if err != nil {
		return err
	}

	var st *store.Store
	if opts.cache {
		st, err = openStore(cc)
		if err != nil {
			return err
		}
		defer closeStore(st, cc.Config.Store.Path)
	}

	reports := make([]*report.Report, len(graphs))
	var pending []int
	for i, g := range graphs {
		if st != nil && !opts.trace {
			cached, err := st.Lookup(ctx, g.Fingerprint)
			switch {
			case err == nil:
				logger.Debug("cache hit", "source", g.Source, "run_id", cached.RunID)
				cached.Source = g.Source
				cached.Name = g.Name
				reports[i] = cached
				continue
			case !stderrors.Is(err, store.ErrNotFound):
				return errors.Wrap(errors.ErrCodeStoreRead, "failed to read ranking cache", err)
			}
		}
		pending = append(pending, i)
	}

	failures, err := rankPending(ctx, cc, graphs, pending, reports, opts)
	if err != nil {
		return err
	}

	if st != nil {
		for _, i := range pending {
			if reports[i] == nil {
				continue
			}
			if err := st.Save(ctx, reports[i]); err != nil {
				return errors.Wrap(errors.ErrCodeStoreWrite, "failed to record ranking", err)
			}
		}
	}

	var ranked ux.Reports
	for _, r := range reports {
		if r != nil {
			ranked = append(ranked, r)
		}
	}

	if len(ranked) > 0 {
		formatter, err := cc.Formatter()
		if err != nil {
			return err
		}
		if err := formatter.Format(ranked); err != nil {
			return err
		}
		if opts.out != "" {
			if err := writeFile(opts.out, ranked); err != nil {
				return err
			}
			logger.Info("reports written", "path", opts.out, "count", len(ranked))
		}
	}

	if len(failures) == 0 {
		return nil
	}
	for _, f := range failures[1:] {
		logger.LogError(f)
	}
	return failures[0]
}

// rankPending labels graphs[i] for every i in pending and stores the
// reports. Labeling failures are returned as coded errors in input order;
// the error result is reserved for cancellation.
func rankPending(ctx context.Context, cc *CommandContext, graphs []loadedGraph, pending []int, reports []*report.Report, opts *rankOptions) ([]error, error) {
	if len(pending) == 0 {
		return nil, nil
	}

	base := []labeler.Option{labeler.WithLogger(cc.Logger)}
	var failures []error

	// Traces need one observer per graph, so traced runs go one at a time.
	if opts.trace {
		for _, i := range pending {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			g := graphs[i]
			var steps []labeler.Step
			labeling, err := labeler.Label(g.Graph, append(base, labeler.WithObserver(func(s labeler.Step) {
				steps = append(steps, s)
			}))...)
			if err != nil {
				failures = append(failures, rankError(g.Source, err))
				continue
			}
			r := report.New(g.Source, g.Name, g.Fingerprint, labeling)
			r.Trace = steps
			reports[i] = r
		}
		return failures, nil
	}

	batch := make([]labeler.Graph, len(pending))
	for j, i := range pending {
		batch[j] = graphs[i].Graph
	}

	results, err := labeler.RankAll(ctx, batch, opts.workers, base...)
	if err != nil {
		return nil, err
	}

	for j, res := range results {
		g := graphs[pending[j]]
		if res.Err != nil {
			failures = append(failures, rankError(g.Source, res.Err))
			continue
		}
		reports[pending[j]] = report.New(g.Source, g.Name, g.Fingerprint, res.Labeling)
		cc.Logger.Debug("graph ranked", "source", g.Source, "order", fmt.Sprint(res.Labeling.Order))
	}
	return failures, nil
}
