package labeler

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of labeling one graph in a batch.
type Result struct {
	// Index is the position of the graph in the input slice.
	Index    int
	Labeling *Labeling
	Err      error
}

// RankAll labels independent graphs concurrently using at most workers
// goroutines. Results are returned in input order. A failure on one graph
// is recorded in its Result and does not stop the others; only context
// cancellation aborts the batch, in which case ctx.Err() is returned.
func RankAll(ctx context.Context, graphs []Graph, workers int, opts ...Option) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(graphs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, graph := range graphs {
		if err := gctx.Err(); err != nil {
			break
		}
		i, graph := i, graph
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			labeling, err := Label(graph, opts...)
			results[i] = Result{Index: i, Labeling: labeling, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
