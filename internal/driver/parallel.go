package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvalFileResult pairs one input path with its pipeline outcome.
type EvalFileResult struct {
	Path   string
	Result *EvalResult
	Err    error // I/O error loading the file, nil otherwise
}

// EvalFiles evaluates many expression files concurrently. The three
// pipeline stages are pure functions over their inputs, so independent
// expressions share no state; concurrency never crosses a single pipeline.
// Results come back in input order regardless of completion order.
func EvalFiles(ctx context.Context, paths []string, maxDiagnostics int) ([]EvalFileResult, error) {
	results := make([]EvalFileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := EvalFile(path, maxDiagnostics)
			results[i] = EvalFileResult{Path: path, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
