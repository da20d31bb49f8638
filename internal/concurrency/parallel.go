package concurrency

import (
	"context"
	"sync"
)

// ParallelOptions configures ProcessParallel.
type ParallelOptions struct {
	// MaxWorkers caps the number of goroutines. <=0 means DefaultOptions().MaxWorkers.
	MaxWorkers int
}

func DefaultOptions() ParallelOptions {
	return ParallelOptions{
		MaxWorkers: 4,
	}
}

type indexed[R any] struct {
	index  int
	result R
	err    error
}

// ProcessParallel runs fn over items on a bounded worker pool and returns
// the results in input order. Items not started before ctx is done keep
// their zero value. Errors are returned in completion order.
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	fn func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = DefaultOptions().MaxWorkers
	}
	workers = min(workers, len(items))

	jobs := make(chan int, len(items))
	for i := range items {
		jobs <- i
	}
	close(jobs)

	results := make(chan indexed[R], len(items))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				r, err := fn(ctx, i, items[i])
				results <- indexed[R]{index: i, result: r, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]R, len(items))
	var errs []error
	for res := range results {
		out[res.index] = res.result
		if res.err != nil {
			errs = append(errs, res.err)
		}
	}
	return out, errs
}
