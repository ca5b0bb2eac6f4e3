// Package fanout runs one function over many items with bounded
// concurrency. The engine uses it to re-open every previously opened board
// after a session change without fetching them one after another.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome for one input item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines and returns results in input order. A maxWorkers below 1 is
// treated as 1.
//
// If ctx is canceled while an item is waiting for a worker slot, its result
// records ctx.Err() and fn is not called for it. Items already running are
// left to fn to cancel.
//
// Run blocks until every item is done. For no items it returns an empty
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[T, R] {
	results := make([]Result[T, R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		results[i].Item = item
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			results[i].Value, results[i].Err = fn(ctx, item)
		})
	}

	wg.Wait()
	return results
}

// Errors joins the errors of all failed results, or returns nil.
func Errors[T, R any](results []Result[T, R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
