package ladder

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Query is one begin/end pair for Batch.
type Query struct {
	Begin string
	End   string
}

// Answer pairs a Query with its ladder (empty if none exists).
type Answer struct {
	Query  Query
	Ladder []string
}

// Batch answers every query against dict using at most workers goroutines
// (GOMAXPROCS when workers ≤ 0). Answers are returned in query order.
//
// Searches share dict read-only. The first error, typically a cancelled
// ctx, stops the remaining searches and is returned.
func Batch(ctx context.Context, dict *Dictionary, queries []Query, workers int) ([]Answer, error) {
	if dict == nil {
		return nil, ErrNilDictionary
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	answers := make([]Answer, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range queries {
		g.Go(func() error {
			path, err := Search(q.Begin, q.End, dict, WithContext(gctx))
			if err != nil {
				return err
			}
			answers[i] = Answer{Query: q, Ladder: path}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return answers, nil
}
