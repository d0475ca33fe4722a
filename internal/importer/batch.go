package importer

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cerego-backend/internal/config"
)

// splitBatches partitions words into contiguous slices of at most size
// elements, preserving input order. A batch boundary never splits a word.
func splitBatches(words []string, size int) [][]string {
	if size <= 0 || len(words) == 0 {
		return nil
	}

	batches := make([][]string, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		batches = append(batches, words[start:end])
	}
	return batches
}

// dispatchBatches fans out fn over the batches of words with at most
// maxConcurrent calls in flight, then concatenates the per-batch results
// in batch-submission order. Under fail_closed any batch error fails the
// whole aggregate; under fail_open failed batches contribute nothing and
// the rest are returned.
func dispatchBatches[T any](
	ctx context.Context,
	words []string,
	batchSize, maxConcurrent int,
	policy config.AggregationPolicy,
	log *slog.Logger,
	fn func(ctx context.Context, batch []string) ([]T, error),
) ([]T, error) {
	batches := splitBatches(words, batchSize)
	if len(batches) == 0 {
		return []T{}, nil
	}

	results := make([][]T, len(batches))
	failed := make([]error, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, batch := range batches {
		g.Go(func() error {
			out, err := fn(gctx, batch)
			if err != nil {
				if policy == config.AggregationFailClosed {
					return fmt.Errorf("batch %d: %w", i, err)
				}
				log.Warn("batch dropped from aggregate",
					slog.Int("batch", i),
					slog.Int("size", len(batch)),
					slog.Any("error", err))
				failed[i] = err
				return nil
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var aggregate []T
	for i, out := range results {
		if failed[i] != nil {
			continue
		}
		aggregate = append(aggregate, out...)
	}
	if aggregate == nil {
		aggregate = []T{}
	}
	return aggregate, nil
}
