package matching

import (
	"context"
	"runtime"

	"github.com/jonathan/lookalike/internal/types"
	"golang.org/x/sync/errgroup"
)

// FilterMatchesParallel scores entries concurrently and returns the same
// result as FilterMatches. Scoring is pure and shares no mutable state, so
// entries fan out freely across workers; input order is restored from the
// entry index. Workers at or below zero means one worker per CPU.
func (s *Scorer) FilterMatchesParallel(ctx context.Context, candidate *types.AttributeRecord, entries []Entry, threshold, workers int) ([]Entry, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	keep := make([]bool, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range entries {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e := entries[i]
			if e.Target == nil {
				return nil
			}
			keep[i] = s.Score(candidate, e.Target).Score >= threshold
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]Entry, 0, len(entries))
	for i, e := range entries {
		if keep[i] {
			kept = append(kept, e)
		}
	}
	return kept, nil
}
