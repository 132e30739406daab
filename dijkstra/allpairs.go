package dijkstra

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spdisjoint/core"
	"github.com/katalvlaran/spdisjoint/matrix"
)

// AllPairs runs ShortestDistances from every vertex and collects the results
// into an n×n table whose row s is the distance vector of source s.
//
// Sources are independent, so up to Options.Workers of them run at once.
// Each goroutine writes only its own row of the table. The first error, or
// ctx cancellation, stops scheduling new sources and is returned.
//
// Complexity: Time O(V · E log V) total work, Space O(V²).
func AllPairs(ctx context.Context, g *core.Graph, opts ...Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultOptions().Workers
	}

	n := g.VertexCount()
	table, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for s := 0; s < n; s++ {
		s := s // per-iteration copy (go.mod targets Go 1.21)
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			dist, err := ShortestDistances(g, s)
			if err != nil {
				return err
			}

			return table.SetRow(s, dist)
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	// Wait returns nil when ctx was cancelled before any goroutine ran.
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return table, nil
}
